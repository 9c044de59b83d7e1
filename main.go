package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"job-portal-service/cmd/controllers"
	"job-portal-service/cmd/routes"
	"job-portal-service/internal/configs"
	"job-portal-service/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := configs.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	log.Info().Msg("Starting server...")

	ctx := context.Background()
	client, err := configs.ConnectDB(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not reach MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("Error disconnecting from MongoDB")
		}
	}()

	portal := client.Database(cfg.PortalDB)
	employees := client.Database(cfg.EmployeesDB)
	configs.EnsureSchemas(ctx, portal, configs.PortalSchemas())
	configs.EnsureSchemas(ctx, employees, configs.EmployeeSchemas())
	configs.EnsureIndexes(ctx, portal)

	uploads, err := controllers.NewUploader(cfg.UploadsDir, cfg.MaxUploadBytes)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadsDir).Msg("Could not create uploads directory")
	}
	handler := controllers.NewHandler(configs.NewMongoDB(portal, employees), uploads, cfg.RequestTimeout)

	router, err := routes.NewEngine(cfg.MaxUploadBytes, cfg.TrustedProxies)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid TRUSTED_PROXIES")
	}
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(), middleware.CORS(cfg.CORSOrigins))

	//routes
	limiter := newLimiter(cfg)
	routes.EmployeeRoute(router, handler)
	routes.UserRoute(router, handler, limiter)
	routes.CandidateRoute(router, handler)
	routes.AdminRoute(router, handler)
	routes.MiscRoute(router, handler, cfg.UploadsDir)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Error starting server on port " + cfg.Port)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown")
	}
}

// newLimiter picks the Redis limiter when REDIS_URL is set and reachable,
// otherwise a per-process one.
func newLimiter(cfg *configs.Config) middleware.Limiter {
	if cfg.RateLimitPerMinute <= 0 {
		return nil
	}
	if cfg.RedisURL == "" {
		return middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn().Err(err).Msg("Invalid REDIS_URL, using in-process rate limiting")
		return middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis unreachable, using in-process rate limiting")
		_ = client.Close()
		return middleware.NewMemoryLimiter(cfg.RateLimitPerMinute, time.Minute)
	}
	log.Info().Msg("Rate limiting through Redis")
	return middleware.NewRedisLimiter(client, cfg.RateLimitPerMinute, time.Minute)
}
