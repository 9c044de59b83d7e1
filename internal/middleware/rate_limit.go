package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Limiter counts hits on key within a fixed window.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// INCR then set the expiry on the first hit so the window starts with it.
// KEYS[1] = counter key, ARGV[1] = window in milliseconds
const rateLimitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return count
`

var errUnexpectedReply = errors.New("unexpected rate limit reply")

type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	limit  int64
	window time.Duration
	prefix string
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
		limit:  int64(limit),
		window: window,
		prefix: "rl:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	reply, err := l.script.Run(ctx, l.client, []string{l.prefix + key}, l.window.Milliseconds()).Result()
	if err != nil {
		return false, err
	}
	count, ok := reply.(int64)
	if !ok {
		return false, errUnexpectedReply
	}
	return count <= l.limit, nil
}

// MemoryLimiter is the single-process limiter used when no Redis is configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	limit   int
	window  time.Duration
	buckets map[string]*bucket
	now     func() time.Time
	// expired buckets are dropped at most once per window
	nextSweep time.Time
}

type bucket struct {
	count     int
	windowEnd time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{limit: limit, window: window, buckets: map[string]*bucket{}, now: time.Now}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.After(l.nextSweep) {
		l.sweep(now)
	}
	b, ok := l.buckets[key]
	if !ok || now.After(b.windowEnd) {
		l.buckets[key] = &bucket{count: 1, windowEnd: now.Add(l.window)}
		return true, nil
	}
	if b.count >= l.limit {
		return false, nil
	}
	b.count++
	return true, nil
}

func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.After(b.windowEnd) {
			delete(l.buckets, key)
		}
	}
	l.nextSweep = now.Add(l.window)
}

// RateLimit rejects clients that exceed the limiter with 429. A nil limiter
// lets everything through, and limiter failures fail open.
func RateLimit(limiter Limiter, scope string, retryAfter time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}
		allowed, err := limiter.Allow(c.Request.Context(), scope+":"+c.ClientIP())
		if err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("Rate limiter unavailable, allowing request")
			c.Next()
			return
		}
		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"status":  http.StatusTooManyRequests,
				"message": "rate limit exceeded",
				"data":    gin.H{"data": "too many requests, try again later"},
			})
			return
		}
		c.Next()
	}
}
