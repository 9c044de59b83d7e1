package routes

import (
	"github.com/gin-gonic/gin"
)

// NewEngine builds the gin engine. Only the listed proxies may set the
// client address through X-Forwarded-For; with none listed ClientIP is the
// peer address.
func NewEngine(maxUploadBytes int64, trustedProxies []string) (*gin.Engine, error) {
	router := gin.New()
	router.MaxMultipartMemory = maxUploadBytes
	if err := router.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	return router, nil
}
