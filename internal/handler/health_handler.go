package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/print_api/internal/service"
	"github.com/GTDGit/print_api/internal/utils"
)

var startTime = time.Now()

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// CacheStatusReader reports the live price cache.
type CacheStatusReader interface {
	Status() service.CacheStatus
}

// HealthHandler provides health endpoint.
type HealthHandler struct {
	db    HealthCheck
	redis HealthCheck
	cache CacheStatusReader
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db, redis HealthCheck, cache CacheStatusReader) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, cache: cache}
}

func checkStatus(ctx context.Context, check HealthCheck) string {
	if err := check(ctx); err != nil {
		return "disconnected"
	}
	return "connected"
}

// GetHealth responds with service, database, Redis and price cache status.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	dbStatus := checkStatus(ctx, h.db)
	redisStatus := checkStatus(ctx, h.redis)
	st := h.cache.Status()

	if dbStatus != "connected" {
		utils.Error(c, 503, "SERVICE_UNAVAILABLE", "Database unavailable")
		return
	}

	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":   "healthy",
		"version":  "1.0.0",
		"uptime":   int(time.Since(startTime).Seconds()),
		"database": dbStatus,
		"redis":    redisStatus,
		"priceCache": gin.H{
			"version": st.Version,
			"entries": st.EntryCount,
			"stale":   st.Stale,
		},
	})
}
