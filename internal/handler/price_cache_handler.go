package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/service"
	"github.com/GTDGit/print_api/internal/utils"
)

// PriceCacheManager is the admin surface of the price cache.
type PriceCacheManager interface {
	Rebuild(ctx context.Context) (models.PriceCacheMeta, error)
	Invalidate(ctx context.Context, reason string)
	Status() service.CacheStatus
}

// PriceCacheHandler exposes cache administration to catalog editors.
type PriceCacheHandler struct {
	cache PriceCacheManager
}

// NewPriceCacheHandler constructs a PriceCacheHandler.
func NewPriceCacheHandler(cache PriceCacheManager) *PriceCacheHandler {
	return &PriceCacheHandler{cache: cache}
}

// invalidateRequest is the optional body of the invalidate endpoint.
type invalidateRequest struct {
	Reason string `json:"reason"`
}

// GetStatus handles GET /admin/price-cache
func (h *PriceCacheHandler) GetStatus(c *gin.Context) {
	utils.Success(c, 200, "Price cache status", h.cache.Status())
}

// Rebuild handles POST /admin/price-cache/rebuild
func (h *PriceCacheHandler) Rebuild(c *gin.Context) {
	meta, err := h.cache.Rebuild(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	utils.Success(c, 200, "Price cache rebuilt", meta)
}

// Invalidate handles POST /admin/price-cache/invalidate
func (h *PriceCacheHandler) Invalidate(c *gin.Context) {
	var req invalidateRequest
	// Body is optional.
	_ = c.ShouldBindJSON(&req)

	h.cache.Invalidate(c.Request.Context(), req.Reason)
	utils.Success(c, 200, "Price cache marked stale", h.cache.Status())
}
