package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/print_api/internal/pricing"
	"github.com/GTDGit/print_api/internal/utils"
)

const refreshMessage = "The price has changed. Please refresh the page and try again."

// handleError maps service errors to the response envelope.
func handleError(c *gin.Context, err error) {
	var (
		miss    *pricing.CatalogMissError
		invalid *pricing.InvalidInputError
	)
	switch {
	case errors.As(err, &miss):
		utils.Error(c, 422, "CATALOG_MISS", miss.Error())
	case errors.As(err, &invalid):
		utils.Error(c, 400, "INVALID_INPUT", invalid.Error())
	case errors.Is(err, pricing.ErrPriceVerification):
		utils.Error(c, 400, "PRICE_MISMATCH", refreshMessage)
	case errors.Is(err, utils.ErrProductTypeMismatch):
		utils.Error(c, 400, "PRODUCT_TYPE_MISMATCH", "Product does not match the requested product type")
	case errors.Is(err, utils.ErrCacheEmpty):
		utils.Error(c, 503, "PRICE_CACHE_EMPTY", "Prices are being prepared, please retry shortly")
	case errors.Is(err, utils.ErrCacheRebuildInProgress):
		utils.Error(c, 409, "CACHE_REBUILD_IN_PROGRESS", "Price cache rebuild already in progress")
	default:
		log.Error().Err(err).Str("request_id", c.GetString("request_id")).Str("path", c.FullPath()).Msg("request failed")
		utils.Error(c, 500, "INTERNAL_ERROR", "Internal server error")
	}
}
