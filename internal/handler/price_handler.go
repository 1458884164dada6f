package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/print_api/internal/service"
	"github.com/GTDGit/print_api/internal/utils"
)

// Quoter prices a selection and its quantity table.
type Quoter interface {
	Quote(ctx context.Context, req *service.PriceRequest) (*service.Quote, error)
}

// PriceHandler serves customer price quotes.
type PriceHandler struct {
	pricing Quoter
}

// NewPriceHandler constructs a PriceHandler.
func NewPriceHandler(pricing Quoter) *PriceHandler {
	return &PriceHandler{pricing: pricing}
}

// Calculate handles POST /price/calculate
func (h *PriceHandler) Calculate(c *gin.Context) {
	var req service.PriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}

	quote, err := h.pricing.Quote(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	utils.Success(c, 200, "Price calculated", quote)
}
