package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/print_api/internal/service"
	"github.com/GTDGit/print_api/internal/utils"
)

// OrderCreator verifies and stores orders.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req *service.CreateOrderRequest) (*service.OrderResult, error)
}

// OrderHandler handles order HTTP endpoints.
type OrderHandler struct {
	orders OrderCreator
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orders OrderCreator) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// CreateOrder handles POST /order/create. The client's price is read from
// priceInput.productAmount, or from orderData.productAmount when that is
// absent; either way the order is stored at the server price.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "MISSING_FIELD", "Invalid request body")
		return
	}

	res, err := h.orders.CreateOrder(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	utils.Success(c, 201, "Order created", res)
}
