package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/pricing"
	"github.com/GTDGit/print_api/internal/utils"
)

// OrderPriceInput is what the client claims it priced.
type OrderPriceInput struct {
	Customer    models.CustomerSelection `json:"customer"`
	Qty         int                      `json:"qty"`
	ProductType models.ProductType       `json:"productType" binding:"required"`
	ProductID   *int64                   `json:"productId,omitempty"`
	Books       []models.BookInput       `json:"books,omitempty"`
	Pages       int                      `json:"pages,omitempty"`
	// ProductAmount is the client-side display total checked against the
	// server price. When zero, orderData.productAmount is used instead.
	ProductAmount int64 `json:"productAmount"`
	// GuidePriceTotal and DesignFee are advisory; product config wins.
	GuidePriceTotal *int64 `json:"guidePriceTotal,omitempty"`
	DesignFee       *int64 `json:"designFee,omitempty"`
}

// CreateOrderRequest is the body of POST /order/create.
type CreateOrderRequest struct {
	OrderData      json.RawMessage       `json:"orderData"`
	PriceInput     OrderPriceInput       `json:"priceInput"`
	DeliveryMethod models.DeliveryMethod `json:"deliveryMethod"`
	QuickDelivery  bool                  `json:"quickDelivery"`
}

// SubmittedAmount returns the price the client claims to pay:
// priceInput.productAmount, falling back to orderData.productAmount.
func (r *CreateOrderRequest) SubmittedAmount() int64 {
	if r.PriceInput.ProductAmount != 0 || len(r.OrderData) == 0 {
		return r.PriceInput.ProductAmount
	}
	var data struct {
		ProductAmount int64 `json:"productAmount"`
	}
	if err := json.Unmarshal(r.OrderData, &data); err != nil {
		return 0
	}
	return data.ProductAmount
}

// OrderResult is returned to the client once an order is stored.
type OrderResult struct {
	OrderNumber       string `json:"orderNumber"`
	UUID              string `json:"uuid"`
	VerifiedPrice     int64  `json:"verifiedPrice"`
	ShippingCost      int64  `json:"shippingCost"`
	QuickDeliveryCost int64  `json:"quickDeliveryCost"`
	TotalAmount       int64  `json:"totalAmount"`
}

// OrderService verifies client prices against the server price and stores
// the order at the server price.
type OrderService struct {
	pricer   Pricer
	orders   OrderStore
	policy   pricing.Policy
	attempts int
}

// NewOrderService constructs an OrderService. attempts bounds the full
// re-price and persist cycle.
func NewOrderService(pricer Pricer, orders OrderStore, policy pricing.Policy, attempts int) *OrderService {
	if attempts < 1 {
		attempts = 1
	}
	return &OrderService{pricer: pricer, orders: orders, policy: policy, attempts: attempts}
}

// CreateOrder re-prices the request, rejects a submitted price too far below
// the server price and persists the server price. A persist failure repeats
// the whole cycle so nothing is ever stored against an unchecked price.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*OrderResult, error) {
	priceReq := toPriceRequest(&req.PriceInput)

	var lastErr error
	for attempt := 1; attempt <= s.attempts; attempt++ {
		order, err := s.verify(ctx, req, priceReq)
		if err != nil {
			return nil, err
		}

		if err := s.persist(ctx, order); err != nil {
			lastErr = err
			log.Warn().Err(err).Int("attempt", attempt).Int("max_attempts", s.attempts).Msg("order persist failed, re-verifying")
			if ctx.Err() != nil {
				break
			}
			continue
		}

		log.Info().
			Str("order_number", order.OrderNumber).
			Int64("product_amount", order.ProductAmount).
			Int64("submitted_amount", order.SubmittedAmount).
			Int64("total_amount", order.TotalAmount).
			Msg("order created")
		return &OrderResult{
			OrderNumber:       order.OrderNumber,
			UUID:              order.UUID,
			VerifiedPrice:     order.ProductAmount,
			ShippingCost:      order.ShippingCost,
			QuickDeliveryCost: order.QuickDeliveryCost,
			TotalAmount:       order.TotalAmount,
		}, nil
	}
	return nil, fmt.Errorf("%w: %v", utils.ErrOrderPersistFailed, lastErr)
}

// verify computes the server price and builds the order to store.
func (s *OrderService) verify(ctx context.Context, req *CreateOrderRequest, priceReq *PriceRequest) (*models.Order, error) {
	in := &req.PriceInput

	res, err := s.pricer.Price(ctx, priceReq)
	if err != nil {
		return nil, err
	}
	server := res.DisplayTotal
	submitted := req.SubmittedAmount()
	if err := s.policy.Verify(submitted, server); err != nil {
		log.Warn().
			Int64("submitted", submitted).
			Int64("server", server).
			Str("product_type", string(in.ProductType)).
			Msg("order price verification rejected")
		return nil, err
	}
	logAdvisoryMismatch(in, res)

	boxes := 1
	if res.Packaging != nil {
		boxes = res.Packaging.BoxCount
	}
	method := req.DeliveryMethod
	if method == "" {
		method = models.DeliveryParcel
	}
	shipping, err := s.policy.ShippingCost(method, boxes, server)
	if err != nil {
		return nil, err
	}
	var quick int64
	if req.QuickDelivery {
		quick = s.policy.Shipping.QuickDeliveryFee
	}

	snapshot, err := json.Marshal(res)
	if err != nil {
		return nil, fmt.Errorf("encode price snapshot: %w", err)
	}

	return &models.Order{
		ProductID:         in.ProductID,
		ProductType:       in.ProductType,
		Quantity:          res.Quantity,
		Status:            models.OrderStatusPending,
		ProductAmount:     server,
		SubmittedAmount:   submitted,
		ShippingCost:      shipping,
		QuickDeliveryCost: quick,
		TotalAmount:       server + shipping + quick,
		DeliveryMethod:    method,
		CacheVersion:      res.CacheVersion,
		PriceSnapshot:     snapshot,
		OrderData:         req.OrderData,
	}, nil
}

func (s *OrderService) persist(ctx context.Context, order *models.Order) error {
	number, err := s.orders.GenerateOrderNumber(ctx)
	if err != nil {
		return fmt.Errorf("generate order number: %w", err)
	}
	order.OrderNumber = number
	order.UUID = uuid.NewString()
	return s.orders.Create(ctx, order)
}

func toPriceRequest(in *OrderPriceInput) *PriceRequest {
	sel := in.Customer
	if sel.Pages == 0 && in.Pages > 0 {
		sel.Pages = in.Pages
	}
	if len(sel.Books) == 0 && len(in.Books) > 0 {
		sel.Books = in.Books
	}
	return &PriceRequest{
		Selection:   sel,
		Quantity:    in.Qty,
		ProductType: in.ProductType,
		ProductID:   in.ProductID,
	}
}

// logAdvisoryMismatch records client-side guide price and design fee values
// that disagree with the server's.
func logAdvisoryMismatch(in *OrderPriceInput, res *pricing.PriceResult) {
	if in.GuidePriceTotal != nil && *in.GuidePriceTotal != res.GuideTotal {
		log.Info().Int64("client", *in.GuidePriceTotal).Int64("server", res.GuideTotal).Msg("client guide price ignored")
	}
	if in.DesignFee != nil && *in.DesignFee != res.DesignFee {
		log.Info().Int64("client", *in.DesignFee).Int64("server", res.DesignFee).Msg("client design fee ignored")
	}
}

