package models

import (
	"encoding/json"
	"time"
)

// DeliveryMethod enumerates how an order leaves the shop.
type DeliveryMethod string

const (
	DeliveryParcel     DeliveryMethod = "parcel"
	DeliveryFreight    DeliveryMethod = "freight"
	DeliveryPickup     DeliveryMethod = "pickup"
	DeliveryCourierCOD DeliveryMethod = "courier_cod"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusCanceled  OrderStatus = "Canceled"
)

// Order is the persisted, price-verified order snapshot.
type Order struct {
	ID                int64           `db:"id" json:"-"`
	OrderNumber       string          `db:"order_number" json:"orderNumber"`
	UUID              string          `db:"uuid" json:"uuid"`
	ProductID         *int64          `db:"product_id" json:"productId,omitempty"`
	ProductType       ProductType     `db:"product_type" json:"productType"`
	Quantity          int             `db:"quantity" json:"quantity"`
	Status            OrderStatus     `db:"status" json:"status"`
	ProductAmount     int64           `db:"product_amount" json:"productAmount"`
	SubmittedAmount   int64           `db:"submitted_amount" json:"-"`
	ShippingCost      int64           `db:"shipping_cost" json:"shippingCost"`
	QuickDeliveryCost int64           `db:"quick_delivery_cost" json:"quickDeliveryCost"`
	TotalAmount       int64           `db:"total_amount" json:"totalAmount"`
	DeliveryMethod    DeliveryMethod  `db:"delivery_method" json:"deliveryMethod"`
	CacheVersion      int64           `db:"cache_version" json:"-"`
	PriceSnapshot     json.RawMessage `db:"price_snapshot" json:"priceSnapshot,omitempty"`
	OrderData         json.RawMessage `db:"order_data" json:"orderData,omitempty"`
	CreatedAt         time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt         time.Time       `db:"updated_at" json:"-"`
}
