package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/print_api/internal/models"
)

// OrderRepository handles data access for orders.
type OrderRepository struct {
	db *sqlx.DB
}

// NewOrderRepository creates a new OrderRepository.
func NewOrderRepository(db *sqlx.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// nullableJSON converts an empty raw message to nil for proper NULL handling in PostgreSQL.
func nullableJSON(v []byte) interface{} {
	if len(v) == 0 {
		return nil
	}
	return v
}

// Create inserts a new order row and fills its id.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	const q = `
        INSERT INTO orders (
            order_number, uuid, product_id, product_type, quantity, status,
            product_amount, submitted_amount, shipping_cost, quick_delivery_cost, total_amount,
            delivery_method, cache_version, price_snapshot, order_data, created_at, updated_at
        ) VALUES (
            $1,$2,$3,$4,$5,$6,
            $7,$8,$9,$10,$11,
            $12,$13,$14,$15,NOW(),NOW()
        ) RETURNING id, created_at`

	return r.db.QueryRowxContext(ctx, q,
		o.OrderNumber, o.UUID, o.ProductID, o.ProductType, o.Quantity, o.Status,
		o.ProductAmount, o.SubmittedAmount, o.ShippingCost, o.QuickDeliveryCost, o.TotalAmount,
		o.DeliveryMethod, o.CacheVersion, nullableJSON(o.PriceSnapshot), nullableJSON(o.OrderData),
	).Scan(&o.ID, &o.CreatedAt)
}

// GenerateOrderNumber returns a number like PRT-YYYYMMDD-NNNNNN using the Asia/Seoul date.
// Two concurrent callers can receive the same number; the unique index on
// order_number rejects the loser, which retries with a fresh number.
func (r *OrderRepository) GenerateOrderNumber(ctx context.Context) (string, error) {
	const q = `
        SELECT TO_CHAR(NOW() AT TIME ZONE 'Asia/Seoul', 'YYYYMMDD') AS ymd,
               COALESCE(MAX(CAST(SUBSTRING(order_number FROM 14) AS INT)), 0) + 1 AS next
        FROM orders
        WHERE order_number LIKE 'PRT-' || TO_CHAR(NOW() AT TIME ZONE 'Asia/Seoul', 'YYYYMMDD') || '-%'`

	var row struct {
		YMD  string `db:"ymd"`
		Next int    `db:"next"`
	}
	if err := r.db.GetContext(ctx, &row, q); err != nil {
		return "", err
	}
	return fmt.Sprintf("PRT-%s-%06d", row.YMD, row.Next), nil
}
