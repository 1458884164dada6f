package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

import (
	"context"
	"time"

	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/pricing"
)

// CatalogStore reads the catalog tables.
type CatalogStore interface {
	LoadCatalog(ctx context.Context) (pricing.CatalogRows, error)
	LoadPriceSources(ctx context.Context) ([]models.Size, []models.PaperCost, error)
}

// PriceStore persists the precomputed price table.
type PriceStore interface {
	ReplaceAll(ctx context.Context, entries []models.PrecomputedPriceEntry, builtAt time.Time) (int64, error)
	LoadAll(ctx context.Context) (models.PriceCacheMeta, []models.PrecomputedPriceEntry, error)
}

// ProductStore reads per-product pricing configuration.
type ProductStore interface {
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	GetDiscountTiers(ctx context.Context, productID int64) ([]models.QuantityDiscountTier, error)
}

// OrderStore persists verified orders.
type OrderStore interface {
	GenerateOrderNumber(ctx context.Context) (string, error)
	Create(ctx context.Context, o *models.Order) error
}

// CacheCoordinator shares price cache state between API instances.
type CacheCoordinator interface {
	AcquireRebuildLock(ctx context.Context, ttl time.Duration) (func(context.Context) error, error)
	PublishVersion(ctx context.Context, version, staleGen int64) error
	Version(ctx context.Context) (int64, error)
	MarkStale(ctx context.Context, reason string) error
	StaleGeneration(ctx context.Context) (int64, error)
	StaleReason(ctx context.Context) (string, error)
}

// Pricer computes the authoritative server price of one request.
type Pricer interface {
	Price(ctx context.Context, req *PriceRequest) (*pricing.PriceResult, error)
}
