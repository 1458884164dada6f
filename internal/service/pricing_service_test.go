package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/GTDGit/print_api/internal/cache"
	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/pricing"
	"github.com/GTDGit/print_api/internal/service"
	mock_service "github.com/GTDGit/print_api/internal/service/mocks"
	"github.com/GTDGit/print_api/internal/utils"
)

func TestPricingService_Quote(t *testing.T) {
	t.Run("selected and quantity table", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_service.NewMockCatalogStore(ctrl)
		catalog.EXPECT().LoadCatalog(gomock.Any()).Return(testCatalogRows(), nil).Times(1)

		svc := service.NewPricingService(catalog, nil, livePriceCache(), pricing.DefaultPolicy())
		q, err := svc.Quote(context.Background(), &service.PriceRequest{
			Selection:   flyerSelection(),
			Quantity:    101,
			ProductType: models.ProductTypeFlyer,
			AllQtys:     []int{101, 1000, 0, 101},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Selected.DisplayTotal != 13343 {
			t.Fatalf("selected display = %d, want 13343", q.Selected.DisplayTotal)
		}
		if len(q.ByQty) != 3 {
			t.Fatalf("byQty has %d entries, want 3", len(q.ByQty))
		}
		if q.ByQty[101] == nil || q.ByQty[101].DisplayTotal != 13343 {
			t.Fatalf("byQty[101] = %+v", q.ByQty[101])
		}
		// 500 sheets, 1000 faces at 20, coating 15000: 65000 supply, 71500 with VAT
		if q.ByQty[1000] == nil || q.ByQty[1000].DisplayTotal != 71500 {
			t.Fatalf("byQty[1000] = %+v", q.ByQty[1000])
		}
		if res, ok := q.ByQty[0]; !ok || res != nil {
			t.Fatalf("failing quantity must be present as null, got %v (present=%v)", res, ok)
		}
		if q.Selected.CacheVersion != 3 || q.Selected.CacheStale {
			t.Fatalf("cache version/stale = %d/%v", q.Selected.CacheVersion, q.Selected.CacheStale)
		}
	})

	t.Run("failing selected quantity fails request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_service.NewMockCatalogStore(ctrl)
		catalog.EXPECT().LoadCatalog(gomock.Any()).Return(testCatalogRows(), nil)

		svc := service.NewPricingService(catalog, nil, livePriceCache(), pricing.DefaultPolicy())
		q, err := svc.Quote(context.Background(), &service.PriceRequest{
			Selection: flyerSelection(), Quantity: 0, ProductType: models.ProductTypeFlyer, AllQtys: []int{100},
		})
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
		if q != nil {
			t.Fatalf("expected no partial quote")
		}
	})

	t.Run("unknown size is a catalog miss", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_service.NewMockCatalogStore(ctrl)
		catalog.EXPECT().LoadCatalog(gomock.Any()).Return(testCatalogRows(), nil)

		sel := flyerSelection()
		sel.SizeCode = "B2"
		svc := service.NewPricingService(catalog, nil, livePriceCache(), pricing.DefaultPolicy())
		_, err := svc.Quote(context.Background(), &service.PriceRequest{Selection: sel, Quantity: 10, ProductType: models.ProductTypeFlyer})
		if !errors.Is(err, pricing.ErrCatalogMiss) {
			t.Fatalf("expected ErrCatalogMiss, got %v", err)
		}
	})

	t.Run("unknown product type", func(t *testing.T) {
		svc := service.NewPricingService(nil, nil, livePriceCache(), pricing.DefaultPolicy())
		_, err := svc.Quote(context.Background(), &service.PriceRequest{Selection: flyerSelection(), Quantity: 10, ProductType: "mug"})
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestPricingService_Price(t *testing.T) {
	t.Run("stale cache still prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_service.NewMockCatalogStore(ctrl)
		catalog.EXPECT().LoadCatalog(gomock.Any()).Return(testCatalogRows(), nil)

		prices := livePriceCache()
		prices.MarkStale("paper cost changed", time.Now())
		svc := service.NewPricingService(catalog, nil, prices, pricing.DefaultPolicy())

		res, err := svc.Price(context.Background(), &service.PriceRequest{Selection: flyerSelection(), Quantity: 101, ProductType: models.ProductTypeFlyer})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.CacheStale || res.DisplayTotal != 13343 {
			t.Fatalf("stale = %v display = %d", res.CacheStale, res.DisplayTotal)
		}
	})

	t.Run("empty cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_service.NewMockCatalogStore(ctrl)
		catalog.EXPECT().LoadCatalog(gomock.Any()).Return(testCatalogRows(), nil)

		svc := service.NewPricingService(catalog, nil, cache.NewPriceCache(), pricing.DefaultPolicy())
		_, err := svc.Price(context.Background(), &service.PriceRequest{Selection: flyerSelection(), Quantity: 10, ProductType: models.ProductTypeFlyer})
		if !errors.Is(err, utils.ErrCacheEmpty) {
			t.Fatalf("expected ErrCacheEmpty, got %v", err)
		}
	})

	t.Run("product guide price comes from server config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		catalog := mock_service.NewMockCatalogStore(ctrl)
		products := mock_service.NewMockProductStore(ctrl)
		catalog.EXPECT().LoadCatalog(gomock.Any()).Return(testCatalogRows(), nil)
		products.EXPECT().GetByID(gomock.Any(), int64(5)).Return(&models.Product{
			ID: 5, Type: models.ProductTypeFlyer, GuidePrice: 100, IsActive: true,
		}, nil)

		svc := service.NewPricingService(catalog, products, livePriceCache(), pricing.DefaultPolicy())
		res, err := svc.Price(context.Background(), &service.PriceRequest{
			Selection: flyerSelection(), Quantity: 101, ProductType: models.ProductTypeFlyer, ProductID: int64Ptr(5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.GuideTotal != 10100 || res.DisplayTotal != 13343+10100 {
			t.Fatalf("guide = %d display = %d", res.GuideTotal, res.DisplayTotal)
		}
	})

	t.Run("outsourced books", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_service.NewMockProductStore(ctrl)
		products.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&models.Product{
			ID: 9, Type: models.ProductTypeOutsourced, PagePrice: dec("20"), BindingFee: 1500, GuidePrice: 500,
			DesignFee: 30000, FreeDesignMinQty: 100, IsActive: true,
		}, nil)
		products.EXPECT().GetDiscountTiers(gomock.Any(), int64(9)).Return([]models.QuantityDiscountTier{
			{MinQty: 0, Percent: dec("0"), IsActive: true},
			{MinQty: 100, Percent: dec("5"), IsActive: true},
			{MinQty: 500, Percent: dec("10"), IsActive: true},
		}, nil)

		svc := service.NewPricingService(nil, products, livePriceCache(), pricing.DefaultPolicy())
		sel := models.CustomerSelection{Books: []models.BookInput{
			{Pages: 100, Quantity: 40}, {Pages: 50, Quantity: 50}, {Pages: 200, Quantity: 30},
		}}
		res, err := svc.Price(context.Background(), &service.PriceRequest{
			Selection: sel, ProductType: models.ProductTypeOutsourced, ProductID: int64Ptr(9),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.DisplayTotal != 465500 || !res.DiscountPercent.Equal(dec("5")) {
			t.Fatalf("display = %d discount = %s", res.DisplayTotal, res.DiscountPercent)
		}
	})

	t.Run("outsourced without product", func(t *testing.T) {
		svc := service.NewPricingService(nil, nil, livePriceCache(), pricing.DefaultPolicy())
		_, err := svc.Price(context.Background(), &service.PriceRequest{ProductType: models.ProductTypeOutsourced})
		if !errors.Is(err, pricing.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("missing product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_service.NewMockProductStore(ctrl)
		products.EXPECT().GetByID(gomock.Any(), int64(404)).Return(nil, nil)

		svc := service.NewPricingService(nil, products, livePriceCache(), pricing.DefaultPolicy())
		_, err := svc.Price(context.Background(), &service.PriceRequest{
			Selection: flyerSelection(), Quantity: 1, ProductType: models.ProductTypeFlyer, ProductID: int64Ptr(404),
		})
		if !errors.Is(err, pricing.ErrCatalogMiss) {
			t.Fatalf("expected ErrCatalogMiss, got %v", err)
		}
	})

	t.Run("product type mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_service.NewMockProductStore(ctrl)
		products.EXPECT().GetByID(gomock.Any(), int64(9)).Return(&models.Product{ID: 9, Type: models.ProductTypeOutsourced}, nil)

		svc := service.NewPricingService(nil, products, livePriceCache(), pricing.DefaultPolicy())
		_, err := svc.Price(context.Background(), &service.PriceRequest{
			Selection: flyerSelection(), Quantity: 1, ProductType: models.ProductTypeFlyer, ProductID: int64Ptr(9),
		})
		if !errors.Is(err, utils.ErrProductTypeMismatch) {
			t.Fatalf("expected ErrProductTypeMismatch, got %v", err)
		}
	})
}
