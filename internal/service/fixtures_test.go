package service_test

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/print_api/internal/cache"
	"github.com/GTDGit/print_api/internal/config"
	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/pricing"
)

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testSizes() []models.Size {
	return []models.Size{
		{ID: 1, Code: "A4", WidthMm: 210, HeightMm: 297, BaseSheetSize: models.BaseSheet467x315, UpCount: 2, IsActive: true},
	}
}

func testPapers() []models.PaperCost {
	return []models.PaperCost{
		{ID: 10, PaperTypeID: 1, PaperCode: "snow", PaperFamily: "snow", Weight: 120,
			BaseSheetSize: models.BaseSheet467x315, CostPerSheet: dec("50"), MarginRate: dec("1.2"), IsActive: true},
	}
}

func testCatalogRows() pricing.CatalogRows {
	maxThick := dec("5")
	return pricing.CatalogRows{
		Sizes:      testSizes(),
		PaperTypes: []models.PaperType{{ID: 1, Code: "snow", Family: "snow", IsActive: true}},
		PrintTiers: []models.PrintCostTier{
			{ID: 1, MinFaces: 0, MaxFaces: intPtr(999), CostPerFace: 30, IsActive: true},
			{ID: 2, MinFaces: 1000, MaxFaces: intPtr(4999), CostPerFace: 20, IsActive: true},
			{ID: 3, MinFaces: 5000, CostPerFace: 15, IsActive: true},
		},
		BindingTypes: []models.BindingType{{ID: 1, Code: "saddle", MaxThicknessMm: &maxThick, IsActive: true}},
		BindingCosts: []models.BindingCost{
			{ID: 1, BindingTypeID: 1, SetupCost: 10000, MinQty: 1, CostPerCopy: 300, IsActive: true},
		},
		FinishingTypes: []models.FinishingType{{ID: 1, Code: "coating", IsActive: true}},
		FinishingCosts: []models.FinishingCost{{ID: 1, FinishingTypeID: 1, FlatCost: 5000, CostPerCopy: 10, IsActive: true}},
	}
}

// livePriceCache returns a cache holding the snapshot derived from testSizes
// and testPapers at version 3.
func livePriceCache() *cache.PriceCache {
	c := cache.NewPriceCache()
	snap, _ := cache.BuildSnapshot(3, time.Unix(1700000000, 0), testSizes(), testPapers())
	c.Publish(snap, c.StaleGeneration())
	return c
}

func flyerSelection() models.CustomerSelection {
	return models.CustomerSelection{
		SizeCode: "A4", PaperCode: "snow", PaperWeight: 120, Sides: models.SidesDouble,
		FinishingCodes: []string{"coating"},
	}
}

func testCacheConfig() config.CacheConfig {
	return config.CacheConfig{RebuildTimeout: 5 * time.Second, SyncInterval: time.Second, LockTTL: time.Minute}
}
