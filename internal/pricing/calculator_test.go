package pricing

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/print_api/internal/models"
)

type fakePrices struct {
	entries map[string]models.PrecomputedPriceEntry
	version int64
}

func (f fakePrices) Lookup(sizeCode, paperCode string, weight int) (models.PrecomputedPriceEntry, bool) {
	e, ok := f.entries[fmt.Sprintf("%s|%s|%d", sizeCode, paperCode, weight)]
	return e, ok
}

func (f fakePrices) Version() int64 { return f.version }

func intPtr(v int) *int { return &v }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testRows() CatalogRows {
	maxThick := dec("5")
	return CatalogRows{
		Sizes: []models.Size{
			{ID: 1, Code: "A4", WidthMm: 210, HeightMm: 297, BaseSheetSize: models.BaseSheet467x315, UpCount: 2, IsActive: true},
			{ID: 2, Code: "A5", WidthMm: 148, HeightMm: 210, BaseSheetSize: models.BaseSheet467x315, UpCount: 4, IsActive: false},
		},
		PaperTypes: []models.PaperType{
			{ID: 1, Code: "snow", Family: "snow", IsActive: true},
			{ID: 2, Code: "rough", Family: "woodfree", IsActive: false},
		},
		PrintTiers: []models.PrintCostTier{
			{ID: 1, MinFaces: 0, MaxFaces: intPtr(999), CostPerFace: 30, IsActive: true},
			{ID: 2, MinFaces: 1000, MaxFaces: intPtr(4999), CostPerFace: 20, IsActive: true},
			{ID: 3, MinFaces: 5000, CostPerFace: 15, IsActive: true},
			{ID: 4, MinFaces: 0, CostPerFace: 1, IsActive: false},
		},
		BindingTypes: []models.BindingType{
			{ID: 1, Code: "saddle", Name: "saddle stitch", MaxThicknessMm: &maxThick, IsActive: true},
		},
		BindingCosts: []models.BindingCost{
			{ID: 1, BindingTypeID: 1, SetupCost: 10000, MinQty: 1, MaxQty: intPtr(499), CostPerCopy: 300, IsActive: true},
			{ID: 2, BindingTypeID: 1, SetupCost: 10000, MinQty: 500, CostPerCopy: 200, IsActive: true},
		},
		FinishingTypes: []models.FinishingType{
			{ID: 1, Code: "coating", IsActive: true},
			{ID: 2, Code: "diecut", IsActive: true},
		},
		FinishingCosts: []models.FinishingCost{
			{ID: 1, FinishingTypeID: 1, FlatCost: 5000, CostPerCopy: 10, IsActive: true},
		},
	}
}

func testPrices() fakePrices {
	return fakePrices{
		version: 7,
		entries: map[string]models.PrecomputedPriceEntry{
			"A4|snow|120": {
				SizeCode: "A4", PaperCode: "snow", PaperWeight: 120, UpCount: 2,
				CostPerSheet: dec("50"), MarginRate: dec("1.2"),
				SellPricePerSheet: dec("60"), SellPricePerCopy: dec("30"),
			},
			"A5|snow|120": {
				SizeCode: "A5", PaperCode: "snow", PaperWeight: 120, UpCount: 4,
				SellPricePerSheet: dec("60"), SellPricePerCopy: dec("15"),
			},
		},
	}
}

func newTestCalculator() *Calculator {
	return NewCalculator(NewCatalog(testRows()), testPrices(), DefaultPolicy())
}

func flyer(qty int) Input {
	return Input{
		Selection: models.CustomerSelection{
			SizeCode: "A4", PaperCode: "snow", PaperWeight: 120, Sides: models.SidesDouble,
			FinishingCodes: []string{"coating"},
		},
		Quantity:    qty,
		ProductType: models.ProductTypeFlyer,
	}
}

func TestCalculate_Flyer(t *testing.T) {
	res, err := newTestCalculator().Calculate(flyer(101))
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if res.Breakdown.SheetsNeeded != 51 {
		t.Fatalf("sheetsNeeded = %d, want 51", res.Breakdown.SheetsNeeded)
	}
	if res.Breakdown.FacesNeeded != 102 {
		t.Fatalf("facesNeeded = %d, want 102", res.Breakdown.FacesNeeded)
	}
	want := Breakdown{PaperCost: 3060, PrintCost: 3060, FinishingCost: 6010, SheetsNeeded: 51, FacesNeeded: 102}
	if res.Breakdown != want {
		t.Fatalf("breakdown = %+v, want %+v", res.Breakdown, want)
	}
	if res.Total != 12130 {
		t.Fatalf("total = %d, want 12130", res.Total)
	}
	if res.DisplayTotal != 13343 || res.VAT != 1213 {
		t.Fatalf("display = %d vat = %d, want 13343 / 1213", res.DisplayTotal, res.VAT)
	}
	if !res.PerUnit.Equal(dec("120.1")) {
		t.Fatalf("perUnit = %s, want 120.1", res.PerUnit)
	}
	if res.CacheVersion != 7 {
		t.Fatalf("cacheVersion = %d, want 7", res.CacheVersion)
	}
	if res.ThicknessValidation != nil {
		t.Fatalf("flyer should not carry thickness validation")
	}
}

func TestCalculate_SingleSidedUsesSheetCountAsFaces(t *testing.T) {
	in := flyer(100)
	in.Selection.Sides = models.SidesSingle
	in.Selection.FinishingCodes = nil

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.Breakdown.SheetsNeeded != 50 || res.Breakdown.FacesNeeded != 50 {
		t.Fatalf("sheets/faces = %d/%d, want 50/50", res.Breakdown.SheetsNeeded, res.Breakdown.FacesNeeded)
	}
	if res.Total != 50*60+50*30 {
		t.Fatalf("total = %d, want %d", res.Total, 50*60+50*30)
	}
}

func TestCalculate_WholeRunBilledAtOneTier(t *testing.T) {
	in := flyer(1000) // 500 sheets, 1000 faces
	in.Selection.FinishingCodes = nil

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.Breakdown.PrintCost != 1000*20 {
		t.Fatalf("printCost = %d, want %d", res.Breakdown.PrintCost, 1000*20)
	}
}

func TestCalculate_BookletWithBinding(t *testing.T) {
	in := Input{
		Selection: models.CustomerSelection{
			SizeCode: "A4", PaperCode: "snow", PaperWeight: 120, Sides: models.SidesDouble,
			Pages: 16, BindingCode: "saddle",
		},
		Quantity:    100,
		ProductType: models.ProductTypeBooklet,
	}

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	want := Breakdown{PaperCost: 24000, PrintCost: 24000, BindingCost: 40000, SheetsNeeded: 400, FacesNeeded: 800}
	if res.Breakdown != want {
		t.Fatalf("breakdown = %+v, want %+v", res.Breakdown, want)
	}
	if res.ThicknessValidation == nil || !res.ThicknessValidation.Valid {
		t.Fatalf("expected valid thickness, got %+v", res.ThicknessValidation)
	}
	if res.ThicknessValidation.BookThicknessMm != 0.82 {
		t.Fatalf("book thickness = %v, want 0.82", res.ThicknessValidation.BookThicknessMm)
	}
}

func TestCalculate_ThickBookFlaggedButPriced(t *testing.T) {
	in := Input{
		Selection: models.CustomerSelection{
			SizeCode: "A4", PaperCode: "snow", PaperWeight: 120, Sides: models.SidesDouble,
			Pages: 200, BindingCode: "saddle",
		},
		Quantity:    10,
		ProductType: models.ProductTypeBook,
	}

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.ThicknessValidation.Valid {
		t.Fatalf("expected invalid thickness for 100 leaves, got %+v", res.ThicknessValidation)
	}
	if res.Total <= 0 {
		t.Fatalf("expected a price, got %d", res.Total)
	}
}

func TestCalculate_FlyerIgnoresBinding(t *testing.T) {
	in := flyer(10)
	in.Selection.BindingCode = "saddle"

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.Breakdown.BindingCost != 0 {
		t.Fatalf("flyer bindingCost = %d, want 0", res.Breakdown.BindingCost)
	}
}

func TestCalculate_PosterSkipsFinishing(t *testing.T) {
	in := flyer(10)
	in.ProductType = models.ProductTypePoster

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.Breakdown.FinishingCost != 0 {
		t.Fatalf("poster finishingCost = %d, want 0", res.Breakdown.FinishingCost)
	}
}

func TestCalculate_DuplicateFinishingCodesChargedOnce(t *testing.T) {
	in := flyer(10)
	in.Selection.FinishingCodes = []string{"coating", "coating", ""}

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.Breakdown.FinishingCost != 5000+10*10 {
		t.Fatalf("finishingCost = %d, want %d", res.Breakdown.FinishingCost, 5000+10*10)
	}
}

func TestCalculate_RoundingMovesOnlyVAT(t *testing.T) {
	calc := newTestCalculator()
	base, err := calc.Calculate(flyer(101))
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	cases := []struct {
		mode models.RoundingMode
		want int64
	}{
		{models.RoundingCeil, 13400},
		{models.RoundingFloor, 13300},
		{models.RoundingRound, 13300},
		{models.RoundingNone, 13343},
	}
	for _, tc := range cases {
		t.Run(string(tc.mode), func(t *testing.T) {
			in := flyer(101)
			in.Product = &models.Product{RoundingUnit: 100, RoundingMode: tc.mode}
			res, err := calc.Calculate(in)
			if err != nil {
				t.Fatalf("Calculate returned error: %v", err)
			}
			if res.DisplayTotal != tc.want {
				t.Fatalf("display = %d, want %d", res.DisplayTotal, tc.want)
			}
			if res.Total != base.Total {
				t.Fatalf("rounding changed total: %d != %d", res.Total, base.Total)
			}
			if res.VAT != tc.want-res.Total {
				t.Fatalf("vat = %d, want %d", res.VAT, tc.want-res.Total)
			}
		})
	}
}

func TestCalculate_GuidePriceAddedToDisplay(t *testing.T) {
	in := flyer(101)
	in.Product = &models.Product{GuidePrice: 50}

	res, err := newTestCalculator().Calculate(in)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.GuideTotal != 5050 {
		t.Fatalf("guideTotal = %d, want 5050", res.GuideTotal)
	}
	if res.DisplayTotal != 13343+5050 {
		t.Fatalf("display = %d, want %d", res.DisplayTotal, 13343+5050)
	}
	if res.VAT != 1213 {
		t.Fatalf("vat = %d, want 1213", res.VAT)
	}
}

func TestCalculate_Deterministic(t *testing.T) {
	calc := newTestCalculator()
	first, err := calc.Calculate(flyer(333))
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	for i := 0; i < 20; i++ {
		again, err := calc.Calculate(flyer(333))
		if err != nil {
			t.Fatalf("Calculate returned error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
		}
	}
}

func TestCalculate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Input)
		target error
	}{
		{"zero quantity", func(in *Input) { in.Quantity = 0 }, ErrInvalidInput},
		{"negative quantity", func(in *Input) { in.Quantity = -5 }, ErrInvalidInput},
		{"quantity beyond max", func(in *Input) { in.Quantity = 1 << 58 }, ErrInvalidInput},
		{"pages beyond max", func(in *Input) {
			in.ProductType = models.ProductTypeBook
			in.Selection.Pages = 1 << 40
		}, ErrInvalidInput},
		{"missing size", func(in *Input) { in.Selection.SizeCode = "" }, ErrInvalidInput},
		{"bad sides", func(in *Input) { in.Selection.Sides = "triple" }, ErrInvalidInput},
		{"unknown product type", func(in *Input) { in.ProductType = "mug" }, ErrInvalidInput},
		{"outsourced on catalog path", func(in *Input) { in.ProductType = models.ProductTypeOutsourced }, ErrInvalidInput},
		{"unknown size", func(in *Input) { in.Selection.SizeCode = "B9" }, ErrCatalogMiss},
		{"inactive size", func(in *Input) { in.Selection.SizeCode = "A5" }, ErrCatalogMiss},
		{"inactive paper", func(in *Input) { in.Selection.PaperCode = "rough" }, ErrCatalogMiss},
		{"no precomputed entry", func(in *Input) { in.Selection.PaperWeight = 250 }, ErrCatalogMiss},
		{"unknown finishing", func(in *Input) { in.Selection.FinishingCodes = []string{"foil"} }, ErrCatalogMiss},
		{"finishing without cost", func(in *Input) { in.Selection.FinishingCodes = []string{"diecut"} }, ErrCatalogMiss},
		{"unknown binding", func(in *Input) {
			in.ProductType = models.ProductTypeBook
			in.Selection.BindingCode = "spiral"
		}, ErrCatalogMiss},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := flyer(100)
			tc.mutate(&in)
			res, err := newTestCalculator().Calculate(in)
			if !errors.Is(err, tc.target) {
				t.Fatalf("expected %v, got %v", tc.target, err)
			}
			if res != nil {
				t.Fatalf("expected no partial result, got %+v", res)
			}
		})
	}
}

func TestCalculate_AmountOutOfRange(t *testing.T) {
	in := flyer(1000)
	in.Product = &models.Product{GuidePrice: math.MaxInt64 / 100}

	res, err := newTestCalculator().Calculate(in)
	var inv *InvalidInputError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidInputError, got %v (result %+v)", err, res)
	}
	if res != nil {
		t.Fatalf("expected no partial result")
	}
}

func TestCalculate_LargestQuantityStaysPositive(t *testing.T) {
	p := DefaultPolicy()
	res, err := newTestCalculator().Calculate(flyer(p.MaxQuantity))
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if res.Total <= 0 || res.DisplayTotal < res.Total {
		t.Fatalf("total=%d display=%d", res.Total, res.DisplayTotal)
	}
	if err := p.Verify(1, res.DisplayTotal); !errors.Is(err, ErrPriceVerification) {
		t.Fatalf("manipulated price accepted: %v", err)
	}
}

func TestCalculate_MissingPrintTierIsCatalogMiss(t *testing.T) {
	rows := testRows()
	rows.PrintTiers = []models.PrintCostTier{{MinFaces: 0, MaxFaces: intPtr(10), CostPerFace: 30, IsActive: true}}
	calc := NewCalculator(NewCatalog(rows), testPrices(), DefaultPolicy())

	_, err := calc.Calculate(flyer(100))
	var miss *CatalogMissError
	if !errors.As(err, &miss) {
		t.Fatalf("expected CatalogMissError, got %v", err)
	}
	if miss.Kind != "print cost tier" {
		t.Fatalf("miss kind = %q", miss.Kind)
	}
}

func TestRoundToUnit(t *testing.T) {
	cases := []struct {
		amount, unit int64
		mode         models.RoundingMode
		want         int64
	}{
		{13343, 100, models.RoundingFloor, 13300},
		{13343, 100, models.RoundingCeil, 13400},
		{13350, 100, models.RoundingRound, 13400},
		{13349, 100, models.RoundingRound, 13300},
		{13300, 100, models.RoundingCeil, 13300},
		{13343, 0, models.RoundingCeil, 13343},
		{13343, 100, "weird", 13343},
	}
	for _, tc := range cases {
		if got := RoundToUnit(tc.amount, tc.unit, tc.mode); got != tc.want {
			t.Fatalf("RoundToUnit(%d, %d, %s) = %d, want %d", tc.amount, tc.unit, tc.mode, got, tc.want)
		}
	}
}
