package pricing

import (
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/print_api/internal/models"
)

// Input is one pricing request for a single quantity.
type Input struct {
	Selection   models.CustomerSelection
	Quantity    int
	ProductType models.ProductType
	// Product is the optional per-product configuration (guide price, rounding).
	Product *models.Product
}

// Breakdown itemises the pre-VAT supply price.
type Breakdown struct {
	PaperCost     int64 `json:"paperCost"`
	PrintCost     int64 `json:"printCost"`
	BindingCost   int64 `json:"bindingCost"`
	FinishingCost int64 `json:"finishingCost"`
	SheetsNeeded  int   `json:"sheetsNeeded"`
	FacesNeeded   int   `json:"facesNeeded"`
}

// ThicknessValidation reports whether a bound copy fits its binding method.
type ThicknessValidation struct {
	Valid           bool             `json:"valid"`
	BookThicknessMm float64          `json:"bookThicknessMm"`
	MaxThicknessMm  *decimal.Decimal `json:"maxThicknessMm,omitempty"`
	Message         string           `json:"message,omitempty"`
}

// BookPrice is one priced book of an outsourced order.
type BookPrice struct {
	Pages    int             `json:"pages"`
	Quantity int             `json:"quantity"`
	PerCopy  decimal.Decimal `json:"perCopy"`
	Total    int64           `json:"total"`
}

// PriceResult is the full price of one selection at one quantity.
type PriceResult struct {
	ProductType models.ProductType `json:"productType"`
	Quantity    int                `json:"quantity"`
	// Total is the pre-VAT supply price.
	Total               int64                `json:"total"`
	PerUnit             decimal.Decimal      `json:"perUnit"`
	VAT                 int64                `json:"vat"`
	GuideTotal          int64                `json:"guideTotal"`
	DesignFee           int64                `json:"designFee,omitempty"`
	DiscountPercent     decimal.Decimal      `json:"discountPercent"`
	DisplayTotal        int64                `json:"displayTotal"`
	EstimatedWeight     float64              `json:"estimatedWeight"`
	TotalThickness      float64              `json:"totalThickness"`
	Breakdown           Breakdown            `json:"breakdown"`
	Books               []BookPrice          `json:"books,omitempty"`
	Packaging           *PackageEstimate     `json:"packaging,omitempty"`
	ThicknessValidation *ThicknessValidation `json:"thicknessValidation,omitempty"`
	CacheVersion        int64                `json:"cacheVersion,omitempty"`
	CacheStale          bool                 `json:"cacheStale,omitempty"`
}

// Calculator assembles catalog prices bottom-up. It holds no mutable state and
// is safe for concurrent use.
type Calculator struct {
	catalog *Catalog
	prices  PriceTable
	policy  Policy
}

// NewCalculator builds a Calculator over one catalog view and price snapshot.
func NewCalculator(catalog *Catalog, prices PriceTable, policy Policy) *Calculator {
	return &Calculator{catalog: catalog, prices: prices, policy: policy}
}

// Calculate prices a catalog product: paper, print, binding, finishing, then
// VAT and display rounding. No partial result is ever returned with an error.
func (c *Calculator) Calculate(in Input) (*PriceResult, error) {
	caps, err := c.policy.validateInput(in)
	if err != nil {
		return nil, err
	}
	if caps.IsOutsourced {
		return nil, invalidInput("productType", "outsourced products are priced per book")
	}
	sel := in.Selection
	qty := in.Quantity

	size, err := c.catalog.size(sel.SizeCode)
	if err != nil {
		return nil, err
	}
	paper, err := c.catalog.paperType(sel.PaperCode)
	if err != nil {
		return nil, err
	}
	entry, ok := c.prices.Lookup(sel.SizeCode, sel.PaperCode, sel.PaperWeight)
	if !ok {
		return nil, catalogMiss("precomputed price", "size=%s paper=%s weight=%d", sel.SizeCode, sel.PaperCode, sel.PaperWeight)
	}

	leaves := leavesPerCopy(caps, sel.Pages)
	sheets := ceilDiv(qty*leaves, size.UpCount)
	faces := sheets
	if sel.Sides == models.SidesDouble {
		faces = sheets * 2
	}

	var bd Breakdown
	bd.SheetsNeeded = sheets
	bd.FacesNeeded = faces
	paperCost := decimal.NewFromInt(int64(sheets)).Mul(entry.SellPricePerSheet).Round(0)

	tier, err := c.catalog.printTier(faces)
	if err != nil {
		return nil, err
	}
	printCost := decimal.NewFromInt(int64(faces)).Mul(decimal.NewFromInt(tier.CostPerFace))
	copies := decimal.NewFromInt(int64(qty))

	bindingCost := decimal.Zero
	var bindingType *models.BindingType
	if caps.HasBinding && sel.BindingCode != "" {
		bt, cost, err := c.catalog.binding(sel.BindingCode, qty)
		if err != nil {
			return nil, err
		}
		bindingType = &bt
		bindingCost = decimal.NewFromInt(cost.SetupCost).Add(copies.Mul(decimal.NewFromInt(cost.CostPerCopy)))
	}

	finishingCost := decimal.Zero
	if caps.HasFinishing {
		for _, code := range uniqueSorted(sel.FinishingCodes) {
			cost, err := c.catalog.finishing(code)
			if err != nil {
				return nil, err
			}
			finishingCost = finishingCost.Add(decimal.NewFromInt(cost.FlatCost)).Add(copies.Mul(decimal.NewFromInt(cost.CostPerCopy)))
		}
	}

	for _, part := range []struct {
		cost decimal.Decimal
		dst  *int64
	}{
		{paperCost, &bd.PaperCost},
		{printCost, &bd.PrintCost},
		{bindingCost, &bd.BindingCost},
		{finishingCost, &bd.FinishingCost},
	} {
		if *part.dst, err = toWon(part.cost); err != nil {
			return nil, err
		}
	}
	total, err := toWon(paperCost.Add(printCost).Add(bindingCost).Add(finishingCost))
	if err != nil {
		return nil, err
	}

	pkg := c.policy.EstimatePackage(PackageInput{
		Quantity:      qty,
		LeavesPerCopy: leaves,
		PaperWeight:   sel.PaperWeight,
		PaperFamily:   paper.Family,
		WidthMm:       size.WidthMm,
		HeightMm:      size.HeightMm,
	})

	res := &PriceResult{
		ProductType:     in.ProductType,
		Quantity:        qty,
		Total:           total,
		PerUnit:         decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(qty))).Round(2),
		DiscountPercent: decimal.Zero,
		EstimatedWeight: pkg.TotalWeightKg,
		TotalThickness:  pkg.TotalThicknessMm,
		Breakdown:       bd,
		Packaging:       &pkg,
		CacheVersion:    c.prices.Version(),
	}
	if err := c.applyDisplay(res, in.Product); err != nil {
		return nil, err
	}
	if bindingType != nil {
		res.ThicknessValidation = validateThickness(*bindingType, pkg.CopyThicknessMm)
	}
	return res, nil
}

// applyDisplay fills VAT, guide price and the display total. Rounding to the
// product's unit moves only the VAT line.
func (c *Calculator) applyDisplay(res *PriceResult, product *models.Product) error {
	withVAT := decimal.NewFromInt(res.Total).Mul(c.policy.vatRate()).Round(0)
	guide := decimal.Zero
	unit, mode := int64(0), models.RoundingNone
	if product != nil {
		guide = decimal.NewFromInt(product.GuidePrice).Mul(decimal.NewFromInt(int64(res.Quantity)))
		unit, mode = product.RoundingUnit, product.RoundingMode
	}
	gross, err := toWon(withVAT.Add(guide))
	if err != nil {
		return err
	}
	display := RoundToUnit(gross, unit, mode)
	res.GuideTotal = guide.IntPart()
	res.DisplayTotal = display
	res.VAT = display - res.GuideTotal - res.Total
	return nil
}

// RoundToUnit snaps amount to a multiple of unit. A non-positive unit or an
// unknown mode leaves amount unchanged.
func RoundToUnit(amount, unit int64, mode models.RoundingMode) int64 {
	if unit <= 1 {
		return amount
	}
	d := decimal.NewFromInt(amount).Div(decimal.NewFromInt(unit))
	switch mode {
	case models.RoundingFloor:
		d = d.Floor()
	case models.RoundingCeil:
		d = d.Ceil()
	case models.RoundingRound:
		d = d.Round(0)
	default:
		return amount
	}
	return d.IntPart() * unit
}

func validateThickness(bt models.BindingType, copyMm float64) *ThicknessValidation {
	v := &ThicknessValidation{Valid: true, BookThicknessMm: copyMm, MaxThicknessMm: bt.MaxThicknessMm}
	if bt.MaxThicknessMm == nil {
		return v
	}
	if decimal.NewFromFloat(copyMm).GreaterThan(*bt.MaxThicknessMm) {
		v.Valid = false
		v.Message = "book is too thick for " + bt.Name + "; choose another binding or fewer pages"
	}
	return v
}

func (p Policy) validateInput(in Input) (models.Capabilities, error) {
	caps, ok := in.ProductType.Capabilities()
	if !ok {
		return caps, invalidInput("productType", "unknown product type "+string(in.ProductType))
	}
	if caps.IsOutsourced {
		return caps, nil
	}
	if in.Quantity <= 0 {
		return caps, invalidInput("quantity", "must be positive")
	}
	if in.Quantity > p.MaxQuantity {
		return caps, invalidInput("quantity", "must not exceed "+strconv.Itoa(p.MaxQuantity))
	}
	sel := in.Selection
	switch {
	case sel.SizeCode == "":
		return caps, invalidInput("sizeCode", "required")
	case sel.PaperCode == "":
		return caps, invalidInput("paperCode", "required")
	case sel.PaperWeight <= 0:
		return caps, invalidInput("paperWeight", "must be positive")
	case sel.Sides != models.SidesSingle && sel.Sides != models.SidesDouble:
		return caps, invalidInput("sides", "must be single or double")
	case sel.Pages < 0:
		return caps, invalidInput("pages", "must not be negative")
	case sel.Pages > p.MaxPages:
		return caps, invalidInput("pages", "must not exceed "+strconv.Itoa(p.MaxPages))
	}
	return caps, nil
}

// leavesPerCopy is 1 for flat products; bound products use one leaf per two pages.
func leavesPerCopy(caps models.Capabilities, pages int) int {
	if !caps.HasBinding || pages <= 0 {
		return 1
	}
	return ceilDiv(pages, 2)
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// maxAmount caps any single price at one quadrillion won.
var maxAmount = decimal.New(1, 15)

// toWon rounds d to whole won, rejecting amounts outside [0, maxAmount].
func toWon(d decimal.Decimal) (int64, error) {
	d = d.Round(0)
	if d.IsNegative() || d.GreaterThan(maxAmount) {
		return 0, invalidInput("quantity", "price exceeds the supported range")
	}
	return d.IntPart(), nil
}

func uniqueSorted(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
