package pricing

import (
	"github.com/GTDGit/print_api/internal/models"
)

// PriceTable resolves precomputed size x paper entries. It is satisfied by the
// published price cache snapshot.
type PriceTable interface {
	Lookup(sizeCode, paperCode string, weight int) (models.PrecomputedPriceEntry, bool)
	Version() int64
}

// Catalog is an immutable, in-memory view of the active catalog rows loaded
// once per request. Inactive rows never enter the view.
type Catalog struct {
	sizes          map[string]models.Size
	paperTypes     map[string]models.PaperType
	printTiers     []models.PrintCostTier
	bindingTypes   map[string]models.BindingType
	bindingCosts   map[int64][]models.BindingCost
	finishingTypes map[string]models.FinishingType
	finishingCosts map[int64]models.FinishingCost
}

// CatalogRows is the raw material of a Catalog.
type CatalogRows struct {
	Sizes          []models.Size
	PaperTypes     []models.PaperType
	PrintTiers     []models.PrintCostTier
	BindingTypes   []models.BindingType
	BindingCosts   []models.BindingCost
	FinishingTypes []models.FinishingType
	FinishingCosts []models.FinishingCost
}

// NewCatalog indexes the active rows of rows.
func NewCatalog(rows CatalogRows) *Catalog {
	c := &Catalog{
		sizes:          make(map[string]models.Size),
		paperTypes:     make(map[string]models.PaperType),
		bindingTypes:   make(map[string]models.BindingType),
		bindingCosts:   make(map[int64][]models.BindingCost),
		finishingTypes: make(map[string]models.FinishingType),
		finishingCosts: make(map[int64]models.FinishingCost),
	}
	for _, s := range rows.Sizes {
		if s.IsActive {
			c.sizes[s.Code] = s
		}
	}
	for _, p := range rows.PaperTypes {
		if p.IsActive {
			c.paperTypes[p.Code] = p
		}
	}
	for _, t := range rows.PrintTiers {
		if t.IsActive {
			c.printTiers = append(c.printTiers, t)
		}
	}
	for _, b := range rows.BindingTypes {
		if b.IsActive {
			c.bindingTypes[b.Code] = b
		}
	}
	for _, b := range rows.BindingCosts {
		if b.IsActive {
			c.bindingCosts[b.BindingTypeID] = append(c.bindingCosts[b.BindingTypeID], b)
		}
	}
	for _, f := range rows.FinishingTypes {
		if f.IsActive {
			c.finishingTypes[f.Code] = f
		}
	}
	for _, f := range rows.FinishingCosts {
		if f.IsActive {
			c.finishingCosts[f.FinishingTypeID] = f
		}
	}
	return c
}

func (c *Catalog) size(code string) (models.Size, error) {
	s, ok := c.sizes[code]
	if !ok {
		return models.Size{}, catalogMiss("size", "code=%s", code)
	}
	if s.UpCount <= 0 {
		return models.Size{}, catalogMiss("size", "code=%s with up count %d", code, s.UpCount)
	}
	return s, nil
}

func (c *Catalog) paperType(code string) (models.PaperType, error) {
	p, ok := c.paperTypes[code]
	if !ok {
		return models.PaperType{}, catalogMiss("paper type", "code=%s", code)
	}
	return p, nil
}

func (c *Catalog) printTier(faces int) (models.PrintCostTier, error) {
	t, ok := lookupTier(c.printTiers, faces, printTierRange)
	if !ok {
		return models.PrintCostTier{}, catalogMiss("print cost tier", "faces=%d", faces)
	}
	return t, nil
}

func (c *Catalog) binding(code string, qty int) (models.BindingType, models.BindingCost, error) {
	bt, ok := c.bindingTypes[code]
	if !ok {
		return models.BindingType{}, models.BindingCost{}, catalogMiss("binding type", "code=%s", code)
	}
	cost, ok := lookupTier(c.bindingCosts[bt.ID], qty, bindingCostRange)
	if !ok {
		return models.BindingType{}, models.BindingCost{}, catalogMiss("binding cost", "binding=%s qty=%d", code, qty)
	}
	return bt, cost, nil
}

func (c *Catalog) finishing(code string) (models.FinishingCost, error) {
	ft, ok := c.finishingTypes[code]
	if !ok {
		return models.FinishingCost{}, catalogMiss("finishing type", "code=%s", code)
	}
	cost, ok := c.finishingCosts[ft.ID]
	if !ok {
		return models.FinishingCost{}, catalogMiss("finishing cost", "finishing=%s", code)
	}
	return cost, nil
}

// PrintTierRanges returns the ranges of the active print tiers.
func (c *Catalog) PrintTierRanges() []Range {
	out := make([]Range, 0, len(c.printTiers))
	for _, t := range c.printTiers {
		out = append(out, printTierRange(t))
	}
	return out
}

// BindingTierRanges returns the active binding cost ranges keyed by binding type code.
func (c *Catalog) BindingTierRanges() map[string][]Range {
	out := make(map[string][]Range, len(c.bindingTypes))
	for code, bt := range c.bindingTypes {
		for _, cost := range c.bindingCosts[bt.ID] {
			out[code] = append(out[code], bindingCostRange(cost))
		}
	}
	return out
}

func printTierRange(t models.PrintCostTier) Range {
	return Range{Min: t.MinFaces, Max: t.MaxFaces}
}

func bindingCostRange(b models.BindingCost) Range {
	return Range{Min: b.MinQty, Max: b.MaxQty}
}
