package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrecomputedPriceEntry is one derived row of the size x paper price table.
// It is never authoritative: it is rebuilt wholesale from sizes and paper_costs.
type PrecomputedPriceEntry struct {
	SizeID            int64           `db:"size_id" json:"sizeId"`
	SizeCode          string          `db:"size_code" json:"sizeCode"`
	PaperCostID       int64           `db:"paper_cost_id" json:"paperCostId"`
	PaperCode         string          `db:"paper_code" json:"paperCode"`
	PaperWeight       int             `db:"paper_weight" json:"paperWeight"`
	BaseSheetSize     BaseSheetSize   `db:"base_sheet_size" json:"baseSheetSize"`
	UpCount           int             `db:"up_count" json:"upCount"`
	CostPerSheet      decimal.Decimal `db:"cost_per_sheet" json:"costPerSheet"`
	MarginRate        decimal.Decimal `db:"margin_rate" json:"marginRate"`
	SellPricePerSheet decimal.Decimal `db:"sell_price_per_sheet" json:"sellPricePerSheet"`
	SellPricePerCopy  decimal.Decimal `db:"sell_price_per_copy" json:"sellPricePerCopy"`
}

// PriceCacheMeta describes the persisted snapshot as a whole.
type PriceCacheMeta struct {
	Version    int64     `db:"version" json:"version"`
	BuiltAt    time.Time `db:"built_at" json:"builtAt"`
	EntryCount int       `db:"entry_count" json:"entryCount"`
}
