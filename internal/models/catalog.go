package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseSheetSize enumerates the raw sheet dimensions paper is bought in.
type BaseSheetSize string

const (
	BaseSheet467x315 BaseSheetSize = "467x315"
	BaseSheet390x270 BaseSheetSize = "390x270"
	BaseSheet545x394 BaseSheetSize = "545x394"
)

// Valid reports whether s is one of the known base sheet sizes.
func (s BaseSheetSize) Valid() bool {
	switch s {
	case BaseSheet467x315, BaseSheet390x270, BaseSheet545x394:
		return true
	}
	return false
}

// PaperType identifies a paper family (snow-coat, woodfree, ...).
type PaperType struct {
	ID        int64     `db:"id" json:"id"`
	Code      string    `db:"code" json:"code"`
	Name      string    `db:"name" json:"name"`
	Family    string    `db:"family" json:"family"`
	SortOrder int       `db:"sort_order" json:"sortOrder"`
	IsActive  bool      `db:"is_active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// PaperCost is the raw cost of one stock (type + weight) on one base sheet.
// Unique by (paper_type_id, weight, base_sheet_size).
type PaperCost struct {
	ID            int64           `db:"id" json:"id"`
	PaperTypeID   int64           `db:"paper_type_id" json:"paperTypeId"`
	PaperCode     string          `db:"paper_code" json:"paperCode"`
	PaperFamily   string          `db:"paper_family" json:"paperFamily"`
	Weight        int             `db:"weight" json:"weight"`
	BaseSheetSize BaseSheetSize   `db:"base_sheet_size" json:"baseSheetSize"`
	CostPerSheet  decimal.Decimal `db:"cost_per_sheet" json:"costPerSheet"`
	MarginRate    decimal.Decimal `db:"margin_rate" json:"marginRate"`
	IsActive      bool            `db:"is_active" json:"active"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updatedAt"`
}

// Size is a finished product dimension and its yield per base sheet.
type Size struct {
	ID            int64         `db:"id" json:"id"`
	Code          string        `db:"code" json:"code"`
	Name          string        `db:"name" json:"name"`
	WidthMm       int           `db:"width_mm" json:"widthMm"`
	HeightMm      int           `db:"height_mm" json:"heightMm"`
	BaseSheetSize BaseSheetSize `db:"base_sheet_size" json:"baseSheetSize"`
	UpCount       int           `db:"up_count" json:"upCount"`
	SortOrder     int           `db:"sort_order" json:"sortOrder"`
	IsActive      bool          `db:"is_active" json:"active"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updatedAt"`
}

// PrintCostTier prices one printed face. MaxFaces nil means unbounded.
type PrintCostTier struct {
	ID          int64 `db:"id" json:"id"`
	MinFaces    int   `db:"min_faces" json:"minFaces"`
	MaxFaces    *int  `db:"max_faces" json:"maxFaces,omitempty"`
	CostPerFace int64 `db:"cost_per_face" json:"costPerFace"`
	IsActive    bool  `db:"is_active" json:"active"`
}

// BindingType is a binding method such as saddle stitch or perfect binding.
type BindingType struct {
	ID             int64            `db:"id" json:"id"`
	Code           string           `db:"code" json:"code"`
	Name           string           `db:"name" json:"name"`
	MaxThicknessMm *decimal.Decimal `db:"max_thickness_mm" json:"maxThicknessMm,omitempty"`
	IsActive       bool             `db:"is_active" json:"active"`
}

// BindingCost is a quantity tier of a binding type. MaxQty nil means unbounded.
type BindingCost struct {
	ID            int64 `db:"id" json:"id"`
	BindingTypeID int64 `db:"binding_type_id" json:"bindingTypeId"`
	SetupCost     int64 `db:"setup_cost" json:"setupCost"`
	MinQty        int   `db:"min_qty" json:"minQty"`
	MaxQty        *int  `db:"max_qty" json:"maxQty,omitempty"`
	CostPerCopy   int64 `db:"cost_per_copy" json:"costPerCopy"`
	IsActive      bool  `db:"is_active" json:"active"`
}

// FinishingType is an additive post-press option (coating, die-cut, ...).
type FinishingType struct {
	ID       int64  `db:"id" json:"id"`
	Code     string `db:"code" json:"code"`
	Name     string `db:"name" json:"name"`
	IsActive bool   `db:"is_active" json:"active"`
}

// FinishingCost is the flat plus per-copy charge of a finishing type.
type FinishingCost struct {
	ID              int64 `db:"id" json:"id"`
	FinishingTypeID int64 `db:"finishing_type_id" json:"finishingTypeId"`
	FlatCost        int64 `db:"flat_cost" json:"flatCost"`
	CostPerCopy     int64 `db:"cost_per_copy" json:"costPerCopy"`
	IsActive        bool  `db:"is_active" json:"active"`
}

// QuantityDiscountTier is an order-wide discount for outsourced products.
type QuantityDiscountTier struct {
	ID        int64           `db:"id" json:"id"`
	ProductID int64           `db:"product_id" json:"productId"`
	MinQty    int             `db:"min_qty" json:"minQty"`
	Percent   decimal.Decimal `db:"percent" json:"percent"`
	IsActive  bool            `db:"is_active" json:"active"`
}
