package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductType enumerates the supported product types.
type ProductType string

const (
	ProductTypeFlyer      ProductType = "flyer"
	ProductTypePoster     ProductType = "poster"
	ProductTypeBooklet    ProductType = "booklet"
	ProductTypeBook       ProductType = "book"
	ProductTypeOutsourced ProductType = "outsourced"
)

// Capabilities lists which cost components apply to a product type.
type Capabilities struct {
	HasBinding   bool
	HasFinishing bool
	IsOutsourced bool
}

var productCapabilities = map[ProductType]Capabilities{
	ProductTypeFlyer:      {HasFinishing: true},
	ProductTypePoster:     {},
	ProductTypeBooklet:    {HasBinding: true, HasFinishing: true},
	ProductTypeBook:       {HasBinding: true, HasFinishing: true},
	ProductTypeOutsourced: {IsOutsourced: true},
}

// Capabilities returns the capability set of t and whether t is known.
func (t ProductType) Capabilities() (Capabilities, bool) {
	c, ok := productCapabilities[t]
	return c, ok
}

// RoundingMode controls how the VAT-inclusive display total is snapped to a unit.
type RoundingMode string

const (
	RoundingNone  RoundingMode = "none"
	RoundingFloor RoundingMode = "floor"
	RoundingCeil  RoundingMode = "ceil"
	RoundingRound RoundingMode = "round"
)

// Product holds the per-product pricing configuration edited by the product builder.
type Product struct {
	ID               int64           `db:"id" json:"id"`
	Code             string          `db:"code" json:"code"`
	Name             string          `db:"name" json:"name"`
	Type             ProductType     `db:"product_type" json:"productType"`
	PagePrice        decimal.Decimal `db:"page_price" json:"pagePrice"`
	BindingFee       int64           `db:"binding_fee" json:"bindingFee"`
	GuidePrice       int64           `db:"guide_price" json:"guidePrice"`
	DesignFee        int64           `db:"design_fee" json:"designFee"`
	FreeDesignMinQty int             `db:"free_design_min_qty" json:"freeDesignMinQty"`
	RoundingUnit     int64           `db:"rounding_unit" json:"roundingUnit"`
	RoundingMode     RoundingMode    `db:"rounding_mode" json:"roundingMode"`
	IsActive         bool            `db:"is_active" json:"active"`
	CreatedAt        time.Time       `db:"created_at" json:"-"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updatedAt"`
}
