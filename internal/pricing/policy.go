package pricing

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Policy groups the fixed commercial parameters that are not catalog rows.
type Policy struct {
	VATRate          float64         `yaml:"vatRate"`
	TolerancePercent float64         `yaml:"tolerancePercent"`
	MaxQuantity      int             `yaml:"maxQuantity"`
	MaxPages         int             `yaml:"maxPages"`
	Shipping         ShippingPolicy  `yaml:"shipping"`
	Thickness        ThicknessPolicy `yaml:"thickness"`
}

// ShippingPolicy configures the flat-per-box shipping model.
type ShippingPolicy struct {
	FeePerBox             int64   `yaml:"feePerBox"`
	FreeShippingThreshold int64   `yaml:"freeShippingThreshold"`
	FreeBoxes             int     `yaml:"freeBoxes"`
	MaxBoxThicknessMm     float64 `yaml:"maxBoxThicknessMm"`
	MaxBoxWeightKg        float64 `yaml:"maxBoxWeightKg"`
	QuickDeliveryFee      int64   `yaml:"quickDeliveryFee"`
}

// ThicknessPolicy maps a paper family to its empirical mm-per-gsm ratio.
type ThicknessPolicy struct {
	DefaultRatio float64            `yaml:"defaultRatio"`
	Families     map[string]float64 `yaml:"families"`
}

// DefaultPolicy returns the policy used when no file overrides it.
func DefaultPolicy() Policy {
	return Policy{
		VATRate:          1.1,
		TolerancePercent: 3,
		MaxQuantity:      1000000,
		MaxPages:         2000,
		Shipping: ShippingPolicy{
			FeePerBox:             4000,
			FreeShippingThreshold: 50000,
			FreeBoxes:             1,
			MaxBoxThicknessMm:     300,
			MaxBoxWeightKg:        30,
			QuickDeliveryFee:      10000,
		},
		Thickness: ThicknessPolicy{
			DefaultRatio: 0.001,
			Families: map[string]float64{
				"snow":     0.00085,
				"art":      0.0008,
				"woodfree": 0.0011,
				"mojo":     0.0011,
			},
		},
	}
}

// LoadPolicy reads a YAML policy file on top of DefaultPolicy. A missing file
// yields the defaults.
func LoadPolicy(path string) (Policy, error) {
	p := DefaultPolicy()
	if path == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return Policy{}, fmt.Errorf("read pricing policy: %w", err)
	}
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Policy{}, fmt.Errorf("parse pricing policy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Policy{}, fmt.Errorf("invalid pricing policy: %w", err)
	}
	return p, nil
}

// Validate checks the policy for values that would make pricing meaningless.
func (p Policy) Validate() error {
	var errs []error
	if p.VATRate < 1 {
		errs = append(errs, errors.New("vatRate must be >= 1"))
	}
	if p.TolerancePercent < 0 || p.TolerancePercent >= 100 {
		errs = append(errs, errors.New("tolerancePercent must be in [0, 100)"))
	}
	if p.MaxQuantity <= 0 || p.MaxPages <= 0 {
		errs = append(errs, errors.New("maxQuantity and maxPages must be > 0"))
	}
	if p.Shipping.FeePerBox < 0 || p.Shipping.QuickDeliveryFee < 0 {
		errs = append(errs, errors.New("shipping fees must be >= 0"))
	}
	if p.Shipping.FreeBoxes < 0 {
		errs = append(errs, errors.New("freeBoxes must be >= 0"))
	}
	if p.Shipping.MaxBoxThicknessMm <= 0 || p.Shipping.MaxBoxWeightKg <= 0 {
		errs = append(errs, errors.New("box limits must be > 0"))
	}
	if p.Thickness.DefaultRatio <= 0 {
		errs = append(errs, errors.New("thickness.defaultRatio must be > 0"))
	}
	for family, ratio := range p.Thickness.Families {
		if ratio <= 0 {
			errs = append(errs, fmt.Errorf("thickness ratio for %q must be > 0", family))
		}
	}
	return errors.Join(errs...)
}

func (p Policy) vatRate() decimal.Decimal {
	return decimal.NewFromFloat(p.VATRate)
}

func (p Policy) tolerance() decimal.Decimal {
	return decimal.NewFromFloat(p.TolerancePercent)
}

// thicknessRatio returns mm per gsm for a paper family.
func (p Policy) thicknessRatio(family string) float64 {
	if r, ok := p.Thickness.Families[family]; ok {
		return r
	}
	return p.Thickness.DefaultRatio
}
