package pricing

import (
	"math"

	"github.com/GTDGit/print_api/internal/models"
)

// PackageInput describes the physical run to be boxed.
type PackageInput struct {
	Quantity      int
	LeavesPerCopy int
	PaperWeight   int
	PaperFamily   string
	WidthMm       int
	HeightMm      int
}

// PackageEstimate is the logistics view of a run.
type PackageEstimate struct {
	CopyThicknessMm  float64 `json:"copyThicknessMm"`
	TotalThicknessMm float64 `json:"totalThicknessMm"`
	TotalWeightKg    float64 `json:"totalWeightKg"`
	BoxCount         int     `json:"boxCount"`
	WeightPerBoxKg   float64 `json:"weightPerBoxKg"`
	NeedsFreight     bool    `json:"needsFreight"`
}

// EstimatePackage derives thickness, weight and box count from the run. Box
// count and weight are non-decreasing in quantity for fixed paper.
func (p Policy) EstimatePackage(in PackageInput) PackageEstimate {
	leaves := in.LeavesPerCopy
	if leaves < 1 {
		leaves = 1
	}
	qty := float64(max(in.Quantity, 0))

	sheetMm := float64(in.PaperWeight) * p.thicknessRatio(in.PaperFamily)
	copyMm := sheetMm * float64(leaves)
	totalMm := round2(copyMm * qty)

	areaM2 := float64(in.WidthMm) * float64(in.HeightMm) / 1e6
	copyGrams := areaM2 * float64(in.PaperWeight) * float64(leaves)
	totalKg := round2(copyGrams * qty / 1000)

	boxes := 1
	if p.Shipping.MaxBoxThicknessMm > 0 {
		boxes = max(1, int(math.Ceil(totalMm/p.Shipping.MaxBoxThicknessMm)))
	}
	perBox := round2(totalKg / float64(boxes))

	return PackageEstimate{
		CopyThicknessMm:  round2(copyMm),
		TotalThicknessMm: totalMm,
		TotalWeightKg:    totalKg,
		BoxCount:         boxes,
		WeightPerBoxKg:   perBox,
		NeedsFreight:     perBox > p.Shipping.MaxBoxWeightKg,
	}
}

// ShippingCost prices delivery of boxCount boxes. Pickup and courier cash on
// delivery cost nothing here; an order whose product price reaches the free
// shipping threshold gets FreeBoxes boxes for free.
func (p Policy) ShippingCost(method models.DeliveryMethod, boxCount int, productAmount int64) (int64, error) {
	switch method {
	case models.DeliveryPickup, models.DeliveryCourierCOD:
		return 0, nil
	case "", models.DeliveryParcel, models.DeliveryFreight:
	default:
		return 0, invalidInput("deliveryMethod", "unknown method "+string(method))
	}
	chargeable := max(boxCount, 1)
	if p.Shipping.FreeShippingThreshold > 0 && productAmount >= p.Shipping.FreeShippingThreshold {
		chargeable -= p.Shipping.FreeBoxes
	}
	if chargeable < 0 {
		chargeable = 0
	}
	return int64(chargeable) * p.Shipping.FeePerBox, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
