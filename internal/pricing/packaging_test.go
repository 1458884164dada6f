package pricing

import (
	"errors"
	"testing"

	"github.com/GTDGit/print_api/internal/models"
)

func TestEstimatePackage_Flyers(t *testing.T) {
	p := DefaultPolicy()
	est := p.EstimatePackage(PackageInput{
		Quantity: 1000, PaperWeight: 120, PaperFamily: "snow", WidthMm: 210, HeightMm: 297,
	})

	// 120gsm snow = 0.102mm per sheet
	if est.TotalThicknessMm != 102 {
		t.Fatalf("thickness = %v, want 102", est.TotalThicknessMm)
	}
	// 0.06237 m2 * 120g * 1000 = 7.48kg
	if est.TotalWeightKg != 7.48 {
		t.Fatalf("weight = %v, want 7.48", est.TotalWeightKg)
	}
	if est.BoxCount != 1 || est.NeedsFreight {
		t.Fatalf("boxes = %d freight = %v, want 1/false", est.BoxCount, est.NeedsFreight)
	}
}

func TestEstimatePackage_MultipleBoxesAndFreight(t *testing.T) {
	p := DefaultPolicy()
	est := p.EstimatePackage(PackageInput{
		Quantity: 100, LeavesPerCopy: 100, PaperWeight: 100, PaperFamily: "woodfree", WidthMm: 297, HeightMm: 420,
	})

	// 100 leaves * 0.11mm = 11mm per copy, 1100mm total
	if est.CopyThicknessMm != 11 || est.TotalThicknessMm != 1100 {
		t.Fatalf("copy/total thickness = %v/%v", est.CopyThicknessMm, est.TotalThicknessMm)
	}
	if est.BoxCount != 4 {
		t.Fatalf("boxes = %d, want 4", est.BoxCount)
	}
	if !est.NeedsFreight {
		t.Fatalf("expected freight for %vkg per box", est.WeightPerBoxKg)
	}
}

func TestEstimatePackage_UnknownFamilyUsesDefaultRatio(t *testing.T) {
	p := DefaultPolicy()
	est := p.EstimatePackage(PackageInput{Quantity: 10, PaperWeight: 100, PaperFamily: "kraft"})
	if est.TotalThicknessMm != 1 {
		t.Fatalf("thickness = %v, want 1", est.TotalThicknessMm)
	}
	if est.BoxCount != 1 {
		t.Fatalf("empty run still ships in one box, got %d", est.BoxCount)
	}
}

func TestEstimatePackage_MonotonicInQuantity(t *testing.T) {
	p := DefaultPolicy()
	prev := p.EstimatePackage(PackageInput{Quantity: 1, PaperWeight: 120, PaperFamily: "snow", WidthMm: 210, HeightMm: 297})
	for qty := 2; qty <= 20000; qty += 37 {
		cur := p.EstimatePackage(PackageInput{Quantity: qty, PaperWeight: 120, PaperFamily: "snow", WidthMm: 210, HeightMm: 297})
		if cur.BoxCount < prev.BoxCount || cur.TotalWeightKg < prev.TotalWeightKg {
			t.Fatalf("qty %d: boxes %d->%d weight %v->%v decreased", qty, prev.BoxCount, cur.BoxCount, prev.TotalWeightKg, cur.TotalWeightKg)
		}
		prev = cur
	}
}

func TestShippingCost(t *testing.T) {
	p := DefaultPolicy() // 4000 per box, free box at 50000

	cases := []struct {
		name    string
		method  models.DeliveryMethod
		boxes   int
		amount  int64
		want    int64
		wantErr bool
	}{
		{"parcel below threshold", models.DeliveryParcel, 3, 10000, 12000, false},
		{"parcel at threshold", models.DeliveryParcel, 3, 50000, 8000, false},
		{"single box free", models.DeliveryParcel, 1, 90000, 0, false},
		{"default method", "", 2, 0, 8000, false},
		{"freight", models.DeliveryFreight, 5, 0, 20000, false},
		{"pickup", models.DeliveryPickup, 5, 0, 0, false},
		{"courier cod", models.DeliveryCourierCOD, 5, 0, 0, false},
		{"unknown", "drone", 1, 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := p.ShippingCost(tc.method, tc.boxes, tc.amount)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("shipping = %d, want %d", got, tc.want)
			}
		})
	}
}
