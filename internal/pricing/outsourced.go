package pricing

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/GTDGit/print_api/internal/models"
)

var hundred = decimal.NewFromInt(100)

// CalculateOutsourced prices a multi-book order from product-level
// configuration. The discount tier is chosen by the order-wide quantity and
// applied to every book; the design fee is charged once below the free-design
// threshold. Product prices are configured VAT-inclusive.
func (p Policy) CalculateOutsourced(product *models.Product, tiers []models.QuantityDiscountTier, books []models.BookInput) (*PriceResult, error) {
	if product == nil {
		return nil, invalidInput("productId", "required for outsourced orders")
	}
	if len(books) == 0 {
		return nil, invalidInput("books", "at least one book is required")
	}
	totalQty := 0
	for i, b := range books {
		if b.Pages <= 0 {
			return nil, invalidInput("books", "pages must be positive for book "+strconv.Itoa(i+1))
		}
		if b.Pages > p.MaxPages {
			return nil, invalidInput("books", "pages must not exceed "+strconv.Itoa(p.MaxPages)+" for book "+strconv.Itoa(i+1))
		}
		if b.Quantity <= 0 {
			return nil, invalidInput("books", "quantity must be positive for book "+strconv.Itoa(i+1))
		}
		if b.Quantity > p.MaxQuantity-totalQty {
			return nil, invalidInput("books", "total quantity must not exceed "+strconv.Itoa(p.MaxQuantity))
		}
		totalQty += b.Quantity
	}

	pct := DiscountPercent(tiers, totalQty)
	factor := decimal.NewFromInt(1).Sub(pct.Div(hundred))
	fixed := decimal.NewFromInt(product.BindingFee + product.GuidePrice)

	res := &PriceResult{
		ProductType:     models.ProductTypeOutsourced,
		Quantity:        totalQty,
		DiscountPercent: pct,
		Books:           make([]BookPrice, 0, len(books)),
	}
	sum := decimal.Zero
	bookTotals := make([]decimal.Decimal, len(books))
	for i, b := range books {
		perCopy := decimal.NewFromInt(int64(b.Pages)).Mul(product.PagePrice).Add(fixed)
		bookTotals[i] = perCopy.Mul(decimal.NewFromInt(int64(b.Quantity))).Mul(factor).Round(0)
		res.Books = append(res.Books, BookPrice{
			Pages:    b.Pages,
			Quantity: b.Quantity,
			PerCopy:  perCopy,
		})
		sum = sum.Add(bookTotals[i])
	}
	if totalQty < product.FreeDesignMinQty {
		res.DesignFee = product.DesignFee
		sum = sum.Add(decimal.NewFromInt(product.DesignFee))
	}
	total, err := toWon(sum)
	if err != nil {
		return nil, err
	}
	guide, err := toWon(decimal.NewFromInt(product.GuidePrice).Mul(decimal.NewFromInt(int64(totalQty))))
	if err != nil {
		return nil, err
	}
	for i := range res.Books {
		res.Books[i].Total = bookTotals[i].IntPart()
	}

	res.Total = total
	res.DisplayTotal = total
	res.GuideTotal = guide
	res.PerUnit = decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(totalQty))).Round(2)
	return res, nil
}

// DiscountPercent returns the percent of the active tier with the highest
// MinQty not exceeding qty, or zero when none applies.
func DiscountPercent(tiers []models.QuantityDiscountTier, qty int) decimal.Decimal {
	pct := decimal.Zero
	bestMin := -1
	for _, t := range tiers {
		if !t.IsActive || t.MinQty > qty {
			continue
		}
		if t.MinQty > bestMin {
			bestMin, pct = t.MinQty, t.Percent
		}
	}
	return pct
}
