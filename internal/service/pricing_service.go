package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/GTDGit/print_api/internal/cache"
	"github.com/GTDGit/print_api/internal/models"
	"github.com/GTDGit/print_api/internal/pricing"
	"github.com/GTDGit/print_api/internal/utils"
)

// maxQuoteFanout bounds the goroutines pricing one quantity table.
const maxQuoteFanout = 8

// PriceRequest is one server-side pricing request.
type PriceRequest struct {
	Selection   models.CustomerSelection `json:"customer"`
	Quantity    int                      `json:"qty"`
	ProductType models.ProductType       `json:"productType" binding:"required"`
	ProductID   *int64                   `json:"productId,omitempty"`
	// AllQtys asks for the same selection priced at every listed quantity.
	AllQtys []int `json:"allQtys,omitempty"`
}

// Quote is the answer to POST /price/calculate. A nil ByQty entry means that
// quantity could not be priced.
type Quote struct {
	Selected *pricing.PriceResult         `json:"selected"`
	ByQty    map[int]*pricing.PriceResult `json:"byQty,omitempty"`
}

// PricingService prices selections against the current catalog and the live
// price cache snapshot.
type PricingService struct {
	catalog  CatalogStore
	products ProductStore
	prices   *cache.PriceCache
	policy   pricing.Policy
}

// NewPricingService constructs a PricingService.
func NewPricingService(catalog CatalogStore, products ProductStore, prices *cache.PriceCache, policy pricing.Policy) *PricingService {
	return &PricingService{catalog: catalog, products: products, prices: prices, policy: policy}
}

// Price computes the authoritative price of req at req.Quantity.
func (s *PricingService) Price(ctx context.Context, req *PriceRequest) (*pricing.PriceResult, error) {
	product, err := s.product(ctx, req)
	if err != nil {
		return nil, err
	}
	caps, ok := req.ProductType.Capabilities()
	if !ok {
		return nil, &pricing.InvalidInputError{Field: "productType", Reason: fmt.Sprintf("unknown product type %q", req.ProductType)}
	}
	if caps.IsOutsourced {
		return s.priceOutsourced(ctx, product, req.Selection.Books)
	}

	calc, stale, err := s.calculator(ctx)
	if err != nil {
		return nil, err
	}
	return s.calculate(calc, stale, req, product, req.Quantity)
}

// Quote prices the selected quantity and, when requested, the quantity table.
// A failing table entry is logged and emitted as null; a failing selected
// quantity fails the whole request.
func (s *PricingService) Quote(ctx context.Context, req *PriceRequest) (*Quote, error) {
	caps, ok := req.ProductType.Capabilities()
	if !ok {
		return nil, &pricing.InvalidInputError{Field: "productType", Reason: fmt.Sprintf("unknown product type %q", req.ProductType)}
	}
	if caps.IsOutsourced {
		selected, err := s.Price(ctx, req)
		if err != nil {
			return nil, err
		}
		return &Quote{Selected: selected}, nil
	}

	product, err := s.product(ctx, req)
	if err != nil {
		return nil, err
	}
	calc, stale, err := s.calculator(ctx)
	if err != nil {
		return nil, err
	}

	selected, err := s.calculate(calc, stale, req, product, req.Quantity)
	if err != nil {
		return nil, err
	}
	quote := &Quote{Selected: selected}
	if len(req.AllQtys) == 0 {
		return quote, nil
	}

	quote.ByQty = make(map[int]*pricing.PriceResult, len(req.AllQtys))
	var mu sync.Mutex
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(maxQuoteFanout)
	for _, qty := range req.AllQtys {
		mu.Lock()
		_, seen := quote.ByQty[qty]
		quote.ByQty[qty] = nil
		mu.Unlock()
		if seen {
			continue
		}
		qty := qty
		g.Go(func() error {
			res, err := s.calculate(calc, stale, req, product, qty)
			if err != nil {
				log.Debug().Err(err).Int("qty", qty).Msg("quantity table entry not priced")
				return nil
			}
			mu.Lock()
			quote.ByQty[qty] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return quote, nil
}

// calculator binds one catalog view and one snapshot for a whole request.
func (s *PricingService) calculator(ctx context.Context) (*pricing.Calculator, *pricing.CacheStaleWarning, error) {
	rows, err := s.catalog.LoadCatalog(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	snap := s.prices.Current()
	if snap.Len() == 0 {
		return nil, nil, utils.ErrCacheEmpty
	}
	return pricing.NewCalculator(pricing.NewCatalog(rows), snap, s.policy), s.prices.Stale(), nil
}

func (s *PricingService) calculate(calc *pricing.Calculator, stale *pricing.CacheStaleWarning, req *PriceRequest, product *models.Product, qty int) (*pricing.PriceResult, error) {
	res, err := calc.Calculate(pricing.Input{
		Selection:   req.Selection,
		Quantity:    qty,
		ProductType: req.ProductType,
		Product:     product,
	})
	if err != nil {
		return nil, err
	}
	res.CacheStale = stale != nil
	return res, nil
}

func (s *PricingService) priceOutsourced(ctx context.Context, product *models.Product, books []models.BookInput) (*pricing.PriceResult, error) {
	if product == nil {
		return nil, &pricing.InvalidInputError{Field: "productId", Reason: "required for outsourced products"}
	}
	tiers, err := s.products.GetDiscountTiers(ctx, product.ID)
	if err != nil {
		return nil, fmt.Errorf("load discount tiers: %w", err)
	}
	return s.policy.CalculateOutsourced(product, tiers, books)
}

// product resolves the optional product config and checks it matches the
// requested product type.
func (s *PricingService) product(ctx context.Context, req *PriceRequest) (*models.Product, error) {
	if req.ProductID == nil {
		return nil, nil
	}
	p, err := s.products.GetByID(ctx, *req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("load product: %w", err)
	}
	if p == nil {
		return nil, &pricing.CatalogMissError{Kind: "product", Key: strconv.FormatInt(*req.ProductID, 10)}
	}
	if p.Type != req.ProductType {
		return nil, fmt.Errorf("%w: product %d is %s, not %s", utils.ErrProductTypeMismatch, p.ID, p.Type, req.ProductType)
	}
	return p, nil
}
