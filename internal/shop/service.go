package shop

import (
	"fmt"
	"sync"
	"time"

	"github.com/minjaeyoo/shopcore-backend/internal/cart"
	"github.com/minjaeyoo/shopcore-backend/internal/catalog"
	"github.com/minjaeyoo/shopcore-backend/internal/loyalty"
	"github.com/minjaeyoo/shopcore-backend/internal/pricing"
	"github.com/minjaeyoo/shopcore-backend/internal/promo"
	pkgerrors "github.com/minjaeyoo/shopcore-backend/pkg/errors"
)

// ServiceParams configure the session service.
type ServiceParams struct {
	Catalog *catalog.Catalog
	Cart    *cart.Cart

	// Now overrides the wall clock used for the Tuesday rules. Tests
	// pin it; production leaves it nil.
	Now func() time.Time
}

// Service owns the session's catalog and cart and serializes every
// mutation behind one mutex, so caller commands and promotion ticks are
// never observed half-applied.
type Service struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	cart    *cart.Cart
	now     func() time.Time
}

// NewService builds the session service.
func NewService(params ServiceParams) (*Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if params.Cart == nil {
		return nil, fmt.Errorf("cart required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		catalog: params.Catalog,
		cart:    params.Cart,
		now:     now,
	}, nil
}

// Catalog returns value copies of the products in catalog order.
func (s *Service) Catalog() []catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Products()
}

// CartLines returns value copies of the cart lines in insertion order.
func (s *Service) CartLines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// ComputePricing runs the pricing engine over the current cart snapshot.
func (s *Service) ComputePricing() pricing.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.computePricing()
}

func (s *Service) computePricing() pricing.Result {
	return pricing.Compute(s.cart.Lines(), s.cart.TotalQuantity(), s.now())
}

// ComputeLoyalty prices the cart and derives the loyalty award from the
// final payable price.
func (s *Service) ComputeLoyalty() loyalty.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	priced := s.computePricing()
	return loyalty.Compute(priced.FinalPrice, priced.Lines, priced.TotalQuantity, s.now())
}

// AddToCart adds qty units of the product; qty values below 1 default to
// a single unit.
func (s *Service) AddToCart(productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty < 1 {
		qty = 1
	}
	p, ok := s.catalog.FindByID(productID)
	if !ok {
		return productNotFound(productID)
	}
	return s.cart.AddItem(p, qty)
}

// ChangeQuantity adjusts the product's line by delta. A resulting
// quantity of zero or less removes the line.
func (s *Service) ChangeQuantity(productID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.FindByID(productID)
	if !ok {
		return productNotFound(productID)
	}
	if !s.cart.HasItem(productID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart").
			WithDetails(map[string]any{"productId": productID})
	}

	newQty := s.cart.Quantity(productID) + delta
	if newQty <= 0 {
		s.cart.RemoveItem(p)
		return nil
	}
	_, err := s.cart.UpdateQuantity(p, newQty)
	return err
}

// RemoveFromCart deletes the product's line, restoring its stock.
func (s *Service) RemoveFromCart(productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.FindByID(productID)
	if !ok {
		return productNotFound(productID)
	}
	if !s.cart.RemoveItem(p) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "product is not in the cart").
			WithDetails(map[string]any{"productId": productID})
	}
	return nil
}

// Reset drops all cart lines without restoring stock.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// ApplyLightningSale runs one lightning promotion tick.
func (s *Service) ApplyLightningSale() (promo.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.catalog.ApplyLightningSale()
	if p == nil {
		return promo.Event{}, false
	}
	return promo.Event{
		Kind:        promo.KindLightning,
		ProductID:   p.ID,
		ProductName: p.Name,
		NewPrice:    p.CurrentPrice,
	}, true
}

// ApplySuggestedSale runs one suggested promotion tick. The tick is
// skipped while the cart is empty.
func (s *Service) ApplySuggestedSale() (promo.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		return promo.Event{}, false
	}
	p := s.catalog.ApplySuggestedSale(s.cart.LastAddedProductID())
	if p == nil {
		return promo.Event{}, false
	}
	return promo.Event{
		Kind:        promo.KindSuggested,
		ProductID:   p.ID,
		ProductName: p.Name,
		NewPrice:    p.CurrentPrice,
	}, true
}

func productNotFound(productID string) error {
	return pkgerrors.New(pkgerrors.CodeProductNotFound, "product not found").
		WithDetails(map[string]any{"productId": productID})
}
