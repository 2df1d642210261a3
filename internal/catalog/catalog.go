package catalog

import "math/rand"

const lowStockThreshold = 5

// Catalog owns the product table for a session. Products are created once
// at construction and never destroyed; catalog order is insertion order.
type Catalog struct {
	products []*Product
	byID     map[string]*Product
	randIntN func(n int) int
}

// Option customizes catalog construction.
type Option func(*Catalog)

// WithRandIntN overrides the random source used for lightning sale
// selection. Intended for tests.
func WithRandIntN(fn func(n int) int) Option {
	return func(c *Catalog) {
		if fn != nil {
			c.randIntN = fn
		}
	}
}

// New builds a catalog over the given products. The slice is adopted;
// callers must not retain the pointers.
func New(products []*Product, opts ...Option) *Catalog {
	c := &Catalog{
		products: products,
		byID:     make(map[string]*Product, len(products)),
		randIntN: rand.Intn,
	}
	for _, p := range products {
		c.byID[p.ID] = p
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindByID returns the live product record for id.
func (c *Catalog) FindByID(id string) (*Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns value copies of every product in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, *p)
	}
	return out
}

// Available returns products with stock remaining, in catalog order.
func (c *Catalog) Available() []*Product {
	var out []*Product
	for _, p := range c.products {
		if !p.IsOutOfStock() {
			out = append(out, p)
		}
	}
	return out
}

// LowStock returns products with 0 < stock < 5, in catalog order.
func (c *Catalog) LowStock() []*Product {
	var out []*Product
	for _, p := range c.products {
		if p.IsLowStock() {
			out = append(out, p)
		}
	}
	return out
}

// OutOfStock returns products with no stock remaining, in catalog order.
func (c *Catalog) OutOfStock() []*Product {
	var out []*Product
	for _, p := range c.products {
		if p.IsOutOfStock() {
			out = append(out, p)
		}
	}
	return out
}

// TotalStock sums the remaining stock across all products.
func (c *Catalog) TotalStock() int {
	total := 0
	for _, p := range c.products {
		total += p.Stock
	}
	return total
}

// DecreaseStock subtracts qty from the product's stock. It fails without
// mutation when the product is unknown or qty exceeds the remaining stock.
func (c *Catalog) DecreaseStock(id string, qty int) bool {
	p, ok := c.byID[id]
	if !ok {
		return false
	}
	return p.DecreaseStock(qty)
}

// IncreaseStock adds qty back to the product's stock. Unknown ids are ignored.
func (c *Catalog) IncreaseStock(id string, qty int) {
	if p, ok := c.byID[id]; ok {
		p.IncreaseStock(qty)
	}
}

// ApplyLightningSale flags a uniformly random available product that is not
// already on lightning sale and recomputes its price. Returns nil when no
// product qualifies.
func (c *Catalog) ApplyLightningSale() *Product {
	var candidates []*Product
	for _, p := range c.products {
		if !p.IsOutOfStock() && !p.LightningActive {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	lucky := candidates[c.randIntN(len(candidates))]
	lucky.LightningActive = true
	lucky.recomputePrice()
	return lucky
}

// ApplySuggestedSale flags the first available product, in catalog order,
// whose id differs from excludeID and which is not already on suggested
// sale. An empty excludeID means no product was cart-added yet and the
// tick is a no-op.
func (c *Catalog) ApplySuggestedSale(excludeID string) *Product {
	if excludeID == "" {
		return nil
	}
	for _, p := range c.products {
		if p.IsOutOfStock() || p.ID == excludeID || p.SuggestedActive {
			continue
		}
		p.SuggestedActive = true
		p.recomputePrice()
		return p
	}
	return nil
}
