package cart

import (
	"github.com/minjaeyoo/shopcore-backend/internal/catalog"
	pkgerrors "github.com/minjaeyoo/shopcore-backend/pkg/errors"
)

// Cart maps product ids to at most one line each. Insertion order is kept
// for deterministic display; it does not affect pricing.
type Cart struct {
	lines     map[string]*Line
	order     []string
	lastAdded string
}

func New() *Cart {
	return &Cart{lines: make(map[string]*Line)}
}

// AddItem puts qty units of the product into the cart, taking the stock
// from the catalog record. On failure nothing is mutated.
func (c *Cart) AddItem(p *catalog.Product, qty int) error {
	if qty < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if p.IsOutOfStock() {
		return pkgerrors.New(pkgerrors.CodeOutOfStock, "product is out of stock").
			WithDetails(map[string]any{"productId": p.ID})
	}
	if !p.DecreaseStock(qty) {
		return pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock").
			WithDetails(map[string]any{"productId": p.ID, "available": p.Stock})
	}

	if line, ok := c.lines[p.ID]; ok {
		line.Quantity += qty
		line.refreshSnapshot(p)
	} else {
		line := &Line{ProductID: p.ID, Quantity: qty}
		line.refreshSnapshot(p)
		c.lines[p.ID] = line
		c.order = append(c.order, p.ID)
	}

	c.lastAdded = p.ID
	return nil
}

// UpdateQuantity sets the line for the product to newQty, settling the
// difference against the catalog stock. It reports false when the product
// has no line. A resulting quantity of zero removes the line.
func (c *Cart) UpdateQuantity(p *catalog.Product, newQty int) (bool, error) {
	line, ok := c.lines[p.ID]
	if !ok {
		return false, nil
	}
	if newQty < 0 {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative")
	}

	delta := newQty - line.Quantity
	if delta > 0 {
		if !p.DecreaseStock(delta) {
			return false, pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock").
				WithDetails(map[string]any{"productId": p.ID, "available": p.Stock})
		}
		line.Quantity = newQty
	} else if delta < 0 {
		p.IncreaseStock(-delta)
		line.Quantity = newQty
	}

	line.refreshSnapshot(p)

	if line.Quantity == 0 {
		c.drop(p.ID)
	}
	return true, nil
}

// RemoveItem deletes the product's line and restores its quantity to the
// catalog stock. It reports false when the product has no line.
func (c *Cart) RemoveItem(p *catalog.Product) bool {
	line, ok := c.lines[p.ID]
	if !ok {
		return false
	}
	p.IncreaseStock(line.Quantity)
	c.drop(p.ID)
	return true
}

// Clear drops every line without restoring stock. Full-session reset only.
func (c *Cart) Clear() {
	c.lines = make(map[string]*Line)
	c.order = nil
	c.lastAdded = ""
}

func (c *Cart) drop(id string) {
	delete(c.lines, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Lines returns value copies of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, *c.lines[id])
	}
	return out
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// OriginalTotal sums the pre-discount snapshot prices across all lines.
func (c *Cart) OriginalTotal() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.OriginalTotal()
	}
	return total
}

// DiscountedTotal sums the snapshot unit prices across all lines.
func (c *Cart) DiscountedTotal() int64 {
	var total int64
	for _, line := range c.lines {
		total += line.Total()
	}
	return total
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) HasItem(productID string) bool {
	_, ok := c.lines[productID]
	return ok
}

func (c *Cart) Quantity(productID string) int {
	if line, ok := c.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

// LastAddedProductID is the id recorded by the most recent AddItem, used
// to bias the suggested sale away from it. Empty until the first add;
// cleared by Clear.
func (c *Cart) LastAddedProductID() string {
	return c.lastAdded
}
