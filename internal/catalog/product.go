package catalog

import "github.com/shopspring/decimal"

// Stable product identifiers used across pricing and loyalty rules.
const (
	ProductKeyboard   = "p1"
	ProductMouse      = "p2"
	ProductMonitorArm = "p3"
	ProductLaptopCase = "p4"
	ProductSpeaker    = "p5"
)

// SaleStatus describes which promotion flags are active on a product.
type SaleStatus string

const (
	SaleNone      SaleStatus = "NONE"
	SaleLightning SaleStatus = "LIGHTNING"
	SaleSuggested SaleStatus = "SUGGESTED"
	SaleCombined  SaleStatus = "COMBINED"
)

// Product is a sellable catalog entry. BasePrice never changes;
// CurrentPrice is always recomputed from BasePrice and the sale flags.
type Product struct {
	ID              string
	Name            string
	BasePrice       int64
	CurrentPrice    int64
	Stock           int
	LightningActive bool
	SuggestedActive bool
}

func NewProduct(id, name string, basePrice int64, stock int) *Product {
	return &Product{
		ID:           id,
		Name:         name,
		BasePrice:    basePrice,
		CurrentPrice: basePrice,
		Stock:        stock,
	}
}

func (p *Product) SaleStatus() SaleStatus {
	switch {
	case p.LightningActive && p.SuggestedActive:
		return SaleCombined
	case p.LightningActive:
		return SaleLightning
	case p.SuggestedActive:
		return SaleSuggested
	}
	return SaleNone
}

func (p *Product) IsOutOfStock() bool {
	return p.Stock == 0
}

func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock < lowStockThreshold
}

// DecreaseStock subtracts qty from stock, refusing the whole request
// when not enough units remain.
func (p *Product) DecreaseStock(qty int) bool {
	if qty > p.Stock {
		return false
	}
	p.Stock -= qty
	return true
}

func (p *Product) IncreaseStock(qty int) {
	p.Stock += qty
}

// recomputePrice applies the four-case sale price table. The combined
// case is its own entry, not a product of the two single-flag factors.
func (p *Product) recomputePrice() {
	p.CurrentPrice = salePrice(p.BasePrice, p.LightningActive, p.SuggestedActive)
}

var (
	lightningFactor = decimal.NewFromFloat(0.80)
	suggestedFactor = decimal.NewFromFloat(0.95)
	combinedFactor  = decimal.NewFromFloat(0.75)
)

func salePrice(base int64, lightning, suggested bool) int64 {
	var factor decimal.Decimal
	switch {
	case lightning && suggested:
		factor = combinedFactor
	case lightning:
		factor = lightningFactor
	case suggested:
		factor = suggestedFactor
	default:
		return base
	}
	return decimal.NewFromInt(base).Mul(factor).Round(0).IntPart()
}
