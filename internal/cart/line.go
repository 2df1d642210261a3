package cart

import "github.com/minjaeyoo/shopcore-backend/internal/catalog"

// Line is one cart entry. Price and sale fields are a frozen snapshot of
// the product taken at the moment of the last cart mutation; they do not
// track later catalog changes until the line is touched again.
type Line struct {
	ProductID         string
	ProductName       string
	Quantity          int
	UnitPrice         int64
	OriginalUnitPrice int64
	SaleStatus        catalog.SaleStatus
}

func (l Line) Total() int64 {
	return l.UnitPrice * int64(l.Quantity)
}

func (l Line) OriginalTotal() int64 {
	return l.OriginalUnitPrice * int64(l.Quantity)
}

func (l *Line) refreshSnapshot(p *catalog.Product) {
	l.ProductName = p.Name
	l.UnitPrice = p.CurrentPrice
	l.OriginalUnitPrice = p.BasePrice
	l.SaleStatus = p.SaleStatus()
}
