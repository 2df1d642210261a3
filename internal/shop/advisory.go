package shop

// totalStockWarningThreshold marks a catalog running low overall.
const totalStockWarningThreshold = 50

// StockStatus classifies an advisory line.
type StockStatus string

const (
	StatusLowStock   StockStatus = "LOW_STOCK"
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// AdvisoryLine flags one product needing attention. Remaining is zero for
// out-of-stock lines.
type AdvisoryLine struct {
	ProductID   string      `json:"productId"`
	ProductName string      `json:"productName"`
	Status      StockStatus `json:"status"`
	Remaining   int         `json:"remaining"`
}

// Advisory is the stock report rendered by the view layer.
type Advisory struct {
	Lines      []AdvisoryLine `json:"lines"`
	TotalStock int            `json:"totalStock"`
	Warning    bool           `json:"warning"`
}

// StockAdvisory lists low-stock products first, then out-of-stock ones,
// each group in catalog order.
func (s *Service) StockAdvisory() Advisory {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lines []AdvisoryLine
	for _, p := range s.catalog.LowStock() {
		lines = append(lines, AdvisoryLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			Status:      StatusLowStock,
			Remaining:   p.Stock,
		})
	}
	for _, p := range s.catalog.OutOfStock() {
		lines = append(lines, AdvisoryLine{
			ProductID:   p.ID,
			ProductName: p.Name,
			Status:      StatusOutOfStock,
		})
	}

	total := s.catalog.TotalStock()
	return Advisory{
		Lines:      lines,
		TotalStock: total,
		Warning:    total < totalStockWarningThreshold,
	}
}
