package catalog

import (
	"net/http"

	"github.com/minjaeyoo/shopcore-backend/api/responses"
	catalogpkg "github.com/minjaeyoo/shopcore-backend/internal/catalog"
	"github.com/minjaeyoo/shopcore-backend/internal/shop"
	pkgerrors "github.com/minjaeyoo/shopcore-backend/pkg/errors"
	"github.com/minjaeyoo/shopcore-backend/pkg/logger"
)

type ProductResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	BasePrice    int64  `json:"basePrice"`
	CurrentPrice int64  `json:"currentPrice"`
	Stock        int    `json:"stock"`
	SaleStatus   string `json:"saleStatus"`
}

// CatalogList returns every product with its live price and flags.
func CatalogList(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		products := svc.Catalog()
		out := make([]ProductResponse, 0, len(products))
		for i := range products {
			out = append(out, newProductResponse(&products[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

// StockAdvisory reports low-stock and out-of-stock products.
func StockAdvisory(svc *shop.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}
		responses.WriteSuccess(w, svc.StockAdvisory())
	}
}

func newProductResponse(p *catalogpkg.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		BasePrice:    p.BasePrice,
		CurrentPrice: p.CurrentPrice,
		Stock:        p.Stock,
		SaleStatus:   string(p.SaleStatus()),
	}
}
