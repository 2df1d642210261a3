package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	cartsvc "github.com/minjaeyoo/shopcore-backend/internal/cart"
	catalogpkg "github.com/minjaeyoo/shopcore-backend/internal/catalog"
	"github.com/minjaeyoo/shopcore-backend/internal/shop"
)

func newTestService(t *testing.T) *shop.Service {
	t.Helper()
	svc, err := shop.NewService(shop.ServiceParams{
		Catalog: catalogpkg.New(catalogpkg.SeedProducts()),
		Cart:    cartsvc.New(),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestCatalogListSeedProducts(t *testing.T) {
	handler := CatalogList(newTestService(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data []ProductResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data) != 5 {
		t.Fatalf("expected 5 products, got %d", len(envelope.Data))
	}
	first := envelope.Data[0]
	if first.ID != "p1" || first.Name != "Bug-Squashing Keyboard" {
		t.Fatalf("unexpected first product: %+v", first)
	}
	if first.BasePrice != 10000 || first.CurrentPrice != 10000 {
		t.Fatalf("expected base and current price 10000, got %+v", first)
	}
	if first.SaleStatus != "NONE" {
		t.Fatalf("expected NONE sale status, got %q", first.SaleStatus)
	}
}

func TestStockAdvisoryReport(t *testing.T) {
	handler := StockAdvisory(newTestService(t), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stock/advisory", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data shop.Advisory `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	// Seed data has one out-of-stock product and no low-stock ones.
	if len(envelope.Data.Lines) != 1 {
		t.Fatalf("expected 1 advisory line, got %+v", envelope.Data.Lines)
	}
	if envelope.Data.Lines[0].ProductID != "p4" || envelope.Data.Lines[0].Status != shop.StatusOutOfStock {
		t.Fatalf("unexpected advisory line: %+v", envelope.Data.Lines[0])
	}
	if envelope.Data.TotalStock != 110 {
		t.Fatalf("expected total stock 110, got %d", envelope.Data.TotalStock)
	}
	if envelope.Data.Warning {
		t.Fatalf("did not expect a warning at total stock 110")
	}
}
