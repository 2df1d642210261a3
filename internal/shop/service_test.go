package shop

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minjaeyoo/shopcore-backend/internal/cart"
	"github.com/minjaeyoo/shopcore-backend/internal/catalog"
	pkgerrors "github.com/minjaeyoo/shopcore-backend/pkg/errors"
)

var monday = time.Date(2025, time.November, 3, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, opts ...catalog.Option) *Service {
	t.Helper()

	svc, err := NewService(ServiceParams{
		Catalog: catalog.New(catalog.SeedProducts(), opts...),
		Cart:    cart.New(),
		Now:     func() time.Time { return monday },
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestAddToCartDefaultsToOneUnit(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	if err := svc.AddToCart(catalog.ProductKeyboard, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := svc.CartLines()
	if len(lines) != 1 || lines[0].Quantity != 1 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	err := svc.AddToCart("p99", 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeProductNotFound {
		t.Fatalf("expected PRODUCT_NOT_FOUND, got %v", err)
	}
}

func TestChangeQuantityFlow(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	if err := svc.AddToCart(catalog.ProductMouse, 2); err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := svc.ChangeQuantity(catalog.ProductMouse, 3); err != nil {
		t.Fatalf("grow: %v", err)
	}
	lines := svc.CartLines()
	if lines[0].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", lines[0].Quantity)
	}

	// dropping to zero removes the line and restores stock
	if err := svc.ChangeQuantity(catalog.ProductMouse, -5); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if len(svc.CartLines()) != 0 {
		t.Fatal("expected empty cart")
	}
	for _, p := range svc.Catalog() {
		if p.ID == catalog.ProductMouse && p.Stock != 30 {
			t.Fatalf("expected restored stock 30, got %d", p.Stock)
		}
	}
}

func TestChangeQuantityMissingLine(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	err := svc.ChangeQuantity(catalog.ProductMouse, 1)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	if err := svc.AddToCart(catalog.ProductMonitorArm, 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.RemoveFromCart(catalog.ProductMonitorArm); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := svc.RemoveFromCart(catalog.ProductMonitorArm); err == nil {
		t.Fatal("expected error for missing line")
	}
}

func TestComputePricingEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	res := svc.ComputePricing()
	if res.OriginalTotal != 0 || !res.DiscountRate.IsZero() || !res.FinalPrice.IsZero() {
		t.Fatalf("unexpected pricing: %+v", res)
	}

	points := svc.ComputeLoyalty()
	if points.Points != 0 || len(points.Details) != 0 {
		t.Fatalf("unexpected loyalty: %+v", points)
	}
}

func TestComputePricingKeyboardScenario(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	if err := svc.AddToCart(catalog.ProductKeyboard, 10); err != nil {
		t.Fatalf("add: %v", err)
	}

	res := svc.ComputePricing()
	if res.OriginalTotal != 100000 {
		t.Fatalf("unexpected original total %d", res.OriginalTotal)
	}
	if !res.DiscountRate.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("unexpected rate %s", res.DiscountRate)
	}
	if !res.FinalPrice.Equal(decimal.NewFromInt(90000)) {
		t.Fatalf("unexpected final price %s", res.FinalPrice)
	}
}

func TestPricingUsesFrozenSnapshots(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, catalog.WithRandIntN(func(n int) int { return 0 }))
	if err := svc.AddToCart(catalog.ProductKeyboard, 1); err != nil {
		t.Fatalf("add: %v", err)
	}

	before := svc.ComputePricing()

	// lightning tick lands after the add; the untouched line keeps its
	// pre-sale snapshot
	if _, applied := svc.ApplyLightningSale(); !applied {
		t.Fatal("expected lightning sale to apply")
	}
	after := svc.ComputePricing()
	if !after.FinalPrice.Equal(before.FinalPrice) {
		t.Fatalf("pricing must use frozen snapshots: before=%s after=%s", before.FinalPrice, after.FinalPrice)
	}
}

func TestApplyLightningSaleEmitsEvent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, catalog.WithRandIntN(func(n int) int { return 0 }))
	event, applied := svc.ApplyLightningSale()
	if !applied {
		t.Fatal("expected application")
	}
	if event.ProductID == "" || event.ProductName == "" || event.NewPrice <= 0 {
		t.Fatalf("incomplete event: %+v", event)
	}
}

func TestApplySuggestedSaleSkipsEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	if _, applied := svc.ApplySuggestedSale(); applied {
		t.Fatal("expected skip while cart is empty")
	}

	if err := svc.AddToCart(catalog.ProductKeyboard, 1); err != nil {
		t.Fatalf("add: %v", err)
	}
	event, applied := svc.ApplySuggestedSale()
	if !applied {
		t.Fatal("expected application with non-empty cart")
	}
	if event.ProductID == catalog.ProductKeyboard {
		t.Fatal("suggested sale must exclude the last added product")
	}
	if event.Kind != "suggested" {
		t.Fatalf("unexpected kind %q", event.Kind)
	}
}

func TestResetClearsCartWithoutRestock(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	if err := svc.AddToCart(catalog.ProductSpeaker, 4); err != nil {
		t.Fatalf("add: %v", err)
	}

	svc.Reset()
	if len(svc.CartLines()) != 0 {
		t.Fatal("expected empty cart")
	}
	for _, p := range svc.Catalog() {
		if p.ID == catalog.ProductSpeaker && p.Stock != 6 {
			t.Fatalf("reset must not restock, got %d", p.Stock)
		}
	}
}

func TestStockAdvisory(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	if err := svc.AddToCart(catalog.ProductSpeaker, 7); err != nil {
		t.Fatalf("add: %v", err)
	}

	advisory := svc.StockAdvisory()
	if len(advisory.Lines) != 2 {
		t.Fatalf("unexpected advisory lines: %+v", advisory.Lines)
	}
	if advisory.Lines[0].Status != StatusLowStock || advisory.Lines[0].ProductID != catalog.ProductSpeaker || advisory.Lines[0].Remaining != 3 {
		t.Fatalf("unexpected low stock line: %+v", advisory.Lines[0])
	}
	if advisory.Lines[1].Status != StatusOutOfStock || advisory.Lines[1].ProductID != catalog.ProductLaptopCase {
		t.Fatalf("unexpected out of stock line: %+v", advisory.Lines[1])
	}
	if advisory.TotalStock != 50+30+20+0+3-0 {
		t.Fatalf("unexpected total stock %d", advisory.TotalStock)
	}
	if advisory.Warning {
		t.Fatal("total stock above threshold must not warn")
	}
}

func TestStockAdvisoryWarning(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	// take enough units into the cart to push total stock under 50
	if err := svc.AddToCart(catalog.ProductKeyboard, 45); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := svc.AddToCart(catalog.ProductMouse, 20); err != nil {
		t.Fatalf("add: %v", err)
	}

	advisory := svc.StockAdvisory()
	if advisory.TotalStock != 45 {
		t.Fatalf("unexpected total stock %d", advisory.TotalStock)
	}
	if !advisory.Warning {
		t.Fatal("expected low total stock warning")
	}
}
