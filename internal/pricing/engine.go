package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/minjaeyoo/shopcore-backend/internal/cart"
	"github.com/minjaeyoo/shopcore-backend/internal/catalog"
)

const (
	// per-line tier discounts apply from this line quantity upward
	tierQuantityThreshold = 10

	bulkQuantityThreshold = 30
	bulkDiscountRate      = 25

	tuesdayDiscountRate = 10

	maxDiscountRate = 100
)

// tierRates maps product ids to the percentage discount granted once the
// line quantity reaches tierQuantityThreshold.
var tierRates = map[string]int64{
	catalog.ProductKeyboard:   10,
	catalog.ProductMouse:      15,
	catalog.ProductMonitorArm: 20,
	catalog.ProductLaptopCase: 5,
	catalog.ProductSpeaker:    25,
}

var hundred = decimal.NewFromInt(100)

// Result is the pricing outcome for one cart state. Rates are on the
// 0-100 scale. Lines and TotalQuantity echo the inputs the computation
// was made from.
type Result struct {
	OriginalTotal  int64
	DiscountRate   decimal.Decimal
	DiscountAmount decimal.Decimal
	FinalPrice     decimal.Decimal
	TotalQuantity  int
	Lines          []cart.Line
}

// Compute derives the composite discount rate and final price from the
// cart line snapshots. It never re-reads live catalog prices; the frozen
// snapshot on each line is authoritative until the line is next touched.
func Compute(lines []cart.Line, totalQuantity int, at time.Time) Result {
	var originalTotal int64
	for _, line := range lines {
		originalTotal += line.OriginalTotal()
	}

	rate := decimal.Zero

	// per-line tier discounts, weighted by each line's discounted/original
	// price ratio
	for _, line := range lines {
		tier := tierRate(line.ProductID, line.Quantity)
		if tier.IsZero() {
			continue
		}
		lineOriginal := line.OriginalTotal()
		if lineOriginal == 0 {
			continue
		}
		weight := decimal.NewFromInt(line.Total()).Div(decimal.NewFromInt(lineOriginal))
		rate = rate.Add(tier.Mul(weight))
	}

	// bulk discount stacks on top of the per-line tiers; the two are
	// additive on purpose
	if totalQuantity >= bulkQuantityThreshold {
		rate = rate.Add(decimal.NewFromInt(bulkDiscountRate))
	}

	if isTuesday(at) {
		rate = rate.Add(decimal.NewFromInt(tuesdayDiscountRate))
	}

	if rate.GreaterThan(hundred) {
		rate = hundred
	}

	original := decimal.NewFromInt(originalTotal)
	discountAmount := original.Mul(rate).Div(hundred)

	return Result{
		OriginalTotal:  originalTotal,
		DiscountRate:   rate,
		DiscountAmount: discountAmount,
		FinalPrice:     original.Sub(discountAmount),
		TotalQuantity:  totalQuantity,
		Lines:          lines,
	}
}

func tierRate(productID string, quantity int) decimal.Decimal {
	if quantity < tierQuantityThreshold {
		return decimal.Zero
	}
	return decimal.NewFromInt(tierRates[productID])
}

func isTuesday(at time.Time) bool {
	return at.Weekday() == time.Tuesday
}
