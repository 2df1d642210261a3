package loyalty

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/minjaeyoo/shopcore-backend/internal/cart"
	"github.com/minjaeyoo/shopcore-backend/internal/catalog"
)

// base points accrue at 0.1% of the final payable price
var baseRate = decimal.NewFromFloat(0.001)

const (
	tuesdayMultiplier = 2

	keyboardMouseSetBonus = 50
	fullSetBonus          = 100

	quantityBonus10 = 20
	quantityBonus20 = 50
	quantityBonus30 = 100
)

// Result carries the awarded point total and the matching human-readable
// breakdown. Both are derived from the same trigger conditions so they
// can never disagree.
type Result struct {
	Points  int64
	Details []string
}

// Compute derives the loyalty award from the final payable price and the
// cart composition.
func Compute(finalPrice decimal.Decimal, lines []cart.Line, totalQuantity int, at time.Time) Result {
	base := finalPrice.Mul(baseRate).Floor().IntPart()
	onTuesday := at.Weekday() == time.Tuesday

	var total int64
	var details []string

	if base > 0 {
		details = append(details, fmt.Sprintf("Base: %dp", base))
		total = base
		if onTuesday {
			total = base * tuesdayMultiplier
			details = append(details, "Tuesday x2")
		}
	}

	hasKeyboard := hasProduct(lines, catalog.ProductKeyboard)
	hasMouse := hasProduct(lines, catalog.ProductMouse)
	hasMonitorArm := hasProduct(lines, catalog.ProductMonitorArm)

	if hasKeyboard && hasMouse {
		total += keyboardMouseSetBonus
		details = append(details, fmt.Sprintf("Keyboard+Mouse set +%dp", keyboardMouseSetBonus))
	}
	if hasKeyboard && hasMouse && hasMonitorArm {
		total += fullSetBonus
		details = append(details, fmt.Sprintf("Full set +%dp", fullSetBonus))
	}

	// highest tier only
	switch {
	case totalQuantity >= 30:
		total += quantityBonus30
		details = append(details, fmt.Sprintf("Bulk purchase (30+) +%dp", quantityBonus30))
	case totalQuantity >= 20:
		total += quantityBonus20
		details = append(details, fmt.Sprintf("Bulk purchase (20+) +%dp", quantityBonus20))
	case totalQuantity >= 10:
		total += quantityBonus10
		details = append(details, fmt.Sprintf("Bulk purchase (10+) +%dp", quantityBonus10))
	}

	return Result{Points: total, Details: details}
}

func hasProduct(lines []cart.Line, productID string) bool {
	for _, line := range lines {
		if line.ProductID == productID {
			return true
		}
	}
	return false
}
