// Package pricing holds the derived money fields shown to clients: taxed
// prices, line and basket totals, and the inventory label.
package pricing

import "github.com/shopspring/decimal"

const LowInventoryThreshold = 10

const (
	InventoryLow = "Low"
	InventoryOk  = "Ok"
)

var (
	taxMultiplier = decimal.RequireFromString("1.10")
	hundred       = decimal.NewFromInt(100)
)

// Line is one priced quantity (a cart item or an order item).
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// PriceWithTax returns price × 1.10 rounded half away from zero to 2 places.
func PriceWithTax(price decimal.Decimal) decimal.Decimal {
	return price.Mul(taxMultiplier).Round(2)
}

func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func CartTotal(lines []Line) decimal.Decimal {
	return sum(lines)
}

// OrderTotal uses the unit prices captured when the order was placed.
func OrderTotal(lines []Line) decimal.Decimal {
	return sum(lines)
}

func sum(lines []Line) decimal.Decimal {
	total := decimal.Zero

	for _, line := range lines {
		total = total.Add(LineTotal(line.UnitPrice, line.Quantity))
	}

	return total
}

func InventoryStatus(inventory int) string {
	if inventory < LowInventoryThreshold {
		return InventoryLow
	}

	return InventoryOk
}

// ToMinorUnits converts an amount to cents for payment providers.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
