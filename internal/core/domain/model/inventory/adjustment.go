package inventory

type adjustmentKind int

const (
	adjustmentIncrease adjustmentKind = iota + 1
	adjustmentDecrease
)

// StockAdjustment is a manual change of the total quantity: a restock
// (Increase) or a write-off (Decrease).
type StockAdjustment struct {
	kind     adjustmentKind
	quantity int
}

// Increase adds n units to the total.
func Increase(n int) StockAdjustment {
	return StockAdjustment{kind: adjustmentIncrease, quantity: n}
}

// Decrease removes n units from the total; it may not dip into reserved units.
func Decrease(n int) StockAdjustment {
	return StockAdjustment{kind: adjustmentDecrease, quantity: n}
}

func (a StockAdjustment) Quantity() int {
	return a.quantity
}

func (a StockAdjustment) IsIncrease() bool {
	return a.kind == adjustmentIncrease
}
