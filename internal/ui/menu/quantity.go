package menu

import (
	"strconv"

	"dropedit/internal/inventory"
)

// Quantity is the step applied to a weight per click, in percent points
type Quantity float64

var (
	fractionalQuantities = []Quantity{1, 2, 5, 10, 20, 50, 100}
	wholeQuantities      = []Quantity{100}
)

// Quantities returns the step cycle. Without fractional support a click
// can only move a weight by a whole unit.
func Quantities(fractional bool) []Quantity {
	if fractional {
		return fractionalQuantities
	}
	return wholeQuantities
}

// Step is the quantity as a weight delta
func (q Quantity) Step() float64 {
	return float64(q) / 100
}

// PercentText renders the quantity like "10%" or "0.5%"
func (q Quantity) PercentText() string {
	return strconv.FormatFloat(float64(q), 'f', -1, 64) + "%"
}

// StepFor returns the signed delta a click applies under quantity q.
// Left click lowers, right click raises; ok is false for every other click.
func StepFor(q Quantity, click inventory.ClickType) (delta float64, ok bool) {
	switch click {
	case inventory.ClickLeft:
		return -q.Step(), true
	case inventory.ClickRight:
		return q.Step(), true
	}
	return 0, false
}
