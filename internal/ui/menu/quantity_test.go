package menu

import (
	"testing"

	"dropedit/internal/inventory"

	"github.com/stretchr/testify/assert"
)

func TestStepFor(t *testing.T) {
	tests := []struct {
		name  string
		q     Quantity
		click inventory.ClickType
		want  float64
		ok    bool
	}{
		{"right raises", 10, inventory.ClickRight, 0.1, true},
		{"left lowers", 10, inventory.ClickLeft, -0.1, true},
		{"whole unit", 100, inventory.ClickRight, 1, true},
		{"shift ignored", 10, inventory.ClickShiftRight, 0, false},
		{"middle ignored", 10, inventory.ClickMiddle, 0, false},
		{"double ignored", 10, inventory.ClickDouble, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := StepFor(tt.q, tt.click)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestPercentText(t *testing.T) {
	assert.Equal(t, "10%", Quantity(10).PercentText())
	assert.Equal(t, "0.5%", Quantity(0.5).PercentText())
	assert.Equal(t, "100%", Quantity(100).PercentText())
}

func TestQuantityCycleWraps(t *testing.T) {
	c := NewModeController(ModePlace, true)
	assert.Equal(t, Quantity(1), c.Quantity())
	assert.True(t, c.QuantityEnabled())

	assert.Equal(t, Quantity(100), c.RetreatQuantity())
	assert.Equal(t, Quantity(1), c.AdvanceQuantity())
	for range len(fractionalQuantities) {
		c.AdvanceQuantity()
	}
	assert.Equal(t, Quantity(1), c.Quantity())
}

func TestWholeQuantitiesOnly(t *testing.T) {
	c := NewModeController(ModePlace, false)
	assert.False(t, c.QuantityEnabled())
	assert.Equal(t, Quantity(100), c.Quantity())
	assert.Equal(t, Quantity(100), c.AdvanceQuantity())
	assert.False(t, c.SetQuantity(10))
}

func TestModeCycleIsClosed(t *testing.T) {
	assert.Equal(t, ModeEditWeight, ModePlace.Next())
	assert.Equal(t, ModePlace, ModeEditWeight.Next())
	assert.Equal(t, ModePlace, Mode(42).Next())
}

func TestAdvanceModeStopsOnFinalizeError(t *testing.T) {
	c := NewModeController(ModePlace, true)
	var changed []Mode
	c.changed = func(m Mode) { changed = append(changed, m) }

	c.finalize = func() error { return assert.AnError }
	assert.ErrorIs(t, c.AdvanceMode(), assert.AnError)
	assert.Equal(t, ModePlace, c.Mode())
	assert.Empty(t, changed)

	c.finalize = func() error { return nil }
	assert.NoError(t, c.AdvanceMode())
	assert.NoError(t, c.AdvanceMode())
	assert.Equal(t, ModePlace, c.Mode())
	assert.Equal(t, []Mode{ModeEditWeight, ModePlace}, changed)
}
