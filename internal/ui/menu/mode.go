package menu

// Mode is what clicks inside the grid do
type Mode int

const (
	// ModePlace lets the player drag items in and out of the grid
	ModePlace Mode = iota
	// ModeEditWeight locks the items and lets clicks tune each slot's drop chance
	ModeEditWeight
)

var modes = []Mode{ModePlace, ModeEditWeight}

// Key is the human readable mode name
func (m Mode) Key() string {
	switch m {
	case ModePlace:
		return "Items"
	case ModeEditWeight:
		return "Drop Chances"
	}
	return "Unknown"
}

func (m Mode) String() string {
	return m.Key()
}

// Next returns the following mode, wrapping around
func (m Mode) Next() Mode {
	return next(modes, m)
}

// ModeController owns the interaction mode and the quantity mode of one editor
type ModeController struct {
	mode       Mode
	quantity   Quantity
	quantities []Quantity

	// finalize runs before the mode changes; an error aborts the switch
	finalize func() error
	// changed runs after the mode changed
	changed func(Mode)
}

// NewModeController starts in the given mode with the first quantity of the cycle
func NewModeController(start Mode, fractional bool) *ModeController {
	qs := Quantities(fractional)
	return &ModeController{
		mode:       start,
		quantity:   qs[0],
		quantities: qs,
	}
}

func (c *ModeController) Mode() Mode {
	return c.mode
}

func (c *ModeController) Quantity() Quantity {
	return c.quantity
}

// QuantityEnabled reports whether there is more than one step size to pick from
func (c *ModeController) QuantityEnabled() bool {
	return len(c.quantities) > 1
}

// SetQuantity selects q if it belongs to the cycle and reports whether it did
func (c *ModeController) SetQuantity(q Quantity) bool {
	for _, v := range c.quantities {
		if v == q {
			c.quantity = q
			return true
		}
	}
	return false
}

// AdvanceMode finalizes the current mode and moves to the next one
func (c *ModeController) AdvanceMode() error {
	if c.finalize != nil {
		if err := c.finalize(); err != nil {
			return err
		}
	}

	c.mode = c.mode.Next()

	if c.changed != nil {
		c.changed(c.mode)
	}
	return nil
}

// AdvanceQuantity moves to the next step size
func (c *ModeController) AdvanceQuantity() Quantity {
	c.quantity = next(c.quantities, c.quantity)
	return c.quantity
}

// RetreatQuantity moves to the previous step size
func (c *ModeController) RetreatQuantity() Quantity {
	c.quantity = previous(c.quantities, c.quantity)
	return c.quantity
}
