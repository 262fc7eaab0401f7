package inventory

// MouseButton represents a mouse button click
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// ClickType is the gesture the player performed on a slot
type ClickType int

const (
	ClickUnknown ClickType = iota
	ClickLeft
	ClickRight
	ClickShiftLeft
	ClickShiftRight
	ClickMiddle
	ClickDouble
)

var clickNames = [...]string{"unknown", "left", "right", "shift-left", "shift-right", "middle", "double"}

func (c ClickType) String() string {
	if c < 0 || int(c) >= len(clickNames) {
		return clickNames[0]
	}
	return clickNames[c]
}

// ClickTypeOf combines a button with modifier state into a ClickType.
// Double clicks only exist for the left button.
func ClickTypeOf(button MouseButton, shift, double bool) ClickType {
	switch button {
	case MouseButtonLeft:
		if double {
			return ClickDouble
		}
		if shift {
			return ClickShiftLeft
		}
		return ClickLeft
	case MouseButtonRight:
		if shift {
			return ClickShiftRight
		}
		return ClickRight
	case MouseButtonMiddle:
		return ClickMiddle
	}
	return ClickUnknown
}

// ClickAction describes what a slot click did (or would do) to the items
type ClickAction int

const (
	ActionNothing ClickAction = iota
	ActionPickupAll
	ActionPickupHalf
	ActionPlaceAll
	ActionPlaceOne
	ActionMerge
	ActionSwap
	ActionCollect
	ActionMoveToOther
)

// Location is the region of the open window a click landed in
type Location int

const (
	LocationOutside Location = iota
	LocationMenu
	LocationPlayerInventory
)
