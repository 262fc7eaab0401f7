package inventory

import (
	"dropedit/internal/item"
)

// Container manages a collection of slots and handles item interactions.
// The first menuSize slots belong to the opened menu, the rest to the player.
type Container struct {
	Slots       []*Slot
	CursorStack *item.Stack

	// Filter, when set, decides which menu slots shift moves and double
	// click collects may touch. Player slots are always usable.
	Filter func(index int) bool

	menuSize int
}

// NewContainer creates an empty container whose first menuSize slots form the menu region
func NewContainer(menuSize int) *Container {
	return &Container{
		Slots:    make([]*Slot, 0),
		menuSize: menuSize,
	}
}

func (c *Container) AddSlot(s *Slot) *Slot {
	c.Slots = append(c.Slots, s)
	return s
}

func (c *Container) GetSlot(index int) *Slot {
	if index >= 0 && index < len(c.Slots) {
		return c.Slots[index]
	}
	return nil
}

// usable reports whether bulk moves may put items into or take them from index
func (c *Container) usable(index int) bool {
	if index >= c.menuSize || c.Filter == nil {
		return true
	}
	return c.Filter(index)
}

// MenuSize returns the number of slots owned by the menu
func (c *Container) MenuSize() int {
	return c.menuSize
}

// Location reports which region a container slot index belongs to
func (c *Container) Location(index int) Location {
	switch {
	case index < 0 || index >= len(c.Slots):
		return LocationOutside
	case index < c.menuSize:
		return LocationMenu
	default:
		return LocationPlayerInventory
	}
}

// SlotClick applies a click to a slot and reports what happened
func (c *Container) SlotClick(slotIndex int, click ClickType) ClickAction {
	slot := c.GetSlot(slotIndex)
	if slot == nil {
		return ActionNothing
	}

	switch click {
	case ClickLeft:
		return c.leftClick(slot)
	case ClickRight:
		return c.rightClick(slot)
	case ClickShiftLeft, ClickShiftRight:
		return c.quickMove(slotIndex)
	case ClickDouble:
		return c.collect(slotIndex)
	}
	return ActionNothing
}

func (c *Container) leftClick(slot *Slot) ClickAction {
	cursor := c.CursorStack
	inSlot := slot.GetStack()

	switch {
	case cursor == nil && inSlot == nil:
		return ActionNothing
	case cursor == nil:
		c.CursorStack = inSlot
		slot.PutStack(nil)
		return ActionPickupAll
	case inSlot == nil:
		slot.PutStack(cursor)
		c.CursorStack = nil
		return ActionPlaceAll
	case inSlot.IsItemEqual(*cursor):
		space := slot.GetMaxStackSize() - inSlot.Count
		if space <= 0 {
			return ActionNothing
		}
		toAdd := min(cursor.Count, space)
		inSlot.Count += toAdd
		c.takeFromCursor(toAdd)
		return ActionMerge
	default:
		slot.PutStack(cursor)
		c.CursorStack = inSlot
		return ActionSwap
	}
}

func (c *Container) rightClick(slot *Slot) ClickAction {
	cursor := c.CursorStack
	inSlot := slot.GetStack()

	if cursor != nil {
		if inSlot == nil {
			one := cursor.Clone()
			one.Count = 1
			slot.PutStack(one)
			c.takeFromCursor(1)
			return ActionPlaceOne
		}
		if inSlot.IsItemEqual(*cursor) && inSlot.Count < slot.GetMaxStackSize() {
			inSlot.Count++
			c.takeFromCursor(1)
			return ActionPlaceOne
		}
		return ActionNothing
	}

	if inSlot == nil {
		return ActionNothing
	}

	half := (inSlot.Count + 1) / 2
	picked := inSlot.Clone()
	picked.Count = half
	c.CursorStack = picked

	inSlot.Count -= half
	if inSlot.Count == 0 {
		slot.PutStack(nil)
	}
	return ActionPickupHalf
}

// quickMove sends the whole stack to the opposite region, merging first
func (c *Container) quickMove(slotIndex int) ClickAction {
	src := c.Slots[slotIndex]
	stack := src.GetStack()
	if stack == nil {
		return ActionNothing
	}

	from, to := c.menuSize, len(c.Slots)
	if c.Location(slotIndex) == LocationPlayerInventory {
		from, to = 0, c.menuSize
	}

	moved := false
	for i := from; i < to && stack.Count > 0; i++ {
		if !c.usable(i) {
			continue
		}
		dst := c.Slots[i].GetStack()
		if dst == nil || !dst.IsItemEqual(*stack) {
			continue
		}
		toAdd := min(stack.Count, c.Slots[i].GetMaxStackSize()-dst.Count)
		if toAdd > 0 {
			dst.Count += toAdd
			stack.Count -= toAdd
			moved = true
		}
	}
	for i := from; i < to && stack.Count > 0; i++ {
		if c.usable(i) && c.Slots[i].GetStack() == nil {
			c.Slots[i].PutStack(stack.Clone())
			stack.Count = 0
			moved = true
		}
	}

	if stack.Count == 0 {
		src.PutStack(nil)
	}
	if !moved {
		return ActionNothing
	}
	return ActionMoveToOther
}

// collect gathers matching items from every other slot into the cursor
func (c *Container) collect(clickedIndex int) ClickAction {
	cursor := c.CursorStack
	if cursor == nil {
		return ActionNothing
	}

	for i, slot := range c.Slots {
		if i == clickedIndex || !c.usable(i) {
			continue
		}
		space := cursor.GetMaxStackSize() - cursor.Count
		if space <= 0 {
			break
		}

		inSlot := slot.GetStack()
		if inSlot == nil || !inSlot.IsItemEqual(*cursor) {
			continue
		}

		toTake := min(inSlot.Count, space)
		cursor.Count += toTake
		inSlot.Count -= toTake
		if inSlot.Count == 0 {
			slot.PutStack(nil)
		}
	}
	return ActionCollect
}

func (c *Container) takeFromCursor(n int) {
	c.CursorStack.Count -= n
	if c.CursorStack.Count <= 0 {
		c.CursorStack = nil
	}
}
