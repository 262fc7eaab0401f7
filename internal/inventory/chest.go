package inventory

import (
	"fmt"

	"dropedit/internal/item"
)

// RowWidth is the number of slots in one grid row
const RowWidth = 9

// Chest is a fixed-size grid of item slots shown at the top of a container window
type Chest struct {
	items []*item.Stack
}

// NewChest creates an empty chest with the given number of rows
func NewChest(rows int) *Chest {
	if rows <= 0 {
		panic(fmt.Errorf("chest needs at least one row, got %d", rows))
	}
	return &Chest{items: make([]*item.Stack, rows*RowWidth)}
}

// Size returns the number of slots
func (c *Chest) Size() int {
	return len(c.items)
}

// GetItem returns the stack at index or nil
func (c *Chest) GetItem(index int) *item.Stack {
	if index >= 0 && index < len(c.items) {
		return c.items[index]
	}
	return nil
}

// SetItem stores the stack at index; out of range indices are ignored
func (c *Chest) SetItem(index int, stack *item.Stack) {
	if index >= 0 && index < len(c.items) {
		c.items[index] = stack
	}
}

// Clear empties every slot
func (c *Chest) Clear() {
	clear(c.items)
}
