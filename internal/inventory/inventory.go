package inventory

import (
	"dropedit/internal/item"
)

const (
	MainInventorySize = 36
	HotbarSize        = 9
)

// Inventory is the player's own inventory.
// Indices 0-8 are the hotbar, 9-35 the main storage.
type Inventory struct {
	MainInventory [MainInventorySize]*item.Stack
}

func New() *Inventory {
	return &Inventory{}
}

// GetItem returns the item stack at the given index
func (inv *Inventory) GetItem(index int) *item.Stack {
	if index >= 0 && index < MainInventorySize {
		return inv.MainInventory[index]
	}
	return nil
}

// SetItem sets the item stack at the given index
func (inv *Inventory) SetItem(index int, stack *item.Stack) {
	if index >= 0 && index < MainInventorySize {
		inv.MainInventory[index] = stack
	}
}

// AddItem attempts to add an item stack to the inventory.
// Returns true if fully added. The passed stack's count is reduced by what fit.
func (inv *Inventory) AddItem(stack *item.Stack) bool {
	if item.IsEmpty(stack) {
		return false
	}

	if stack.IsStackable() {
		for _, existing := range inv.MainInventory {
			if existing == nil || !existing.IsItemEqual(*stack) {
				continue
			}
			space := existing.GetMaxStackSize() - existing.Count
			if space <= 0 {
				continue
			}
			toAdd := min(stack.Count, space)
			existing.Count += toAdd
			stack.Count -= toAdd
			if stack.Count == 0 {
				return true
			}
		}
	}

	for stack.Count > 0 {
		empty := inv.GetFirstEmptyStack()
		if empty < 0 {
			return false
		}
		placed := stack.Clone()
		placed.Count = min(stack.Count, stack.GetMaxStackSize())
		inv.MainInventory[empty] = placed
		stack.Count -= placed.Count
	}

	return true
}

// GetFirstEmptyStack returns the index of the first empty slot or -1
func (inv *Inventory) GetFirstEmptyStack() int {
	for i, s := range inv.MainInventory {
		if s == nil {
			return i
		}
	}
	return -1
}
