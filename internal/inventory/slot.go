package inventory

import (
	"dropedit/internal/item"
)

// Storage is anything slots can read and write items through
type Storage interface {
	GetItem(index int) *item.Stack
	SetItem(index int, stack *item.Stack)
}

// Slot represents a single slot in a container
type Slot struct {
	storage Storage
	index   int
	X, Y    int
}

// NewSlot creates a new slot
func NewSlot(storage Storage, index, x, y int) *Slot {
	return &Slot{
		storage: storage,
		index:   index,
		X:       x,
		Y:       y,
	}
}

// Index returns the index of this slot inside its storage
func (s *Slot) Index() int {
	return s.index
}

// GetStack returns the item stack in this slot
func (s *Slot) GetStack() *item.Stack {
	if s.storage == nil {
		return nil
	}
	stack := s.storage.GetItem(s.index)
	if item.IsEmpty(stack) {
		return nil
	}
	return stack
}

// PutStack places an item stack into this slot
func (s *Slot) PutStack(stack *item.Stack) {
	if s.storage == nil {
		return
	}
	if item.IsEmpty(stack) {
		stack = nil
	}
	s.storage.SetItem(s.index, stack)
}

// GetMaxStackSize returns max stack size for this slot
func (s *Slot) GetMaxStackSize() int {
	return item.MaxStackSize
}
