package item

import "slices"

// Type identifies what kind of item a stack holds
type Type string

const (
	TypeNone       Type = ""
	TypeChest      Type = "chest"
	TypeGoldNugget Type = "gold_nugget"
	TypeString     Type = "string"
	TypeGlassPane  Type = "gray_stained_glass_pane"
)

// MaxStackSize is the standard max stack size
const MaxStackSize = 64

// Stack represents a stack of items
type Stack struct {
	Type  Type     `yaml:"type"`
	Count int      `yaml:"count"`
	Name  string   `yaml:"name,omitempty"`
	Lore  []string `yaml:"lore,omitempty"`
}

// NewStack creates a new item stack
func NewStack(t Type, count int) Stack {
	return Stack{
		Type:  t,
		Count: count,
	}
}

// GetMaxStackSize returns the maximum stack size for this item
func (s Stack) GetMaxStackSize() int {
	return MaxStackSize
}

// IsStackable returns if the item can be stacked
func (s Stack) IsStackable() bool {
	return len(s.Lore) == 0
}

// IsItemEqual checks if two stacks contain the same item.
// Display name and lore take part so renamed items don't merge.
func (s Stack) IsItemEqual(other Stack) bool {
	return s.Type == other.Type && s.Name == other.Name && slices.Equal(s.Lore, other.Lore)
}

// IsEmpty reports whether the stack pointer holds nothing
func IsEmpty(s *Stack) bool {
	return s == nil || s.Type == TypeNone || s.Count <= 0
}

// Clone returns a deep copy of the stack, or nil for nil
func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := *s
	c.Lore = slices.Clone(s.Lore)
	return &c
}

// WithLore returns a copy of the stack with extra description lines appended
func (s *Stack) WithLore(lines ...string) *Stack {
	c := s.Clone()
	if c == nil {
		return nil
	}
	c.Lore = append(c.Lore, lines...)
	return c
}

// DisplayName returns the custom name or falls back to the type name
func (s Stack) DisplayName() string {
	if s.Name != "" {
		return s.Name
	}
	return string(s.Type)
}
