package input

import (
	"sync"
	"time"

	"dropedit/internal/inventory"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// DoubleClickWindow is how close two left clicks on one slot must be
const DoubleClickWindow = 300 * time.Millisecond

// ClickMapper turns raw glfw mouse events into slot click types.
// It remembers the last left click to detect double clicks.
type ClickMapper struct {
	mu sync.Mutex

	buttons map[glfw.MouseButton]inventory.MouseButton

	lastClickSlot int
	lastClickTime time.Time
}

// NewClickMapper creates a mapper with the default left/right/middle bindings
func NewClickMapper() *ClickMapper {
	m := &ClickMapper{
		buttons:       make(map[glfw.MouseButton]inventory.MouseButton),
		lastClickSlot: -1,
	}

	m.BindMouseButton(glfw.MouseButtonLeft, inventory.MouseButtonLeft)
	m.BindMouseButton(glfw.MouseButtonRight, inventory.MouseButtonRight)
	m.BindMouseButton(glfw.MouseButtonMiddle, inventory.MouseButtonMiddle)

	return m
}

// BindMouseButton maps a physical button to a slot button
func (m *ClickMapper) BindMouseButton(button glfw.MouseButton, to inventory.MouseButton) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buttons[button] = to
}

// Map returns the click type for a mouse event on slot, or false for
// releases and unbound buttons
func (m *ClickMapper) Map(slot int, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey, now time.Time) (inventory.ClickType, bool) {
	if action != glfw.Press {
		return inventory.ClickUnknown, false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	b, ok := m.buttons[button]
	if !ok {
		return inventory.ClickUnknown, false
	}

	double := false
	if b == inventory.MouseButtonLeft {
		double = slot == m.lastClickSlot && now.Sub(m.lastClickTime) < DoubleClickWindow
		m.lastClickSlot = slot
		m.lastClickTime = now
	}

	return inventory.ClickTypeOf(b, mods&glfw.ModShift != 0, double), true
}

// Reset forgets the last click, e.g. when a window closes
func (m *ClickMapper) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastClickSlot = -1
	m.lastClickTime = time.Time{}
}
