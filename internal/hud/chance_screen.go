package hud

import (
	"fmt"
	"log"

	"dropedit/internal/inventory"
	"dropedit/internal/item"
	"dropedit/internal/profiling"
	"dropedit/internal/ui/menu"
	"dropedit/internal/ui/widget"
)

// ChanceScreen shows a chance editor on top of a chest grid plus the player's
// inventory. It is the editor's Host: redraws write visuals into the chest so
// that Place mode edits real items.
type ChanceScreen struct {
	Editor    *menu.Editor
	Chest     *inventory.Chest
	Inventory *inventory.Inventory
	Container *inventory.Container

	title   string
	visuals []widget.Visual
	active  bool
}

var _ menu.Host = (*ChanceScreen)(nil)
var _ Screen = (*ChanceScreen)(nil)

func NewChanceScreen(editor *menu.Editor, inv *inventory.Inventory) *ChanceScreen {
	chest := inventory.NewChest(editor.Size() / inventory.RowWidth)

	s := &ChanceScreen{
		Editor:    editor,
		Chest:     chest,
		Inventory: inv,
		Container: inventory.NewChestContainer(chest, inv),
		visuals:   make([]widget.Visual, chest.Size()),
	}
	// Slots the editor does not commit must never gain or lose items
	s.Container.Filter = func(index int) bool {
		return editor.Mode() == menu.ModePlace && editor.IsEditable(index)
	}
	return s
}

// Init opens the editor, which draws every slot
func (s *ChanceScreen) Init() {
	s.active = true
	s.Editor.Open(s)
}

// ItemAt implements menu.Host
func (s *ChanceScreen) ItemAt(slot int) *item.Stack {
	return s.Chest.GetItem(slot)
}

// SetSlot implements menu.Host
func (s *ChanceScreen) SetSlot(slot int, v widget.Visual) {
	if slot < 0 || slot >= len(s.visuals) {
		return
	}
	s.visuals[slot] = v
	s.Chest.SetItem(slot, v.Item.Clone())
}

// Redraw implements menu.Host
func (s *ChanceScreen) Redraw() {
	defer profiling.Track("hud.Redraw")()

	for slot := range s.visuals {
		s.SetSlot(slot, s.Editor.RenderSlot(slot))
	}
}

// SetTitle implements menu.Host
func (s *ChanceScreen) SetTitle(title string) {
	s.title = title
}

func (s *ChanceScreen) Title() string {
	return s.title
}

// Visual returns what a chest slot shows. In Place mode a slot the player
// changed shows the live item instead of the last render.
func (s *ChanceScreen) Visual(slot int) widget.Visual {
	if slot < 0 || slot >= len(s.visuals) {
		return widget.Empty()
	}
	v := s.visuals[slot]
	live := s.Chest.GetItem(slot)
	if v.Locked || sameStack(v.Item, live) {
		return v
	}
	if item.IsEmpty(live) {
		return widget.Empty()
	}
	return widget.ItemVisual(live)
}

func sameStack(a, b *item.Stack) bool {
	if item.IsEmpty(a) || item.IsEmpty(b) {
		return item.IsEmpty(a) == item.IsEmpty(b)
	}
	return a.Count == b.Count && a.IsItemEqual(*b)
}

// Info is the help text for the current mode
func (s *ChanceScreen) Info() []string {
	return s.Editor.Info()
}

// HandleClick routes a click through the editor and applies it to the
// container when the editor lets it through
func (s *ChanceScreen) HandleClick(index int, click inventory.ClickType) (bool, error) {
	if !s.active {
		return false, nil
	}

	g := menu.Gesture{
		Location: s.Container.Location(index),
		Slot:     index,
		Cursor:   s.Container.CursorStack,
	}
	if slot := s.Container.GetSlot(index); slot != nil {
		g.Clicked = slot.GetStack()
	}

	out, err := s.Editor.Dispatch(g, click)
	if err != nil {
		return true, fmt.Errorf("slot %d: %w", index, err)
	}

	switch out {
	case menu.OutcomePassThrough:
		return s.Container.SlotClick(index, click) != inventory.ActionNothing, nil
	case menu.OutcomeBlocked:
		return false, nil
	}
	return true, nil
}

// Close commits the editor and hands the cursor stack back to the player
func (s *ChanceScreen) Close() error {
	if !s.active {
		return nil
	}

	if err := s.Editor.Close(); err != nil {
		return err
	}
	s.active = false
	s.Chest.Clear()

	if cursor := s.Container.CursorStack; cursor != nil {
		s.Container.CursorStack = nil
		if !s.Inventory.AddItem(cursor) {
			log.Printf("inventory full, dropped %d %s", cursor.Count, cursor.DisplayName())
		}
	}
	return nil
}

// GetContainer implements Screen
func (s *ChanceScreen) GetContainer() *inventory.Container {
	return s.Container
}

// IsActive implements Screen
func (s *ChanceScreen) IsActive() bool {
	return s.active
}
