package widget

import (
	"dropedit/internal/inventory"
	"dropedit/internal/item"
)

// Face is the look of a button at one moment
type Face struct {
	Icon  item.Type
	Title string
	Lore  []string
	Glow  bool
}

// Button is a clickable control occupying one slot
type Button struct {
	Face    func() Face
	OnClick func(click inventory.ClickType) error
}

func NewButton(face func() Face, onClick func(click inventory.ClickType) error) *Button {
	return &Button{Face: face, OnClick: onClick}
}

// Visual builds the slot visual from the current face
func (b *Button) Visual() Visual {
	f := b.Face()
	icon := item.Stack{Type: f.Icon, Count: 1, Name: f.Title, Lore: f.Lore}

	tint := ControlColor
	if f.Glow {
		tint = GlowColor.Mul(1.2) // brighten when active
	}

	return Visual{
		Kind:   KindControl,
		Item:   &icon,
		Tint:   tint,
		Glow:   f.Glow,
		Locked: true,
	}
}

// HandleClick forwards the click and reports whether anything listened
func (b *Button) HandleClick(click inventory.ClickType) (bool, error) {
	if b.OnClick == nil {
		return false, nil
	}
	return true, b.OnClick(click)
}
