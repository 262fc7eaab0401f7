package widget

import (
	"dropedit/internal/item"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind says what a slot visual represents
type Kind int

const (
	KindEmpty Kind = iota
	KindItem
	KindAnnotated
	KindFiller
	KindControl
)

var (
	ItemColor      = mgl32.Vec3{1, 1, 1}
	AnnotatedColor = mgl32.Vec3{0.9, 0.8, 0.3}
	FillerColor    = mgl32.Vec3{0.35, 0.35, 0.35}
	ControlColor   = mgl32.Vec3{0.3, 0.3, 0.3}
	GlowColor      = mgl32.Vec3{0.2, 0.5, 0.2}
)

// Visual is everything the host needs to draw one slot
type Visual struct {
	Kind   Kind
	Item   *item.Stack
	Tint   mgl32.Vec3
	Glow   bool
	Locked bool // the player may not take the item out
}

// Empty is the visual of a slot with nothing in it
func Empty() Visual {
	return Visual{Kind: KindEmpty}
}

// Filler is the neutral pane used for unused bottom row slots
func Filler() Visual {
	pane := item.Stack{Type: item.TypeGlassPane, Count: 1, Name: " "}
	return Visual{Kind: KindFiller, Item: &pane, Tint: FillerColor, Locked: true}
}

// ItemVisual shows a stack as is
func ItemVisual(s *item.Stack) Visual {
	return Visual{Kind: KindItem, Item: s, Tint: ItemColor}
}

// Annotated shows a locked copy of a stack carrying extra description lines
func Annotated(s *item.Stack, lines []string) Visual {
	return Visual{
		Kind:   KindAnnotated,
		Item:   s.WithLore(lines...),
		Tint:   AnnotatedColor,
		Locked: true,
	}
}

// IsEmpty reports whether nothing is drawn
func (v Visual) IsEmpty() bool {
	return v.Kind == KindEmpty || item.IsEmpty(v.Item)
}
