package menu

import (
	"fmt"
	"strings"

	"dropedit/internal/item"
	"dropedit/internal/ui/widget"
)

// DefaultLore is the annotation shown under items while editing chances
func DefaultLore(*item.Stack) []string {
	return []string{
		"",
		"Drop chance: {dropChance}",
		"",
		"   (Mouse click)",
		"  < -{quantity}    +{quantity} >",
	}
}

// FormatPercent renders a weight as a percentage with two decimals
func FormatPercent(w float64) string {
	return fmt.Sprintf("%.2f%%", 100*w)
}

// RenderSlot decides what a slot shows. It only reads state.
func (e *Editor) RenderSlot(slot int) widget.Visual {
	if b := e.buttonAt(slot); b != nil {
		return b.Visual()
	}

	if it := e.source.ItemAt(slot); !item.IsEmpty(it) {
		if e.modes.Mode() == ModePlace || !e.IsEditable(slot) {
			return widget.ItemVisual(it.Clone())
		}
		return widget.Annotated(it, e.annotation(slot, it))
	}

	if slot >= e.BottomRowStart() {
		return widget.Filler()
	}
	return widget.Empty()
}

func (e *Editor) annotation(slot int, it *item.Stack) []string {
	w, ok := e.Weight(slot)
	if !ok {
		panic(fmt.Errorf("no baseline weight for editable slot %d", slot))
	}

	r := strings.NewReplacer(
		"{dropChance}", FormatPercent(w),
		"{quantity}", e.modes.Quantity().PercentText(),
	)

	tmpl := e.lore(it)
	lines := make([]string, len(tmpl))
	for i, line := range tmpl {
		lines[i] = r.Replace(line)
	}
	return lines
}

func (e *Editor) modeFace() widget.Face {
	m := e.modes.Mode()
	icon := item.TypeChest
	if m == ModeEditWeight {
		icon = item.TypeGoldNugget
	}
	return widget.Face{
		Icon:  icon,
		Title: "Editing " + m.Key(),
		Lore: []string{
			"",
			"Click to edit " + strings.ToLower(m.Next().Key()) + ".",
		},
		Glow: m == ModeEditWeight,
	}
}

func (e *Editor) quantityFace() widget.Face {
	return widget.Face{
		Icon:  item.TypeString,
		Title: "Edit Quantity: " + e.modes.Quantity().PercentText(),
		Lore: []string{
			"",
			"< Left click to decrease",
			"> Right click to increase",
		},
	}
}
