package menu

import (
	"fmt"

	"dropedit/internal/inventory"
	"dropedit/internal/item"
)

// Outcome tells the host what became of a click
type Outcome int

const (
	// OutcomeBlocked means the click must be cancelled
	OutcomeBlocked Outcome = iota
	// OutcomePassThrough means the host should apply its normal slot click
	OutcomePassThrough
	// OutcomeControl means a control button handled the click
	OutcomeControl
	// OutcomeWeightEdited means a slot weight changed
	OutcomeWeightEdited
)

// IsGestureAllowed reports whether the host may move items for this click.
// Nothing moves while chances are edited.
func (e *Editor) IsGestureAllowed(g Gesture) bool {
	if e.modes.Mode() == ModeEditWeight {
		return false
	}
	if g.Location != inventory.LocationMenu {
		return true
	}
	if !e.canEditGesture(g) {
		return false
	}
	return g.Slot < e.BottomRowStart()
}

func (e *Editor) canEditGesture(g Gesture) bool {
	if gp, ok := e.policy.(GesturePolicy); ok {
		return gp.CanEditGesture(g)
	}
	return e.policy.CanEdit(g.Slot)
}

// Dispatch routes a click: controls first, then pass-through in Place mode,
// then weight edits in EditWeight mode.
func (e *Editor) Dispatch(g Gesture, click inventory.ClickType) (Outcome, error) {
	if e.committing {
		panic("chance editor received a click while committing")
	}

	if g.Location == inventory.LocationMenu {
		if b := e.buttonAt(g.Slot); b != nil {
			_, err := b.HandleClick(click)
			return OutcomeControl, err
		}
	}

	if e.IsGestureAllowed(g) {
		return OutcomePassThrough, nil
	}

	if e.modes.Mode() == ModeEditWeight && g.Location == inventory.LocationMenu &&
		e.IsEditable(g.Slot) && !item.IsEmpty(g.Clicked) {
		if e.OnGesture(g.Slot, inventory.ActionNothing, click, g.Clicked) {
			return OutcomeWeightEdited, nil
		}
	}

	return OutcomeBlocked, nil
}

// OnGesture applies a weight step to an editable slot in EditWeight mode and
// redraws it. The host only calls it for clicks the grid blocked, so a missing
// clicked item is a bug in the caller. action is what the grid would have done.
// It reports whether the weight changed.
func (e *Editor) OnGesture(slot int, action inventory.ClickAction, click inventory.ClickType, clicked *item.Stack) bool {
	if e.modes.Mode() != ModeEditWeight || !e.IsEditable(slot) {
		return false
	}
	if item.IsEmpty(clicked) {
		panic(fmt.Errorf("weight gesture on slot %d without a clicked item (action %d)", slot, action))
	}

	delta, ok := StepFor(e.modes.Quantity(), click)
	if !ok {
		return false
	}

	e.weights.Apply(slot, delta, e.source.BaselineWeight)
	e.mustHost().SetSlot(slot, e.RenderSlot(slot))
	return true
}

// ClickItem is the single item click entry point without click context.
// The chance editor needs the click type, so reaching it is a bug.
func (e *Editor) ClickItem(slot int, clicked *item.Stack) {
	panic(fmt.Errorf("unsupported call: ClickItem on slot %d, use Dispatch", slot))
}
