package menu

import (
	"errors"
	"fmt"
	"log"

	"dropedit/internal/inventory"
	"dropedit/internal/item"
	"dropedit/internal/ui/widget"

	"github.com/google/uuid"
)

// ErrCommitFailed wraps errors returned by the Sink
var ErrCommitFailed = errors.New("commit drop chances")

// Source supplies the persisted items and weights the editor starts from
type Source interface {
	// BaselineWeight must report a weight for every editable slot
	BaselineWeight(slot int) (float64, bool)
	ItemAt(slot int) *item.Stack
}

// SlotResult is the final item and weight of one editable slot.
// Item is nil when the slot was left empty.
type SlotResult struct {
	Slot   int
	Item   *item.Stack
	Weight float64
}

// Sink persists committed results. It is called once per close or mode switch.
type Sink interface {
	Commit(session uuid.UUID, results []SlotResult) error
}

// EditPolicy decides which slots the player may edit
type EditPolicy interface {
	CanEdit(slot int) bool
}

// EditPolicyFunc adapts a function to EditPolicy
type EditPolicyFunc func(slot int) bool

func (f EditPolicyFunc) CanEdit(slot int) bool { return f(slot) }

// GesturePolicy is an EditPolicy that also wants to see the click context
// when Place mode decides whether a grid click may go through.
type GesturePolicy interface {
	EditPolicy
	CanEditGesture(g Gesture) bool
}

// LoreFunc returns the annotation template for an item. The lines may
// contain {dropChance} and {quantity}.
type LoreFunc func(it *item.Stack) []string

// Host is the grid the editor draws into
type Host interface {
	// ItemAt returns what currently sits in the live grid
	ItemAt(slot int) *item.Stack
	// SetSlot redraws one slot
	SetSlot(slot int, v widget.Visual)
	// Redraw re-renders every slot through Editor.RenderSlot
	Redraw()
	SetTitle(title string)
}

// Gesture is a click as the host saw it
type Gesture struct {
	Location inventory.Location
	Slot     int
	Clicked  *item.Stack
	Cursor   *item.Stack
}

// Options configure an Editor. Zero values pick the defaults.
type Options struct {
	// Size is the whole grid including the reserved bottom row
	Size       int
	Fractional bool
	StartMode  Mode
	// StartQuantity must be part of the quantity cycle, otherwise the first one is used
	StartQuantity Quantity
	Policy        EditPolicy
	Lore          LoreFunc
}

// DefaultSize is three rows, the last one reserved for controls
const DefaultSize = 3 * inventory.RowWidth

// Editor is a container menu that lets players place items into slots and
// tune a drop chance per slot. Edits are committed to the Sink on close.
type Editor struct {
	id     uuid.UUID
	size   int
	source Source
	sink   Sink
	policy EditPolicy
	lore   LoreFunc

	host    Host
	weights *WeightStore
	modes   *ModeController

	modeButton     *widget.Button
	quantityButton *widget.Button

	committing bool
}

// NewEditor creates an editor. Open must be called before it is used.
func NewEditor(source Source, sink Sink, opts Options) *Editor {
	size := opts.Size
	if size == 0 {
		size = DefaultSize
	}
	if size%inventory.RowWidth != 0 || size < 2*inventory.RowWidth {
		panic(fmt.Errorf("editor size %d must be a multiple of %d with at least two rows", size, inventory.RowWidth))
	}

	e := &Editor{
		id:      uuid.New(),
		size:    size,
		source:  source,
		sink:    sink,
		policy:  opts.Policy,
		lore:    opts.Lore,
		weights: NewWeightStore(),
		modes:   NewModeController(opts.StartMode, opts.Fractional),
	}
	if e.policy == nil {
		e.policy = EditPolicyFunc(func(slot int) bool { return slot < e.BottomRowStart() })
	}
	if e.lore == nil {
		e.lore = DefaultLore
	}
	if opts.StartQuantity != 0 {
		e.modes.SetQuantity(opts.StartQuantity)
	}

	e.modes.finalize = e.finalizeAndCommit
	e.modes.changed = e.modeChanged

	e.modeButton = widget.NewButton(e.modeFace, func(inventory.ClickType) error {
		return e.AdvanceMode()
	})
	e.quantityButton = widget.NewButton(e.quantityFace, e.quantityClicked)

	return e
}

// Open attaches the editor to a host and draws it with fresh state
func (e *Editor) Open(h Host) {
	e.host = h
	e.weights.Reset()
	h.SetTitle(e.Title())
	h.Redraw()
	log.Printf("chance editor %s opened in %s mode", e.id, e.modes.Mode())
}

// Session identifies this editor instance
func (e *Editor) Session() uuid.UUID {
	return e.id
}

// Size returns the grid size including the bottom row
func (e *Editor) Size() int {
	return e.size
}

// BottomRowStart is the first slot of the reserved bottom row
func (e *Editor) BottomRowStart() int {
	return e.size - inventory.RowWidth
}

// ModeSlot is where the mode toggle sits
func (e *Editor) ModeSlot() int {
	return e.size - 4
}

// QuantitySlot is where the quantity toggle sits in EditWeight mode
func (e *Editor) QuantitySlot() int {
	return e.size - 6
}

func (e *Editor) Mode() Mode {
	return e.modes.Mode()
}

func (e *Editor) Quantity() Quantity {
	return e.modes.Quantity()
}

// Title reflects the current mode
func (e *Editor) Title() string {
	return "Editing " + e.modes.Mode().Key()
}

// Weight returns the edited-or-baseline weight of a slot
func (e *Editor) Weight(slot int) (float64, bool) {
	return e.weights.Get(slot, e.source.BaselineWeight)
}

// Edits returns how many slots carry uncommitted weight edits
func (e *Editor) Edits() int {
	return e.weights.Len()
}

// AdvanceMode commits the current state and switches to the next mode.
// When the commit fails the mode stays and edits are kept.
func (e *Editor) AdvanceMode() error {
	return e.modes.AdvanceMode()
}

// AdvanceQuantity moves to the next step size
func (e *Editor) AdvanceQuantity() Quantity {
	q := e.modes.AdvanceQuantity()
	e.redraw()
	return q
}

// RetreatQuantity moves to the previous step size
func (e *Editor) RetreatQuantity() Quantity {
	q := e.modes.RetreatQuantity()
	e.redraw()
	return q
}

// IsEditable reports whether a grid slot is above the bottom row and allowed by the policy
func (e *Editor) IsEditable(slot int) bool {
	return slot >= 0 && slot < e.BottomRowStart() && e.policy.CanEdit(slot)
}

func (e *Editor) modeChanged(m Mode) {
	log.Printf("chance editor %s switched to %s mode", e.id, m)
	if e.host != nil {
		e.host.SetTitle(e.Title())
		e.host.Redraw()
	}
}

func (e *Editor) quantityClicked(click inventory.ClickType) error {
	switch click {
	case inventory.ClickLeft:
		e.RetreatQuantity()
	case inventory.ClickRight:
		e.AdvanceQuantity()
	}
	return nil
}

func (e *Editor) quantityShown() bool {
	return e.modes.Mode() == ModeEditWeight && e.modes.QuantityEnabled()
}

// buttonAt returns the control occupying slot, if any
func (e *Editor) buttonAt(slot int) *widget.Button {
	if slot == e.ModeSlot() {
		return e.modeButton
	}
	if slot == e.QuantitySlot() && e.quantityShown() {
		return e.quantityButton
	}
	return nil
}

func (e *Editor) redraw() {
	if e.host != nil {
		e.host.Redraw()
	}
}

func (e *Editor) mustHost() Host {
	if e.host == nil {
		panic("chance editor used before Open")
	}
	return e.host
}
