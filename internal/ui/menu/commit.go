package menu

import (
	"fmt"
	"log"

	"dropedit/internal/item"
)

// Close commits every editable slot to the Sink. The host calls it when the
// window closes.
func (e *Editor) Close() error {
	return e.finalizeAndCommit()
}

// finalizeAndCommit runs on close and before every mode switch. The weight
// store is only read while results are collected and is reset after the sink
// accepted them.
func (e *Editor) finalizeAndCommit() error {
	if e.committing {
		panic("chance editor commit re-entered")
	}
	e.committing = true
	defer func() { e.committing = false }()

	results := e.collect()
	if err := e.sink.Commit(e.id, results); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitFailed, err)
	}

	log.Printf("chance editor %s committed %d slots (%d edited) in %s mode",
		e.id, len(results), e.weights.Len(), e.modes.Mode())
	e.weights.Reset()
	return nil
}

// collect resolves item and weight for every editable slot above the bottom row,
// in slot order. In Place mode the item comes from the live grid, otherwise
// from the source since the grid only holds annotated copies.
func (e *Editor) collect() []SlotResult {
	var results []SlotResult

	for slot := 0; slot < e.BottomRowStart(); slot++ {
		if !e.policy.CanEdit(slot) {
			continue
		}

		var it *item.Stack
		if e.modes.Mode() == ModePlace {
			it = e.mustHost().ItemAt(slot)
		} else {
			it = e.source.ItemAt(slot)
		}
		if item.IsEmpty(it) {
			it = nil
		}

		w, ok := e.Weight(slot)
		if !ok {
			panic(fmt.Errorf("drop chance missing on slot %d for %v", slot, it))
		}

		results = append(results, SlotResult{Slot: slot, Item: it.Clone(), Weight: w})
	}

	return results
}
