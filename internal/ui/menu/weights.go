package menu

import (
	"fmt"
	"math"
)

// BaselineFunc returns the persisted weight of a slot, ok is false when there is none
type BaselineFunc func(slot int) (weight float64, ok bool)

// SlotWeight is a resolved weight for one slot
type SlotWeight struct {
	Slot   int
	Weight float64
}

// WeightStore keeps edited weights on top of the baseline.
// A slot has an entry only once it was edited.
type WeightStore struct {
	edited map[int]float64
}

func NewWeightStore() *WeightStore {
	return &WeightStore{edited: make(map[int]float64)}
}

// Get returns the edited weight, or the baseline if the slot was never edited
func (s *WeightStore) Get(slot int, baseline BaselineFunc) (float64, bool) {
	if w, ok := s.edited[slot]; ok {
		return w, true
	}
	return baseline(slot)
}

// Apply adds delta to the current weight, clamps it to [0, 1] and stores it
func (s *WeightStore) Apply(slot int, delta float64, baseline BaselineFunc) float64 {
	cur, ok := s.Get(slot, baseline)
	if !ok {
		panic(fmt.Errorf("no baseline weight for slot %d", slot))
	}

	w := clampWeight(cur + delta)
	s.edited[slot] = w
	return w
}

// ResolveAll returns the edited-or-baseline weight of every slot, in the given order.
// Every slot must have a baseline.
func (s *WeightStore) ResolveAll(slots []int, baseline BaselineFunc) []SlotWeight {
	out := make([]SlotWeight, 0, len(slots))
	for _, slot := range slots {
		w, ok := s.Get(slot, baseline)
		if !ok {
			panic(fmt.Errorf("no baseline weight for slot %d", slot))
		}
		out = append(out, SlotWeight{Slot: slot, Weight: w})
	}
	return out
}

// Edited reports whether the slot has an edited weight
func (s *WeightStore) Edited(slot int) bool {
	_, ok := s.edited[slot]
	return ok
}

// Len returns the number of edited slots
func (s *WeightStore) Len() int {
	return len(s.edited)
}

// Reset drops every edit
func (s *WeightStore) Reset() {
	clear(s.edited)
}

// clampWeight bounds w to [0, 1]. Rounding to 6 places stops repeated
// 0.1 steps from drifting (0.2+0.1+0.1+0.1 is exactly 0.5).
func clampWeight(w float64) float64 {
	w = math.Max(0, math.Min(1, w))
	return math.Round(w*1e6) / 1e6
}
