package droptable

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"

	"dropedit/internal/item"
)

// ErrBadChance is returned for chances outside [0, 1]
var ErrBadChance = errors.New("drop chance out of range")

// Entry is one item of a drop table and how likely it drops
type Entry struct {
	Slot   int        `yaml:"slot"`
	Item   item.Stack `yaml:"item"`
	Chance float64    `yaml:"chance"`
}

// Table is the on-disk drop table
type Table struct {
	Name      string  `yaml:"name"`
	UpdatedBy string  `yaml:"updated_by,omitempty"`
	Drops     []Entry `yaml:"drops"`
}

// Validate checks chances, slots and items
func (t *Table) Validate() error {
	seen := make(map[int]bool, len(t.Drops))
	for _, e := range t.Drops {
		if e.Slot < 0 {
			return fmt.Errorf("negative slot %d", e.Slot)
		}
		if seen[e.Slot] {
			return fmt.Errorf("slot %d listed twice", e.Slot)
		}
		seen[e.Slot] = true

		if e.Chance < 0 || e.Chance > 1 {
			return fmt.Errorf("slot %d: %w: %v", e.Slot, ErrBadChance, e.Chance)
		}
		if item.IsEmpty(&e.Item) {
			return fmt.Errorf("slot %d has no item", e.Slot)
		}
	}
	return nil
}

func (t *Table) sortDrops() {
	sort.Slice(t.Drops, func(i, j int) bool { return t.Drops[i].Slot < t.Drops[j].Slot })
}

// Roll picks the drops for one kill: every entry drops independently when a
// uniform draw lands below its chance.
func (t *Table) Roll(r *rand.Rand) []item.Stack {
	var out []item.Stack
	for _, e := range t.Drops {
		if r.Float64() < e.Chance {
			out = append(out, *e.Item.Clone())
		}
	}
	return out
}
