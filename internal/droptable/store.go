package droptable

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"dropedit/internal/item"
	"dropedit/internal/profiling"
	"dropedit/internal/ui/menu"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Store keeps a drop table in a YAML file. It is the chance editor's Source
// and Sink: committed results are written back and become the new baseline.
type Store struct {
	mu            sync.Mutex
	path          string
	defaultChance float64
	table         Table
}

// Open loads the table at path. A missing file starts an empty table.
// Slots without an entry report defaultChance.
func Open(path string, defaultChance float64) (*Store, error) {
	if defaultChance < 0 || defaultChance > 1 {
		return nil, fmt.Errorf("default chance: %w: %v", ErrBadChance, defaultChance)
	}

	s := &Store{path: path, defaultChance: defaultChance}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.table.Name = stem(path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read drop table: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.table); err != nil {
		return nil, fmt.Errorf("parse drop table %s: %w", path, err)
	}
	if err := s.table.Validate(); err != nil {
		return nil, fmt.Errorf("drop table %s: %w", path, err)
	}
	if s.table.Name == "" {
		s.table.Name = stem(path)
	}
	s.table.sortDrops()

	return s, nil
}

func stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(filepath.Ext(base))]
}

// Table returns a copy of the current table
func (s *Store) Table() Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.table
	t.Drops = make([]Entry, len(s.table.Drops))
	for i, e := range s.table.Drops {
		e.Item = *e.Item.Clone()
		t.Drops[i] = e
	}
	return t
}

func (s *Store) find(slot int) *Entry {
	for i := range s.table.Drops {
		if s.table.Drops[i].Slot == slot {
			return &s.table.Drops[i]
		}
	}
	return nil
}

// BaselineWeight returns the saved chance of a slot, or the default chance
func (s *Store) BaselineWeight(slot int) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.find(slot); e != nil {
		return e.Chance, true
	}
	return s.defaultChance, true
}

// ItemAt returns a copy of the saved item of a slot
func (s *Store) ItemAt(slot int) *item.Stack {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e := s.find(slot); e != nil {
		return e.Item.Clone()
	}
	return nil
}

// Commit replaces the entries of every reported slot and saves the file.
// Slots reported without an item are removed; unreported slots are kept.
func (s *Store) Commit(session uuid.UUID, results []menu.SlotResult) error {
	defer profiling.Track("droptable.Commit")()

	s.mu.Lock()
	defer s.mu.Unlock()

	reported := make(map[int]bool, len(results))
	for _, r := range results {
		reported[r.Slot] = true
	}

	drops := make([]Entry, 0, len(s.table.Drops))
	for _, e := range s.table.Drops {
		if !reported[e.Slot] {
			drops = append(drops, e)
		}
	}
	for _, r := range results {
		if item.IsEmpty(r.Item) {
			continue
		}
		if r.Weight < 0 || r.Weight > 1 {
			return fmt.Errorf("slot %d: %w: %v", r.Slot, ErrBadChance, r.Weight)
		}
		drops = append(drops, Entry{Slot: r.Slot, Item: *r.Item.Clone(), Chance: r.Weight})
	}

	next := s.table
	next.Drops = drops
	next.UpdatedBy = session.String()
	next.sortDrops()

	if err := write(s.path, &next); err != nil {
		return err
	}
	s.table = next

	log.Printf("drop table %q saved to %s (%d drops)", next.Name, s.path, len(next.Drops))
	return nil
}

// write saves through a temp file so a crash never leaves half a table
func write(path string, t *Table) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode drop table: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir drop table dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write drop table: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace drop table: %w", err)
	}
	return nil
}
