package droptable_test

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"dropedit/internal/droptable"
	"dropedit/internal/item"
	"dropedit/internal/ui/menu"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `name: zombie_king
drops:
  - slot: 4
    item: {type: diamond, count: 2, name: Crown Jewel}
    chance: 0.25
  - slot: 0
    item: {type: bone, count: 8}
    chance: 1
`

func writeSample(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drops.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpenMissingFileIsEmpty(t *testing.T) {
	s, err := droptable.Open(filepath.Join(t.TempDir(), "boss.yml"), 0.5)
	require.NoError(t, err)

	assert.Equal(t, "boss", s.Table().Name)
	assert.Nil(t, s.ItemAt(0))
	w, ok := s.BaselineWeight(3)
	assert.True(t, ok)
	assert.Equal(t, 0.5, w)
}

func TestOpenReadsEntries(t *testing.T) {
	s, err := droptable.Open(writeSample(t, sample), 1)
	require.NoError(t, err)

	tb := s.Table()
	assert.Equal(t, "zombie_king", tb.Name)
	require.Len(t, tb.Drops, 2)
	assert.Equal(t, 0, tb.Drops[0].Slot, "drops are kept in slot order")

	it := s.ItemAt(4)
	require.NotNil(t, it)
	assert.Equal(t, "Crown Jewel", it.Name)
	assert.Equal(t, 2, it.Count)

	w, _ := s.BaselineWeight(4)
	assert.Equal(t, 0.25, w)

	// Callers get copies
	it.Name = "changed"
	assert.Equal(t, "Crown Jewel", s.ItemAt(4).Name)
}

func TestOpenRejectsBadTables(t *testing.T) {
	_, err := droptable.Open(writeSample(t, "drops:\n  - slot: 1\n    item: {type: bone, count: 1}\n    chance: 1.5\n"), 1)
	assert.ErrorIs(t, err, droptable.ErrBadChance)

	_, err = droptable.Open(writeSample(t, "drops:\n  - slot: 1\n    item: {type: bone, count: 1}\n  - slot: 1\n    item: {type: bone, count: 1}\n"), 1)
	assert.ErrorContains(t, err, "listed twice")

	_, err = droptable.Open(writeSample(t, "drops: [oops"), 1)
	assert.Error(t, err)

	_, err = droptable.Open(filepath.Join(t.TempDir(), "x.yml"), 2)
	assert.ErrorIs(t, err, droptable.ErrBadChance)
}

func TestCommitWritesAndReloads(t *testing.T) {
	path := writeSample(t, sample)
	s, err := droptable.Open(path, 1)
	require.NoError(t, err)

	emerald := item.NewStack("emerald", 3)
	session := uuid.New()
	err = s.Commit(session, []menu.SlotResult{
		{Slot: 0, Item: nil, Weight: 1},
		{Slot: 2, Item: &emerald, Weight: 0.4},
	})
	require.NoError(t, err)

	// Slot 0 was cleared, slot 4 was not reported and stays
	assert.Nil(t, s.ItemAt(0))
	assert.NotNil(t, s.ItemAt(4))
	w, _ := s.BaselineWeight(2)
	assert.Equal(t, 0.4, w)

	reloaded, err := droptable.Open(path, 1)
	require.NoError(t, err)
	tb := reloaded.Table()
	assert.Equal(t, session.String(), tb.UpdatedBy)
	require.Len(t, tb.Drops, 2)
	assert.Equal(t, 2, tb.Drops[0].Slot)
	assert.Equal(t, item.Type("emerald"), tb.Drops[0].Item.Type)
	assert.Equal(t, 4, tb.Drops[1].Slot)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestCommitRejectsBadWeight(t *testing.T) {
	s, err := droptable.Open(writeSample(t, sample), 1)
	require.NoError(t, err)

	bone := item.NewStack("bone", 1)
	err = s.Commit(uuid.New(), []menu.SlotResult{{Slot: 0, Item: &bone, Weight: 1.2}})
	assert.ErrorIs(t, err, droptable.ErrBadChance)

	// Nothing changed in memory
	w, _ := s.BaselineWeight(0)
	assert.Equal(t, 1.0, w)
}

func TestRoll(t *testing.T) {
	tb := droptable.Table{Drops: []droptable.Entry{
		{Slot: 0, Item: item.NewStack("bone", 1), Chance: 1},
		{Slot: 1, Item: item.NewStack("dirt", 1), Chance: 0},
		{Slot: 2, Item: item.NewStack("diamond", 1), Chance: 0.5},
	}}

	r := rand.New(rand.NewPCG(1, 2))
	diamonds := 0
	for range 1000 {
		drops := tb.Roll(r)
		require.NotEmpty(t, drops)
		assert.Equal(t, item.Type("bone"), drops[0].Type)
		for _, d := range drops {
			assert.NotEqual(t, item.Type("dirt"), d.Type)
			if d.Type == "diamond" {
				diamonds++
			}
		}
	}
	assert.InDelta(t, 500, diamonds, 80)
}
