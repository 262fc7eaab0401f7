package config

import (
	"os"
	"path/filepath"
	"testing"

	"dropedit/internal/ui/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DROPEDIT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, c.Editor.Rows)
	assert.True(t, c.Editor.Fractional)
	assert.Equal(t, "items", c.Editor.StartMode)
	assert.Equal(t, DefaultLore, c.Editor.Lore)
	assert.Equal(t, menu.DefaultLore(nil), c.Editor.Lore, "config default matches the editor's own template")
	assert.Equal(t, "drops.yml", c.Table.Path)
	assert.Equal(t, 1.0, c.Table.DefaultChance)
	assert.Zero(t, c.Roll.Seed)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `editor:
  rows: 9
  fractional: false
  start_mode: Chances
table:
  path: /tmp/boss.yml
  default_chance: 0.3
roll:
  seed: 42
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("DROPEDIT_CONFIG", path)
	t.Setenv("DROPEDIT_TABLE_DEFAULT_CHANCE", "0.75")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, MaxRows, c.Editor.Rows, "rows are clamped")
	assert.False(t, c.Editor.Fractional)
	assert.Equal(t, "chances", c.Editor.StartMode)
	assert.Equal(t, "/tmp/boss.yml", c.Table.Path)
	assert.Equal(t, 0.75, c.Table.DefaultChance)
	assert.Equal(t, uint64(42), c.Roll.Seed)
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("editor: [nope"), 0o644))
	t.Setenv("DROPEDIT_CONFIG", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv("DROPEDIT_CONFIG", path)

	cfg := Config{
		Editor: EditorConfig{Rows: 4, Fractional: true, StartMode: "chances", Lore: []string{"{dropChance}"}},
		Table:  TableConfig{Path: "loot.yml", DefaultChance: 0.5},
	}
	require.NoError(t, Save(cfg))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg.Editor, got.Editor)
	assert.Equal(t, cfg.Table, got.Table)
}

func TestNormalize(t *testing.T) {
	c := Config{Editor: EditorConfig{Rows: 0, StartMode: "weird"}, Table: TableConfig{DefaultChance: -1}}
	c.normalize()

	assert.Equal(t, MinRows, c.Editor.Rows)
	assert.Equal(t, "items", c.Editor.StartMode)
	assert.Equal(t, DefaultLore, c.Editor.Lore)
	assert.Equal(t, 0.0, c.Table.DefaultChance)
}
