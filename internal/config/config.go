package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"dropedit/internal/ui/menu"

	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	Editor EditorConfig
	Table  TableConfig
	Roll   RollConfig
}

// EditorConfig holds chance editor settings
type EditorConfig struct {
	Rows       int
	Fractional bool
	StartMode  string `mapstructure:"start_mode"`
	Lore       []string
}

// TableConfig points at the drop table file
type TableConfig struct {
	Path          string
	DefaultChance float64 `mapstructure:"default_chance"`
}

// RollConfig seeds test rolls; zero picks a random seed
type RollConfig struct {
	Seed uint64
}

const (
	MinRows = 2
	MaxRows = 6
)

// DefaultLore is the annotation template shown while editing chances
var DefaultLore = menu.DefaultLore(nil)

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("editor.rows", 3)
	v.SetDefault("editor.fractional", true)
	v.SetDefault("editor.start_mode", "items")
	v.SetDefault("editor.lore", DefaultLore)
	v.SetDefault("table.path", "drops.yml")
	v.SetDefault("table.default_chance", 1.0)
	v.SetDefault("roll.seed", 0)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("DROPEDIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Path returns where the config file lives. DROPEDIT_CONFIG overrides it.
func Path() string {
	if p := os.Getenv("DROPEDIT_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "dropedit", "config.yaml")
}

// Load reads configuration from file and env. A missing file is fine.
func Load() (Config, error) {
	v := newViper()
	v.SetConfigFile(Path())

	if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.normalize()
	return c, nil
}

func isNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf) || errors.Is(err, fs.ErrNotExist)
}

func (c *Config) normalize() {
	// Clamp to grids the host can show
	if c.Editor.Rows < MinRows {
		c.Editor.Rows = MinRows
	}
	if c.Editor.Rows > MaxRows {
		c.Editor.Rows = MaxRows
	}

	c.Editor.StartMode = strings.ToLower(strings.TrimSpace(c.Editor.StartMode))
	if c.Editor.StartMode != "chances" {
		c.Editor.StartMode = "items"
	}

	if len(c.Editor.Lore) == 0 {
		c.Editor.Lore = DefaultLore
	}

	c.Table.DefaultChance = max(0, min(1, c.Table.DefaultChance))
}

// Save writes the provided config to disk, creating the config directory if needed
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("editor.rows", cfg.Editor.Rows)
	v.Set("editor.fractional", cfg.Editor.Fractional)
	v.Set("editor.start_mode", cfg.Editor.StartMode)
	v.Set("editor.lore", cfg.Editor.Lore)
	v.Set("table.path", cfg.Table.Path)
	v.Set("table.default_chance", cfg.Table.DefaultChance)
	v.Set("roll.seed", cfg.Roll.Seed)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
