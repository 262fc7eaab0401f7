package hud

import (
	"dropedit/internal/inventory"
)

// NullScreen is a null object pattern implementation of Screen interface
type NullScreen struct{}

// Init implements Screen
func (s *NullScreen) Init() {}

// HandleClick implements Screen
func (s *NullScreen) HandleClick(index int, click inventory.ClickType) (bool, error) {
	return false, nil
}

// Close implements Screen
func (s *NullScreen) Close() error { return nil }

// Title implements Screen
func (s *NullScreen) Title() string { return "" }

// GetContainer implements Screen
func (s *NullScreen) GetContainer() *inventory.Container {
	return nil
}

// IsActive implements Screen
func (s *NullScreen) IsActive() bool {
	return false
}
