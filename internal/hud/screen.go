package hud

import (
	"dropedit/internal/inventory"
)

// Screen represents a GUI screen
type Screen interface {
	// Init initializes the screen
	Init()
	// HandleClick handles a click on a container slot (-1 for outside the window)
	HandleClick(index int, click inventory.ClickType) (bool, error)
	// Close cleans up when the screen is closed
	Close() error
	// Title is the window title
	Title() string
	// GetContainer returns the underlying container if available, or nil
	GetContainer() *inventory.Container
	// IsActive returns whether this screen is currently active and should be rendered/processed
	IsActive() bool
}
