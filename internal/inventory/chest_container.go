package inventory

// NewChestContainer creates the window shown when a chest grid is opened:
// chest slots first, then the player's main storage and hotbar.
func NewChestContainer(chest *Chest, inv *Inventory) *Container {
	c := NewContainer(chest.Size())
	rows := chest.Size() / RowWidth

	// Chest grid, 18px cells below the title bar
	for i := 0; i < chest.Size(); i++ {
		x := 8 + (i%RowWidth)*18
		y := 18 + (i/RowWidth)*18
		c.AddSlot(NewSlot(chest, i, x, y))
	}

	playerTop := 18 + rows*18 + 14

	// Main storage, 3 rows (inventory indices 9-35)
	for row := 0; row < 3; row++ {
		for col := 0; col < RowWidth; col++ {
			index := col + (row+1)*RowWidth
			c.AddSlot(NewSlot(inv, index, 8+col*18, playerTop+row*18))
		}
	}

	// Hotbar (inventory indices 0-8)
	for i := 0; i < HotbarSize; i++ {
		c.AddSlot(NewSlot(inv, i, 8+i*18, playerTop+58))
	}

	return c
}
