package menu

// Info is the help text for the current mode
func (e *Editor) Info() []string {
	if e.modes.Mode() == ModePlace {
		return []string{
			"This menu allows you to drop",
			"items to this container.",
			"",
			"Simply drag and drop items",
			"from your inventory here.",
		}
	}
	return []string{
		"This menu allows you to edit drop",
		"chances for items in this container.",
		"",
		"Right or left click on items",
		"to adjust their drop chance.",
	}
}
