package statusbar

// GetHints returns the keybinding hints for the given state
func GetHints(state State) string {
	switch state {
	case StateBrowse:
		return "Tab: next field  Enter: open  q: quit"
	case StateSingle:
		return "Type to search  ↑/↓: navigate  Enter: select  Esc: cancel"
	case StateMulti:
		return "Type to search  Tab: toggle  Enter: confirm  Esc: cancel"
	default:
		return ""
	}
}
