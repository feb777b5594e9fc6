package overlay

// Direction says which side of its anchor a dropdown panel opens on.
type Direction int

const (
	// DirectionBelow opens the panel under the anchor row
	DirectionBelow Direction = iota
	// DirectionAbove opens the panel over the anchor row
	DirectionAbove
)

// String returns a human-readable direction name
func (d Direction) String() string {
	if d == DirectionAbove {
		return "above"
	}
	return "below"
}

// PlacePanel decides whether a panel of panelHeight rows opens below or above
// the anchor at anchorRow on a screen of screenHeight rows. The panel opens
// below whenever it fits there; it flips above only when the space below is
// too small and the space above is larger.
func PlacePanel(anchorRow, panelHeight, screenHeight int) Direction {
	below := screenHeight - anchorRow - 1
	above := anchorRow

	if below >= panelHeight {
		return DirectionBelow
	}
	if above > below {
		return DirectionAbove
	}
	return DirectionBelow
}
