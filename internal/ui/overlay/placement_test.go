package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacePanel(t *testing.T) {
	tests := []struct {
		name         string
		anchorRow    int
		panelHeight  int
		screenHeight int
		want         Direction
	}{
		{"fits below near top", 2, 10, 40, DirectionBelow},
		{"flips above near bottom", 35, 10, 40, DirectionAbove},
		{"exactly fits below", 29, 10, 40, DirectionBelow},
		{"one row short below", 30, 10, 40, DirectionAbove},
		{"fits neither, more room above", 25, 30, 40, DirectionAbove},
		{"fits neither, more room below", 10, 30, 40, DirectionBelow},
		{"fits neither, equal room stays below", 20, 30, 41, DirectionBelow},
		{"anchor on top row", 0, 5, 24, DirectionBelow},
		{"anchor on bottom row", 23, 5, 24, DirectionAbove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlacePanel(tt.anchorRow, tt.panelHeight, tt.screenHeight)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "below", DirectionBelow.String())
	assert.Equal(t, "above", DirectionAbove.String())
}
