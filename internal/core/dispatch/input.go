package dispatch

import (
	"time"

	"github.com/zeusync/tickcore/internal/core/models"
)

// TickInput is everything the outside world hands to one tick.
type TickInput struct {
	Events []models.Input
	// Elapsed is accepted for future variable-step support and ignored today.
	Elapsed time.Duration
}

// ParseInput reduces a batch of events to the control every Agent receives:
// the signed sum of all moves, and the last face change if there was one.
func ParseInput(events []models.Input) models.Control {
	var ctl models.Control
	for _, ev := range events {
		ctl.DX += ev.Delta()
		if face, ok := ev.Face(); ok {
			ctl.Face = face
		}
	}
	return ctl
}
