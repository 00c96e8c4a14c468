package input

import (
	"fmt"

	"github.com/zeusync/tickcore/internal/core/models"
)

// Script replays fixed batches, one per frame. Frames past the end are empty.
type Script struct {
	batches [][]models.Input
}

func NewScript(batches ...[]models.Input) *Script {
	return &Script{batches: batches}
}

// ParseScript builds a Script from event names such as "left" or "angry".
func ParseScript(batches [][]string) (*Script, error) {
	parsed := make([][]models.Input, len(batches))
	for i, names := range batches {
		events, err := parseAll(names)
		if err != nil {
			return nil, fmt.Errorf("script frame %d: %w", i+1, err)
		}
		parsed[i] = events
	}
	return NewScript(parsed...), nil
}

func (s *Script) Len() int { return len(s.batches) }

func (s *Script) Poll(frame uint64) ([]models.Input, error) {
	if frame == 0 || frame > uint64(len(s.batches)) {
		return nil, nil
	}
	return append([]models.Input(nil), s.batches[frame-1]...), nil
}

func (s *Script) Close() error { return nil }
