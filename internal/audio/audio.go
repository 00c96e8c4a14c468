package audio

import (
	"github.com/zeusync/tickcore/internal/core/observability/log"
	"github.com/zeusync/tickcore/internal/core/projection"
)

// Sink plays a frame's sounds.
type Sink interface {
	Play(playables []projection.Playable) error
}

// Nop drops every playable and only records how many it got.
type Nop struct {
	logger log.Log
}

func NewNop(logger log.Log) *Nop {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Nop{logger: logger.With(log.String("component", "audio"))}
}

func (n *Nop) Play(playables []projection.Playable) error {
	n.logger.Debug("play", log.Int("playables", len(playables)))
	return nil
}
