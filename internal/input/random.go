package input

import (
	"math/rand/v2"
	"sync"

	"github.com/zeusync/tickcore/internal/core/models"
)

var randomFaces = []models.Input{models.InputFaceThinking, models.InputFaceAngry, models.InputFaceFlustered}

// Random presses nothing, left or right with equal odds each frame. One
// frame in ten repeats the arrow enough times to fire, and one in eight adds
// a face key.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (r *Random) Poll(uint64) ([]models.Input, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var events []models.Input
	switch r.rng.IntN(3) {
	case 1:
		events = append(events, models.InputMoveLeft)
	case 2:
		events = append(events, models.InputMoveRight)
	}

	if len(events) > 0 && r.rng.IntN(10) == 0 {
		for len(events) < models.FireThreshold {
			events = append(events, events[0])
		}
	}
	if r.rng.IntN(8) == 0 {
		events = append(events, randomFaces[r.rng.IntN(len(randomFaces))])
	}
	return events, nil
}

func (r *Random) Close() error { return nil }
