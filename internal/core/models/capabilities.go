package models

import "fmt"

// The track is a single row of cells.
const (
	TrackWidth = 64
	TrackMin   = 0
	TrackMax   = TrackWidth - 1
)

// Symbol is what a sprite looks like on the track. One glyph, usually an emoji.
type Symbol string

// Clamp limits x to the closed range [lo, hi].
func Clamp(x, lo, hi int) int {
	return min(max(x, lo), hi)
}

// ClampToTrack limits a position to [TrackMin, TrackMax].
func ClampToTrack(x int) int {
	return Clamp(x, TrackMin, TrackMax)
}

// OnTrack reports whether x lies within [TrackMin, TrackMax].
func OnTrack(x int) bool {
	return x >= TrackMin && x <= TrackMax
}

type Facing uint8

const (
	Left Facing = iota
	Right
)

func (f Facing) Flip() Facing {
	if f == Left {
		return Right
	}
	return Left
}

// Sign is +1 for Right and -1 for Left.
func (f Facing) Sign() int {
	if f == Right {
		return +1
	}
	return -1
}

func (f Facing) String() string {
	if f == Right {
		return "right"
	}
	return "left"
}

func ParseFacing(s string) (Facing, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("%w: %q", ErrUnknownFacing, s)
	}
}

// FacingOf returns the facing that matches the sign of dx. Zero counts as left.
func FacingOf(dx int) Facing {
	if dx > 0 {
		return Right
	}
	return Left
}

// Movable entities occupy a cell on the track.
type Movable interface {
	Entity
	Position() int
	WithPosition(x int) Movable
}

// Faced entities point left or right. Turned returns the entity facing the
// other way, with everything else unchanged.
type Faced interface {
	Entity
	Facing() Facing
	Turned() Faced
}

// Control is the per-tick input handed to every Agent.
type Control struct {
	DX   int
	Face Symbol
}

// HasFace reports whether a face change was requested this tick.
func (c Control) HasFace() bool {
	return c.Face != ""
}

// Agent entities are driven by external input. The returned entity must keep
// the receiver's ID; the effect may be nil.
type Agent interface {
	Entity
	UpdateAgent(ctl Control) (Entity, Effect)
}

// Patient entities advance on their own. Same contract as Agent.
type Patient interface {
	Entity
	UpdatePatient() (Entity, Effect)
}

// ProvidesRenderObject entities show up on the track.
type ProvidesRenderObject interface {
	Entity
	RenderObject() (Symbol, int)
}
