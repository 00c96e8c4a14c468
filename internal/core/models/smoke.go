package models

import "fmt"

// SmokeTrailFrames is the animation a trail plays before it disappears.
var SmokeTrailFrames = []Symbol{"b", "u", "l", "l", "e", "t"}

var (
	_ Patient              = SmokeTrail{}
	_ ProvidesRenderObject = SmokeTrail{}
)

// SmokeTrail is a short-lived animation. A fresh trail sits at frame -1 and
// shows its first frame after its first update.
type SmokeTrail struct {
	base
	frame    int
	position int
}

func NewSmokeTrail(position int) SmokeTrail {
	return NewSmokeTrailWithID(NewID(), position)
}

func NewSmokeTrailWithID(id ID, position int) SmokeTrail {
	return SmokeTrail{base: base{id: id, name: "SmokeTrail"}, frame: -1, position: position}
}

func (s SmokeTrail) Kind() Kind    { return KindSmokeTrail }
func (s SmokeTrail) Frame() int    { return s.frame }
func (s SmokeTrail) Position() int { return s.position }

func (s SmokeTrail) NextFrame() SmokeTrail {
	s.frame++
	return s
}

// UpdatePatient advances one frame, or asks to be killed once the last frame
// has been shown.
func (s SmokeTrail) UpdatePatient() (Entity, Effect) {
	if s.frame == len(SmokeTrailFrames)-1 {
		return s, Kill{Target: s.id}
	}
	return s.NextFrame(), nil
}

func (s SmokeTrail) RenderObject() (Symbol, int) {
	return SmokeTrailFrames[Clamp(s.frame, 0, len(SmokeTrailFrames)-1)], s.position
}

func (s SmokeTrail) String() string {
	return fmt.Sprintf("smoke@%d frame=%d", s.position, s.frame)
}
