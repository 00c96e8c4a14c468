package models

import "fmt"

// FireThreshold is the smallest |dx| in one tick that makes an Actor shoot.
const FireThreshold = 3

var (
	_ Movable              = Actor{}
	_ Agent                = Actor{}
	_ ProvidesRenderObject = Actor{}
)

// Actor is the player-steered entity.
type Actor struct {
	base
	sprite   Symbol
	position int
	fired    uint64
}

func NewActor(name string, position int, sprite Symbol) Actor {
	return NewActorWithID(NewID(), name, position, sprite)
}

func NewActorWithID(id ID, name string, position int, sprite Symbol) Actor {
	if sprite == "" {
		sprite = FaceNeutral
	}
	return Actor{base: base{id: id, name: name}, sprite: sprite, position: position}
}

func (a Actor) Kind() Kind     { return KindActor }
func (a Actor) Position() int  { return a.position }
func (a Actor) Sprite() Symbol { return a.sprite }
func (a Actor) WithSprite(s Symbol) Actor {
	a.sprite = s
	return a
}

func (a Actor) WithPosition(x int) Movable {
	a.position = x
	return a
}

func (a Actor) moved(dx int) Actor {
	a.position = ClampToTrack(a.position + dx)
	return a
}

// UpdateAgent moves the actor by ctl.DX, adopts ctl.Face when present and
// fires a Bullet from its new position when |DX| reaches FireThreshold.
func (a Actor) UpdateAgent(ctl Control) (Entity, Effect) {
	next := a.moved(ctl.DX)
	if ctl.HasFace() {
		next = next.WithSprite(ctl.Face)
	}

	if abs(ctl.DX) < FireThreshold {
		return next, nil
	}

	bullet := NewBulletWithID(DeriveID(a.id, "bullet", a.fired), next.position, FacingOf(ctl.DX))
	next.fired++
	return next, Spawn{Entity: bullet}
}

func (a Actor) RenderObject() (Symbol, int) {
	return a.sprite, a.position
}

func (a Actor) String() string {
	return fmt.Sprintf("actor(%s)@%d %s fired=%d", a.name, a.position, a.sprite, a.fired)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
