package models

import "fmt"

const (
	BulletSpriteRight Symbol = "👉"
	BulletSpriteLeft  Symbol = "👈"
)

var (
	_ Movable              = Bullet{}
	_ Faced                = Bullet{}
	_ Agent                = Bullet{}
	_ ProvidesRenderObject = Bullet{}
)

// Bullet flies one cell per tick and leaves a SmokeTrail behind it. It is
// removed once it leaves the track.
type Bullet struct {
	base
	position int
	facing   Facing
	trails   uint64
}

func NewBullet(position int, facing Facing) Bullet {
	return NewBulletWithID(NewID(), position, facing)
}

func NewBulletWithID(id ID, position int, facing Facing) Bullet {
	return Bullet{base: base{id: id, name: "Bullet"}, position: position, facing: facing}
}

func (b Bullet) Kind() Kind     { return KindBullet }
func (b Bullet) Position() int  { return b.position }
func (b Bullet) Facing() Facing { return b.facing }

func (b Bullet) WithPosition(x int) Movable {
	b.position = x
	return b
}

func (b Bullet) Turned() Faced {
	return b.turned()
}

func (b Bullet) turned() Bullet {
	b.facing = b.facing.Flip()
	return b
}

func (b Bullet) MovedForward() Bullet {
	b.position += b.facing.Sign()
	return b
}

// UpdateAgent ignores movement input. A flustered face holds the bullet in
// place and schedules a ricochet check; any other input moves it forward.
// Either way a SmokeTrail is spawned on the cell the bullet started the tick
// on, and a bullet that is off the track kills itself.
func (b Bullet) UpdateAgent(ctl Control) (Entity, Effect) {
	next := b
	if ctl.Face != FaceFlustered {
		next = b.MovedForward()
	}

	trail := NewSmokeTrailWithID(DeriveID(b.id, "smoke", b.trails), b.position)
	next.trails++

	var branch Effect
	if ctl.Face == FaceFlustered {
		branch = next.ricochet()
	}

	if !OnTrack(next.position) {
		return next, Then(branch, Kill{Target: b.id}, Spawn{Entity: trail})
	}
	return next, Then(branch, Spawn{Entity: trail})
}

// ricochet bounces the bullet back when it is heading away from the first
// Actor in the registry at the time the effect is applied.
func (b Bullet) ricochet() Effect {
	return Conditional{
		Name:  "ricochet",
		Reads: []Kind{KindActor},
		Decide: func(r Reader) Effect {
			player, ok := FirstOfKind(r, KindActor)
			if !ok {
				return nil
			}
			mover, ok := player.(Movable)
			if !ok {
				return nil
			}
			if sign(b.position-mover.Position()) != b.facing.Sign() {
				return nil
			}
			return Then(Kill{Target: b.id}, Spawn{Entity: b.turned().MovedForward()})
		},
	}
}

func (b Bullet) RenderObject() (Symbol, int) {
	if b.facing == Right {
		return BulletSpriteRight, b.position
	}
	return BulletSpriteLeft, b.position
}

func (b Bullet) String() string {
	return fmt.Sprintf("bullet@%d %s trails=%d", b.position, b.facing, b.trails)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
