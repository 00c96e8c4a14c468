package models

import "fmt"

const EnemySprite Symbol = "😈"

var (
	_ Movable              = Enemy{}
	_ Faced                = Enemy{}
	_ Patient              = Enemy{}
	_ ProvidesRenderObject = Enemy{}
)

// Enemy patrols the track, turning around at either end.
type Enemy struct {
	base
	position int
	facing   Facing
}

func NewEnemy(name string, position int, facing Facing) Enemy {
	return NewEnemyWithID(NewID(), name, position, facing)
}

func NewEnemyWithID(id ID, name string, position int, facing Facing) Enemy {
	return Enemy{base: base{id: id, name: name}, position: position, facing: facing}
}

func (e Enemy) Kind() Kind     { return KindEnemy }
func (e Enemy) Position() int  { return e.position }
func (e Enemy) Facing() Facing { return e.facing }

func (e Enemy) WithPosition(x int) Movable {
	e.position = x
	return e
}

func (e Enemy) Turned() Faced {
	return e.turned()
}

func (e Enemy) turned() Enemy {
	e.facing = e.facing.Flip()
	return e
}

// UpdatePatient steps forward once and turns around if that step landed
// exactly on TrackMin or TrackMax.
func (e Enemy) UpdatePatient() (Entity, Effect) {
	next := e
	next.position = ClampToTrack(e.position + e.facing.Sign())
	if next.position == TrackMin || next.position == TrackMax {
		next = next.turned()
	}
	return next, nil
}

func (e Enemy) RenderObject() (Symbol, int) {
	return EnemySprite, e.position
}

func (e Enemy) String() string {
	return fmt.Sprintf("enemy(%s)@%d %s", e.name, e.position, e.facing)
}
