package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemyPatrolBoundary(t *testing.T) {
	right := NewEnemy("Enemy", 62, Right)
	next, effect := right.UpdatePatient()
	assert.Nil(t, effect)
	enemy := next.(Enemy)
	assert.Equal(t, 63, enemy.Position())
	assert.Equal(t, Left, enemy.Facing())
	assert.Equal(t, right.ID(), enemy.ID())

	left := NewEnemy("Enemy", 1, Left)
	next, _ = left.UpdatePatient()
	enemy = next.(Enemy)
	assert.Equal(t, 0, enemy.Position())
	assert.Equal(t, Right, enemy.Facing())
}

func TestEnemyStaysOnTrack(t *testing.T) {
	var e Entity = NewEnemy("Enemy", 30, Right)
	for i := 0; i < 500; i++ {
		e, _ = e.(Patient).UpdatePatient()
		pos := e.(Movable).Position()
		require.True(t, OnTrack(pos), "position %d left the track at step %d", pos, i)
	}

	// a stray enemy seeded on the edge facing outwards is clamped and turned
	stray, _ := NewEnemy("Enemy", 63, Right).UpdatePatient()
	assert.Equal(t, 63, stray.(Enemy).Position())
	assert.Equal(t, Left, stray.(Enemy).Facing())
}

func TestActorThresholdFire(t *testing.T) {
	actor := NewActor("Player", 10, FaceNeutral)
	next, effect := actor.UpdateAgent(Control{DX: 5, Face: FaceAngry})

	moved := next.(Actor)
	assert.Equal(t, 15, moved.Position())
	assert.Equal(t, FaceAngry, moved.Sprite())
	assert.Equal(t, actor.ID(), moved.ID())

	spawns := Flatten(effect)
	require.Len(t, spawns, 1)
	spawn, ok := spawns[0].(Spawn)
	require.True(t, ok)
	bullet, ok := spawn.Entity.(Bullet)
	require.True(t, ok)
	assert.Equal(t, 15, bullet.Position())
	assert.Equal(t, Right, bullet.Facing())
}

func TestActorSubThresholdNoFire(t *testing.T) {
	actor := NewActor("Player", 10, FaceNeutral)
	next, effect := actor.UpdateAgent(Control{DX: 1})

	assert.Equal(t, 11, next.(Actor).Position())
	assert.Equal(t, FaceNeutral, next.(Actor).Sprite())
	assert.Nil(t, effect)
}

func TestActorClampsAndFiresLeft(t *testing.T) {
	actor := NewActor("Player", 2, FaceNeutral)
	next, effect := actor.UpdateAgent(Control{DX: -4})
	assert.Equal(t, 0, next.(Actor).Position())

	bullet := effect.(Spawn).Entity.(Bullet)
	assert.Equal(t, 0, bullet.Position())
	assert.Equal(t, Left, bullet.Facing())
}

func TestActorBulletIDsAreDerived(t *testing.T) {
	actor := NewActor("Player", 10, FaceNeutral)

	first, e1 := actor.UpdateAgent(Control{DX: 3})
	_, e1again := actor.UpdateAgent(Control{DX: 3})
	_, e2 := first.(Actor).UpdateAgent(Control{DX: 3})

	id1 := e1.(Spawn).Entity.ID()
	assert.Equal(t, id1, e1again.(Spawn).Entity.ID(), "same input must spawn the same id")
	assert.NotEqual(t, id1, e2.(Spawn).Entity.ID(), "successive shots need distinct ids")
}

func TestBulletAdvancesAndTrails(t *testing.T) {
	bullet := NewBullet(20, Right)
	next, effect := bullet.UpdateAgent(Control{DX: -3, Face: FaceAngry})

	assert.Equal(t, 21, next.(Bullet).Position())
	effects := Flatten(effect)
	require.Len(t, effects, 1)
	trail := effects[0].(Spawn).Entity.(SmokeTrail)
	assert.Equal(t, 20, trail.Position())
	assert.Equal(t, -1, trail.Frame())
}

func TestBulletDespawnsOffTrack(t *testing.T) {
	for _, tc := range []struct {
		name   string
		bullet Bullet
		trail  int
	}{
		{"right edge", NewBullet(63, Right), 63},
		{"left edge", NewBullet(0, Left), 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, effect := tc.bullet.UpdateAgent(Control{})
			effects := Flatten(effect)
			require.Len(t, effects, 2)

			kill, ok := effects[0].(Kill)
			require.True(t, ok)
			assert.Equal(t, tc.bullet.ID(), kill.Target)

			spawn, ok := effects[1].(Spawn)
			require.True(t, ok)
			trail, ok := spawn.Entity.(SmokeTrail)
			require.True(t, ok)
			assert.Equal(t, tc.trail, trail.Position())
		})
	}
}

func TestBulletFlusteredSchedulesRicochet(t *testing.T) {
	bullet := NewBullet(20, Right)
	next, effect := bullet.UpdateAgent(Control{Face: FaceFlustered})

	assert.Equal(t, 20, next.(Bullet).Position(), "flustered bullets hold still")
	effects := Flatten(effect)
	require.Len(t, effects, 2)
	cond, ok := effects[0].(Conditional)
	require.True(t, ok)
	assert.Equal(t, "ricochet", cond.Name)
	assert.Equal(t, []Kind{KindActor}, cond.Reads)

	// heading away from the player: bounce
	bounced := Flatten(cond.Decide(fakeReader{NewActor("Player", 10, "")}))
	require.Len(t, bounced, 2)
	assert.Equal(t, Kill{Target: bullet.ID()}, bounced[0])
	back := bounced[1].(Spawn).Entity.(Bullet)
	assert.Equal(t, bullet.ID(), back.ID())
	assert.Equal(t, Left, back.Facing())
	assert.Equal(t, 19, back.Position())

	// heading towards the player: nothing
	assert.Nil(t, cond.Decide(fakeReader{NewActor("Player", 40, "")}))
	// no player at all: nothing
	assert.Nil(t, cond.Decide(fakeReader{}))
}

func TestFlusteredBulletAtEdgeTrailsOnTrack(t *testing.T) {
	for _, tc := range []struct {
		name   string
		bullet Bullet
	}{
		{"left edge facing right", NewBullet(TrackMin, Right)},
		{"right edge facing left", NewBullet(TrackMax, Left)},
		{"left edge facing left", NewBullet(TrackMin, Left)},
		{"right edge facing right", NewBullet(TrackMax, Right)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			next, effect := tc.bullet.UpdateAgent(Control{Face: FaceFlustered})
			assert.Equal(t, tc.bullet.Position(), next.(Bullet).Position())

			var trails int
			for _, e := range Flatten(effect) {
				spawn, ok := e.(Spawn)
				if !ok {
					continue
				}
				trail, ok := spawn.Entity.(SmokeTrail)
				require.True(t, ok)
				assert.Equal(t, tc.bullet.Position(), trail.Position())
				trails++
			}
			assert.Equal(t, 1, trails)
		})
	}
}

func TestFacedTurned(t *testing.T) {
	for _, f := range []Faced{NewEnemy("Enemy", 7, Right), NewBullet(7, Left)} {
		turned := f.Turned()
		assert.Equal(t, f.Facing().Flip(), turned.Facing())
		assert.Equal(t, f.ID(), turned.ID())
		assert.Equal(t, f.Kind(), turned.Kind())
		assert.Equal(t, 7, turned.(Movable).Position())
		assert.Equal(t, f.Facing(), turned.Turned().Facing())
	}
}

func TestSmokeTrailAnimatesThenDies(t *testing.T) {
	var e Entity = NewSmokeTrail(5)
	for frame := 0; frame < len(SmokeTrailFrames); frame++ {
		var effect Effect
		e, effect = e.(Patient).UpdatePatient()
		assert.Nil(t, effect)
		sym, pos := e.(ProvidesRenderObject).RenderObject()
		assert.Equal(t, SmokeTrailFrames[frame], sym)
		assert.Equal(t, 5, pos)
	}

	last, effect := e.(Patient).UpdatePatient()
	assert.Equal(t, Kill{Target: e.ID()}, effect)
	assert.Equal(t, len(SmokeTrailFrames)-1, last.(SmokeTrail).Frame())
}

func TestThenFlattensAndDropsNil(t *testing.T) {
	id := NewID()
	assert.Nil(t, Then())
	assert.Nil(t, Then(nil, nil))
	assert.Equal(t, Kill{Target: id}, Then(nil, Kill{Target: id}))

	seq := Then(Kill{Target: id}, Then(nil, Kill{Target: id}, Kill{Target: id}))
	assert.Len(t, seq.(Sequence), 3)
	assert.Contains(t, seq.String(), " >>> ")
}

func TestSequenceStringWithNil(t *testing.T) {
	id := NewID()
	seq := Sequence{nil, Kill{Target: id}, nil}
	assert.NotPanics(t, func() { _ = seq.String() })
	assert.Equal(t, "<nil> >>> kill("+id.String()+") >>> <nil>", seq.String())
}

func TestParsers(t *testing.T) {
	for _, in := range []Input{InputMoveLeft, InputMoveRight, InputFaceThinking, InputFaceAngry, InputFaceFlustered} {
		parsed, err := ParseInput(in.String())
		require.NoError(t, err)
		assert.Equal(t, in, parsed)
	}
	_, err := ParseInput("jump")
	assert.ErrorIs(t, err, ErrUnknownInput)

	for _, k := range []Kind{KindActor, KindEnemy, KindBullet, KindSmokeTrail} {
		parsed, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err = ParseKind("dragon")
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = ParseFacing("up")
	assert.ErrorIs(t, err, ErrUnknownFacing)
}

type fakeReader []Entity

func (f fakeReader) Lookup(id ID) (Entity, bool) {
	for _, e := range f {
		if e.ID() == id {
			return e, true
		}
	}
	return nil, false
}

func (f fakeReader) Entities() []Entity { return f }
