package config

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/internal/core/registry"
)

// worldNamespace seeds the identities of configured entities so the same
// world file always produces the same registry.
var worldNamespace = uuid.MustParse("5f0c7e3a-9b1d-4c2e-8a6f-2d4b7e9c1a30")

// Registry builds the seed registry in declaration order.
func (w WorldConfig) Registry() (registry.Registry, error) {
	entities := make([]models.Entity, 0, len(w.Entities))

	for i, spec := range w.Entities {
		e, err := spec.build(models.DeriveID(worldNamespace, spec.Name, uint64(i)))
		if err != nil {
			return registry.Registry{}, fmt.Errorf("world.entities[%d]: %w", i, err)
		}
		entities = append(entities, e)
	}

	return registry.New(entities...), nil
}

func (s EntitySpec) build(id models.ID) (models.Entity, error) {
	kind, err := models.ParseKind(s.Kind)
	if err != nil {
		return nil, err
	}
	if !models.OnTrack(s.Position) {
		return nil, fmt.Errorf("%w: %d", ErrEntityOutsideTrack, s.Position)
	}

	switch kind {
	case models.KindActor:
		name := s.Name
		if name == "" {
			name = "Actor"
		}
		return models.NewActorWithID(id, name, s.Position, models.Symbol(s.Sprite)), nil
	case models.KindEnemy:
		facing, err := s.facing()
		if err != nil {
			return nil, err
		}
		name := s.Name
		if name == "" {
			name = "Enemy"
		}
		return models.NewEnemyWithID(id, name, s.Position, facing), nil
	case models.KindBullet:
		facing, err := s.facing()
		if err != nil {
			return nil, err
		}
		return models.NewBulletWithID(id, s.Position, facing), nil
	default:
		return models.NewSmokeTrailWithID(id, s.Position), nil
	}
}

// facing defaults to right when unset.
func (s EntitySpec) facing() (models.Facing, error) {
	if s.Facing == "" {
		return models.Right, nil
	}
	return models.ParseFacing(s.Facing)
}
