package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies an entity for its whole lifetime.
type ID = uuid.UUID

// NewID returns a random identity for entities seeded from outside the simulation.
func NewID() ID {
	return uuid.New()
}

// DeriveID returns a stable identity for the n-th entity spawned by parent
// under the given label. Spawns inside a tick must not draw randomness, so
// children are named after their parent.
func DeriveID(parent ID, label string, n uint64) ID {
	return uuid.NewSHA1(parent, []byte(fmt.Sprintf("%s/%d", label, n)))
}

// Kind tags the concrete variant behind an Entity.
type Kind uint8

const (
	KindActor Kind = iota + 1
	KindEnemy
	KindBullet
	KindSmokeTrail
)

func (k Kind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindSmokeTrail:
		return "smoke_trail"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "actor":
		return KindActor, nil
	case "enemy":
		return KindEnemy, nil
	case "bullet":
		return KindBullet, nil
	case "smoke_trail":
		return KindSmokeTrail, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Entity is the closed set of simulated objects. Only the kinds declared in
// this package implement it; capability interfaces are checked against it.
type Entity interface {
	ID() ID
	Name() string
	Kind() Kind
	fmt.Stringer

	sealed()
}

type base struct {
	id   ID
	name string
}

func (b base) ID() ID       { return b.id }
func (b base) Name() string { return b.name }
func (base) sealed()        {}
