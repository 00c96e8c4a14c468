package registry

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/pkg/sequence"
)

var _ models.Reader = Registry{}

// Registry is an immutable, insertion-ordered collection of entities keyed by
// ID. Every operation returns a new value; the receiver is never modified, so
// a Registry can be shared freely. The zero value is an empty registry.
type Registry struct {
	order []models.ID
	byID  map[models.ID]models.Entity
}

// New builds a registry by spawning entities in order.
func New(entities ...models.Entity) Registry {
	r := Registry{}
	for _, e := range entities {
		r = r.Spawn(e)
	}
	return r
}

func (r Registry) Len() int {
	return len(r.order)
}

// Lookup returns the entity stored under id.
func (r Registry) Lookup(id models.ID) (models.Entity, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// Contains reports whether id is present.
func (r Registry) Contains(id models.ID) bool {
	_, ok := r.byID[id]
	return ok
}

// Entities returns the entities in registry order. The slice is a copy.
func (r Registry) Entities() []models.Entity {
	out := make([]models.Entity, len(r.order))
	for i, id := range r.order {
		out[i] = r.byID[id]
	}
	return out
}

// Iter walks the entities in registry order.
func (r Registry) Iter() *sequence.Iterator[models.Entity] {
	return sequence.From(r.Entities())
}

// Spawn appends e. If e's ID is already present the registry is returned
// unchanged: the first write wins. A nil entity is ignored.
func (r Registry) Spawn(e models.Entity) Registry {
	if e == nil || r.Contains(e.ID()) {
		return r
	}

	next := r.clone(len(r.order) + 1)
	next.order = append(next.order, e.ID())
	next.byID[e.ID()] = e
	return next
}

// Kill removes id. Killing an absent id returns the registry unchanged.
func (r Registry) Kill(id models.ID) Registry {
	if !r.Contains(id) {
		return r
	}

	next := Registry{
		order: make([]models.ID, 0, len(r.order)-1),
		byID:  make(map[models.ID]models.Entity, len(r.byID)-1),
	}
	for _, existing := range r.order {
		if existing == id {
			continue
		}
		next.order = append(next.order, existing)
		next.byID[existing] = r.byID[existing]
	}
	return next
}

// Replace swaps in a new value for an entity that is already present,
// keeping its position in the order. Unknown ids are ignored.
func (r Registry) Replace(e models.Entity) Registry {
	if e == nil || !r.Contains(e.ID()) {
		return r
	}

	next := r.clone(len(r.order))
	next.byID[e.ID()] = e
	return next
}

// Equal reports value equality: same ids in the same order holding equal values.
func (r Registry) Equal(other Registry) bool {
	if len(r.order) != len(other.order) {
		return false
	}
	for i, id := range r.order {
		if other.order[i] != id {
			return false
		}
		if r.byID[id] != other.byID[id] {
			return false
		}
	}
	return true
}

// Fingerprint hashes the ordered contents. Equal registries have equal
// fingerprints.
func (r Registry) Fingerprint() uint64 {
	h := xxhash.New()
	for _, id := range r.order {
		_, _ = h.Write(id[:])
		_, _ = h.WriteString(r.byID[id].String())
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

func (r Registry) String() string {
	return fmt.Sprintf("registry(%d entities, %016x)", r.Len(), r.Fingerprint())
}

func (r Registry) clone(capacity int) Registry {
	next := Registry{
		order: make([]models.ID, len(r.order), capacity),
		byID:  make(map[models.ID]models.Entity, capacity),
	}
	copy(next.order, r.order)
	for id, e := range r.byID {
		next.byID[id] = e
	}
	return next
}
