package scoped

import (
	"github.com/zeusync/tickcore/internal/core/models"
	"github.com/zeusync/tickcore/internal/core/registry"
)

// World is a payload over the entity registry. Pending holds effects that
// were handed to this node but not applied yet. Emit, when set, is what the
// node sends on update.
type World struct {
	Registry registry.Registry
	Pending  []models.Effect
	Emit     func() []Message[World]
}

func (w World) Update() (World, []Message[World]) {
	if w.Emit == nil {
		return w, nil
	}
	return w, w.Emit()
}

// Settle folds the pending effects into the registry, oldest first.
func (w World) Settle() World {
	w.Registry = registry.ApplyAll(w.Registry, w.Pending)
	w.Pending = nil
	return w
}

// Effect wraps e as a message that applies it to the receiving registry
// straight away.
func Effect(scope Scope, e models.Effect) Message[World] {
	return Message[World]{
		Scope: scope,
		Name:  effectName(e),
		Apply: func(w World) World {
			w.Registry = registry.Apply(w.Registry, e)
			return w
		},
	}
}

// Defer wraps e as a message that queues it on the receiver's Pending list.
func Defer(scope Scope, e models.Effect) Message[World] {
	return Message[World]{
		Scope: scope,
		Name:  "defer " + effectName(e),
		Apply: func(w World) World {
			w.Pending = append(append(make([]models.Effect, 0, len(w.Pending)+1), w.Pending...), e)
			return w
		},
	}
}

// Successor wraps an updated entity as a message that puts it in place of
// its predecessor.
func Successor(scope Scope, e models.Entity) Message[World] {
	return Message[World]{
		Scope: scope,
		Name:  "replace " + e.ID().String(),
		Apply: func(w World) World {
			w.Registry = w.Registry.Replace(e)
			return w
		},
	}
}

// Deliver applies messages that escaped the root of a World tree to r, in
// the order they were produced.
func Deliver(r registry.Registry, msgs []Message[World]) registry.Registry {
	w := World{Registry: r}
	for _, m := range msgs {
		w = m.applyTo(w)
	}
	return w.Registry
}

func effectName(e models.Effect) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
