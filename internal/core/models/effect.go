package models

import (
	"fmt"
	"strings"
)

// Effect is a deferred change to the registry requested by an update. Effects
// are plain values: they are built during a phase and evaluated afterwards
// against whatever the registry looks like at that point. A nil Effect does
// nothing.
type Effect interface {
	fmt.Stringer
	effect()
}

// Reader is the read-only view of the registry a Conditional gets to inspect.
type Reader interface {
	Lookup(id ID) (Entity, bool)
	Entities() []Entity
}

// Spawn inserts Entity unless its ID is already taken.
type Spawn struct {
	Entity Entity
}

// Kill removes Target if present.
type Kill struct {
	Target ID
}

// Conditional decides what to do by looking at the registry when it is
// applied. Reads lists the kinds Decide looks at so the effect stays
// inspectable; Decide may return nil.
type Conditional struct {
	Name   string
	Reads  []Kind
	Decide func(r Reader) Effect
}

// Sequence applies its effects left to right.
type Sequence []Effect

func (Spawn) effect()       {}
func (Kill) effect()        {}
func (Conditional) effect() {}
func (Sequence) effect()    {}

func (s Spawn) String() string {
	if s.Entity == nil {
		return "spawn(<nil>)"
	}
	return fmt.Sprintf("spawn(%s:%s)", s.Entity.Kind(), s.Entity.ID())
}

func (k Kill) String() string {
	return fmt.Sprintf("kill(%s)", k.Target)
}

func (c Conditional) String() string {
	reads := make([]string, len(c.Reads))
	for i, k := range c.Reads {
		reads[i] = k.String()
	}
	return fmt.Sprintf("when(%s reads [%s])", c.Name, strings.Join(reads, ","))
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, e := range s {
		if e == nil {
			parts[i] = "<nil>"
			continue
		}
		parts[i] = e.String()
	}
	return strings.Join(parts, " >>> ")
}

// Then composes effects left to right. Nil entries and nested sequences are
// flattened away; Then of nothing is nil.
func Then(effects ...Effect) Effect {
	flat := Flatten(effects...)
	switch len(flat) {
	case 0:
		return nil
	case 1:
		return flat[0]
	default:
		return Sequence(flat)
	}
}

// Flatten expands sequences into their leaf effects, in application order.
// Conditionals are leaves: what they do is only known once they are applied.
func Flatten(effects ...Effect) []Effect {
	var out []Effect
	for _, e := range effects {
		switch e := e.(type) {
		case nil:
		case Sequence:
			out = append(out, Flatten(e...)...)
		default:
			out = append(out, e)
		}
	}
	return out
}

// FirstOfKind returns the first entity of kind k in registry order.
func FirstOfKind(r Reader, k Kind) (Entity, bool) {
	for _, e := range r.Entities() {
		if e.Kind() == k {
			return e, true
		}
	}
	return nil, false
}
