package scoped

import "fmt"

// Scope says which node a message is applied to.
type Scope uint8

const (
	// Own messages are applied by the parent to the child that emitted them,
	// right after that child has updated.
	Own Scope = iota
	// Parent messages are applied to the emitter's parent once all of the
	// parent's children have updated.
	Parent
	// Deep messages travel unchanged to the root and are handed to the caller.
	Deep
)

func (s Scope) String() string {
	switch s {
	case Own:
		return "own"
	case Parent:
		return "parent"
	case Deep:
		return "deep"
	default:
		return fmt.Sprintf("scope(%d)", uint8(s))
	}
}

// Message is a deferred transformation of a payload, tagged with where it applies.
type Message[P any] struct {
	Scope Scope
	Name  string
	Apply func(P) P
}

func (m Message[P]) String() string {
	return fmt.Sprintf("%s:%s", m.Scope, m.Name)
}

// applyTo runs the message against p. A message without a transform is a no-op.
func (m Message[P]) applyTo(p P) P {
	if m.Apply == nil {
		return p
	}
	return m.Apply(p)
}

// Compose joins two Deep messages into one that applies a, then b. Any other
// scope on either side is a programming error reported as ErrScopeMismatch.
func Compose[P any](a, b Message[P]) (Message[P], error) {
	if a.Scope != Deep || b.Scope != Deep {
		return Message[P]{}, fmt.Errorf("%w: compose %s with %s, both must be deep", ErrScopeMismatch, a, b)
	}
	return Message[P]{
		Scope: Deep,
		Name:  a.Name + "+" + b.Name,
		Apply: func(p P) P { return b.applyTo(a.applyTo(p)) },
	}, nil
}

// MustCompose is Compose for call sites where a mismatch is a bug.
func MustCompose[P any](a, b Message[P]) Message[P] {
	m, err := Compose(a, b)
	if err != nil {
		panic(err)
	}
	return m
}
