package generic

import "sync"

// Pool is a typed sync.Pool. Values are passed through reset on the way
// back in, so Get never hands out stale state.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(T) T
}

func NewPool[T any](generate func() T, reset func(T) T) *Pool[T] {
	if reset == nil {
		reset = func(v T) T { return v }
	}
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return generate()
			},
		},
		reset: reset,
	}
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(value T) {
	p.pool.Put(p.reset(value))
}
