package gapped

import "sync"

// Pool manages reusable segment lists. Lists are returned when a feature
// set's zoom changes, so repeated zooming reuses the same storage.
//
// Usage:
//
//	pool := gapped.NewPool()
//	segs := pool.Get()
//	defer pool.Put(segs)
//	gapped.Decompose(segs, f, view, threshold)
type Pool struct {
	pool sync.Pool
}

// NewPool creates a new segment pool.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return NewSegments()
			},
		},
	}
}

// Get retrieves an empty segment list from the pool.
func (p *Pool) Get() *Segments {
	s := p.pool.Get().(*Segments)
	s.Reset()
	return s
}

// Put returns a segment list to the pool. It must not be used afterwards.
func (p *Pool) Put(s *Segments) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}
