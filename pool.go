package uievents

// listPool hands out reusable scratch slices. After warmup, Acquire/Release
// are zero-alloc. Callers release with defer so the slice returns to the
// pool on every exit path, including a recovered handler panic.
type listPool[T any] struct {
	free        [][]T
	outstanding int
}

// Acquire returns an empty slice with spare capacity.
func (p *listPool[T]) Acquire() []T {
	p.outstanding++
	if n := len(p.free); n > 0 {
		s := p.free[n-1]
		p.free = p.free[:n-1]
		return s
	}
	return make([]T, 0, 16)
}

// Release returns s to the pool. Elements are zeroed so the pool does not
// keep handlers or surfaces alive.
func (p *listPool[T]) Release(s []T) {
	if s == nil {
		return
	}
	p.outstanding--
	clear(s[:cap(s)])
	p.free = append(p.free, s[:0])
}

// Outstanding returns the number of acquired slices not yet released.
func (p *listPool[T]) Outstanding() int { return p.outstanding }
