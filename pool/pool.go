// contraption-sprites-ext - a 2D software rasterizer
// Copyright (C) 2026  The contraption-sprites-ext authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package pool implements a recycling allocator for the per-draw scratch
// objects of the rasterizer.
//
// A Pool is a LIFO free list: the most recently freed instance is handed
// out first, and a new instance is constructed only when the list is empty.
// Pools are not safe for concurrent use.
package pool

import "fmt"

// Resetter is the constraint for pooled values. Instances are usually
// pointers; Reset must return the instance to a state where it can be
// handed out again.
type Resetter interface {
	comparable
	Reset()
}

// Pool recycles instances of T.
type Pool[T Resetter] struct {
	// Debug enables tracking of live instances. When set, freeing an
	// instance twice, or freeing an instance the pool did not allocate,
	// panics. Debug must not be changed while instances are outstanding.
	Debug bool

	newFn       func() T
	free        []T
	outstanding int
	live        map[T]struct{}
}

// New returns an empty pool which constructs instances with newFn.
// Debug defaults to true when built with the "pooldebug" tag.
func New[T Resetter](newFn func() T) *Pool[T] {
	return &Pool[T]{
		Debug: debugDefault,
		newFn: newFn,
	}
}

// Alloc returns a ready-to-use instance. Alloc never fails.
func (p *Pool[T]) Alloc() T {
	var x T
	if n := len(p.free); n > 0 {
		x = p.free[n-1]
		var zero T
		p.free[n-1] = zero
		p.free = p.free[:n-1]
	} else {
		x = p.newFn()
	}
	p.outstanding++

	if p.Debug {
		if p.live == nil {
			p.live = make(map[T]struct{})
		}
		p.live[x] = struct{}{}
	}
	return x
}

// Free resets x and returns it to the pool. x must not be used again
// until a later Alloc returns it.
func (p *Pool[T]) Free(x T) {
	if p.Debug {
		if _, ok := p.live[x]; !ok {
			panic(fmt.Sprintf("pool: free of %T which is not allocated (double free?)", x))
		}
		delete(p.live, x)
	}

	x.Reset()
	p.free = append(p.free, x)
	p.outstanding--
}

// Live reports whether x is currently allocated from p. It always returns
// true unless Debug is set.
func (p *Pool[T]) Live(x T) bool {
	if !p.Debug {
		return true
	}
	_, ok := p.live[x]
	return ok
}

// Len returns the number of instances waiting in the free list.
func (p *Pool[T]) Len() int {
	return len(p.free)
}

// Outstanding returns the number of instances allocated and not yet freed.
func (p *Pool[T]) Outstanding() int {
	return p.outstanding
}
