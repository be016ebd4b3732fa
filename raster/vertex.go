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

package raster

import (
	"slices"

	"github.com/eanders-ms/contraption-sprites-ext/num"
)

// Point is a position in screen space.
type Point[T num.Scalar[T]] struct {
	X, Y T
}

// Vertex is a rasterizer vertex: a screen position and an ordered list of
// attributes which are interpolated linearly (in screen space) across
// lines and triangles. Typical attribute lists are a single colour index,
// or a pair of texture coordinates.
type Vertex[T num.Scalar[T]] struct {
	Point[T]
	Attrs []T
}

// NewVertex returns a vertex with its own copy of attrs.
func NewVertex[T num.Scalar[T]](x, y T, attrs ...T) Vertex[T] {
	return Vertex[T]{
		Point: Point[T]{X: x, Y: y},
		Attrs: slices.Clone(attrs),
	}
}

// V returns a vertex from float64 coordinates and attributes, converting
// them to T.
func V[T num.Scalar[T]](x, y float64, attrs ...float64) Vertex[T] {
	v := Vertex[T]{
		Point: Point[T]{X: num.Of[T](x), Y: num.Of[T](y)},
		Attrs: make([]T, len(attrs)),
	}
	for i, a := range attrs {
		v.Attrs[i] = num.Of[T](a)
	}
	return v
}

// Reset clears the vertex, keeping the capacity of Attrs.
func (v *Vertex[T]) Reset() {
	v.X, v.Y = 0, 0
	v.Attrs = v.Attrs[:0]
}

// copyFrom makes v a copy of src, reusing the storage of v.Attrs.
func (v *Vertex[T]) copyFrom(src *Vertex[T]) {
	v.Point = src.Point
	v.Attrs = append(v.Attrs[:0], src.Attrs...)
}

// setStep makes v the per-step increment from v0 to v1 in n steps.
func (v *Vertex[T]) setStep(v0, v1 *Vertex[T], n int) {
	steps := num.Int[T](n)
	v.X = (v1.X - v0.X).Div(steps)
	v.Y = (v1.Y - v0.Y).Div(steps)
	v.Attrs = slices.Grow(v.Attrs[:0], len(v0.Attrs))[:len(v0.Attrs)]
	for i := range v.Attrs {
		v.Attrs[i] = (v1.Attrs[i] - v0.Attrs[i]).Div(steps)
	}
}

// add advances v by one step.
func (v *Vertex[T]) add(step *Vertex[T]) {
	v.X += step.X
	v.Y += step.Y
	for i := range v.Attrs {
		v.Attrs[i] += step.Attrs[i]
	}
}

// setSplit makes v the point on the edge t→b at height y. iy/dy is the
// fraction of the edge above v.
func (v *Vertex[T]) setSplit(t, b *Vertex[T], y T) {
	dy := b.Y - t.Y
	iy := y - t.Y
	v.Y = y
	v.X = intercept(t, b, y)
	v.Attrs = slices.Grow(v.Attrs[:0], len(t.Attrs))[:len(t.Attrs)]
	for i := range v.Attrs {
		v.Attrs[i] = t.Attrs[i] + (b.Attrs[i] - t.Attrs[i]).Mul(iy).Div(dy)
	}
}
