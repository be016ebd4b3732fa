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

// TriangleEquation holds everything needed to rasterize one triangle:
// the three edge functions, twice the signed area, and one interpolant
// per vertex attribute.
type TriangleEquation[T num.Scalar[T]] struct {
	// E0, E1 and E2 are the edges opposite v0, v1 and v2.
	E0, E1, E2 EdgeEquation[T]

	// Area2 is twice the signed area. It is positive for the accepted
	// winding (clockwise on a y-down screen).
	Area2 T

	Params []ParameterEquation[T]
}

// Init sets up the equation for the triangle v0, v1, v2.
// It returns false, without building the interpolants, if the triangle is
// degenerate or back-facing (Area2 <= 0); such triangles must not be
// rasterized.
func (t *TriangleEquation[T]) Init(v0, v1, v2 *Vertex[T]) bool {
	t.E0.Init(v1.Point, v2.Point)
	t.E1.Init(v2.Point, v0.Point)
	t.E2.Init(v0.Point, v1.Point)

	t.Area2 = t.E0.C + t.E1.C + t.E2.C
	t.Params = t.Params[:0]
	if t.Area2 <= 0 {
		return false
	}

	n := len(v0.Attrs)
	t.Params = slices.Grow(t.Params, n)[:n]
	for i := range t.Params {
		t.Params[i].Init(v0.Attrs[i], v1.Attrs[i], v2.Attrs[i], t.Area2, &t.E0, &t.E1, &t.E2)
	}
	return true
}

// Reset releases the edges and interpolants, keeping the capacity of
// Params for the next triangle.
func (t *TriangleEquation[T]) Reset() {
	t.E0 = EdgeEquation[T]{}
	t.E1 = EdgeEquation[T]{}
	t.E2 = EdgeEquation[T]{}
	t.Area2 = 0
	t.Params = t.Params[:0]
}

// TestPoint reports whether (x, y) passes all three edge tests.
func (t *TriangleEquation[T]) TestPoint(x, y T) bool {
	return t.E0.TestPoint(x, y) && t.E1.TestPoint(x, y) && t.E2.TestPoint(x, y)
}
