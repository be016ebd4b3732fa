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

import "github.com/eanders-ms/contraption-sprites-ext/num"

// EdgeEquation is the linear function A·x + B·y + C of one triangle edge.
// It is zero on the line through the edge and positive on the side where
// the triangle lies.
//
// See the lecture notes at
// https://www.cs.unc.edu/xcms/courses/comp770-s07/Lecture08.pdf
type EdgeEquation[T num.Scalar[T]] struct {
	A, B, C T

	// Tie decides whether points exactly on the edge are inside.
	// Init sets it by the top-left rule: the edge owns its boundary
	// pixels when it is a left edge (A > 0) or a horizontal top edge
	// (A == 0, B > 0). The same edge seen from the neighbouring triangle
	// has (A, B) negated, so exactly one of the two owns it.
	Tie bool
}

// Init sets e to the edge from p0 to p1. The line passes through the
// midpoint of the edge.
func (e *EdgeEquation[T]) Init(p0, p1 Point[T]) {
	e.A = p0.Y - p1.Y
	e.B = p1.X - p0.X
	e.C = -(e.A.Mul(p0.X+p1.X) + e.B.Mul(p0.Y+p1.Y)).Div(num.Int[T](2))
	e.Tie = e.A > 0 || e.A == 0 && e.B > 0
}

// Evaluate returns the value of the edge function at (x, y).
func (e *EdgeEquation[T]) Evaluate(x, y T) T {
	return e.A.Mul(x) + e.B.Mul(y) + e.C
}

// TestValue reports whether an edge function value is inside.
func (e *EdgeEquation[T]) TestValue(v T) bool {
	return v > 0 || v == 0 && e.Tie
}

// TestPoint reports whether (x, y) is on the inner side of the edge.
func (e *EdgeEquation[T]) TestPoint(x, y T) bool {
	return e.TestValue(e.Evaluate(x, y))
}

// StepX returns the value one unit to the right of the point with value v.
func (e *EdgeEquation[T]) StepX(v T) T {
	return v + e.A
}

// StepXScaled returns the value n units to the right.
func (e *EdgeEquation[T]) StepXScaled(v T, n int) T {
	return v + e.A.MulInt(n)
}

// StepY returns the value one unit below the point with value v.
func (e *EdgeEquation[T]) StepY(v T) T {
	return v + e.B
}

// StepYScaled returns the value n units below.
func (e *EdgeEquation[T]) StepYScaled(v T, n int) T {
	return v + e.B.MulInt(n)
}

// ParameterEquation interpolates one vertex attribute across a triangle.
// Evaluate returns the attribute value at any point of the triangle; the
// Step methods advance it like those of [EdgeEquation].
type ParameterEquation[T num.Scalar[T]] struct {
	A, B, C T
}

// Init sets up the interpolant for attribute values p0, p1, p2 at the
// three vertices. e0, e1 and e2 are the edges opposite the vertices and
// area2 is the sum of their constant terms.
//
// Edge i is area2 at vertex i and zero at the other two vertices, so the
// weighted sum divided by area2 reproduces p_i at vertex i.
func (p *ParameterEquation[T]) Init(p0, p1, p2, area2 T, e0, e1, e2 *EdgeEquation[T]) {
	p.A = (p0.Mul(e0.A) + p1.Mul(e1.A) + p2.Mul(e2.A)).Div(area2)
	p.B = (p0.Mul(e0.B) + p1.Mul(e1.B) + p2.Mul(e2.B)).Div(area2)
	p.C = (p0.Mul(e0.C) + p1.Mul(e1.C) + p2.Mul(e2.C)).Div(area2)
}

// Evaluate returns the interpolated value at (x, y).
func (p *ParameterEquation[T]) Evaluate(x, y T) T {
	return p.A.Mul(x) + p.B.Mul(y) + p.C
}

// StepX returns the value one unit to the right.
func (p *ParameterEquation[T]) StepX(v T) T {
	return v + p.A
}

// StepXScaled returns the value n units to the right.
func (p *ParameterEquation[T]) StepXScaled(v T, n int) T {
	return v + p.A.MulInt(n)
}

// StepY returns the value one unit below.
func (p *ParameterEquation[T]) StepY(v T) T {
	return v + p.B
}

// StepYScaled returns the value n units below.
func (p *ParameterEquation[T]) StepYScaled(v T, n int) T {
	return v + p.B.MulInt(n)
}
