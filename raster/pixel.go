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

// PixelData is the interpolated state at one pixel, handed to
// [PixelShader.DrawPixel].
type PixelData[T num.Scalar[T]] struct {
	X, Y  int
	Attrs []T
}

// InitFromVertex sets p to the pixel containing v, with v's attributes.
func (p *PixelData[T]) InitFromVertex(v *Vertex[T]) {
	p.X = v.X.Floor()
	p.Y = v.Y.Floor()
	p.Attrs = append(p.Attrs[:0], v.Attrs...)
}

// InitFromTriangle evaluates all attributes of eqn at (x, y). The pixel
// coordinates are left unchanged.
func (p *PixelData[T]) InitFromTriangle(eqn *TriangleEquation[T], x, y T) {
	n := len(eqn.Params)
	p.Attrs = slices.Grow(p.Attrs[:0], n)[:n]
	for i := range p.Attrs {
		p.Attrs[i] = eqn.Params[i].Evaluate(x, y)
	}
}

// StepX advances all attributes one pixel to the right.
func (p *PixelData[T]) StepX(eqn *TriangleEquation[T]) {
	for i := range p.Attrs {
		p.Attrs[i] = eqn.Params[i].StepX(p.Attrs[i])
	}
}

// StepXScaled advances all attributes n pixels to the right.
func (p *PixelData[T]) StepXScaled(eqn *TriangleEquation[T], n int) {
	for i := range p.Attrs {
		p.Attrs[i] = eqn.Params[i].StepXScaled(p.Attrs[i], n)
	}
}

// StepY advances all attributes one pixel down.
func (p *PixelData[T]) StepY(eqn *TriangleEquation[T]) {
	for i := range p.Attrs {
		p.Attrs[i] = eqn.Params[i].StepY(p.Attrs[i])
	}
}

// Reset clears p, keeping the capacity of Attrs.
func (p *PixelData[T]) Reset() {
	p.X, p.Y = 0, 0
	p.Attrs = p.Attrs[:0]
}

// EdgeData holds the values of the three edge functions at one pixel.
type EdgeData[T num.Scalar[T]] struct {
	V0, V1, V2 T
}

// Init evaluates the edge functions of eqn at (x, y).
func (e *EdgeData[T]) Init(eqn *TriangleEquation[T], x, y T) {
	e.V0 = eqn.E0.Evaluate(x, y)
	e.V1 = eqn.E1.Evaluate(x, y)
	e.V2 = eqn.E2.Evaluate(x, y)
}

// StepX advances the values one pixel to the right.
func (e *EdgeData[T]) StepX(eqn *TriangleEquation[T]) {
	e.V0 = eqn.E0.StepX(e.V0)
	e.V1 = eqn.E1.StepX(e.V1)
	e.V2 = eqn.E2.StepX(e.V2)
}

// StepXScaled advances the values n pixels to the right.
func (e *EdgeData[T]) StepXScaled(eqn *TriangleEquation[T], n int) {
	e.V0 = eqn.E0.StepXScaled(e.V0, n)
	e.V1 = eqn.E1.StepXScaled(e.V1, n)
	e.V2 = eqn.E2.StepXScaled(e.V2, n)
}

// StepY advances the values one pixel down.
func (e *EdgeData[T]) StepY(eqn *TriangleEquation[T]) {
	e.V0 = eqn.E0.StepY(e.V0)
	e.V1 = eqn.E1.StepY(e.V1)
	e.V2 = eqn.E2.StepY(e.V2)
}

// Test reports whether the current pixel passes all three edge tests.
func (e *EdgeData[T]) Test(eqn *TriangleEquation[T]) bool {
	return eqn.E0.TestValue(e.V0) && eqn.E1.TestValue(e.V1) && eqn.E2.TestValue(e.V2)
}

// Reset clears e.
func (e *EdgeData[T]) Reset() {
	*e = EdgeData[T]{}
}
