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

// Package testcases contains reference scenes for the rasterizer. The same
// cases drive the reference image tests, the benchmarks and the tools in
// the subdirectories, which export the cases as JSON and render reference
// images with Ghostscript.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/eanders-ms/contraption-sprites-ext/shape"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string         // lowercase a-z, 0-9 and _ only
	Path   *shape.Builder // the geometry to render
	Width  int            // canvas width in pixels
	Height int            // canvas height in pixels
	Op     Operation      // fill or outline
	CTM    matrix.Matrix  // transformation matrix (zero-value means no transform)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill fills every closed subpath. Subpaths must be convex.
type Fill struct{}

func (Fill) isOperation() {}

// Outline draws the edges of every subpath as one pixel wide lines.
type Outline struct{}

func (Outline) isOperation() {}

// Matrix returns the CTM of the test case, with the zero value replaced by
// the identity.
func (tc *TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
