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

package testcases

import (
	"github.com/eanders-ms/contraption-sprites-ext/shape"
)

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(18, 32, 46, 32, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "shared_edge",
		Path:   addTriangle(triangle(8, 8, 56, 8, 56, 56), 8, 8, 56, 56, 8, 56),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Op:     Fill{},
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *shape.Builder {
	p := triangle(cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size)
	return addTriangle(p, cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size)
}

// manySmallShapes builds a grid of small triangles (stress test).
func manySmallShapes(rows, cols int) *shape.Builder {
	size := 5.0
	spacing := 14.0

	p := &shape.Builder{}
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			p = addTriangle(p, cx, cy-size, cx+size, cy+size, cx-size, cy+size)
		}
	}
	return p
}
