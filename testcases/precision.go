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

// precisionCases place edges at and between pixel centres, where the tie
// rule and the fixed-point rounding matter.
var precisionCases = []TestCase{
	{
		Name:   "subpixel_offset_00",
		Path:   offsetRectangle(10, 10, 20, 20, 0),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   offsetRectangle(10, 10, 20, 20, 0.25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   offsetRectangle(10, 10, 20, 20, 0.5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "subpixel_offset_75",
		Path:   offsetRectangle(10, 10, 20, 20, 0.75),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "diagonal_through_centres",
		Path:   triangle(0.5, 0.5, 60.5, 0.5, 60.5, 60.5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "tiny_triangle",
		Path:   triangle(30.2, 30.2, 30.9, 30.4, 30.3, 30.8),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// offsetRectangle builds a rectangle with all corners shifted by offset.
func offsetRectangle(x1, y1, w, h, offset float64) *shape.Builder {
	x1 += offset
	y1 += offset
	return rectangle(x1, y1, x1+w, y1+h)
}
