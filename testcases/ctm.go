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
	"seehuhn.de/go/geom/matrix"
)

var ctmCases = []TestCase{
	{
		Name:   "scale_2x",
		Path:   rectangle(5, 5, 25, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(2, 2),
	},
	{
		Name:   "scale_half",
		Path:   rectangle(20, 20, 100, 100),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(0.5, 0.5),
	},
	{
		Name:   "scale_10x",
		Path:   triangle(0.5, 5, 3, 0.5, 5.5, 5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(10, 10),
	},
	{
		Name:   "rotate_45deg",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.RotateDeg(45).Translate(32, 32),
	},
	{
		Name:   "rotate_5deg",
		Path:   rectangle(-20, -10, 20, 10),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.RotateDeg(5).Translate(32, 32),
	},
	{
		Name:   "circle_to_ellipse",
		Path:   circle(0, 0, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Scale(2, 1).Translate(32, 32),
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(10, 10, 40, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{1, 0, 0.3, 1, 0, 0},
	},
	{
		Name:   "mirror_x",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		CTM:    matrix.Matrix{-1, 0, 0, 1, 64, 0},
	},
}
