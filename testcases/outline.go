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

var outlineCases = []TestCase{
	{
		Name:   "square",
		Path:   rectangle(10, 10, 50, 50),
		Width:  64,
		Height: 64,
		Op:     Outline{},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Outline{},
	},
	{
		Name:   "star",
		Path:   star(32, 32, 28, 11, 5),
		Width:  64,
		Height: 64,
		Op:     Outline{},
	},
	{
		Name:   "open_zigzag",
		Path:   zigzag(6, 32, 58, 12, 8),
		Width:  64,
		Height: 64,
		Op:     Outline{},
	},
}

// star builds a star with n points, alternating between the outer and
// inner radius.
func star(cx, cy, outer, inner float64, n int) *shape.Builder {
	p := &shape.Builder{}
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		q := regularPolygonCorner(cx, cy, r, i, 2*n)
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p.Close()
}

// zigzag builds an open path with n teeth between x1 and x2.
func zigzag(x1, cy, x2, amplitude float64, n int) *shape.Builder {
	p := (&shape.Builder{}).MoveTo(pt(x1, cy))
	step := (x2 - x1) / float64(2*n)
	for i := 1; i <= 2*n; i++ {
		y := cy - amplitude
		if i%2 == 0 {
			y = cy + amplitude
		}
		p = p.LineTo(pt(x1+float64(i)*step, y))
	}
	return p
}
