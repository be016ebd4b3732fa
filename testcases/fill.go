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
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/eanders-ms/contraption-sprites-ext/shape"
)

var fillCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "triangle_reversed",
		Path:   triangle(54, 50, 32, 10, 10, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "pentagon",
		Path:   regularPolygon(32, 32, 25, 5),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "thin_sliver",
		Path:   triangle(2, 30, 62, 31, 2, 32),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *shape.Builder {
	return addTriangle(&shape.Builder{}, x1, y1, x2, y2, x3, y3)
}

// addTriangle appends a closed triangular subpath to p.
func addTriangle(p *shape.Builder, x1, y1, x2, y2, x3, y3 float64) *shape.Builder {
	return p.
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *shape.Builder {
	return (&shape.Builder{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// regularPolygon builds a regular polygon with n corners, the first one
// straight above the centre.
func regularPolygon(cx, cy, r float64, n int) *shape.Builder {
	p := &shape.Builder{}
	for i := range n {
		q := regularPolygonCorner(cx, cy, r, i, n)
		if i == 0 {
			p = p.MoveTo(q)
		} else {
			p = p.LineTo(q)
		}
	}
	return p.Close()
}

// regularPolygonCorner returns corner i of a regular n-gon.
func regularPolygonCorner(cx, cy, r float64, i, n int) vec.Vec2 {
	angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
	return pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
}

// diamond builds a diamond (rotated square) shape.
func diamond(cx, cy, size float64) *shape.Builder {
	return (&shape.Builder{}).
		MoveTo(pt(cx, cy-size)).
		LineTo(pt(cx+size, cy)).
		LineTo(pt(cx, cy+size)).
		LineTo(pt(cx-size, cy)).
		Close()
}
