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

package shape

import (
	"seehuhn.de/go/geom/vec"
)

// Polygon returns the path through pts. If closed is set, the path ends
// with a close command.
func Polygon(pts []vec.Vec2, closed bool) *Builder {
	p := &Builder{}
	if len(pts) == 0 {
		return p
	}
	p = p.MoveTo(pts[0])
	for _, q := range pts[1:] {
		p = p.LineTo(q)
	}
	if closed {
		p = p.Close()
	}
	return p
}

// Circle returns an approximate circle made of four cubic Bézier curves.
func Circle(c vec.Vec2, r float64) *Builder {
	k := r * kappa
	pt := func(dx, dy float64) vec.Vec2 { return vec.Vec2{X: c.X + dx, Y: c.Y + dy} }

	return (&Builder{}).
		MoveTo(pt(r, 0)).                          // start at right
		CubeTo(pt(r, -k), pt(k, -r), pt(0, -r)).   // top-right quadrant
		CubeTo(pt(-k, -r), pt(-r, -k), pt(-r, 0)). // top-left quadrant
		CubeTo(pt(-r, k), pt(-k, r), pt(0, r)).    // bottom-left quadrant
		CubeTo(pt(k, r), pt(r, k), pt(r, 0)).      // bottom-right quadrant
		Close()
}

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with a cubic Bézier curve.
const kappa = 0.5522847498
