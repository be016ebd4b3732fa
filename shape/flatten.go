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

// Package shape turns vector paths into rasterizer draw commands.
//
// Paths are flattened into polygons in screen space by a [Flattener].
// [Outline] draws the polygon edges as lines, [FillConvex] fills each
// closed polygon with a triangle fan.
package shape

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Flattener converts paths into polygons in screen space.
// The caller creates one instance and reuses it; the point buffer grows
// as needed but never shrinks.
type Flattener struct {
	// CTM maps path coordinates to screen coordinates.
	// Must be a non-singular matrix.
	CTM matrix.Matrix

	// Flatness is the curve flattening tolerance in screen pixels.
	// Must be > 0. Typical values are 0.25-1.0.
	Flatness float64

	pts []vec.Vec2 // current subpath, screen space
}

// NewFlattener returns a Flattener with the identity transformation and
// the default flatness.
func NewFlattener() *Flattener {
	return &Flattener{
		CTM:      matrix.Identity,
		Flatness: defaultFlatness,
	}
}

// Reset restores the defaults, keeping the point buffer.
func (f *Flattener) Reset() {
	f.CTM = matrix.Identity
	f.Flatness = defaultFlatness
	f.pts = f.pts[:0]
}

// Flatten walks p and calls emit once for every subpath with at least two
// distinct points. closed reports whether the subpath ended with a close
// command; the closing edge back to pts[0] is implied and not included in
// pts. The slice is only valid for the duration of the callback.
func (f *Flattener) Flatten(p path.Path, emit func(pts []vec.Vec2, closed bool)) {
	f.pts = f.pts[:0]
	flush := func(closed bool) {
		if len(f.pts) >= 2 {
			emit(f.pts, closed)
		}
		f.pts = f.pts[:0]
	}

	var current vec.Vec2 // current point (path space)
	var subpath vec.Vec2 // subpath start (path space)
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			flush(false)
			current = pts[0]
			subpath = current

		case path.CmdLineTo:
			f.addSegment(current, pts[0])
			current = pts[0]

		case path.CmdQuadTo:
			f.flattenQuadratic(current, pts[0], pts[1])
			current = pts[1]

		case path.CmdCubeTo:
			f.flattenCubic(current, pts[0], pts[1], pts[2])
			current = pts[2]

		case path.CmdClose:
			if n := len(f.pts); n > 1 && f.pts[n-1] == f.pts[0] {
				f.pts = f.pts[:n-1]
			}
			flush(true)
			current = subpath
		}
	}
	flush(false)
}

// addSegment appends the segment from p0 to p1, given in path space.
// Zero-length segments are dropped.
func (f *Flattener) addSegment(p0, p1 vec.Vec2) {
	if len(f.pts) == 0 {
		f.pts = append(f.pts, f.transform(p0))
	}
	q := f.transform(p1)
	if q != f.pts[len(f.pts)-1] {
		f.pts = append(f.pts, q)
	}
}

func (f *Flattener) transform(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*p.X + f.CTM[2]*p.Y + f.CTM[4],
		Y: f.CTM[1]*p.X + f.CTM[3]*p.Y + f.CTM[5],
	}
}

// transformLinear applies only the 2×2 linear part of CTM to a vector.
// Used for tolerance checking, where translation is irrelevant.
func (f *Flattener) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: f.CTM[0]*v.X + f.CTM[2]*v.Y,
		Y: f.CTM[1]*v.X + f.CTM[3]*v.Y,
	}
}

// flattenQuadratic flattens the quadratic Bézier curve with start p0,
// control point p1 and end point p2.
func (f *Flattener) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	// e = (P0 - 2*P1 + P2) / 4
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)

	n := 1
	errDev := f.transformLinear(e).Length()
	if errDev > f.Flatness {
		n = int(math.Ceil(math.Sqrt(errDev / f.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		f.addSegment(prev, pt)
		prev = pt
	}
}

// flattenCubic flattens the cubic Bézier curve with start p0, control
// points p1, p2 and end point p3. The number of segments follows Wang's
// formula.
func (f *Flattener) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := f.transformLinear(p0.Sub(p1.Mul(2)).Add(p2)) // P0 - 2*P1 + P2
	d2 := f.transformLinear(p1.Sub(p2.Mul(2)).Add(p3)) // P1 - 2*P2 + P3

	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		if nFloat := math.Sqrt(3 * m / (4 * f.Flatness)); nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		pt := p0.Mul(omt2 * omt).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t2 * t))
		f.addSegment(prev, pt)
		prev = pt
	}
}

const (
	// defaultFlatness is the default curve flattening tolerance in screen
	// pixels.
	defaultFlatness = 0.25
)
