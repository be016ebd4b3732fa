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

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 0, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 40, 32, 30, 54, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 10, 10, 54, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "circle_small",
		Path:   circle(8, 8, 3.5),
		Width:  16,
		Height: 16,
		Op:     Fill{},
	},
	{
		Name:   "circle_large",
		Path:   circle(128, 128, 120),
		Width:  256,
		Height: 256,
		Op:     Fill{},
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 14),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic_degenerate",
		Path:   quadraticCurve(10, 32, 10, 32, 54, 20), // control point on start endpoint
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bézier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) *shape.Builder {
	return (&shape.Builder{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close()
}

// cubicCurve builds a closed shape with a cubic Bézier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *shape.Builder {
	return (&shape.Builder{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bézier curves.
func circle(cx, cy, r float64) *shape.Builder {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bézier curves.
func ellipse(cx, cy, rx, ry float64) *shape.Builder {
	kx := rx * kappa
	ky := ry * kappa

	return (&shape.Builder{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498
