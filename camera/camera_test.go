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

package camera

import (
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name string
		pos  vec.Vec2
		zoom float64
		in   vec.Vec2
		want vec.Vec2
	}{
		{"origin", vec.Vec2{}, 1, vec.Vec2{}, vec.Vec2{X: 80, Y: 60}},
		{"offset", vec.Vec2{X: 10, Y: -5}, 1, vec.Vec2{X: 10, Y: -5}, vec.Vec2{X: 80, Y: 60}},
		{"zoomed", vec.Vec2{}, 2, vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 86, Y: 68}},
		{"zoomed offset", vec.Vec2{X: 1, Y: 1}, 0.5, vec.Vec2{X: 5, Y: 9}, vec.Vec2{X: 82, Y: 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(160, 120)
			c.Pos = tt.pos
			c.SetZoom(tt.zoom)

			got := c.Project(tt.in)
			if got != tt.want {
				t.Errorf("Project(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if back := c.Unproject(got); back != tt.in {
				t.Errorf("Unproject(%v) = %v, want %v", got, back, tt.in)
			}
		})
	}
}

func TestOddScreenSize(t *testing.T) {
	c := New(5, 7)
	if got := c.Project(vec.Vec2{}); got != (vec.Vec2{X: 2, Y: 3}) {
		t.Errorf("centre = %v, want (2, 3)", got)
	}
}

func TestZoomClamp(t *testing.T) {
	c := New(10, 10)
	for _, z := range []float64{0, -3, 1e-9} {
		c.SetZoom(z)
		if c.Zoom() != MinZoom {
			t.Errorf("SetZoom(%g): zoom = %g, want %g", z, c.Zoom(), MinZoom)
		}
	}
	c.SetZoom(2.5)
	if c.Zoom() != 2.5 {
		t.Errorf("zoom = %g, want 2.5", c.Zoom())
	}
}
