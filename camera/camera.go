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

// Package camera maps world coordinates to screen coordinates.
package camera

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Camera looks at Pos, which is mapped to the centre of a Width×Height
// screen. World units are scaled by the zoom factor.
type Camera struct {
	Pos vec.Vec2

	// Width and Height are the screen size in pixels.
	Width, Height int

	zoom float64
}

// New returns a camera at the origin with zoom 1.
func New(width, height int) *Camera {
	return &Camera{
		Width:  width,
		Height: height,
		zoom:   1,
	}
}

// Zoom returns the zoom factor.
func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetZoom sets the zoom factor. Values below MinZoom are raised to
// MinZoom.
func (c *Camera) SetZoom(z float64) {
	c.zoom = max(z, MinZoom)
}

// Matrix returns the world-to-screen transformation
//
//	(p - Pos) * zoom + (Width/2, Height/2)
//
// where the screen centre is rounded down to whole pixels.
func (c *Camera) Matrix() matrix.Matrix {
	z := c.zoom
	return matrix.Matrix{
		z, 0,
		0, z,
		float64(c.Width>>1) - z*c.Pos.X, float64(c.Height>>1) - z*c.Pos.Y,
	}
}

// Project maps a world position to the screen.
func (c *Camera) Project(p vec.Vec2) vec.Vec2 {
	m := c.Matrix()
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Unproject maps a screen position back to the world.
func (c *Camera) Unproject(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: (p.X-float64(c.Width>>1))/c.zoom + c.Pos.X,
		Y: (p.Y-float64(c.Height>>1))/c.zoom + c.Pos.Y,
	}
}

// MinZoom is the smallest zoom factor accepted by SetZoom.
const MinZoom = 0.0001
