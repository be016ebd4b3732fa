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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"github.com/eanders-ms/contraption-sprites-ext/num"
	"github.com/eanders-ms/contraption-sprites-ext/raster"
)

// Queuer accepts draw commands. [raster.Renderer] implements it.
type Queuer[T num.Scalar[T]] interface {
	Queue(cmd raster.Command[T]) error
}

// Outline queues one line command per polygon edge of p. All vertices
// carry the attributes attrs. Closed subpaths include the closing edge.
func Outline[T num.Scalar[T]](q Queuer[T], f *Flattener, p path.Path, s raster.PixelShader[T], attrs ...float64) error {
	var err error
	f.Flatten(p, func(pts []vec.Vec2, closed bool) {
		if err != nil {
			return
		}
		n := len(pts) - 1
		if closed && len(pts) > 2 {
			n++
		}
		for i := range n {
			a, b := pts[i], pts[(i+1)%len(pts)]
			cmd, e := raster.NewLineCommand(s, raster.V[T](a.X, a.Y, attrs...), raster.V[T](b.X, b.Y, attrs...))
			if e == nil {
				e = q.Queue(cmd)
			}
			if e != nil {
				err = e
				return
			}
		}
	})
	return err
}

// FillConvex queues a triangle fan for every closed subpath of p. The
// fans are wound so that the triangles are drawn whichever way the
// subpath is oriented. Subpaths must be convex; open subpaths are
// ignored.
func FillConvex[T num.Scalar[T]](q Queuer[T], f *Flattener, p path.Path, s raster.PixelShader[T], attrs ...float64) error {
	var err error
	f.Flatten(p, func(pts []vec.Vec2, closed bool) {
		if err != nil || !closed || len(pts) < 3 {
			return
		}
		flip := SignedArea(pts) < 0
		for i := 1; i+1 < len(pts); i++ {
			b, c := pts[i], pts[i+1]
			if flip {
				b, c = c, b
			}
			err = fan(q, s, pts[0], b, c, attrs)
			if err != nil {
				return
			}
		}
	})
	return err
}

func fan[T num.Scalar[T]](q Queuer[T], s raster.PixelShader[T], a, b, c vec.Vec2, attrs []float64) error {
	cmd, err := raster.NewTriangleCommand(s,
		raster.V[T](a.X, a.Y, attrs...),
		raster.V[T](b.X, b.Y, attrs...),
		raster.V[T](c.X, c.Y, attrs...))
	if err != nil {
		return err
	}
	return q.Queue(cmd)
}

// SignedArea returns twice the signed area of the polygon pts. It is
// positive for polygons which are clockwise on a screen with y pointing
// down, the winding accepted by the rasterizer.
func SignedArea(pts []vec.Vec2) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}
