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

package scene

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"github.com/eanders-ms/contraption-sprites-ext/camera"
	"github.com/eanders-ms/contraption-sprites-ext/num"
	"github.com/eanders-ms/contraption-sprites-ext/raster"
	"github.com/eanders-ms/contraption-sprites-ext/shape"
)

// Queue converts the shapes of s into draw commands for the display d and
// passes them to q, in file order. Scenes built in code rather than by Load
// are checked here; a shape which fails the check stops the queue.
func Queue[T num.Scalar[T]](s *Scene, q shape.Queuer[T], d raster.Display) error {
	if s.textures == nil {
		if err := s.parseImages(); err != nil {
			return err
		}
	}

	b := builder[T]{
		q:     q,
		cam:   s.NewCamera(),
		flat:  shape.NewFlattener(),
		solid: &raster.SolidShader[T]{Display: d},
	}
	b.flat.CTM = b.cam.Matrix()

	for i := range s.Shapes {
		sh := &s.Shapes[i]
		err := sh.check(s.textures)
		if err == nil {
			err = b.queue(s, sh, d)
		}
		if err != nil {
			return fmt.Errorf("scene: shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	return nil
}

type builder[T num.Scalar[T]] struct {
	q     shape.Queuer[T]
	cam   *camera.Camera
	flat  *shape.Flattener
	solid *raster.SolidShader[T]
}

func (b *builder[T]) queue(s *Scene, sh *Shape, d raster.Display) error {
	if sh.Kind != "sprite" {
		return b.shape(sh)
	}
	img, ok := s.Texture(sh.Image)
	if !ok {
		return fmt.Errorf("%w %q", ErrImage, sh.Image)
	}
	return b.sprite(sh, &raster.TexturedShader[T]{Display: d, Texture: img})
}

// vertex projects the i-th point of sh to the screen.
func (b *builder[T]) vertex(sh *Shape, i int) raster.Vertex[T] {
	p := b.cam.Project(vec.Vec2{X: sh.Points[i][0], Y: sh.Points[i][1]})
	c := sh.Color
	if len(sh.Colors) > 0 {
		c = sh.Colors[i]
	}
	return raster.V[T](p.X, p.Y, float64(c))
}

func (b *builder[T]) shape(sh *Shape) error {
	var cmd raster.Command[T]
	var err error
	switch sh.Kind {
	case "point":
		cmd, err = raster.NewPointCommand[T](b.solid, b.vertex(sh, 0))
	case "line":
		cmd, err = raster.NewLineCommand[T](b.solid, b.vertex(sh, 0), b.vertex(sh, 1))
	case "triangle":
		cmd, err = raster.NewTriangleCommand[T](b.solid, b.vertex(sh, 0), b.vertex(sh, 1), b.vertex(sh, 2))
	case "polygon":
		return shape.FillConvex[T](b.q, b.flat, sh.path().Iter(), b.solid, float64(sh.Color))
	case "outline":
		return shape.Outline[T](b.q, b.flat, sh.path().Iter(), b.solid, float64(sh.Color))
	default:
		return ErrKind
	}
	if err != nil {
		return err
	}
	return b.q.Queue(cmd)
}

// sprite queues two textured triangles covering the image box, and the
// frame if requested.
func (b *builder[T]) sprite(sh *Shape, s *raster.TexturedShader[T]) error {
	scale := sh.Scale
	if scale == 0 {
		scale = 1
	}
	m := matrix.Scale(scale, scale).RotateDeg(sh.Angle).Translate(sh.At[0], sh.At[1])

	w, h := float64(s.Texture.Width())/2, float64(s.Texture.Height())/2
	box := [4]vec.Vec2{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}
	uv := [4][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var v [4]raster.Vertex[T]
	var screen [4]vec.Vec2
	for i, p := range box {
		screen[i] = b.cam.Project(apply(m, p))
		v[i] = raster.V[T](screen[i].X, screen[i].Y, uv[i][0], uv[i][1])
	}

	for _, idx := range [2][3]int{{0, 1, 2}, {0, 2, 3}} {
		cmd, err := raster.NewTriangleCommand[T](s, v[idx[0]], v[idx[1]], v[idx[2]])
		if err != nil {
			return err
		}
		if err := b.q.Queue(cmd); err != nil {
			return err
		}
	}

	if sh.Frame == 0 {
		return nil
	}
	for i := range screen {
		a, c := screen[i], screen[(i+1)%len(screen)]
		cmd, err := raster.NewLineCommand[T](b.solid,
			raster.V[T](a.X, a.Y, float64(sh.Frame)),
			raster.V[T](c.X, c.Y, float64(sh.Frame)))
		if err != nil {
			return err
		}
		if err := b.q.Queue(cmd); err != nil {
			return err
		}
	}
	return nil
}

func apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// path returns the polygon or circle of a polygon or outline shape.
func (sh *Shape) path() *shape.Builder {
	if sh.Radius > 0 {
		return shape.Circle(vec.Vec2{X: sh.At[0], Y: sh.At[1]}, sh.Radius)
	}
	pts := make([]vec.Vec2, len(sh.Points))
	for i, p := range sh.Points {
		pts[i] = vec.Vec2{X: p[0], Y: p[1]}
	}
	return shape.Polygon(pts, sh.Kind == "polygon" || sh.Closed)
}
