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

package raster

import (
	"image"

	"github.com/eanders-ms/contraption-sprites-ext/num"
)

// Display is the surface the shaders write to.
type Display interface {
	// SetPixel sets the pixel at (x, y) to the colour index c.
	SetPixel(x, y, c int)

	// Bounds returns the drawable area.
	Bounds() image.Rectangle
}

// Texture is an indexed-colour image read by [TexturedShader].
type Texture interface {
	Width() int
	Height() int

	// Pixel returns the colour index at (x, y), for 0 <= x < Width() and
	// 0 <= y < Height().
	Pixel(x, y int) int
}

// PixelShader turns interpolated pixel state into output.
// DrawPixel must not retain p or modify p.Attrs.
type PixelShader[T num.Scalar[T]] interface {
	DrawPixel(p *PixelData[T])
}

// SpanShader is implemented by shaders that replace the default span loop
// [DrawSpan]. p is scratch storage owned by the caller and only valid
// during the call.
type SpanShader[T num.Scalar[T]] interface {
	PixelShader[T]
	DrawSpan(eqn *TriangleEquation[T], x, y, x2 int, p *PixelData[T])
}

// BlockShader is implemented by shaders that replace the default block
// loop [DrawBlock]. p and e are scratch storage owned by the caller and
// only valid during the call.
type BlockShader[T num.Scalar[T]] interface {
	PixelShader[T]
	DrawBlock(eqn *TriangleEquation[T], blk Block, p *PixelData[T], e *EdgeData[T])
}

// AttributeCounter is implemented by shaders which read a fixed number of
// vertex attributes. Commands using such a shader are rejected when their
// vertices carry fewer attributes.
type AttributeCounter interface {
	Attributes() int
}

// Block is one tile of the block grid, clipped to the scissor rectangle.
type Block struct {
	X0, Y0 int // first pixel
	X1, Y1 int // one past the last pixel

	// TestEdges is false when the whole tile is known to be inside the
	// triangle.
	TestEdges bool
}

// DrawSpan shades the pixels x, ..., x2-1 of row y. Attributes are
// evaluated once, at the centre of the first pixel, and then stepped.
func DrawSpan[T num.Scalar[T]](s PixelShader[T], eqn *TriangleEquation[T], x, y, x2 int, p *PixelData[T]) {
	p.InitFromTriangle(eqn, centre[T](x), centre[T](y))
	p.Y = y
	for ; x < x2; x++ {
		p.X = x
		s.DrawPixel(p)
		p.StepX(eqn)
	}
}

// DrawBlock shades the pixels of blk. Attributes and, if blk.TestEdges is
// set, edge values are evaluated at the centre of the first pixel and then
// stepped in x and y.
func DrawBlock[T num.Scalar[T]](s PixelShader[T], eqn *TriangleEquation[T], blk Block, p *PixelData[T], e *EdgeData[T]) {
	xf, yf := centre[T](blk.X0), centre[T](blk.Y0)
	p.InitFromTriangle(eqn, xf, yf)
	if blk.TestEdges {
		e.Init(eqn, xf, yf)
	}

	w := blk.X1 - blk.X0
	for y := blk.Y0; y < blk.Y1; y++ {
		p.Y = y
		for x := blk.X0; x < blk.X1; x++ {
			if !blk.TestEdges || e.Test(eqn) {
				p.X = x
				s.DrawPixel(p)
			}
			p.StepX(eqn)
			if blk.TestEdges {
				e.StepX(eqn)
			}
		}

		// back to the first column, one row down
		p.StepXScaled(eqn, -w)
		p.StepY(eqn)
		if blk.TestEdges {
			e.StepXScaled(eqn, -w)
			e.StepY(eqn)
		}
	}
}

// SolidShader draws attribute 0, rounded to the nearest integer, as a
// colour index. Colour 0 is transparent.
type SolidShader[T num.Scalar[T]] struct {
	Display Display
}

// DrawPixel implements [PixelShader].
func (s *SolidShader[T]) DrawPixel(p *PixelData[T]) {
	if c := p.Attrs[0].Round(); c != 0 {
		s.Display.SetPixel(p.X, p.Y, c)
	}
}

// Attributes implements [AttributeCounter].
func (s *SolidShader[T]) Attributes() int { return 1 }

// TexturedShader reads attributes 0 and 1 as texture coordinates u and v,
// where the unit square maps onto the whole texture. Coordinates outside
// the unit square wrap around. Colour 0 is transparent.
type TexturedShader[T num.Scalar[T]] struct {
	Display Display
	Texture Texture
}

// DrawPixel implements [PixelShader].
func (s *TexturedShader[T]) DrawPixel(p *PixelData[T]) {
	w, h := s.Texture.Width(), s.Texture.Height()
	if w <= 0 || h <= 0 {
		return
	}
	tx := wrap(p.Attrs[0].MulInt(w).Floor(), w)
	ty := wrap(p.Attrs[1].MulInt(h).Floor(), h)
	if c := s.Texture.Pixel(tx, ty); c != 0 {
		s.Display.SetPixel(p.X, p.Y, c)
	}
}

// Attributes implements [AttributeCounter].
func (s *TexturedShader[T]) Attributes() int { return 2 }

// wrap returns i modulo n in the range [0, n).
func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// centre returns the coordinate of the centre of pixel i.
func centre[T num.Scalar[T]](i int) T {
	return num.Int[T](i) + num.Of[T](0.5)
}
