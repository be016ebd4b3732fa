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

import "github.com/eanders-ms/contraption-sprites-ext/num"

// drawTriangleBlocks walks the BlockSize-aligned tiles which intersect the
// bounding box of the triangle. Each edge is tested at the centres of the
// four corner pixels of a tile. Since the edge functions are linear, a
// tile where one edge fails at all four corners contains no covered pixel,
// and a tile where all edges pass at all four corners is covered
// completely.
func (r *Rasterizer[T]) drawTriangleBlocks(eqn *TriangleEquation[T], v0, v1, v2 *Vertex[T]) {
	x0 := max(min(v0.X, v1.X, v2.X).Floor(), r.minX)
	x1 := min(max(v0.X, v1.X, v2.X).Ceil(), r.maxX)
	y0 := max(min(v0.Y, v1.Y, v2.Y).Floor(), r.minY)
	y1 := min(max(v0.Y, v1.Y, v2.Y).Ceil(), r.maxY)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	p := r.pixels.Alloc()
	defer r.pixels.Free(p)
	e := r.edges.Alloc()
	defer r.edges.Free(e)

	last := num.Int[T](BlockSize - 1)
	for by := alignDown(y0); by < y1; by += BlockSize {
		cy0 := centre[T](by)
		cy1 := cy0 + last
		for bx := alignDown(x0); bx < x1; bx += BlockSize {
			cx0 := centre[T](bx)
			cx1 := cx0 + last

			c0 := classify(&eqn.E0, cx0, cy0, cx1, cy1)
			c1 := classify(&eqn.E1, cx0, cy0, cx1, cy1)
			c2 := classify(&eqn.E2, cx0, cy0, cx1, cy1)
			if c0 == outside || c1 == outside || c2 == outside {
				continue
			}

			blk := Block{
				X0:        max(bx, x0),
				Y0:        max(by, y0),
				X1:        min(bx+BlockSize, x1),
				Y1:        min(by+BlockSize, y1),
				TestEdges: c0 != inside || c1 != inside || c2 != inside,
			}
			mustBeLive(r.pixels, p)
			mustBeLive(r.edges, e)
			if r.blockShader != nil {
				r.blockShader.DrawBlock(eqn, blk, p, e)
			} else {
				DrawBlock(r.shader, eqn, blk, p, e)
			}
		}
	}
}

type coverage int

const (
	outside coverage = iota
	partial
	inside
)

// classify tests e at the four corners (x0, y0), (x1, y0), (x0, y1),
// (x1, y1).
func classify[T num.Scalar[T]](e *EdgeEquation[T], x0, y0, x1, y1 T) coverage {
	n := 0
	for _, ok := range [4]bool{
		e.TestPoint(x0, y0),
		e.TestPoint(x1, y0),
		e.TestPoint(x0, y1),
		e.TestPoint(x1, y1),
	} {
		if ok {
			n++
		}
	}
	switch n {
	case 0:
		return outside
	case 4:
		return inside
	default:
		return partial
	}
}

// alignDown rounds x down to a multiple of BlockSize.
func alignDown(x int) int {
	if x < 0 {
		return -((-x + BlockSize - 1) / BlockSize * BlockSize)
	}
	return x / BlockSize * BlockSize
}

const (
	// BlockSize is the edge length, in pixels, of the tiles used by the
	// Blocks mode.
	BlockSize = 8
)
