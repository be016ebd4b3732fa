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
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"

	"github.com/eanders-ms/contraption-sprites-ext/num"
	"github.com/eanders-ms/contraption-sprites-ext/pool"
)

// Mode selects how triangles are traversed.
type Mode int

const (
	// Spans walks triangles row by row.
	Spans Mode = iota

	// Blocks walks triangles in BlockSize×BlockSize tiles and skips the
	// per-pixel edge tests for tiles which are completely covered.
	Blocks
)

func (m Mode) String() string {
	switch m {
	case Spans:
		return "spans"
	case Blocks:
		return "blocks"
	default:
		return "unknown"
	}
}

// Rasterizer draws points, lines and triangles with the current shader.
// Create one instance and reuse it; scratch objects are recycled through
// pools, so that drawing does not allocate in steady state.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer[T num.Scalar[T]] struct {
	// Scissor bounds all output, half-open on the max side.
	// Coordinates must be integer-aligned.
	Scissor rect.Rect

	// Mode selects span or block traversal for triangles.
	Mode Mode

	shader      PixelShader[T]
	spanShader  SpanShader[T]
	blockShader BlockShader[T]

	// integer scissor bounds, refreshed at the start of every draw call
	minX, minY, maxX, maxY int

	triangles *pool.Pool[*TriangleEquation[T]]
	pixels    *pool.Pool[*PixelData[T]]
	edges     *pool.Pool[*EdgeData[T]]
	vertices  *pool.Pool[*Vertex[T]]
}

// NewRasterizer returns a Rasterizer with the given scissor rectangle,
// drawing triangles as spans.
func NewRasterizer[T num.Scalar[T]](scissor rect.Rect) *Rasterizer[T] {
	return &Rasterizer[T]{
		Scissor: scissor,
		Mode:    Spans,

		triangles: pool.New(func() *TriangleEquation[T] { return &TriangleEquation[T]{} }),
		pixels:    pool.New(func() *PixelData[T] { return &PixelData[T]{} }),
		edges:     pool.New(func() *EdgeData[T] { return &EdgeData[T]{} }),
		vertices:  pool.New(func() *Vertex[T] { return &Vertex[T]{} }),
	}
}

// ScreenRect returns the scissor rectangle covering the whole display.
func ScreenRect(d Display) rect.Rect {
	b := d.Bounds()
	return rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
}

// Reset restores the defaults with the given scissor rectangle. Pooled
// scratch objects are kept.
func (r *Rasterizer[T]) Reset(scissor rect.Rect) {
	r.Scissor = scissor
	r.Mode = Spans
	r.SetShader(nil)
}

// SetShader sets the shader used by DrawPoint, DrawLine and DrawTriangle.
func (r *Rasterizer[T]) SetShader(s PixelShader[T]) {
	r.shader = s
	r.spanShader, _ = s.(SpanShader[T])
	r.blockShader, _ = s.(BlockShader[T])
}

// PoolStats describes the scratch pools of a Rasterizer.
type PoolStats struct {
	Free        int // instances waiting for reuse
	Outstanding int // instances allocated and not yet returned
}

// Stats returns the combined state of the scratch pools. Outside of a
// draw call Outstanding is always zero.
func (r *Rasterizer[T]) Stats() PoolStats {
	return PoolStats{
		Free: r.triangles.Len() + r.pixels.Len() + r.edges.Len() + r.vertices.Len(),
		Outstanding: r.triangles.Outstanding() + r.pixels.Outstanding() +
			r.edges.Outstanding() + r.vertices.Outstanding(),
	}
}

// SetPoolDebug switches the double-free checks of all scratch pools.
// It must not be called during a draw.
func (r *Rasterizer[T]) SetPoolDebug(on bool) {
	r.triangles.Debug = on
	r.pixels.Debug = on
	r.edges.Debug = on
	r.vertices.Debug = on
}

// Draw sets the shader of cmd and draws it.
func (r *Rasterizer[T]) Draw(cmd Command[T]) {
	r.SetShader(cmd.Shader())
	switch c := cmd.(type) {
	case *PointCommand[T]:
		r.DrawPoint(c)
	case *LineCommand[T]:
		r.DrawLine(c)
	case *TriangleCommand[T]:
		r.DrawTriangle(c)
	}
}

// updateClip converts the scissor rectangle to integer bounds.
func (r *Rasterizer[T]) updateClip() {
	r.minX = int(math.Floor(r.Scissor.LLx))
	r.minY = int(math.Floor(r.Scissor.LLy))
	r.maxX = int(math.Floor(r.Scissor.URx))
	r.maxY = int(math.Floor(r.Scissor.URy))
}

func (r *Rasterizer[T]) scissorTest(x, y int) bool {
	return x >= r.minX && x < r.maxX && y >= r.minY && y < r.maxY
}

// DrawPoint shades the pixel containing cmd.V, if it is inside the
// scissor rectangle.
func (r *Rasterizer[T]) DrawPoint(cmd *PointCommand[T]) {
	r.updateClip()
	v := &cmd.V
	if !r.scissorTest(v.X.Floor(), v.Y.Floor()) {
		return
	}

	p := r.pixels.Alloc()
	defer r.pixels.Free(p)
	p.InitFromVertex(v)
	r.shader.DrawPixel(p)
}

// DrawLine steps from cmd.V0 towards cmd.V1 in max(|Δx|, |Δy|) steps,
// rounded down, and shades the pixel at every step. A line shorter than
// one pixel in both directions draws nothing.
func (r *Rasterizer[T]) DrawLine(cmd *LineCommand[T]) {
	r.updateClip()
	v0, v1 := &cmd.V0, &cmd.V1
	steps := max(num.Abs(v1.X-v0.X).Floor(), num.Abs(v1.Y-v0.Y).Floor())
	if steps <= 0 {
		return
	}

	v := r.vertices.Alloc()
	defer r.vertices.Free(v)
	step := r.vertices.Alloc()
	defer r.vertices.Free(step)
	p := r.pixels.Alloc()
	defer r.pixels.Free(p)

	v.copyFrom(v0)
	step.setStep(v0, v1, steps)
	for range steps {
		p.InitFromVertex(v)
		if r.scissorTest(p.X, p.Y) {
			r.shader.DrawPixel(p)
		}
		v.add(step)
	}
}

// DrawTriangle fills the triangle of cmd. Degenerate and back-facing
// triangles draw nothing.
func (r *Rasterizer[T]) DrawTriangle(cmd *TriangleCommand[T]) {
	r.updateClip()
	if r.minX >= r.maxX || r.minY >= r.maxY {
		return
	}

	eqn := r.triangles.Alloc()
	defer r.triangles.Free(eqn)
	if !eqn.Init(&cmd.V0, &cmd.V1, &cmd.V2) {
		return
	}

	if r.Mode == Blocks {
		r.drawTriangleBlocks(eqn, &cmd.V0, &cmd.V1, &cmd.V2)
	} else {
		r.drawTriangleSpans(eqn, &cmd.V0, &cmd.V1, &cmd.V2)
	}
}

// drawTriangleSpans splits the triangle at the height of its middle vertex
// into a part with a flat bottom and a part with a flat top, and walks
// both row by row.
//
// A row belongs to the upper part if its centre lies in [top.Y, mid.Y),
// and to the lower part if its centre lies in [mid.Y, bottom.Y].
func (r *Rasterizer[T]) drawTriangleSpans(eqn *TriangleEquation[T], v0, v1, v2 *Vertex[T]) {
	t, m, b := v0, v1, v2
	if t.Y > m.Y {
		t, m = m, t
	}
	if m.Y > b.Y {
		m, b = b, m
	}
	if t.Y > m.Y {
		t, m = m, t
	}

	first, last := firstRow(t.Y), lastRow(b.Y)

	switch {
	case m.Y == t.Y:
		l, rt := m, t
		if l.X > rt.X {
			l, rt = rt, l
		}
		r.drawTopFlatTriangle(eqn, l, rt, b, first, last)

	case m.Y == b.Y:
		l, rt := m, b
		if l.X > rt.X {
			l, rt = rt, l
		}
		r.drawBottomFlatTriangle(eqn, t, l, rt, first, last)

	default:
		v4 := r.vertices.Alloc()
		defer r.vertices.Free(v4)
		v4.setSplit(t, b, m.Y)

		l, rt := m, v4
		if l.X > rt.X {
			l, rt = rt, l
		}
		split := firstRow(m.Y)
		r.drawBottomFlatTriangle(eqn, t, l, rt, first, split)
		r.drawTopFlatTriangle(eqn, l, rt, b, split, last)
	}
}

// drawBottomFlatTriangle walks rows y0, ..., y1-1 of the triangle with
// apex v0 and the horizontal bottom edge v1 (left), v2 (right).
func (r *Rasterizer[T]) drawBottomFlatTriangle(eqn *TriangleEquation[T], v0, v1, v2 *Vertex[T], y0, y1 int) {
	for y := max(y0, r.minY); y < min(y1, r.maxY); y++ {
		cy := centre[T](y)
		r.drawRow(eqn, y, intercept(v0, v1, cy), intercept(v0, v2, cy))
	}
}

// drawTopFlatTriangle walks rows y0, ..., y1-1 of the triangle with the
// horizontal top edge v0 (left), v1 (right) and apex v2.
func (r *Rasterizer[T]) drawTopFlatTriangle(eqn *TriangleEquation[T], v0, v1, v2 *Vertex[T], y0, y1 int) {
	for y := max(y0, r.minY); y < min(y1, r.maxY); y++ {
		cy := centre[T](y)
		r.drawRow(eqn, y, intercept(v2, v0, cy), intercept(v2, v1, cy))
	}
}

// intercept returns the x coordinate of the edge a→b at height y, where
// a.Y != b.Y. The inverse slope is applied as Δx·(y-a.Y)/Δy, multiplying
// first, so that a truncated quotient is off by less than a pixel no
// matter how far y is from a.
func intercept[T num.Scalar[T]](a, b *Vertex[T], y T) T {
	return a.X + (b.X - a.X).Mul(y-a.Y).Div(b.Y-a.Y)
}

// drawRow shades the covered pixels of row y. xl and xr are the
// intercepts of the left and right edges with the row centre line. They
// are only used as an estimate: the range is widened by one pixel, trimmed
// from both ends with the exact edge tests and then grown while the
// neighbouring pixels still pass, so that rounding in the intercepts can
// never disagree with the tie-break rule.
func (r *Rasterizer[T]) drawRow(eqn *TriangleEquation[T], y int, xl, xr T) {
	x0 := max(xl.Floor()-1, r.minX)
	x1 := min(xr.Ceil()+1, r.maxX)

	cy := centre[T](y)
	for x0 < x1 && !eqn.TestPoint(centre[T](x0), cy) {
		x0++
	}
	for x1 > x0 && !eqn.TestPoint(centre[T](x1-1), cy) {
		x1--
	}
	if x0 >= x1 {
		return
	}
	for x0 > r.minX && eqn.TestPoint(centre[T](x0-1), cy) {
		x0--
	}
	for x1 < r.maxX && eqn.TestPoint(centre[T](x1), cy) {
		x1++
	}

	p := r.pixels.Alloc()
	defer r.pixels.Free(p)
	mustBeLive(r.triangles, eqn)
	mustBeLive(r.pixels, p)
	if r.spanShader != nil {
		r.spanShader.DrawSpan(eqn, x0, y, x1, p)
	} else {
		DrawSpan(r.shader, eqn, x0, y, x1, p)
	}
}

// mustBeLive panics if x has already been returned to p. The check is
// only made while pool debugging is on.
func mustBeLive[X pool.Resetter](p *pool.Pool[X], x X) {
	if !p.Live(x) {
		panic(fmt.Sprintf("raster: %T used after it was freed", x))
	}
}

// firstRow returns the first row whose centre is at or below y.
func firstRow[T num.Scalar[T]](y T) int {
	return (y - num.Of[T](0.5)).Ceil()
}

// lastRow returns one more than the last row whose centre is at or above y.
func lastRow[T num.Scalar[T]](y T) int {
	return (y - num.Of[T](0.5)).Floor() + 1
}
