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
	"image"
	"strings"

	"seehuhn.de/go/geom/rect"

	"github.com/eanders-ms/contraption-sprites-ext/num"
)

// testDisplay records the colour of every pixel and how often it was
// written.
type testDisplay struct {
	w, h   int
	pix    []int
	writes []int
}

func newTestDisplay(w, h int) *testDisplay {
	return &testDisplay{
		w:      w,
		h:      h,
		pix:    make([]int, w*h),
		writes: make([]int, w*h),
	}
}

func (d *testDisplay) SetPixel(x, y, c int) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		panic(fmt.Sprintf("pixel (%d, %d) outside of %dx%d display", x, y, d.w, d.h))
	}
	d.pix[y*d.w+x] = c
	d.writes[y*d.w+x]++
}

func (d *testDisplay) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

func (d *testDisplay) at(x, y int) int {
	return d.pix[y*d.w+x]
}

func (d *testDisplay) clear() {
	clear(d.pix)
	clear(d.writes)
}

// String draws the display as text, for failure messages.
func (d *testDisplay) String() string {
	var b strings.Builder
	for y := range d.h {
		for x := range d.w {
			c := d.at(x, y)
			if c == 0 {
				b.WriteByte('.')
			} else {
				fmt.Fprintf(&b, "%x", c%16)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func screenRect(w, h int) rect.Rect {
	return rect.Rect{URx: float64(w), URy: float64(h)}
}

// tri returns a solid triangle command, failing the test on error.
func tri[T num.Scalar[T]](s PixelShader[T], c float64, x0, y0, x1, y1, x2, y2 float64) *TriangleCommand[T] {
	cmd, err := NewTriangleCommand(s, V[T](x0, y0, c), V[T](x1, y1, c), V[T](x2, y2, c))
	if err != nil {
		panic(err)
	}
	return cmd
}
