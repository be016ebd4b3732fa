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

// Package bitmap implements small indexed-colour images, used as sprite
// textures.
//
// Images can be written as text, one character per pixel:
//
//	. . c c
//	. c 5 c
//	c 5 5 c
//
// where '.' is colour 0 (transparent) and the hex digits 0-9, a-f are
// the colours 0 to 15. Whitespace inside a row is ignored, and blank lines
// are skipped.
package bitmap

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
)

// Image is an indexed-colour image. It implements the Texture interface of
// the rasterizer.
type Image struct {
	W, H int
	Pix  []uint8 // row-major colour indices
}

// New returns a transparent image of the given size.
func New(w, h int) *Image {
	return &Image{W: w, H: h, Pix: make([]uint8, w*h)}
}

// Width returns the width of the image in pixels.
func (img *Image) Width() int { return img.W }

// Height returns the height of the image in pixels.
func (img *Image) Height() int { return img.H }

// Pixel returns the colour index at (x, y), or 0 outside the image.
func (img *Image) Pixel(x, y int) int {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		return 0
	}
	return int(img.Pix[y*img.W+x])
}

// Set sets the colour index at (x, y). Writes outside the image are
// ignored.
func (img *Image) Set(x, y int, c uint8) {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		return
	}
	img.Pix[y*img.W+x] = c
}

// Errors returned by Parse.
var (
	ErrEmpty  = errors.New("bitmap: empty image")
	ErrRagged = errors.New("bitmap: rows have different lengths")
	ErrPixel  = errors.New("bitmap: invalid pixel character")
)

// Parse reads an image in the text form described in the package
// documentation.
func Parse(s string) (*Image, error) {
	var rows [][]uint8
	for lineNo, line := range strings.Split(s, "\n") {
		var row []uint8
		for col, r := range line {
			switch {
			case r == ' ' || r == '\t' || r == '\r':
				continue
			case r == '.':
				row = append(row, 0)
			case r >= '0' && r <= '9':
				row = append(row, uint8(r-'0'))
			case r >= 'a' && r <= 'f':
				row = append(row, uint8(r-'a'+10))
			case r >= 'A' && r <= 'F':
				row = append(row, uint8(r-'A'+10))
			default:
				return nil, fmt.Errorf("%w %q at line %d, column %d", ErrPixel, r, lineNo+1, col+1)
			}
		}
		if len(row) == 0 {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w: line %d has %d pixels, want %d",
				ErrRagged, lineNo+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	img := New(len(rows[0]), len(rows))
	for y, row := range rows {
		copy(img.Pix[y*img.W:], row)
	}
	return img, nil
}

// MustParse is like Parse but panics on error. It is meant for images
// embedded in source code.
func MustParse(s string) *Image {
	img, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return img
}

// String returns the text form of the image.
func (img *Image) String() string {
	const digits = ".123456789abcdef"
	var b strings.Builder
	for y := range img.H {
		for x := range img.W {
			b.WriteByte(digits[img.Pix[y*img.W+x]&15])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// FromImage converts src to an indexed image by mapping every pixel to the
// closest colour of p.
func FromImage(src image.Image, p color.Palette) *Image {
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), p)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return &Image{W: b.Dx(), H: b.Dy(), Pix: dst.Pix}
}

// Paletted returns the image as an [image.Paletted] with palette p.
func (img *Image) Paletted(p color.Palette) *image.Paletted {
	dst := image.NewPaletted(image.Rect(0, 0, img.W, img.H), p)
	copy(dst.Pix, img.Pix)
	return dst
}
