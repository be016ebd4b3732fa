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

// Package screen implements an indexed-colour frame buffer for the
// rasterizer, together with helpers to save frames as image files.
package screen

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Palette is the 16-colour palette of the MakeCode Arcade console.
// Colour 0 is transparent.
var Palette = color.Palette{
	color.RGBA{0x00, 0x00, 0x00, 0x00},
	color.RGBA{0xff, 0xff, 0xff, 0xff},
	color.RGBA{0xff, 0x21, 0x21, 0xff},
	color.RGBA{0xff, 0x93, 0xc4, 0xff},
	color.RGBA{0xff, 0x81, 0x35, 0xff},
	color.RGBA{0xff, 0xf6, 0x09, 0xff},
	color.RGBA{0x24, 0x9c, 0xa3, 0xff},
	color.RGBA{0x78, 0xdc, 0x52, 0xff},
	color.RGBA{0x00, 0x3f, 0xad, 0xff},
	color.RGBA{0x87, 0xf2, 0xff, 0xff},
	color.RGBA{0x8e, 0x2e, 0xc4, 0xff},
	color.RGBA{0xa4, 0x83, 0x9f, 0xff},
	color.RGBA{0x5c, 0x40, 0x6c, 0xff},
	color.RGBA{0xe5, 0xcd, 0xc4, 0xff},
	color.RGBA{0x91, 0x46, 0x3d, 0xff},
	color.RGBA{0x00, 0x00, 0x00, 0xff},
}

// Screen is a frame buffer of colour indices into [Palette].
// It implements the Display interface of the rasterizer.
type Screen struct {
	img *image.Paletted
}

// New returns a screen of the given size, filled with colour 0.
func New(width, height int) *Screen {
	return &Screen{
		img: image.NewPaletted(image.Rect(0, 0, width, height), Palette),
	}
}

// Bounds returns the screen area.
func (s *Screen) Bounds() image.Rectangle {
	return s.img.Rect
}

// SetPixel sets the pixel at (x, y) to colour c. Writes outside the screen
// and colours outside the palette are ignored.
func (s *Screen) SetPixel(x, y, c int) {
	if c < 0 || c >= len(Palette) || !image.Pt(x, y).In(s.img.Rect) {
		return
	}
	s.img.Pix[s.img.PixOffset(x, y)] = uint8(c)
}

// Pixel returns the colour at (x, y), or 0 outside the screen.
func (s *Screen) Pixel(x, y int) int {
	if !image.Pt(x, y).In(s.img.Rect) {
		return 0
	}
	return int(s.img.Pix[s.img.PixOffset(x, y)])
}

// Fill sets every pixel to colour c.
func (s *Screen) Fill(c int) {
	if c < 0 || c >= len(Palette) {
		return
	}
	for i := range s.img.Pix {
		s.img.Pix[i] = uint8(c)
	}
}

// Image returns the frame buffer. The image shares its pixels with the
// screen.
func (s *Screen) Image() *image.Paletted {
	return s.img
}

// Scaled returns a copy of the screen enlarged by the integer factor k,
// using nearest-neighbour sampling.
func (s *Screen) Scaled(k int) *image.Paletted {
	if k <= 1 {
		dst := image.NewPaletted(s.img.Rect, Palette)
		copy(dst.Pix, s.img.Pix)
		return dst
	}
	b := s.img.Rect
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*k, b.Dy()*k), Palette)
	draw.NearestNeighbor.Scale(dst, dst.Rect, s.img, b, draw.Src, nil)
	return dst
}

// ErrFormat is returned by Encode for unsupported file formats.
var ErrFormat = errors.New("screen: unsupported image format")

// Formats lists the file formats supported by Encode.
var Formats = []string{"png", "bmp", "tiff"}

// Encode writes img to w in the given file format.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch strings.ToLower(format) {
	case "png":
		err = png.Encode(w, img)
	case "bmp":
		err = bmp.Encode(w, img)
	case "tif", "tiff":
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w %q", ErrFormat, format)
	}
	if err != nil {
		return fmt.Errorf("screen: encoding %s: %w", format, err)
	}
	return nil
}
