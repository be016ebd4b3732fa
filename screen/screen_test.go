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

package screen

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/eanders-ms/contraption-sprites-ext/num"
	"github.com/eanders-ms/contraption-sprites-ext/raster"
)

func TestSetPixel(t *testing.T) {
	s := New(4, 3)
	s.SetPixel(1, 2, 5)
	s.SetPixel(4, 0, 5)  // outside
	s.SetPixel(0, -1, 5) // outside
	s.SetPixel(0, 0, 16) // not in the palette

	if s.Pixel(1, 2) != 5 {
		t.Error("pixel not set")
	}
	n := 0
	for _, c := range s.Image().Pix {
		if c != 0 {
			n++
		}
	}
	if n != 1 {
		t.Errorf("%d pixels set, want 1", n)
	}
	if s.Pixel(10, 10) != 0 {
		t.Error("pixel outside the screen is not 0")
	}
}

func TestFill(t *testing.T) {
	s := New(3, 3)
	s.Fill(9)
	for y := range 3 {
		for x := range 3 {
			if s.Pixel(x, y) != 9 {
				t.Fatalf("pixel (%d, %d) = %d", x, y, s.Pixel(x, y))
			}
		}
	}
}

func TestScaled(t *testing.T) {
	s := New(2, 2)
	s.SetPixel(1, 0, 2)
	s.SetPixel(0, 1, 3)

	img := s.Scaled(3)
	if img.Rect.Dx() != 6 || img.Rect.Dy() != 6 {
		t.Fatalf("size %v", img.Rect)
	}
	for y := range 6 {
		for x := range 6 {
			want := s.Pixel(x/3, y/3)
			if got := int(img.ColorIndexAt(x, y)); got != want {
				t.Errorf("scaled pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}

	same := s.Scaled(1)
	same.Pix[0] = 7
	if s.Pixel(0, 0) == 7 {
		t.Error("Scaled(1) shares pixels with the screen")
	}
}

func TestEncode(t *testing.T) {
	s := New(4, 4)
	s.Fill(1)
	s.SetPixel(2, 2, 2)

	decode := map[string]func(*bytes.Buffer) (image.Image, error){
		"png":  func(b *bytes.Buffer) (image.Image, error) { return png.Decode(b) },
		"bmp":  func(b *bytes.Buffer) (image.Image, error) { return bmp.Decode(b) },
		"tiff": func(b *bytes.Buffer) (image.Image, error) { return tiff.Decode(b) },
	}
	for _, format := range Formats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, s.Image(), format); err != nil {
				t.Fatal(err)
			}
			img, err := decode[format](&buf)
			if err != nil {
				t.Fatal(err)
			}
			r, g, b, _ := img.At(2, 2).RGBA()
			if r>>8 != 0xff || g>>8 != 0x21 || b>>8 != 0x21 {
				t.Errorf("pixel (2, 2) decoded as %v", img.At(2, 2))
			}
		})
	}

	if err := Encode(&bytes.Buffer{}, s.Image(), "gif"); !errors.Is(err, ErrFormat) {
		t.Errorf("Encode(gif) = %v, want ErrFormat", err)
	}
}

func TestRasterize(t *testing.T) {
	s := New(8, 8)
	r := raster.NewRasterizer[num.Fixed](raster.ScreenRect(s))
	cmd, err := raster.NewTriangleCommand[num.Fixed](&raster.SolidShader[num.Fixed]{Display: s},
		raster.V[num.Fixed](0, 0, 5), raster.V[num.Fixed](4, 0, 5), raster.V[num.Fixed](0, 4, 5))
	if err != nil {
		t.Fatal(err)
	}
	r.Draw(cmd)

	for y := range 8 {
		for x := range 8 {
			want := 0
			if x+y <= 2 {
				want = 5
			}
			if got := s.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
}
