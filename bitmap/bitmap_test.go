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

package bitmap

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	img, err := Parse(`
		. . c c
		. c 5 c

		c 5 F 1
	`)
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("size %dx%d, want 4x3", img.Width(), img.Height())
	}

	tests := []struct{ x, y, want int }{
		{0, 0, 0},
		{2, 0, 12},
		{2, 1, 5},
		{2, 2, 15},
		{3, 2, 1},
		{4, 0, 0},  // outside
		{0, -1, 0}, // outside
	}
	for _, tt := range tests {
		if got := img.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}

	if got, want := img.String(), "..cc\n.c5c\nc5f1\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "  \n\n ", ErrEmpty},
		{"ragged", "...\n..", ErrRagged},
		{"bad pixel", "..x", ErrPixel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("?")
}

func TestSet(t *testing.T) {
	img := New(2, 2)
	img.Set(1, 0, 7)
	img.Set(5, 5, 9)
	if img.Pixel(1, 0) != 7 {
		t.Error("pixel not set")
	}
	if got := img.String(); got != ".7\n..\n" {
		t.Errorf("unexpected image %q", got)
	}
}

func TestFromImage(t *testing.T) {
	p := color.Palette{
		color.RGBA{},
		color.RGBA{255, 255, 255, 255},
		color.RGBA{255, 0, 0, 255},
	}

	src := image.NewRGBA(image.Rect(10, 10, 13, 11))
	src.Set(10, 10, color.RGBA{250, 250, 250, 255})
	src.Set(11, 10, color.RGBA{200, 10, 20, 255})
	// (12, 10) stays transparent

	img := FromImage(src, p)
	if img.Width() != 3 || img.Height() != 1 {
		t.Fatalf("size %dx%d, want 3x1", img.Width(), img.Height())
	}
	for x, want := range []int{1, 2, 0} {
		if got := img.Pixel(x, 0); got != want {
			t.Errorf("pixel %d = %d, want %d", x, got, want)
		}
	}

	pal := img.Paletted(p)
	if pal.ColorIndexAt(1, 0) != 2 {
		t.Errorf("Paletted lost the colour index")
	}
}
