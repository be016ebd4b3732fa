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

package raster_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/eanders-ms/contraption-sprites-ext/num"
	"github.com/eanders-ms/contraption-sprites-ext/raster"
	"github.com/eanders-ms/contraption-sprites-ext/shape"
	"github.com/eanders-ms/contraption-sprites-ext/testcases"
)

// grayDisplay is a coverage buffer: 255 for drawn pixels, 0 elsewhere.
type grayDisplay struct {
	w, h int
	pix  []byte
}

func newGrayDisplay(w, h int) *grayDisplay {
	return &grayDisplay{w: w, h: h, pix: make([]byte, w*h)}
}

func (d *grayDisplay) SetPixel(x, y, c int) {
	if x < 0 || x >= d.w || y < 0 || y >= d.h {
		panic(fmt.Sprintf("pixel (%d, %d) outside of %dx%d display", x, y, d.w, d.h))
	}
	if c != 0 {
		d.pix[y*d.w+x] = 255
	}
}

func (d *grayDisplay) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.w, d.h)
}

var modes = []raster.Mode{raster.Spans, raster.Blocks}

func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			baseName := category + "_" + tc.Name
			refPath := filepath.Join("testdata", "reference", baseName+".png")
			for _, mode := range modes {
				t.Run(baseName+"_float_"+mode.String(), func(t *testing.T) {
					checkReference(t, refPath, baseName, render[num.Float](t, tc, mode))
				})
				t.Run(baseName+"_fixed_"+mode.String(), func(t *testing.T) {
					checkReference(t, refPath, baseName, render[num.Fixed](t, tc, mode))
				})
			}
		}
	}
}

func checkReference(t *testing.T, refPath, name string, actual *grayDisplay) {
	t.Helper()
	ref, err := loadGray(refPath)
	if errors.Is(err, fs.ErrNotExist) {
		t.Skip("reference image missing, run testcases/genpdf to create it")
	} else if err != nil {
		t.Fatalf("loading reference: %v", err)
	}
	if len(ref) != len(actual.pix) {
		t.Fatalf("reference has %d pixels, want %d", len(ref), len(actual.pix))
	}
	if err := compareImages(name, ref, actual.pix, actual.w, actual.h); err != nil {
		t.Error(err)
	}
}

// TestCasesModesAgree checks that span and block traversal light up the
// same pixels for every test case. Unlike TestAgainstReference this needs
// no reference images. Fixed-point edge values are exact under stepping,
// so the two modes must agree on arbitrary geometry.
func TestCasesModesAgree(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				spans := render[num.Fixed](t, tc, raster.Spans)
				blocks := render[num.Fixed](t, tc, raster.Blocks)
				var drawn int
				for i := range spans.pix {
					if spans.pix[i] != blocks.pix[i] {
						t.Fatalf("pixel (%d, %d): spans %d, blocks %d",
							i%spans.w, i/spans.w, spans.pix[i], blocks.pix[i])
					}
					if spans.pix[i] != 0 {
						drawn++
					}
				}
				if drawn == 0 {
					t.Error("no pixels drawn")
				}
			})
		}
	}
}

// render draws a test case through the shape package into a coverage
// buffer.
func render[T num.Scalar[T]](t *testing.T, tc testcases.TestCase, mode raster.Mode) *grayDisplay {
	t.Helper()

	d := newGrayDisplay(tc.Width, tc.Height)
	r := raster.NewRenderer[T](raster.ScreenRect(d))
	r.Mode = mode

	f := shape.NewFlattener()
	f.CTM = tc.Matrix()

	s := &raster.SolidShader[T]{Display: d}
	var err error
	switch tc.Op.(type) {
	case testcases.Fill:
		err = shape.FillConvex[T](r, f, tc.Path.Iter(), s, 1)
	case testcases.Outline:
		err = shape.Outline[T](r, f, tc.Path.Iter(), s, 1)
	default:
		t.Fatalf("unknown operation %T", tc.Op)
	}
	if err != nil {
		t.Fatal(err)
	}
	r.Render()
	return d
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

// compareImages compares the aliased output of the rasterizer with an
// anti-aliased reference. A pixel only counts as wrong if it was drawn
// although the reference covers less than a quarter of it, or if it was
// left out although the reference covers more than three quarters.
func compareImages(name string, expected, actual []byte, w, h int) error {
	const lo, hi = 64, 192

	var over, under int
	for i := range expected {
		switch {
		case actual[i] != 0 && expected[i] < lo:
			over++
		case actual[i] == 0 && expected[i] >= hi:
			under++
		}
	}

	maxAllowed := max(4, w*h/50)
	if over+under > maxAllowed {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%d pixels drawn outside the shape, %d pixels missing (max %d)",
			over, under, maxAllowed)
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// 3 panels: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green = under, red = over, black = match
			diff := int(expected[i]) - int(actual[i])
			var diffColor color.RGBA
			if diff > 0 {
				diffColor = color.RGBA{G: uint8(diff), A: 255}
			} else if diff < 0 {
				diffColor = color.RGBA{R: uint8(-diff), A: 255}
			} else {
				diffColor = color.RGBA{A: 255}
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestReferenceClip checks that geometry outside the canvas is clipped
// rather than written out of bounds.
func TestReferenceClip(t *testing.T) {
	tc := testcases.TestCase{
		Name:   "offscreen",
		Width:  8,
		Height: 8,
		Op:     testcases.Fill{},
		Path:   shape.Circle(vec.Vec2{X: 4, Y: 4}, 20),
	}
	for _, mode := range modes {
		d := render[num.Fixed](t, tc, mode)
		for i, c := range d.pix {
			if c != 255 {
				t.Fatalf("%s: pixel %d not covered", mode, i)
			}
		}
	}
}
