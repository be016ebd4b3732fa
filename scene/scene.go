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

// Package scene reads scene descriptions from YAML files and turns them
// into draw commands.
//
// A scene looks like this:
//
//	width: 160
//	height: 120
//	background: 15
//	mode: blocks
//	camera: {x: 0, y: 0, zoom: 2}
//	images:
//	  coin: |
//	    . 5 5 .
//	    5 4 4 5
//	    5 4 4 5
//	    . 5 5 .
//	shapes:
//	  - {kind: triangle, points: [[0, 0], [20, 0], [0, 20]], colors: [2, 5, 7]}
//	  - {kind: polygon, at: [-20, 10], radius: 8, color: 9}
//	  - {kind: sprite, image: coin, at: [30, -10], angle: 30, scale: 4}
//
// Coordinates are world coordinates; the camera maps them to the screen.
package scene

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eanders-ms/contraption-sprites-ext/bitmap"
	"github.com/eanders-ms/contraption-sprites-ext/camera"
	"github.com/eanders-ms/contraption-sprites-ext/raster"
)

// Scene is the content of a scene file.
type Scene struct {
	Width      int               `yaml:"width"`
	Height     int               `yaml:"height"`
	Background int               `yaml:"background"`
	Mode       string            `yaml:"mode"`
	Camera     Camera            `yaml:"camera"`
	Images     map[string]string `yaml:"images"`
	Shapes     []Shape           `yaml:"shapes"`

	textures map[string]*bitmap.Image
}

// Camera positions the view. Zoom 0 means 1.
type Camera struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Zoom float64 `yaml:"zoom"`
}

// Shape is one drawable object. Which fields are used depends on Kind:
//
//   - point: Points[0], Color
//   - line: Points[0..1], Color or one entry of Colors per point
//   - triangle: Points[0..2], Color or Colors. Triangles which are not
//     clockwise on screen are not drawn.
//   - polygon: a filled convex polygon through Points, or a circle around
//     At if Radius is set. Color.
//   - outline: like polygon, but only the edges are drawn. The outline of
//     Points is only closed if Closed is set.
//   - sprite: Image centred on At, rotated by Angle degrees and scaled by
//     Scale (0 means 1). If Frame is non-zero, the image box is outlined
//     in that colour.
type Shape struct {
	Kind   string       `yaml:"kind"`
	Points [][2]float64 `yaml:"points"`
	Color  int          `yaml:"color"`
	Colors []int        `yaml:"colors"`
	Closed bool         `yaml:"closed"`
	At     [2]float64   `yaml:"at"`
	Radius float64      `yaml:"radius"`
	Image  string       `yaml:"image"`
	Angle  float64      `yaml:"angle"`
	Scale  float64      `yaml:"scale"`
	Frame  int          `yaml:"frame"`
}

// Errors returned by Load and Queue.
var (
	ErrSize   = errors.New("scene: invalid screen size")
	ErrMode   = errors.New("scene: unknown mode")
	ErrKind   = errors.New("scene: unknown shape kind")
	ErrPoints = errors.New("scene: wrong number of points")
	ErrColors = errors.New("scene: wrong number of colors")
	ErrImage  = errors.New("scene: unknown image")
)

// Load reads a scene file. Unknown fields are rejected.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	s := &Scene{}
	if err := dec.Decode(s); err != nil {
		return nil, fmt.Errorf("scene: decoding: %w", err)
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

// init fills in defaults and parses the images.
func (s *Scene) init() error {
	if s.Width == 0 && s.Height == 0 {
		s.Width, s.Height = defaultWidth, defaultHeight
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w %dx%d", ErrSize, s.Width, s.Height)
	}
	if _, err := s.RasterMode(); err != nil {
		return err
	}

	if err := s.parseImages(); err != nil {
		return err
	}

	for i := range s.Shapes {
		if err := s.Shapes[i].check(s.textures); err != nil {
			return fmt.Errorf("scene: shape %d (%s): %w", i, s.Shapes[i].Kind, err)
		}
	}
	return nil
}

// parseImages decodes s.Images into the texture table.
func (s *Scene) parseImages() error {
	textures := make(map[string]*bitmap.Image, len(s.Images))
	for name, text := range s.Images {
		img, err := bitmap.Parse(text)
		if err != nil {
			return fmt.Errorf("scene: image %q: %w", name, err)
		}
		textures[name] = img
	}
	s.textures = textures
	return nil
}

// RasterMode returns the triangle traversal mode of the scene.
func (s *Scene) RasterMode() (raster.Mode, error) {
	switch strings.ToLower(s.Mode) {
	case "", "spans":
		return raster.Spans, nil
	case "blocks":
		return raster.Blocks, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrMode, s.Mode)
	}
}

// NewCamera returns the camera described by the scene.
func (s *Scene) NewCamera() *camera.Camera {
	c := camera.New(s.Width, s.Height)
	c.Pos.X, c.Pos.Y = s.Camera.X, s.Camera.Y
	if s.Camera.Zoom != 0 {
		c.SetZoom(s.Camera.Zoom)
	}
	return c
}

// Texture returns the named image.
func (s *Scene) Texture(name string) (*bitmap.Image, bool) {
	img, ok := s.textures[name]
	return img, ok
}

func (sh *Shape) check(textures map[string]*bitmap.Image) error {
	var nPoints int
	switch sh.Kind {
	case "point":
		nPoints = 1
	case "line":
		nPoints = 2
	case "triangle":
		nPoints = 3
	case "polygon":
		if sh.Radius <= 0 && len(sh.Points) < 3 {
			return fmt.Errorf("%w: have %d, need at least 3", ErrPoints, len(sh.Points))
		}
		return nil
	case "outline":
		if sh.Radius <= 0 && len(sh.Points) < 2 {
			return fmt.Errorf("%w: have %d, need at least 2", ErrPoints, len(sh.Points))
		}
		return nil
	case "sprite":
		if _, ok := textures[sh.Image]; !ok {
			return fmt.Errorf("%w %q", ErrImage, sh.Image)
		}
		return nil
	default:
		return ErrKind
	}

	if len(sh.Points) != nPoints {
		return fmt.Errorf("%w: have %d, need %d", ErrPoints, len(sh.Points), nPoints)
	}
	if len(sh.Colors) != 0 && len(sh.Colors) != nPoints {
		return fmt.Errorf("%w: have %d, need %d", ErrColors, len(sh.Colors), nPoints)
	}
	return nil
}

// Default screen size, matching the MakeCode Arcade console.
const (
	defaultWidth  = 160
	defaultHeight = 120
)
