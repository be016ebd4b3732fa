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
	"errors"
	"testing"

	"github.com/eanders-ms/contraption-sprites-ext/num"
)

func TestCommandValidation(t *testing.T) {
	d := newTestDisplay(4, 4)
	solid := &SolidShader[num.Float]{Display: d}
	textured := &TexturedShader[num.Float]{Display: d, Texture: checkerTexture{}}

	tests := []struct {
		name string
		make func() error
		want error
	}{
		{"point", func() error {
			_, err := NewPointCommand[num.Float](solid, V[num.Float](0, 0, 1))
			return err
		}, nil},
		{"no shader", func() error {
			_, err := NewPointCommand[num.Float](nil, V[num.Float](0, 0, 1))
			return err
		}, ErrNoShader},
		{"line mismatch", func() error {
			_, err := NewLineCommand[num.Float](solid, V[num.Float](0, 0, 1), V[num.Float](1, 1, 1, 2))
			return err
		}, ErrAttributeMismatch},
		{"triangle mismatch", func() error {
			_, err := NewTriangleCommand[num.Float](solid,
				V[num.Float](0, 0, 1), V[num.Float](1, 0, 1), V[num.Float](0, 1))
			return err
		}, ErrAttributeMismatch},
		{"solid without colour", func() error {
			_, err := NewPointCommand[num.Float](solid, V[num.Float](0, 0))
			return err
		}, ErrTooFewAttributes},
		{"textured with one coordinate", func() error {
			_, err := NewTriangleCommand[num.Float](textured,
				V[num.Float](0, 0, 0), V[num.Float](1, 0, 1), V[num.Float](0, 1, 0))
			return err
		}, ErrTooFewAttributes},
		{"textured", func() error {
			_, err := NewTriangleCommand[num.Float](textured,
				V[num.Float](0, 0, 0, 0), V[num.Float](1, 0, 1, 0), V[num.Float](0, 1, 0, 1))
			return err
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.make()
			if tt.want == nil && err != nil {
				t.Errorf("unexpected error %v", err)
			} else if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCommandEditInPlace(t *testing.T) {
	d := newTestDisplay(4, 4)
	cmd, err := NewPointCommand[num.Float](&SolidShader[num.Float]{Display: d}, V[num.Float](0, 0, 1))
	if err != nil {
		t.Fatal(err)
	}

	cmd.V.Attrs = nil
	if err := cmd.Validate(); !errors.Is(err, ErrTooFewAttributes) {
		t.Errorf("Validate = %v after removing the colour", err)
	}
}

func TestVertexHelpers(t *testing.T) {
	attrs := []num.Float{1, 2}
	v := NewVertex[num.Float](3, 4, attrs...)
	attrs[0] = 99
	if v.Attrs[0] != 1 {
		t.Error("NewVertex did not copy the attributes")
	}

	var split Vertex[num.Float]
	top := V[num.Float](0, 0, 0)
	bottom := V[num.Float](8, 4, 4)
	split.setSplit(&top, &bottom, 1)
	if split.X != 2 || split.Y != 1 || split.Attrs[0] != 1 {
		t.Errorf("setSplit = %+v", split)
	}

	split.Reset()
	if split.X != 0 || len(split.Attrs) != 0 {
		t.Errorf("Reset left %+v", split)
	}
}
