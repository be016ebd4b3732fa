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
	"fmt"

	"github.com/eanders-ms/contraption-sprites-ext/num"
)

// Errors returned when draw commands are constructed or queued.
var (
	ErrNilCommand        = errors.New("raster: nil command")
	ErrNoShader          = errors.New("raster: command has no shader")
	ErrAttributeMismatch = errors.New("raster: vertices have different attribute counts")
	ErrTooFewAttributes  = errors.New("raster: too few attributes for shader")
)

// Command is a draw command: a [PointCommand], [LineCommand] or
// [TriangleCommand]. Commands may be kept by the caller and modified in
// place between frames; call Validate after changing attribute lists.
type Command[T num.Scalar[T]] interface {
	// Shader returns the shader the command is drawn with.
	Shader() PixelShader[T]

	// Validate checks that the command can be drawn.
	Validate() error

	isCommand()
}

// PointCommand draws a single pixel.
type PointCommand[T num.Scalar[T]] struct {
	PixelShader PixelShader[T]
	V           Vertex[T]
}

// NewPointCommand returns a point command for v.
func NewPointCommand[T num.Scalar[T]](s PixelShader[T], v Vertex[T]) (*PointCommand[T], error) {
	cmd := &PointCommand[T]{PixelShader: s, V: v}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Shader implements [Command].
func (c *PointCommand[T]) Shader() PixelShader[T] { return c.PixelShader }

// Validate implements [Command].
func (c *PointCommand[T]) Validate() error {
	if c == nil {
		return ErrNilCommand
	}
	return validate(c.PixelShader, &c.V)
}

func (*PointCommand[T]) isCommand() {}

// LineCommand draws a line from V0 towards V1. The pixel of V1 itself is
// not drawn.
type LineCommand[T num.Scalar[T]] struct {
	PixelShader PixelShader[T]
	V0, V1      Vertex[T]
}

// NewLineCommand returns a line command from v0 to v1.
func NewLineCommand[T num.Scalar[T]](s PixelShader[T], v0, v1 Vertex[T]) (*LineCommand[T], error) {
	cmd := &LineCommand[T]{PixelShader: s, V0: v0, V1: v1}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Shader implements [Command].
func (c *LineCommand[T]) Shader() PixelShader[T] { return c.PixelShader }

// Validate implements [Command].
func (c *LineCommand[T]) Validate() error {
	if c == nil {
		return ErrNilCommand
	}
	return validate(c.PixelShader, &c.V0, &c.V1)
}

func (*LineCommand[T]) isCommand() {}

// TriangleCommand draws a filled triangle. Triangles which are not in
// clockwise screen order (see [TriangleEquation.Area2]) are not drawn.
type TriangleCommand[T num.Scalar[T]] struct {
	PixelShader PixelShader[T]
	V0, V1, V2  Vertex[T]
}

// NewTriangleCommand returns a triangle command for v0, v1, v2.
func NewTriangleCommand[T num.Scalar[T]](s PixelShader[T], v0, v1, v2 Vertex[T]) (*TriangleCommand[T], error) {
	cmd := &TriangleCommand[T]{PixelShader: s, V0: v0, V1: v1, V2: v2}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Shader implements [Command].
func (c *TriangleCommand[T]) Shader() PixelShader[T] { return c.PixelShader }

// Validate implements [Command].
func (c *TriangleCommand[T]) Validate() error {
	if c == nil {
		return ErrNilCommand
	}
	return validate(c.PixelShader, &c.V0, &c.V1, &c.V2)
}

func (*TriangleCommand[T]) isCommand() {}

func validate[T num.Scalar[T]](s PixelShader[T], vs ...*Vertex[T]) error {
	if s == nil {
		return ErrNoShader
	}
	n := len(vs[0].Attrs)
	for i, v := range vs[1:] {
		if len(v.Attrs) != n {
			return fmt.Errorf("%w: vertex 0 has %d, vertex %d has %d",
				ErrAttributeMismatch, n, i+1, len(v.Attrs))
		}
	}
	if ac, ok := s.(AttributeCounter); ok && n < ac.Attributes() {
		return fmt.Errorf("%w: have %d, need %d", ErrTooFewAttributes, n, ac.Attributes())
	}
	return nil
}
