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
	"context"
	"log/slog"

	"seehuhn.de/go/geom/rect"

	"github.com/eanders-ms/contraption-sprites-ext/num"
)

// Renderer collects draw commands for a frame and hands them to a
// [Rasterizer] in the order they were queued.
type Renderer[T num.Scalar[T]] struct {
	*Rasterizer[T]

	queue []Command[T]
	spare []Command[T]
}

// NewRenderer returns a Renderer drawing into the given scissor rectangle.
func NewRenderer[T num.Scalar[T]](scissor rect.Rect) *Renderer[T] {
	return &Renderer[T]{
		Rasterizer: NewRasterizer[T](scissor),
	}
}

// Queue appends cmd to the current frame. Invalid commands are rejected
// with the error from cmd.Validate, and a nil cmd with ErrNilCommand.
func (r *Renderer[T]) Queue(cmd Command[T]) error {
	if cmd == nil {
		Logger().Warn("raster: command rejected", "error", ErrNilCommand)
		return ErrNilCommand
	}
	if err := cmd.Validate(); err != nil {
		Logger().Warn("raster: command rejected", "error", err)
		return err
	}
	r.queue = append(r.queue, cmd)
	return nil
}

// Len returns the number of queued commands.
func (r *Renderer[T]) Len() int {
	return len(r.queue)
}

// Render draws and removes all commands queued so far. Commands queued
// while Render is running, for example by a shader, are drawn by the next
// call.
func (r *Renderer[T]) Render() {
	cmds := r.queue
	r.queue = r.spare[:0]

	if log := Logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("raster: render pass",
			"commands", len(cmds),
			"mode", r.Mode.String())
	}

	for _, cmd := range cmds {
		r.Draw(cmd)
	}

	clear(cmds)
	r.spare = cmds[:0]
}
