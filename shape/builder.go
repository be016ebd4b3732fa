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

package shape

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Builder records a path segment by segment. The methods return the
// receiver so that calls can be chained:
//
//	p := (&Builder{}).MoveTo(a).LineTo(b).LineTo(c).Close()
type Builder struct {
	Cmds   []path.Command
	Coords []vec.Vec2 // 1, 1, 2, 3 or 0 points per command, in order
}

// MoveTo starts a new subpath at p.
func (b *Builder) MoveTo(p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdMoveTo)
	b.Coords = append(b.Coords, p)
	return b
}

// LineTo adds a straight segment to p.
func (b *Builder) LineTo(p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdLineTo)
	b.Coords = append(b.Coords, p)
	return b
}

// QuadTo adds a quadratic Bézier segment with control point c, ending at p.
func (b *Builder) QuadTo(c, p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdQuadTo)
	b.Coords = append(b.Coords, c, p)
	return b
}

// CubeTo adds a cubic Bézier segment with control points c1 and c2,
// ending at p.
func (b *Builder) CubeTo(c1, c2, p vec.Vec2) *Builder {
	b.Cmds = append(b.Cmds, path.CmdCubeTo)
	b.Coords = append(b.Coords, c1, c2, p)
	return b
}

// Close ends the current subpath with a straight segment back to its
// start.
func (b *Builder) Close() *Builder {
	b.Cmds = append(b.Cmds, path.CmdClose)
	return b
}

// Iter returns the recorded path. The point slices passed to the loop
// body alias the Builder and must not be modified.
func (b *Builder) Iter() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		j := 0
		for _, cmd := range b.Cmds {
			n := pointsPerCommand(cmd)
			if !yield(cmd, b.Coords[j:j+n:j+n]) {
				return
			}
			j += n
		}
	}
}

func pointsPerCommand(cmd path.Command) int {
	switch cmd {
	case path.CmdMoveTo, path.CmdLineTo:
		return 1
	case path.CmdQuadTo:
		return 2
	case path.CmdCubeTo:
		return 3
	default:
		return 0
	}
}
