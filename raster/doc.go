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

// Package raster draws points, lines and filled triangles into an indexed
// colour display with a half-space rasterizer.
//
// A triangle is described by three [EdgeEquation] values, linear functions
// which are positive inside the triangle, and one [ParameterEquation] per
// vertex attribute. The [Rasterizer] walks the triangle either row by row
// (spans) or in [BlockSize] square tiles (blocks) and advances edge and
// attribute values by adding precomputed coefficients, so that the inner
// loops contain no multiplications.
//
// All types are generic over the numeric backend, [num.Float] or
// [num.Fixed]; both give identical coverage for vertices on a 1/64 grid.
//
// Pixel centres are at half-integer coordinates. A pixel is covered when
// its centre passes all three edge tests; centres exactly on an edge are
// decided by the top-left rule (see [EdgeEquation.Tie]), so that triangles
// sharing an edge never draw a pixel twice and never leave a gap.
//
// Scratch objects are taken from pools owned by the Rasterizer and are
// returned before each draw call ends; a Rasterizer reaches zero
// allocations per frame in steady state. A Rasterizer is not safe for
// concurrent use.
package raster
