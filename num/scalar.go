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

// Package num provides the numeric backends used by the rasterizer.
//
// All geometry in package raster is generic over a [Scalar]. Two
// implementations are provided: [Float], a float64, and [Fixed], a 52.12
// fixed-point number. Addition, subtraction, negation and comparison use the
// ordinary Go operators; everything that depends on the representation
// (multiplication, division, rounding, conversion) goes through methods.
package num

import "math"

// Scalar is the constraint satisfied by the numeric backends.
//
// The conversion methods ignore their receiver, so that generic code can
// write
//
//	var zero T
//	one := zero.FromInt(1)
//
// without knowing the representation of T.
type Scalar[T any] interface {
	~float64 | ~int64

	// Mul returns the product of the receiver and y.
	Mul(y T) T

	// Div returns the quotient of the receiver and y. y must be non-zero.
	Div(y T) T

	// MulInt returns the receiver multiplied by the integer n.
	MulInt(n int) T

	Floor() int
	Ceil() int
	Round() int

	// Float64 converts the receiver to a float64.
	Float64() float64

	FromInt(n int) T
	FromFloat64(f float64) T
}

// Int converts an integer to T.
func Int[T Scalar[T]](n int) T {
	var zero T
	return zero.FromInt(n)
}

// Of converts a float64 to T, rounding to the nearest representable value.
func Of[T Scalar[T]](f float64) T {
	var zero T
	return zero.FromFloat64(f)
}

// Abs returns the absolute value of v.
func Abs[T Scalar[T]](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Float is the floating-point backend.
type Float float64

// Mul implements [Scalar].
func (f Float) Mul(y Float) Float { return f * y }

// Div implements [Scalar].
func (f Float) Div(y Float) Float { return f / y }

// MulInt implements [Scalar].
func (f Float) MulInt(n int) Float { return f * Float(n) }

// Floor implements [Scalar].
func (f Float) Floor() int { return int(math.Floor(float64(f))) }

// Ceil implements [Scalar].
func (f Float) Ceil() int { return int(math.Ceil(float64(f))) }

// Round implements [Scalar]. Halfway cases round up, matching [Fixed].
func (f Float) Round() int { return int(math.Floor(float64(f) + 0.5)) }

// Float64 implements [Scalar].
func (f Float) Float64() float64 { return float64(f) }

// FromInt implements [Scalar].
func (Float) FromInt(n int) Float { return Float(n) }

// FromFloat64 implements [Scalar].
func (Float) FromFloat64(f float64) Float { return Float(f) }
