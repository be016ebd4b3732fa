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

package num

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fixed is the fixed-point backend: a signed 52.12 number with the same
// representation as [fixed.Int52_12].
//
// Coordinates with at most 6 fractional bits give exact edge functions,
// since the product of two such values fits into the 12 fractional bits.
type Fixed fixed.Int52_12

// Fixed-point constants.
const (
	// FixedShift is the number of fractional bits of a Fixed.
	FixedShift = 12

	// FixedOne represents 1.0.
	FixedOne Fixed = 1 << FixedShift
)

// Mul implements [Scalar]. The result is rounded to the nearest
// representable value.
func (f Fixed) Mul(y Fixed) Fixed {
	return Fixed(fixed.Int52_12(f).Mul(fixed.Int52_12(y)))
}

// Div implements [Scalar]. The quotient is truncated towards zero.
// Requires y != 0.
func (f Fixed) Div(y Fixed) Fixed {
	return Fixed((int64(f) << FixedShift) / int64(y))
}

// MulInt implements [Scalar].
func (f Fixed) MulInt(n int) Fixed { return f * Fixed(n) }

// Floor implements [Scalar].
func (f Fixed) Floor() int { return fixed.Int52_12(f).Floor() }

// Ceil implements [Scalar].
func (f Fixed) Ceil() int { return fixed.Int52_12(f).Ceil() }

// Round implements [Scalar].
func (f Fixed) Round() int { return fixed.Int52_12(f).Round() }

// Float64 implements [Scalar].
func (f Fixed) Float64() float64 { return float64(f) / float64(FixedOne) }

// FromInt implements [Scalar].
func (Fixed) FromInt(n int) Fixed { return Fixed(int64(n) << FixedShift) }

// FromFloat64 implements [Scalar].
func (Fixed) FromFloat64(v float64) Fixed {
	return Fixed(math.Round(v * float64(FixedOne)))
}

func (f Fixed) String() string { return fixed.Int52_12(f).String() }
