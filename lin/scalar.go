// Copyright 2026 go-linmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package lin

import (
	stdmath "math"

	"github.com/chewxy/math32"
)

// This file provides the scalar arithmetic layer: elementwise math kernels
// over a single component value. The vector and matrix elementwise math
// functions broadcast these kernels over their components.
//
// float32 arguments take a float32-native fast path via chewxy/math32;
// every other type (including named float types) goes through the float64
// stdlib implementation. IEEE semantics apply throughout: NaN and Inf
// propagate, and no kernel reports errors.

// Sin computes sin(x) in radians.
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
func Sin[T Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sin(v))
	}
	return T(stdmath.Sin(float64(x)))
}

// Cos computes cos(x) in radians.
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
func Cos[T Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Cos(v))
	}
	return T(stdmath.Cos(float64(x)))
}

// SinCos computes sin(x) and cos(x) in one call. Prefer it over separate
// Sin and Cos calls when both results are needed; the range reduction is
// shared.
func SinCos[T Floats](x T) (sin, cos T) {
	if v, ok := any(x).(float32); ok {
		s, c := math32.Sincos(v)
		return T(s), T(c)
	}
	s, c := stdmath.Sincos(float64(x))
	return T(s), T(c)
}

// Sqrt computes the square root of x.
//
// Special cases:
//   - Sqrt(+Inf) = +Inf
//   - Sqrt(±0) = ±0
//   - Sqrt(x < 0) = NaN
//   - Sqrt(NaN) = NaN
func Sqrt[T Floats](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(math32.Sqrt(v))
	}
	return T(stdmath.Sqrt(float64(x)))
}

// RSqrt computes the reciprocal square root 1/sqrt(x).
//
// Special cases:
//   - RSqrt(+Inf) = 0
//   - RSqrt(±0) = ±Inf
//   - RSqrt(x < 0) = NaN
//   - RSqrt(NaN) = NaN
func RSqrt[T Floats](x T) T {
	return 1 / Sqrt(x)
}

// Pow computes base**exp.
//
// Special cases are those of math.Pow.
func Pow[T Floats](base, exp T) T {
	if b, ok := any(base).(float32); ok {
		return T(math32.Pow(b, any(exp).(float32)))
	}
	return T(stdmath.Pow(float64(base), float64(exp)))
}

// Recip computes the reciprocal 1/x.
//
// Special cases:
//   - Recip(±0) = ±Inf
//   - Recip(±Inf) = ±0
func Recip[T Floats](x T) T {
	return 1 / x
}

// Abs returns the absolute value of x. For unsigned types it returns x
// unchanged.
func Abs[T Component](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of a and b.
func Min[T Component](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T Component](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// NotEqual reports whether a and b differ. It exists so that selection
// predicates read as mask computations rather than ad hoc comparisons:
//
//	axis := lin.Select3(lin.NotEqual(angle, 0), scaled, lin.UnitZ3[T]())
func NotEqual[T Component](a, b T) bool {
	return a != b
}

// Select returns yes when mask is true and no otherwise. It is the scalar
// rendition of a SIMD blend: both arguments are fully evaluated before the
// selection, so the two candidate values must be total computations (a
// discarded NaN or Inf is fine, a side effect is not). The component types
// here are scalars, so the bool is the entire mask and the branch cannot
// diverge; a component type modeling parallel lanes would need a per-lane
// blend in the style of hwy.IfThenElse.
func Select[T Component](mask bool, yes, no T) T {
	if mask {
		return yes
	}
	return no
}
