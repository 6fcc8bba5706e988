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

// Vec2 is a 2-component vector.
type Vec2[T Component] [2]T

// Vec3 is a 3-component vector.
type Vec3[T Component] [3]T

// Vec4 is a 4-component vector.
type Vec4[T Component] [4]T

// Unit axes. UnitZ3 is the canonical fallback axis for degenerate rotation
// vectors (see AxisAngle).

func UnitX3[T Component]() Vec3[T] { return Vec3[T]{1, 0, 0} }
func UnitY3[T Component]() Vec3[T] { return Vec3[T]{0, 1, 0} }
func UnitZ3[T Component]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Add returns the componentwise sum v + u.
func (v Vec2[T]) Add(u Vec2[T]) Vec2[T] { return Vec2[T]{v[0] + u[0], v[1] + u[1]} }
func (v Vec3[T]) Add(u Vec3[T]) Vec3[T] { return Vec3[T]{v[0] + u[0], v[1] + u[1], v[2] + u[2]} }
func (v Vec4[T]) Add(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] + u[0], v[1] + u[1], v[2] + u[2], v[3] + u[3]}
}

// Sub returns the componentwise difference v - u.
func (v Vec2[T]) Sub(u Vec2[T]) Vec2[T] { return Vec2[T]{v[0] - u[0], v[1] - u[1]} }
func (v Vec3[T]) Sub(u Vec3[T]) Vec3[T] { return Vec3[T]{v[0] - u[0], v[1] - u[1], v[2] - u[2]} }
func (v Vec4[T]) Sub(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] - u[0], v[1] - u[1], v[2] - u[2], v[3] - u[3]}
}

// Mul returns the componentwise product v * u.
func (v Vec2[T]) Mul(u Vec2[T]) Vec2[T] { return Vec2[T]{v[0] * u[0], v[1] * u[1]} }
func (v Vec3[T]) Mul(u Vec3[T]) Vec3[T] { return Vec3[T]{v[0] * u[0], v[1] * u[1], v[2] * u[2]} }
func (v Vec4[T]) Mul(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] * u[0], v[1] * u[1], v[2] * u[2], v[3] * u[3]}
}

// Div returns the componentwise quotient v / u.
func (v Vec2[T]) Div(u Vec2[T]) Vec2[T] { return Vec2[T]{v[0] / u[0], v[1] / u[1]} }
func (v Vec3[T]) Div(u Vec3[T]) Vec3[T] { return Vec3[T]{v[0] / u[0], v[1] / u[1], v[2] / u[2]} }
func (v Vec4[T]) Div(u Vec4[T]) Vec4[T] {
	return Vec4[T]{v[0] / u[0], v[1] / u[1], v[2] / u[2], v[3] / u[3]}
}

// Scale returns v with every component multiplied by s.
func (v Vec2[T]) Scale(s T) Vec2[T] { return Vec2[T]{v[0] * s, v[1] * s} }
func (v Vec3[T]) Scale(s T) Vec3[T] { return Vec3[T]{v[0] * s, v[1] * s, v[2] * s} }
func (v Vec4[T]) Scale(s T) Vec4[T] { return Vec4[T]{v[0] * s, v[1] * s, v[2] * s, v[3] * s} }

// Neg returns the componentwise negation of v.
func (v Vec2[T]) Neg() Vec2[T] { return Vec2[T]{-v[0], -v[1]} }
func (v Vec3[T]) Neg() Vec3[T] { return Vec3[T]{-v[0], -v[1], -v[2]} }
func (v Vec4[T]) Neg() Vec4[T] { return Vec4[T]{-v[0], -v[1], -v[2], -v[3]} }

// Dot returns the dot product of v and u.
func (v Vec2[T]) Dot(u Vec2[T]) T { return v[0]*u[0] + v[1]*u[1] }
func (v Vec3[T]) Dot(u Vec3[T]) T { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] }
func (v Vec4[T]) Dot(u Vec4[T]) T { return v[0]*u[0] + v[1]*u[1] + v[2]*u[2] + v[3]*u[3] }

// Cross returns the cross product of v and u.
func (v Vec3[T]) Cross(u Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*u[2] - v[2]*u[1],
		v[2]*u[0] - v[0]*u[2],
		v[0]*u[1] - v[1]*u[0],
	}
}

// Extend3 appends z to a Vec2.
func (v Vec2[T]) Extend3(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Extend4 appends z and w to a Vec2.
func (v Vec2[T]) Extend4(z, w T) Vec4[T] { return Vec4[T]{v[0], v[1], z, w} }

// Extend4 appends w to a Vec3.
func (v Vec3[T]) Extend4(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// XY truncates to the first two components.
func (v Vec3[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }
func (v Vec4[T]) XY() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// XYZ truncates to the first three components.
func (v Vec4[T]) XYZ() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Length2 returns the Euclidean length of v.
func Length2[T Floats](v Vec2[T]) T { return Sqrt(v.Dot(v)) }

// Length3 returns the Euclidean length of v.
func Length3[T Floats](v Vec3[T]) T { return Sqrt(v.Dot(v)) }

// Length4 returns the Euclidean length of v.
func Length4[T Floats](v Vec4[T]) T { return Sqrt(v.Dot(v)) }

// Normalize2 returns v scaled to unit length. A zero vector yields NaN
// components, matching IEEE division semantics; callers needing a fallback
// should select one explicitly (see AxisAngle).
func Normalize2[T Floats](v Vec2[T]) Vec2[T] { return v.Scale(1 / Length2(v)) }

// Normalize3 returns v scaled to unit length. See Normalize2 for the
// zero-vector behavior.
func Normalize3[T Floats](v Vec3[T]) Vec3[T] { return v.Scale(1 / Length3(v)) }

// Normalize4 returns v scaled to unit length. See Normalize2 for the
// zero-vector behavior.
func Normalize4[T Floats](v Vec4[T]) Vec4[T] { return v.Scale(1 / Length4(v)) }

// Select2 blends two vectors under a uniform mask: yes when mask is true,
// no otherwise. Both arguments are evaluated; see Select.
func Select2[T Component](mask bool, yes, no Vec2[T]) Vec2[T] {
	if mask {
		return yes
	}
	return no
}

// Select3 blends two vectors under a uniform mask. See Select2.
func Select3[T Component](mask bool, yes, no Vec3[T]) Vec3[T] {
	if mask {
		return yes
	}
	return no
}

// Select4 blends two vectors under a uniform mask. See Select2.
func Select4[T Component](mask bool, yes, no Vec4[T]) Vec4[T] {
	if mask {
		return yes
	}
	return no
}

// Min2 returns the componentwise minimum of a and b.
func Min2[T Component](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{Min(a[0], b[0]), Min(a[1], b[1])}
}

// Min3 returns the componentwise minimum of a and b.
func Min3[T Component](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{Min(a[0], b[0]), Min(a[1], b[1]), Min(a[2], b[2])}
}

// Min4 returns the componentwise minimum of a and b.
func Min4[T Component](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{Min(a[0], b[0]), Min(a[1], b[1]), Min(a[2], b[2]), Min(a[3], b[3])}
}

// Max2 returns the componentwise maximum of a and b.
func Max2[T Component](a, b Vec2[T]) Vec2[T] {
	return Vec2[T]{Max(a[0], b[0]), Max(a[1], b[1])}
}

// Max3 returns the componentwise maximum of a and b.
func Max3[T Component](a, b Vec3[T]) Vec3[T] {
	return Vec3[T]{Max(a[0], b[0]), Max(a[1], b[1]), Max(a[2], b[2])}
}

// Max4 returns the componentwise maximum of a and b.
func Max4[T Component](a, b Vec4[T]) Vec4[T] {
	return Vec4[T]{Max(a[0], b[0]), Max(a[1], b[1]), Max(a[2], b[2]), Max(a[3], b[3])}
}

// Abs2 returns the componentwise absolute value of v.
func Abs2[T Component](v Vec2[T]) Vec2[T] { return Vec2[T]{Abs(v[0]), Abs(v[1])} }

// Abs3 returns the componentwise absolute value of v.
func Abs3[T Component](v Vec3[T]) Vec3[T] { return Vec3[T]{Abs(v[0]), Abs(v[1]), Abs(v[2])} }

// Abs4 returns the componentwise absolute value of v.
func Abs4[T Component](v Vec4[T]) Vec4[T] {
	return Vec4[T]{Abs(v[0]), Abs(v[1]), Abs(v[2]), Abs(v[3])}
}
