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

// Quat is a quaternion (x, y, z, w) where (x, y, z) is the vector part and
// w the scalar part. A rotation quaternion holds the sine-weighted rotation
// axis in the vector part and the cosine of the half-angle in w.
type Quat[T Component] [4]T

// QuatIdentity returns the identity rotation quaternion (0, 0, 0, 1).
func QuatIdentity[T Component]() Quat[T] {
	return Quat[T]{0, 0, 0, 1}
}

// V returns the vector part of q.
func (q Quat[T]) V() Vec3[T] { return Vec3[T]{q[0], q[1], q[2]} }

// S returns the scalar part of q.
func (q Quat[T]) S() T { return q[3] }

// Mul returns the Hamilton product q * r, the rotation r followed by q.
func (q Quat[T]) Mul(r Quat[T]) Quat[T] {
	qv, rv := q.V(), r.V()
	v := rv.Scale(q[3]).Add(qv.Scale(r[3])).Add(qv.Cross(rv))
	return Quat[T]{v[0], v[1], v[2], q[3]*r[3] - qv.Dot(rv)}
}

// RotateVec3 rotates v by the unit quaternion q using the expanded
// sandwich product q v q*. q must be normalized.
func (q Quat[T]) RotateVec3(v Vec3[T]) Vec3[T] {
	qv := q.V()
	t := qv.Cross(v).Scale(2)
	return v.Add(t.Scale(q[3])).Add(qv.Cross(t))
}

// NormalizeQuat returns q scaled to unit length.
func NormalizeQuat[T Floats](q Quat[T]) Quat[T] {
	s := RSqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	return Quat[T]{q[0] * s, q[1] * s, q[2] * s, q[3] * s}
}
