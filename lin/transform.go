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

// Conversions between the three rotation representations:
//
//   - rotation vector: direction is the rotation axis, magnitude the angle
//     in radians
//   - axis-angle vector: (axis x, axis y, axis z, angle) with a unit axis
//   - rotation quaternion: unit quaternion (axis*sin(angle/2), cos(angle/2))
//
// All functions are pure; none allocates beyond its return value.

// AxisAngle converts a rotation vector to an axis-angle vector.
//
// The axis of a zero-length rotation vector is undefined; in that case the
// result is exactly (0, 0, 1, 0). The fallback is an unconditional select
// over the zero-length predicate rather than a branch, so the scaled axis
// is computed regardless and the result stays uniform when the component
// type models parallel lanes.
//
// Special cases:
//   - AxisAngle(0, 0, 0) = (0, 0, 1, 0)
func AxisAngle[T Floats](v Vec3[T]) Vec4[T] {
	angle := Length3(v)
	axis := Select3(NotEqual(angle, 0), v.Scale(Recip(angle)), UnitZ3[T]())
	return axis.Extend4(angle)
}

// AxisAngleXYZ converts the rotation vector (x, y, z) to an axis-angle
// vector. See AxisAngle.
func AxisAngleXYZ[T Floats](x, y, z T) Vec4[T] {
	return AxisAngle(Vec3[T]{x, y, z})
}

// RotationVec converts an axis-angle pair to a rotation vector.
func RotationVec[T Component](axis Vec3[T], angle T) Vec3[T] {
	return axis.Scale(angle)
}

// RotationVecXYZ converts the axis (x, y, z) and angle to a rotation
// vector.
func RotationVecXYZ[T Component](x, y, z, angle T) Vec3[T] {
	return Vec3[T]{x * angle, y * angle, z * angle}
}

// RotationVecFromAxisAngle converts a packed axis-angle vector to a
// rotation vector: the first three components scaled by the fourth.
func RotationVecFromAxisAngle[T Component](v Vec4[T]) Vec3[T] {
	return Vec3[T]{v[0] * v[3], v[1] * v[3], v[2] * v[3]}
}

// RotationQuat converts an axis-angle pair to a rotation quaternion. The
// axis must be unit length. Sine and cosine of the half-angle come from a
// single SinCos call.
func RotationQuat[T Floats](axis Vec3[T], angle T) Quat[T] {
	s, c := SinCos(angle / 2)
	return Quat[T]{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// RotationQuatXYZ converts the unit axis (x, y, z) and angle to a rotation
// quaternion.
func RotationQuatXYZ[T Floats](x, y, z, angle T) Quat[T] {
	s, c := SinCos(angle / 2)
	return Quat[T]{x * s, y * s, z * s, c}
}

// RotationQuatFromAxisAngle converts a packed axis-angle vector to a
// rotation quaternion.
func RotationQuatFromAxisAngle[T Floats](v Vec4[T]) Quat[T] {
	return RotationQuatXYZ(v[0], v[1], v[2], v[3])
}

// RotationQuatFromVec converts a rotation vector to a rotation quaternion.
//
// Special cases:
//   - RotationQuatFromVec(0, 0, 0) = (0, 0, 0, 1), inherited from the
//     AxisAngle fallback: sin(0/2) zeroes the fallback axis exactly.
func RotationQuatFromVec[T Floats](v Vec3[T]) Quat[T] {
	return RotationQuatFromAxisAngle(AxisAngle(v))
}

// RotationQuatFromVecXYZ converts the rotation vector (x, y, z) to a
// rotation quaternion. See RotationQuatFromVec.
func RotationQuatFromVecXYZ[T Floats](x, y, z T) Quat[T] {
	return RotationQuatFromVec(Vec3[T]{x, y, z})
}
