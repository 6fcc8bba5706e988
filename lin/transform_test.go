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
	"math"
	"testing"
)

func TestAxisAngleZeroVector(t *testing.T) {
	// The degenerate input must produce the documented fallback exactly,
	// bit for bit (in particular +0, not -0).
	got64 := AxisAngle(Vec3[float64]{0, 0, 0})
	want64 := Vec4[float64]{0, 0, 1, 0}
	for i := range got64 {
		if math.Float64bits(got64[i]) != math.Float64bits(want64[i]) {
			t.Errorf("AxisAngle(0) [float64] = %v, want exactly %v", got64, want64)
			break
		}
	}

	got32 := AxisAngle(Vec3[float32]{0, 0, 0})
	want32 := Vec4[float32]{0, 0, 1, 0}
	for i := range got32 {
		if math.Float32bits(got32[i]) != math.Float32bits(want32[i]) {
			t.Errorf("AxisAngle(0) [float32] = %v, want exactly %v", got32, want32)
			break
		}
	}

	if got := AxisAngleXYZ[float64](0, 0, 0); got != want64 {
		t.Errorf("AxisAngleXYZ(0, 0, 0) = %v, want %v", got, want64)
	}
}

func TestRotationQuatFromVecZero(t *testing.T) {
	got := RotationQuatFromVec(Vec3[float64]{0, 0, 0})
	want := QuatIdentity[float64]()
	for i := range got {
		if math.Float64bits(got[i]) != math.Float64bits(want[i]) {
			t.Errorf("RotationQuatFromVec(0) = %v, want exactly %v", got, want)
			break
		}
	}

	got32 := RotationQuatFromVecXYZ[float32](0, 0, 0)
	want32 := QuatIdentity[float32]()
	for i := range got32 {
		if math.Float32bits(got32[i]) != math.Float32bits(want32[i]) {
			t.Errorf("RotationQuatFromVecXYZ(0) = %v, want exactly %v", got32, want32)
			break
		}
	}
}

func TestAxisAngleKnown(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3[float64]
		axis Vec3[float64]
		angl float64
	}{
		{"x half pi", Vec3[float64]{math.Pi / 2, 0, 0}, Vec3[float64]{1, 0, 0}, math.Pi / 2},
		{"neg y", Vec3[float64]{0, -3, 0}, Vec3[float64]{0, -1, 0}, 3},
		{"diagonal", Vec3[float64]{1, 1, 1}, Normalize3(Vec3[float64]{1, 1, 1}), math.Sqrt(3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AxisAngle(tt.v)
			want := tt.axis.Extend4(tt.angl)
			for i := range got {
				if !approxEqual64(got[i], want[i], 1e-12) {
					t.Errorf("AxisAngle(%v) = %v, want %v", tt.v, got, want)
					break
				}
			}
			if gotLen := Length3(got.XYZ()); !approxEqual64(gotLen, 1, 1e-12) {
				t.Errorf("axis not unit: |%v| = %v", got.XYZ(), gotLen)
			}
		})
	}
}

func TestRotationVec(t *testing.T) {
	if got := RotationVec(UnitZ3[float64](), math.Pi/2); got != (Vec3[float64]{0, 0, math.Pi / 2}) {
		t.Errorf("RotationVec(z, pi/2) = %v", got)
	}
	if got := RotationVecXYZ[float64](0, 1, 0, 2.5); got != (Vec3[float64]{0, 2.5, 0}) {
		t.Errorf("RotationVecXYZ = %v", got)
	}
	if got := RotationVecFromAxisAngle(Vec4[float64]{1, 0, 0, 3}); got != (Vec3[float64]{3, 0, 0}) {
		t.Errorf("RotationVecFromAxisAngle = %v", got)
	}
	// Integer axis-angle scaling is exact.
	if got := RotationVec(Vec3[int32]{1, 0, 2}, 3); got != (Vec3[int32]{3, 0, 6}) {
		t.Errorf("integer RotationVec = %v", got)
	}
}

func TestAxisAngleRotationVecRoundTrip(t *testing.T) {
	samples := []Vec3[float64]{
		{math.Pi / 2, 0, 0},
		{0, 0, -1},
		{0.1, 0.2, 0.3},
		{-2, 1, 4},
	}
	for _, v := range samples {
		back := RotationVecFromAxisAngle(AxisAngle(v))
		for i := range back {
			if !approxEqual64(back[i], v[i], 1e-12) {
				t.Errorf("round trip of %v came back as %v", v, back)
				break
			}
		}
	}
}

func TestRotationQuat(t *testing.T) {
	// Quarter turn around z: (0, 0, sin(pi/4), cos(pi/4)).
	got := RotationQuat(UnitZ3[float64](), math.Pi/2)
	s := math.Sqrt(2) / 2
	want := Quat[float64]{0, 0, s, s}
	for i := range got {
		if !approxEqual64(got[i], want[i], 1e-15) {
			t.Errorf("RotationQuat(z, pi/2) = %v, want %v", got, want)
			break
		}
	}

	if got := RotationQuat(UnitX3[float64](), 0); got != QuatIdentity[float64]() {
		t.Errorf("zero angle = %v, want identity", got)
	}

	if a, b := RotationQuatXYZ[float64](0, 1, 0, 1.25), RotationQuat(UnitY3[float64](), 1.25); a != b {
		t.Errorf("RotationQuatXYZ %v != RotationQuat %v", a, b)
	}
	if a, b := RotationQuatFromAxisAngle(Vec4[float64]{1, 0, 0, 0.5}), RotationQuat(UnitX3[float64](), 0.5); a != b {
		t.Errorf("RotationQuatFromAxisAngle %v != RotationQuat %v", a, b)
	}
}

func TestRotationQuatFromVecAgainstComposition(t *testing.T) {
	samples := []Vec3[float64]{
		{math.Pi, 0, 0},
		{0, 1.5, 0},
		{1, 1, 1},
		{-0.3, 0.4, -0.5},
	}
	for _, v := range samples {
		got := RotationQuatFromVec(v)
		want := RotationQuat(Normalize3(v), Length3(v))
		for i := range got {
			if !approxEqual64(got[i], want[i], 1e-12) {
				t.Errorf("RotationQuatFromVec(%v) = %v, want %v", v, got, want)
				break
			}
		}
		// The result must be a unit quaternion.
		n := got[0]*got[0] + got[1]*got[1] + got[2]*got[2] + got[3]*got[3]
		if !approxEqual64(n, 1, 1e-12) {
			t.Errorf("|q|^2 = %v for v = %v", n, v)
		}
	}
}
