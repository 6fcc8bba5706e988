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

func TestQuatIdentityMul(t *testing.T) {
	id := QuatIdentity[float64]()
	q := Quat[float64]{0.5, -0.5, 0.5, 0.5}

	if got := q.Mul(id); got != q {
		t.Errorf("q * identity = %v, want %v", got, q)
	}
	if got := id.Mul(q); got != q {
		t.Errorf("identity * q = %v, want %v", got, q)
	}
}

func TestQuatHamiltonBasis(t *testing.T) {
	// The basis quaternions obey i j = k, j k = i, k i = j.
	i := Quat[float64]{1, 0, 0, 0}
	j := Quat[float64]{0, 1, 0, 0}
	k := Quat[float64]{0, 0, 1, 0}

	if got := i.Mul(j); got != k {
		t.Errorf("i * j = %v, want k", got)
	}
	if got := j.Mul(k); got != i {
		t.Errorf("j * k = %v, want i", got)
	}
	if got := k.Mul(i); got != j {
		t.Errorf("k * i = %v, want j", got)
	}
	if got := i.Mul(i); got != (Quat[float64]{0, 0, 0, -1}) {
		t.Errorf("i * i = %v, want -1", got)
	}
	if got := j.Mul(i); got != (Quat[float64]{0, 0, -1, 0}) {
		t.Errorf("j * i = %v, want -k", got)
	}
}

func TestQuatParts(t *testing.T) {
	q := Quat[int32]{1, 2, 3, 4}
	if got := q.V(); got != (Vec3[int32]{1, 2, 3}) {
		t.Errorf("V = %v", got)
	}
	if got := q.S(); got != 4 {
		t.Errorf("S = %v", got)
	}
}

func TestNormalizeQuat(t *testing.T) {
	q := NormalizeQuat(Quat[float64]{1, 2, 3, 4})
	length := math.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if !approxEqual64(length, 1, 1e-9) {
		t.Errorf("|NormalizeQuat(q)| = %v, want 1", length)
	}

	q32 := NormalizeQuat(Quat[float32]{-2, 0, 0, 2})
	l32 := float32(math.Sqrt(float64(q32[0]*q32[0] + q32[1]*q32[1] + q32[2]*q32[2] + q32[3]*q32[3])))
	if !approxEqual32(l32, 1, 1e-4) {
		t.Errorf("|NormalizeQuat(q32)| = %v, want 1", l32)
	}
}

func TestQuatRotateVec3(t *testing.T) {
	// Identity leaves vectors untouched.
	v := Vec3[float64]{1, 2, 3}
	if got := QuatIdentity[float64]().RotateVec3(v); got != v {
		t.Errorf("identity rotation = %v, want %v", got, v)
	}

	// Quarter turn around z maps x to y.
	q := RotationQuat(UnitZ3[float64](), math.Pi/2)
	got := q.RotateVec3(UnitX3[float64]())
	want := UnitY3[float64]()
	for i := range got {
		if !approxEqual64(got[i], want[i], 1e-12) {
			t.Errorf("quarter turn: got %v, want %v", got, want)
			break
		}
	}

	// Composition: rotating by q.Mul(r) equals rotating by r then q.
	r := RotationQuat(UnitX3[float64](), math.Pi/3)
	lhs := q.Mul(r).RotateVec3(v)
	rhs := q.RotateVec3(r.RotateVec3(v))
	for i := range lhs {
		if !approxEqual64(lhs[i], rhs[i], 1e-12) {
			t.Errorf("composition: %v != %v", lhs, rhs)
			break
		}
	}

	// Rotation preserves length.
	if got, want := Length3(q.RotateVec3(v)), Length3(v); !approxEqual64(got, want, 1e-12) {
		t.Errorf("length changed: %v != %v", got, want)
	}
}
