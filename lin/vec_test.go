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

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{4, 5, 6}

	if got := a.Add(b); got != (Vec3[float64]{5, 7, 9}) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != (Vec3[float64]{3, 3, 3}) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(b); got != (Vec3[float64]{4, 10, 18}) {
		t.Errorf("Mul = %v", got)
	}
	if got := b.Div(a); got != (Vec3[float64]{4, 2.5, 2}) {
		t.Errorf("Div = %v", got)
	}
	if got := a.Scale(2); got != (Vec3[float64]{2, 4, 6}) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Neg(); got != (Vec3[float64]{-1, -2, -3}) {
		t.Errorf("Neg = %v", got)
	}

	// Integer components work too.
	ai := Vec2[int32]{3, -4}
	if got := ai.Add(Vec2[int32]{1, 1}); got != (Vec2[int32]{4, -3}) {
		t.Errorf("int Add = %v", got)
	}
	if got := ai.Dot(ai); got != 25 {
		t.Errorf("int Dot = %v", got)
	}
}

func TestVecDotCross(t *testing.T) {
	a := Vec3[float64]{1, 2, 3}
	b := Vec3[float64]{4, 5, 6}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}

	if got := UnitX3[float64]().Cross(UnitY3[float64]()); got != UnitZ3[float64]() {
		t.Errorf("x cross y = %v, want z", got)
	}
	if got := UnitY3[float64]().Cross(UnitX3[float64]()); got != UnitZ3[float64]().Neg() {
		t.Errorf("y cross x = %v, want -z", got)
	}
	// a x b is orthogonal to both operands.
	c := a.Cross(b)
	if c.Dot(a) != 0 || c.Dot(b) != 0 {
		t.Errorf("Cross result %v not orthogonal to operands", c)
	}
}

func TestVecLengthNormalize(t *testing.T) {
	if got := Length3(Vec3[float64]{3, 4, 0}); got != 5 {
		t.Errorf("Length3 = %v, want 5", got)
	}
	if got := Length2(Vec2[float32]{3, 4}); got != 5 {
		t.Errorf("Length2 = %v, want 5", got)
	}

	n := Normalize3(Vec3[float64]{10, 0, 0})
	if n != UnitX3[float64]() {
		t.Errorf("Normalize3 = %v, want unit x", n)
	}
	n4 := Normalize4(Vec4[float64]{1, 1, 1, 1})
	if got := Length4(n4); !approxEqual64(got, 1, epsilon64) {
		t.Errorf("Length4 after Normalize4 = %v, want 1", got)
	}
}

func TestVecExtendTruncate(t *testing.T) {
	v2 := Vec2[float64]{1, 2}
	if got := v2.Extend3(3); got != (Vec3[float64]{1, 2, 3}) {
		t.Errorf("Extend3 = %v", got)
	}
	if got := v2.Extend4(3, 4); got != (Vec4[float64]{1, 2, 3, 4}) {
		t.Errorf("Vec2.Extend4 = %v", got)
	}

	v4 := Vec4[float64]{1, 2, 3, 4}
	if got := v4.XYZ(); got != (Vec3[float64]{1, 2, 3}) {
		t.Errorf("XYZ = %v", got)
	}
	if got := v4.XY(); got != (Vec2[float64]{1, 2}) {
		t.Errorf("Vec4.XY = %v", got)
	}
	if got := v4.XYZ().XY().Extend3(9).Extend4(8); got != (Vec4[float64]{1, 2, 9, 8}) {
		t.Errorf("chained reshape = %v", got)
	}
}

func TestVecSelectMinMaxAbs(t *testing.T) {
	yes := Vec3[float64]{1, 2, 3}
	no := Vec3[float64]{4, 5, 6}
	if got := Select3(true, yes, no); got != yes {
		t.Errorf("Select3(true) = %v", got)
	}
	if got := Select3(false, yes, no); got != no {
		t.Errorf("Select3(false) = %v", got)
	}

	a := Vec4[int64]{1, 9, -3, 7}
	b := Vec4[int64]{2, 8, -4, 7}
	if got := Min4(a, b); got != (Vec4[int64]{1, 8, -4, 7}) {
		t.Errorf("Min4 = %v", got)
	}
	if got := Max4(a, b); got != (Vec4[int64]{2, 9, -3, 7}) {
		t.Errorf("Max4 = %v", got)
	}
	if got := Abs3(Vec3[float32]{-1.5, 0, 2}); got != (Vec3[float32]{1.5, 0, 2}) {
		t.Errorf("Abs3 = %v", got)
	}
	if got := Abs2(Vec2[int16]{-5, 5}); got != (Vec2[int16]{5, 5}) {
		t.Errorf("Abs2 = %v", got)
	}
}
