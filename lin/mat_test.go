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
	"strings"
	"testing"
)

func TestIdentityAndDiag(t *testing.T) {
	id := Identity3x3[float64]()
	if got := id.Column(0); got != UnitX3[float64]() {
		t.Errorf("Column(0) = %v", got)
	}
	if got := id.Column(1); got != UnitY3[float64]() {
		t.Errorf("Column(1) = %v", got)
	}
	if got := id.Column(2); got != UnitZ3[float64]() {
		t.Errorf("Column(2) = %v", got)
	}
	if got := id.Row(1); got != UnitY3[float64]() {
		t.Errorf("Row(1) = %v", got)
	}

	// Non-square diagonals fill min(C, R) entries.
	d := Diag2x4[int32](7)
	want := Mat2x4[int32]{{7, 0, 0, 0}, {0, 7, 0, 0}}
	if d != want {
		t.Errorf("Diag2x4(7) = %v, want %v", d, want)
	}
	d2 := Diag4x2[int32](7)
	want2 := Mat4x2[int32]{{7, 0}, {0, 7}, {0, 0}, {0, 0}}
	if d2 != want2 {
		t.Errorf("Diag4x2(7) = %v, want %v", d2, want2)
	}
	if Zero3x4[float32]() != (Mat3x4[float32]{}) {
		t.Error("Zero3x4 is not the zero value")
	}
}

func TestRowColumnAccess(t *testing.T) {
	var m Mat2x3[float64]
	m.SetColumn(0, Vec3[float64]{1, 2, 3})
	m.SetColumn(1, Vec3[float64]{4, 5, 6})

	if got := m.Column(1); got != (Vec3[float64]{4, 5, 6}) {
		t.Errorf("Column(1) = %v", got)
	}
	if got := m.Row(2); got != (Vec2[float64]{3, 6}) {
		t.Errorf("Row(2) = %v", got)
	}

	m.SetRow(0, Vec2[float64]{-1, -4})
	if m != (Mat2x3[float64]{{-1, 2, 3}, {-4, 5, 6}}) {
		t.Errorf("after SetRow: %v", m)
	}
}

func TestRowColumnOK(t *testing.T) {
	m := Identity4x4[float64]()

	if v, err := m.ColumnOK(3); err != nil || v != (Vec4[float64]{0, 0, 0, 1}) {
		t.Errorf("ColumnOK(3) = %v, %v", v, err)
	}
	if _, err := m.ColumnOK(4); err == nil {
		t.Error("ColumnOK(4) should fail")
	} else if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := m.RowOK(-1); err == nil {
		t.Error("RowOK(-1) should fail")
	}
	if v, err := m.RowOK(0); err != nil || v != (Vec4[float64]{1, 0, 0, 0}) {
		t.Errorf("RowOK(0) = %v, %v", v, err)
	}
}

func TestMatAddSubIdentities(t *testing.T) {
	m := Mat3x3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	if got := m.AddScalar(0); got != m {
		t.Errorf("m + 0 = %v", got)
	}
	if got := m.MulScalar(1); got != m {
		t.Errorf("m * 1 = %v", got)
	}
	if got := m.Sub(m); got != Zero3x3[float64]() {
		t.Errorf("m - m = %v", got)
	}
	if got := m.Add(Zero3x3[float64]()); got != m {
		t.Errorf("m + zero = %v", got)
	}
	if got := m.Neg().Neg(); got != m {
		t.Errorf("double negation = %v", got)
	}
}

func TestMatScalarBroadcast(t *testing.T) {
	m := Mat2x2[float64]{{1, 2}, {3, 4}}

	if got := m.AddScalar(10); got != (Mat2x2[float64]{{11, 12}, {13, 14}}) {
		t.Errorf("AddScalar = %v", got)
	}
	if got := m.SubScalar(1); got != (Mat2x2[float64]{{0, 1}, {2, 3}}) {
		t.Errorf("SubScalar = %v", got)
	}
	if got := ScalarSub2x2(10, m); got != (Mat2x2[float64]{{9, 8}, {7, 6}}) {
		t.Errorf("ScalarSub2x2 = %v", got)
	}
	if got := m.MulScalar(2); got != (Mat2x2[float64]{{2, 4}, {6, 8}}) {
		t.Errorf("MulScalar = %v", got)
	}
	if got := m.DivScalar(2); got != (Mat2x2[float64]{{0.5, 1}, {1.5, 2}}) {
		t.Errorf("DivScalar = %v", got)
	}
	if got := ScalarDiv2x2(12, m); got != (Mat2x2[float64]{{12, 6}, {4, 3}}) {
		t.Errorf("ScalarDiv2x2 = %v", got)
	}
}

func TestMatIncDec(t *testing.T) {
	m := Mat2x3[int32]{{1, 2, 3}, {4, 5, 6}}
	orig := m
	m.Inc()
	if m != (Mat2x3[int32]{{2, 3, 4}, {5, 6, 7}}) {
		t.Errorf("after Inc: %v", m)
	}
	m.Dec()
	if m != orig {
		t.Errorf("Inc then Dec: %v, want %v", m, orig)
	}
}

func TestMatMulIdentity(t *testing.T) {
	m := Mat3x3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	id := Identity3x3[float64]()

	if got := m.Mul(id); got != m {
		t.Errorf("m * I = %v", got)
	}
	if got := id.Mul(m); got != m {
		t.Errorf("I * m = %v", got)
	}
	// Rectangular: identity on the matching side.
	r := Mat2x4[int64]{{1, 2, 3, 4}, {5, 6, 7, 8}}
	if got := r.Mul(Identity2x2[int64]()); got != r {
		t.Errorf("rect m * I = %v", got)
	}
	if got := Mul4x4By2x4(Identity4x4[int64](), r); got != r {
		t.Errorf("I * rect m = %v", got)
	}
}

func TestMatMulComposition(t *testing.T) {
	// The product of two maps applied to a vector equals applying them in
	// sequence. Integer components keep the comparison exact.
	a := Mat3x3[int64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	b := Mat3x3[int64]{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}}
	v := Vec3[int64]{2, -1, 3}

	if got, want := a.Mul(b).MulVec(v), a.MulVec(b.MulVec(v)); got != want {
		t.Errorf("(a b) v = %v, a (b v) = %v", got, want)
	}

	// Rectangular chain: Vec2 -> Vec3 -> Vec2.
	p := Mat3x2[int64]{{1, 2}, {3, 4}, {5, 6}}  // Vec3 -> Vec2
	q := Mat2x3[int64]{{1, -1, 2}, {0, 3, -2}}  // Vec2 -> Vec3
	u := Vec2[int64]{4, -3}

	if got, want := Mul3x2By2x3(p, q).MulVec(u), p.MulVec(q.MulVec(u)); got != want {
		t.Errorf("(p q) u = %v, p (q u) = %v", got, want)
	}
}

func TestMatMulKnown(t *testing.T) {
	a := Mat2x2[int32]{{1, 3}, {2, 4}} // column-major: [[1 2] [3 4]] in row notation
	b := Mat2x2[int32]{{5, 7}, {6, 8}}
	// Row-notation product [[1 2][3 4]] [[5 6][7 8]] = [[19 22][43 50]],
	// stored column-major as {{19, 43}, {22, 50}}.
	if got := a.Mul(b); got != (Mat2x2[int32]{{19, 43}, {22, 50}}) {
		t.Errorf("a * b = %v", got)
	}
}

func TestMatMulVec(t *testing.T) {
	// Columns scaled by the vector components and summed.
	m := Mat2x3[float64]{{1, 2, 3}, {4, 5, 6}}
	v := Vec2[float64]{10, 1}
	if got := m.MulVec(v); got != (Vec3[float64]{14, 25, 36}) {
		t.Errorf("MulVec = %v", got)
	}
	if got := Identity4x4[float64]().MulVec(Vec4[float64]{1, 2, 3, 4}); got != (Vec4[float64]{1, 2, 3, 4}) {
		t.Errorf("I v = %v", got)
	}
}

func TestCompMulDiffersFromMul(t *testing.T) {
	a := Mat2x2[int32]{{1, 2}, {3, 4}}
	b := Mat2x2[int32]{{5, 6}, {7, 8}}

	comp := a.CompMul(b)
	if comp != (Mat2x2[int32]{{5, 12}, {21, 32}}) {
		t.Errorf("CompMul = %v", comp)
	}
	if comp == a.Mul(b) {
		t.Error("CompMul unexpectedly equals the matrix product")
	}
	if got := a.Div(b); got != (Mat2x2[int32]{{0, 0}, {0, 0}}) {
		t.Errorf("int Div = %v", got)
	}
	c := Mat2x2[float64]{{8, 9}, {10, 11}}
	d := Mat2x2[float64]{{2, 3}, {4, 11}}
	if got := c.Div(d); got != (Mat2x2[float64]{{4, 3}, {2.5, 1}}) {
		t.Errorf("float Div = %v", got)
	}
}

func TestTransposeInvolution(t *testing.T) {
	m := Mat2x3[float64]{{1, 2, 3}, {4, 5, 6}}
	tr := m.Transpose()
	if tr != (Mat3x2[float64]{{1, 4}, {2, 5}, {3, 6}}) {
		t.Errorf("Transpose = %v", tr)
	}
	if got := tr.Transpose(); got != m {
		t.Errorf("double transpose = %v, want %v", got, m)
	}

	m4 := Mat4x3[int16]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}, {10, 11, 12}}
	if got := m4.Transpose().Transpose(); got != m4 {
		t.Errorf("double transpose 4x3 = %v", got)
	}
}

func TestShapeConversion(t *testing.T) {
	m := Mat3x3[float64]{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}

	// Extending overlays the source onto an identity matrix.
	big := m.To4x4()
	want := Mat4x4[float64]{
		{1, 2, 3, 0},
		{4, 5, 6, 0},
		{7, 8, 9, 0},
		{0, 0, 0, 1},
	}
	if big != want {
		t.Errorf("To4x4 = %v, want %v", big, want)
	}

	// Truncating back recovers the original.
	if got := big.To3x3(); got != m {
		t.Errorf("To4x4 then To3x3 = %v, want %v", got, m)
	}

	// Pure truncation drops trailing columns and rows.
	if got := m.To2x2(); got != (Mat2x2[float64]{{1, 2}, {4, 5}}) {
		t.Errorf("To2x2 = %v", got)
	}

	// Mixed: wider but shorter keeps identity in the uncovered diagonal.
	small := Mat2x2[float64]{{5, 6}, {7, 8}}
	if got := small.To4x3(); got != (Mat4x3[float64]{{5, 6, 0}, {7, 8, 0}, {0, 0, 1}, {0, 0, 0}}) {
		t.Errorf("To4x3 = %v", got)
	}
	if got := small.To2x4(); got != (Mat2x4[float64]{{5, 6, 0, 0}, {7, 8, 0, 0}}) {
		t.Errorf("To2x4 = %v", got)
	}
}

func TestConvert(t *testing.T) {
	m := Mat2x2[float64]{{1.75, -2.5}, {3, 4.25}}
	if got := Convert2x2[float32](m); got != (Mat2x2[float32]{{1.75, -2.5}, {3, 4.25}}) {
		t.Errorf("to float32 = %v", got)
	}
	// Float to int truncates toward zero.
	if got := Convert2x2[int32](m); got != (Mat2x2[int32]{{1, -2}, {3, 4}}) {
		t.Errorf("to int32 = %v", got)
	}
	mi := Mat3x4[int8]{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}
	if got := Convert3x4[float64](mi); got != (Mat3x4[float64]{{1, 2, 3, 4}, {5, 6, 7, 8}, {9, 10, 11, 12}}) {
		t.Errorf("int8 to float64 = %v", got)
	}
}

func TestMatElementwiseMath(t *testing.T) {
	m := Mat2x2[float64]{{0, math.Pi / 2}, {math.Pi, -math.Pi / 2}}

	sin := Sin2x2(m)
	cos := Cos2x2(m)
	sin2, cos2 := SinCos2x2(m)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got, want := sin[i][j], math.Sin(m[i][j]); got != want {
				t.Errorf("Sin[%d][%d] = %v, want %v", i, j, got, want)
			}
			if got, want := cos[i][j], math.Cos(m[i][j]); got != want {
				t.Errorf("Cos[%d][%d] = %v, want %v", i, j, got, want)
			}
			if sin2[i][j] != sin[i][j] || cos2[i][j] != cos[i][j] {
				t.Errorf("SinCos[%d][%d] disagrees with Sin/Cos", i, j)
			}
		}
	}

	sq := Mat2x3[float64]{{1, 4, 9}, {16, 25, 36}}
	if got := Sqrt2x3(sq); got != (Mat2x3[float64]{{1, 2, 3}, {4, 5, 6}}) {
		t.Errorf("Sqrt = %v", got)
	}
	rs := RSqrt2x3(Mat2x3[float64]{{1, 4, 16}, {25, 100, 400}})
	wantRS := Mat2x3[float64]{{1, 0.5, 0.25}, {0.2, 0.1, 0.05}}
	for i := range rs {
		for j := range rs[i] {
			if !approxEqual64(rs[i][j], wantRS[i][j], epsilon64) {
				t.Errorf("RSqrt[%d][%d] = %v, want %v", i, j, rs[i][j], wantRS[i][j])
			}
		}
	}
	if got := Recip2x2(Mat2x2[float64]{{1, 2}, {4, 8}}); got != (Mat2x2[float64]{{1, 0.5}, {0.25, 0.125}}) {
		t.Errorf("Recip = %v", got)
	}

	base := Mat2x2[float64]{{2, 3}, {4, 5}}
	if got := PowScalar2x2(base, 2); got != (Mat2x2[float64]{{4, 9}, {16, 25}}) {
		t.Errorf("PowScalar = %v", got)
	}
	exp := Mat2x2[float64]{{1, 2}, {0.5, 0}}
	if got := Pow2x2(base, exp); got != (Mat2x2[float64]{{2, 9}, {2, 1}}) {
		t.Errorf("Pow = %v", got)
	}
}

func TestMatMinMaxAbs(t *testing.T) {
	a := Mat2x3[int32]{{1, -5, 3}, {-2, 8, 0}}
	b := Mat2x3[int32]{{2, -6, 3}, {-1, 7, 1}}

	minGot := Min2x3(a, b)
	maxGot := Max2x3(a, b)
	absGot := Abs2x3(a)
	for i := range a {
		for j := range a[i] {
			if minGot[i][j] != Min(a[i][j], b[i][j]) {
				t.Errorf("Min[%d][%d] = %v", i, j, minGot[i][j])
			}
			if maxGot[i][j] != Max(a[i][j], b[i][j]) {
				t.Errorf("Max[%d][%d] = %v", i, j, maxGot[i][j])
			}
			if absGot[i][j] != Abs(a[i][j]) {
				t.Errorf("Abs[%d][%d] = %v", i, j, absGot[i][j])
			}
		}
	}
}

func TestMatBitwise(t *testing.T) {
	a := Mat2x2[uint32]{{0b1100, 0b1010}, {0xFF00, 7}}
	b := Mat2x2[uint32]{{0b1010, 0b0110}, {0x0FF0, 3}}

	checks := []struct {
		name string
		got  Mat2x2[uint32]
		op   func(x, y uint32) uint32
	}{
		{"And", And2x2(a, b), func(x, y uint32) uint32 { return x & y }},
		{"Or", Or2x2(a, b), func(x, y uint32) uint32 { return x | y }},
		{"Xor", Xor2x2(a, b), func(x, y uint32) uint32 { return x ^ y }},
		{"Mod", Mod2x2(a, b), func(x, y uint32) uint32 { return x % y }},
		{"Shl", Shl2x2(a, Mat2x2[uint32]{{1, 2}, {3, 0}}), func(x, y uint32) uint32 { return x << y }},
		{"Shr", Shr2x2(a, Mat2x2[uint32]{{1, 2}, {3, 0}}), func(x, y uint32) uint32 { return x >> y }},
	}
	shifts := Mat2x2[uint32]{{1, 2}, {3, 0}}
	for _, c := range checks {
		other := b
		if c.name == "Shl" || c.name == "Shr" {
			other = shifts
		}
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				if want := c.op(a[i][j], other[i][j]); c.got[i][j] != want {
					t.Errorf("%s[%d][%d] = %v, want %v", c.name, i, j, c.got[i][j], want)
				}
			}
		}
	}

	if got := Not2x2(a); got != (Mat2x2[uint32]{{^a[0][0], ^a[0][1]}, {^a[1][0], ^a[1][1]}}) {
		t.Errorf("Not = %v", got)
	}
	if got := AndScalar2x2(a, 0xF); got != (Mat2x2[uint32]{{0b1100, 0b1010}, {0, 7}}) {
		t.Errorf("AndScalar = %v", got)
	}
	if got := ModScalar2x2(a, 5); got != (Mat2x2[uint32]{{2, 0}, {0xFF00 % 5, 2}}) {
		t.Errorf("ModScalar = %v", got)
	}
	if got := ScalarShl2x2(uint32(1), Mat2x2[uint32]{{0, 1}, {2, 3}}); got != (Mat2x2[uint32]{{1, 2}, {4, 8}}) {
		t.Errorf("ScalarShl = %v", got)
	}
	if got := ShlScalar2x2(Mat2x2[uint32]{{1, 2}, {3, 4}}, 4); got != (Mat2x2[uint32]{{16, 32}, {48, 64}}) {
		t.Errorf("ShlScalar = %v", got)
	}
	if got := ShrScalar2x2(Mat2x2[uint32]{{16, 32}, {48, 64}}, 4); got != (Mat2x2[uint32]{{1, 2}, {3, 4}}) {
		t.Errorf("ShrScalar = %v", got)
	}
	if got := ScalarMod2x2(uint32(100), Mat2x2[uint32]{{3, 7}, {9, 11}}); got != (Mat2x2[uint32]{{1, 2}, {1, 1}}) {
		t.Errorf("ScalarMod = %v", got)
	}
	if got := ScalarShr2x2(uint32(64), Mat2x2[uint32]{{1, 2}, {3, 6}}); got != (Mat2x2[uint32]{{32, 16}, {8, 1}}) {
		t.Errorf("ScalarShr = %v", got)
	}
}

func TestMatAliases(t *testing.T) {
	// The square aliases are interchangeable with the full names.
	var m Mat3[float32] = Identity3x3[float32]()
	var n Mat3x3[float32] = m
	if n != Identity3x3[float32]() {
		t.Errorf("alias mismatch: %v", n)
	}
}
