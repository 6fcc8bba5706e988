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

// Tolerance constants for floating point comparison
const (
	epsilon32 = float32(1e-5)
	epsilon64 = float64(1e-12)
)

// approxEqual32 checks if two float32 values are approximately equal
func approxEqual32(a, b, epsilon float32) bool {
	if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return true
	}
	if math.IsInf(float64(a), 0) && math.IsInf(float64(b), 0) {
		return (a > 0) == (b > 0)
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

// approxEqual64 checks if two float64 values are approximately equal
func approxEqual64(a, b, epsilon float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	if math.IsInf(a, 0) && math.IsInf(b, 0) {
		return (a > 0) == (b > 0)
	}
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= epsilon
}

func TestSinCosAgainstStdlib(t *testing.T) {
	inputs := []float64{0, 0.25, 1, math.Pi / 4, math.Pi / 2, math.Pi, 2 * math.Pi, -1.5, 10}

	for _, x := range inputs {
		if got, want := Sin(x), math.Sin(x); got != want {
			t.Errorf("Sin(%v) = %v, want %v", x, got, want)
		}
		if got, want := Cos(x), math.Cos(x); got != want {
			t.Errorf("Cos(%v) = %v, want %v", x, got, want)
		}
		s, c := SinCos(x)
		if ws, wc := math.Sincos(x); s != ws || c != wc {
			t.Errorf("SinCos(%v) = (%v, %v), want (%v, %v)", x, s, c, ws, wc)
		}

		x32 := float32(x)
		if got, want := Sin(x32), float32(math.Sin(float64(x32))); !approxEqual32(got, want, epsilon32) {
			t.Errorf("Sin(float32 %v) = %v, want ~%v", x32, got, want)
		}
		s32, c32 := SinCos(x32)
		if !approxEqual32(s32, Sin(x32), epsilon32) || !approxEqual32(c32, Cos(x32), epsilon32) {
			t.Errorf("SinCos(float32 %v) = (%v, %v) disagrees with Sin/Cos", x32, s32, c32)
		}
	}
}

func TestSqrtRSqrtRecip(t *testing.T) {
	for _, x := range []float64{0.25, 1, 2, 4, 1e6} {
		if got, want := Sqrt(x), math.Sqrt(x); got != want {
			t.Errorf("Sqrt(%v) = %v, want %v", x, got, want)
		}
		if got, want := RSqrt(x), 1/math.Sqrt(x); !approxEqual64(got, want, epsilon64) {
			t.Errorf("RSqrt(%v) = %v, want %v", x, got, want)
		}
		if got, want := Recip(x), 1/x; got != want {
			t.Errorf("Recip(%v) = %v, want %v", x, got, want)
		}
	}

	if got := Sqrt(float32(9)); got != 3 {
		t.Errorf("Sqrt(float32 9) = %v, want 3", got)
	}
	if !math.IsNaN(Sqrt(-1.0)) {
		t.Errorf("Sqrt(-1) = %v, want NaN", Sqrt(-1.0))
	}
	if !math.IsInf(Recip(0.0), 1) {
		t.Errorf("Recip(0) = %v, want +Inf", Recip(0.0))
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		base, exp, want float64
	}{
		{2, 10, 1024},
		{9, 0.5, 3},
		{5, 0, 1},
		{2, -1, 0.5},
	}
	for _, tt := range tests {
		if got := Pow(tt.base, tt.exp); !approxEqual64(got, tt.want, epsilon64) {
			t.Errorf("Pow(%v, %v) = %v, want %v", tt.base, tt.exp, got, tt.want)
		}
		if got := Pow(float32(tt.base), float32(tt.exp)); !approxEqual32(got, float32(tt.want), epsilon32) {
			t.Errorf("Pow(float32 %v, %v) = %v, want %v", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if got := Abs(-3.5); got != 3.5 {
		t.Errorf("Abs(-3.5) = %v", got)
	}
	if got := Abs(int32(-7)); got != 7 {
		t.Errorf("Abs(int32 -7) = %v", got)
	}
	if got := Abs(uint16(9)); got != 9 {
		t.Errorf("Abs(uint16 9) = %v", got)
	}
	if got := Min(2, 5); got != 2 {
		t.Errorf("Min(2, 5) = %v", got)
	}
	if got := Max(2.5, -1.0); got != 2.5 {
		t.Errorf("Max(2.5, -1) = %v", got)
	}
}

func TestSelect(t *testing.T) {
	if got := Select(true, 1.5, 2.5); got != 1.5 {
		t.Errorf("Select(true) = %v, want 1.5", got)
	}
	if got := Select(false, 1.5, 2.5); got != 2.5 {
		t.Errorf("Select(false) = %v, want 2.5", got)
	}
	// A discarded NaN must not leak into the result.
	if got := Select(false, Sqrt(-1.0), 4.0); got != 4 {
		t.Errorf("Select(false, NaN, 4) = %v, want 4", got)
	}
	if !NotEqual(1, 2) || NotEqual(3, 3) {
		t.Error("NotEqual misreports")
	}
}
