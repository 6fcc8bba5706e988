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

package batch

import (
	"math"
	"testing"

	"github.com/ajroetker/go-linmath/lin"
)

// Sizes chosen to exercise the empty case, sub-width tails, exact vector
// widths and multi-chunk runs.
var testSizes = []int{0, 1, 3, 7, 8, 16, 33}

const (
	epsilon32 = float32(1e-4)
	epsilon64 = float64(1e-10)
)

func fill32(n int) (x, y, z []float32) {
	x = make([]float32, n)
	y = make([]float32, n)
	z = make([]float32, n)
	for i := 0; i < n; i++ {
		x[i] = float32(i) * 0.5
		y[i] = float32(i) - 3.25
		z[i] = -float32(i) * 0.125
	}
	return x, y, z
}

func fill64(n int) (x, y, z []float64) {
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i) * 0.5
		y[i] = float64(i) - 3.25
		z[i] = -float64(i) * 0.125
	}
	return x, y, z
}

func TestMulVec3Batch(t *testing.T) {
	m := lin.Mat3x3[float32]{{1, 0.5, -2}, {0, 3, 1}, {-1, 2, 0.25}}

	for _, n := range testSizes {
		srcX, srcY, srcZ := fill32(n)
		dstX := make([]float32, n)
		dstY := make([]float32, n)
		dstZ := make([]float32, n)

		MulVec3Batch(m, srcX, srcY, srcZ, dstX, dstY, dstZ)

		for i := 0; i < n; i++ {
			want := m.MulVec(lin.Vec3[float32]{srcX[i], srcY[i], srcZ[i]})
			got := lin.Vec3[float32]{dstX[i], dstY[i], dstZ[i]}
			for c := range got {
				diff := got[c] - want[c]
				if diff < 0 {
					diff = -diff
				}
				if diff > epsilon32 {
					t.Fatalf("n=%d i=%d: got %v, want %v", n, i, got, want)
				}
			}
		}
	}
}

func TestMulVec3BatchFloat64InPlace(t *testing.T) {
	m := lin.Mat3x3[float64]{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}

	for _, n := range testSizes {
		x, y, z := fill64(n)
		wantX := make([]float64, n)
		wantY := make([]float64, n)
		wantZ := make([]float64, n)
		for i := 0; i < n; i++ {
			w := m.MulVec(lin.Vec3[float64]{x[i], y[i], z[i]})
			wantX[i], wantY[i], wantZ[i] = w[0], w[1], w[2]
		}

		// Exact aliasing of source and destination is supported.
		MulVec3Batch(m, x, y, z, x, y, z)

		for i := 0; i < n; i++ {
			if math.Abs(x[i]-wantX[i]) > epsilon64 ||
				math.Abs(y[i]-wantY[i]) > epsilon64 ||
				math.Abs(z[i]-wantZ[i]) > epsilon64 {
				t.Fatalf("n=%d i=%d: got (%v, %v, %v), want (%v, %v, %v)",
					n, i, x[i], y[i], z[i], wantX[i], wantY[i], wantZ[i])
			}
		}
	}
}

func TestMulVec3BatchShortestSlice(t *testing.T) {
	m := lin.Identity3x3[float32]()
	srcX, srcY, srcZ := fill32(10)
	dstX := make([]float32, 4) // shorter than the sources
	dstY := make([]float32, 10)
	dstZ := make([]float32, 10)

	MulVec3Batch(m, srcX, srcY, srcZ, dstX, dstY, dstZ)

	for i := 0; i < 4; i++ {
		if dstX[i] != srcX[i] {
			t.Fatalf("i=%d: got %v, want %v", i, dstX[i], srcX[i])
		}
	}
	for i := 4; i < 10; i++ {
		if dstY[i] != 0 || dstZ[i] != 0 {
			t.Fatalf("wrote past the shortest slice at %d", i)
		}
	}
}

func TestMulPoint3Batch(t *testing.T) {
	// Rotation block plus a translation column; the fourth row is ignored.
	m := lin.Mat4x4[float64]{
		{0, 1, 0, 99},
		{-1, 0, 0, 99},
		{0, 0, 2, 99},
		{10, 20, 30, 99},
	}

	for _, n := range testSizes {
		srcX, srcY, srcZ := fill64(n)
		dstX := make([]float64, n)
		dstY := make([]float64, n)
		dstZ := make([]float64, n)

		MulPoint3Batch(m, srcX, srcY, srcZ, dstX, dstY, dstZ)

		for i := 0; i < n; i++ {
			p := lin.Vec3[float64]{srcX[i], srcY[i], srcZ[i]}
			want := m.MulVec(p.Extend4(1)).XYZ()
			if math.Abs(dstX[i]-want[0]) > epsilon64 ||
				math.Abs(dstY[i]-want[1]) > epsilon64 ||
				math.Abs(dstZ[i]-want[2]) > epsilon64 {
				t.Fatalf("n=%d i=%d: got (%v, %v, %v), want %v",
					n, i, dstX[i], dstY[i], dstZ[i], want)
			}
		}
	}
}

func TestRotateQuatBatch(t *testing.T) {
	q := lin.RotationQuat(lin.Normalize3(lin.Vec3[float64]{1, 2, 3}), 1.1)

	for _, n := range testSizes {
		srcX, srcY, srcZ := fill64(n)
		dstX := make([]float64, n)
		dstY := make([]float64, n)
		dstZ := make([]float64, n)

		RotateQuatBatch(q, srcX, srcY, srcZ, dstX, dstY, dstZ)

		for i := 0; i < n; i++ {
			want := q.RotateVec3(lin.Vec3[float64]{srcX[i], srcY[i], srcZ[i]})
			if math.Abs(dstX[i]-want[0]) > epsilon64 ||
				math.Abs(dstY[i]-want[1]) > epsilon64 ||
				math.Abs(dstZ[i]-want[2]) > epsilon64 {
				t.Fatalf("n=%d i=%d: got (%v, %v, %v), want %v",
					n, i, dstX[i], dstY[i], dstZ[i], want)
			}
		}
	}
}

func TestRotateQuatBatchIdentity(t *testing.T) {
	q := lin.QuatIdentity[float32]()
	srcX, srcY, srcZ := fill32(7)
	dstX := make([]float32, 7)
	dstY := make([]float32, 7)
	dstZ := make([]float32, 7)

	RotateQuatBatch(q, srcX, srcY, srcZ, dstX, dstY, dstZ)

	for i := range srcX {
		if dstX[i] != srcX[i] || dstY[i] != srcY[i] || dstZ[i] != srcZ[i] {
			t.Fatalf("identity rotation changed element %d", i)
		}
	}
}
