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
	"github.com/ajroetker/go-highway/hwy"

	"github.com/ajroetker/go-linmath/lin"
)

// MulVec3Batch applies the linear map m to a set of 3D vectors: for every
// index n, (dstX[n], dstY[n], dstZ[n]) = m * (srcX[n], srcY[n], srcZ[n]).
//
// The number of elements processed is the length of the shortest slice.
func MulVec3Batch[T hwy.Floats](m lin.Mat3x3[T], srcX, srcY, srcZ, dstX, dstY, dstZ []T) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	// Broadcast the matrix, row by row. m is column-major: m[i][j] is
	// column i, row j.
	vM00 := hwy.Set(m[0][0])
	vM01 := hwy.Set(m[1][0])
	vM02 := hwy.Set(m[2][0])
	vM10 := hwy.Set(m[0][1])
	vM11 := hwy.Set(m[1][1])
	vM12 := hwy.Set(m[2][1])
	vM20 := hwy.Set(m[0][2])
	vM21 := hwy.Set(m[1][2])
	vM22 := hwy.Set(m[2][2])

	apply := func(x, y, z hwy.Vec[T]) (rx, ry, rz hwy.Vec[T]) {
		rx = hwy.Mul(x, vM00)
		rx = hwy.FMA(y, vM01, rx)
		rx = hwy.FMA(z, vM02, rx)

		ry = hwy.Mul(x, vM10)
		ry = hwy.FMA(y, vM11, ry)
		ry = hwy.FMA(z, vM12, ry)

		rz = hwy.Mul(x, vM20)
		rz = hwy.FMA(y, vM21, rz)
		rz = hwy.FMA(z, vM22, rz)
		return rx, ry, rz
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			rx, ry, rz := apply(x, y, z)

			hwy.Store(rx, dstX[offset:])
			hwy.Store(ry, dstY[offset:])
			hwy.Store(rz, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			rx, ry, rz := apply(x, y, z)

			hwy.MaskStore(mask, rx, dstX[offset:])
			hwy.MaskStore(mask, ry, dstY[offset:])
			hwy.MaskStore(mask, rz, dstZ[offset:])
		},
	)
}

// MulPoint3Batch applies the affine transform m to a set of 3D points,
// treating every point as having a fourth coordinate of 1: the upper-left
// 3x3 block rotates and scales, the fourth column translates. The fourth
// row of m is ignored (no perspective divide).
func MulPoint3Batch[T hwy.Floats](m lin.Mat4x4[T], srcX, srcY, srcZ, dstX, dstY, dstZ []T) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	vM00 := hwy.Set(m[0][0])
	vM01 := hwy.Set(m[1][0])
	vM02 := hwy.Set(m[2][0])
	vM03 := hwy.Set(m[3][0])
	vM10 := hwy.Set(m[0][1])
	vM11 := hwy.Set(m[1][1])
	vM12 := hwy.Set(m[2][1])
	vM13 := hwy.Set(m[3][1])
	vM20 := hwy.Set(m[0][2])
	vM21 := hwy.Set(m[1][2])
	vM22 := hwy.Set(m[2][2])
	vM23 := hwy.Set(m[3][2])

	apply := func(x, y, z hwy.Vec[T]) (rx, ry, rz hwy.Vec[T]) {
		rx = hwy.FMA(x, vM00, vM03)
		rx = hwy.FMA(y, vM01, rx)
		rx = hwy.FMA(z, vM02, rx)

		ry = hwy.FMA(x, vM10, vM13)
		ry = hwy.FMA(y, vM11, ry)
		ry = hwy.FMA(z, vM12, ry)

		rz = hwy.FMA(x, vM20, vM23)
		rz = hwy.FMA(y, vM21, rz)
		rz = hwy.FMA(z, vM22, rz)
		return rx, ry, rz
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			rx, ry, rz := apply(x, y, z)

			hwy.Store(rx, dstX[offset:])
			hwy.Store(ry, dstY[offset:])
			hwy.Store(rz, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			rx, ry, rz := apply(x, y, z)

			hwy.MaskStore(mask, rx, dstX[offset:])
			hwy.MaskStore(mask, ry, dstY[offset:])
			hwy.MaskStore(mask, rz, dstZ[offset:])
		},
	)
}

// RotateQuatBatch rotates a set of 3D vectors by the unit quaternion q,
// using the expanded sandwich product: with t = 2 (qv x v), the result is
// v + w t + qv x t. q must be normalized.
func RotateQuatBatch[T hwy.Floats](q lin.Quat[T], srcX, srcY, srcZ, dstX, dstY, dstZ []T) {
	size := min(len(srcX), len(srcY), len(srcZ), len(dstX), len(dstY), len(dstZ))

	vQX := hwy.Set(q[0])
	vQY := hwy.Set(q[1])
	vQZ := hwy.Set(q[2])
	vQW := hwy.Set(q[3])
	vTwo := hwy.Set(T(2))

	apply := func(x, y, z hwy.Vec[T]) (rx, ry, rz hwy.Vec[T]) {
		// t = 2 (qv x v)
		tx := hwy.Mul(vTwo, hwy.Sub(hwy.Mul(vQY, z), hwy.Mul(vQZ, y)))
		ty := hwy.Mul(vTwo, hwy.Sub(hwy.Mul(vQZ, x), hwy.Mul(vQX, z)))
		tz := hwy.Mul(vTwo, hwy.Sub(hwy.Mul(vQX, y), hwy.Mul(vQY, x)))

		// v + w t + qv x t
		rx = hwy.FMA(vQW, tx, x)
		rx = hwy.Add(rx, hwy.Sub(hwy.Mul(vQY, tz), hwy.Mul(vQZ, ty)))
		ry = hwy.FMA(vQW, ty, y)
		ry = hwy.Add(ry, hwy.Sub(hwy.Mul(vQZ, tx), hwy.Mul(vQX, tz)))
		rz = hwy.FMA(vQW, tz, z)
		rz = hwy.Add(rz, hwy.Sub(hwy.Mul(vQX, ty), hwy.Mul(vQY, tx)))
		return rx, ry, rz
	}

	hwy.ProcessWithTail[T](size,
		func(offset int) {
			x := hwy.Load(srcX[offset:])
			y := hwy.Load(srcY[offset:])
			z := hwy.Load(srcZ[offset:])

			rx, ry, rz := apply(x, y, z)

			hwy.Store(rx, dstX[offset:])
			hwy.Store(ry, dstY[offset:])
			hwy.Store(rz, dstZ[offset:])
		},
		func(offset, count int) {
			mask := hwy.TailMask[T](count)
			x := hwy.MaskLoad(mask, srcX[offset:])
			y := hwy.MaskLoad(mask, srcY[offset:])
			z := hwy.MaskLoad(mask, srcZ[offset:])

			rx, ry, rz := apply(x, y, z)

			hwy.MaskStore(mask, rx, dstX[offset:])
			hwy.MaskStore(mask, ry, dstY[offset:])
			hwy.MaskStore(mask, rz, dstZ[offset:])
		},
	)
}
