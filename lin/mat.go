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

import "fmt"

// The matrix family covers the nine fixed shapes MatCxR with C columns and
// R rows, C, R in {2, 3, 4}. A MatCxR[T] is [C]VecR[T]: column-major, each
// column contiguous in ascending row order, so the memory layout matches
// what column-major rendering and physics APIs expect. m[i] is column i,
// m[i][j] the element at column i, row j, and == compares all components
// exactly.
//
// Shape conversions (ToC'xR' methods) overlay the source onto an identity
// matrix: components inside the source's shape are copied, new diagonal
// components become 1 and everything else 0. Growing a 2x2 or 3x3 linear
// transform to 3x3 or 4x4 therefore produces its homogeneous form, and
// shrinking simply drops the outer columns and rows.
//
// The per-shape API is expanded by cmd/lingen into mat2xr.go, mat3xr.go
// and mat4xr.go. Regenerate with:
//
//	go generate ./lin

//go:generate go run ../cmd/lingen -output .

// Mat2, Mat3 and Mat4 alias the square shapes.
type (
	Mat2[T Component] = Mat2x2[T]
	Mat3[T Component] = Mat3x3[T]
	Mat4[T Component] = Mat4x4[T]
)

// indexErr builds the error returned by the checked accessors.
func indexErr(kind string, i, n int) error {
	return fmt.Errorf("lin: %s index %d out of range [0,%d)", kind, i, n)
}
