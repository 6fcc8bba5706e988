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

// Package lin provides fixed-size linear algebra primitives: vectors,
// matrices and rotation representations, generic over the component type.
//
// All types are plain value types backed by arrays. Matrices are stored
// column-major: a MatCxR is [C]VecR, so m[i] is column i and m[i][j] is the
// element at column i, row j. Copying a value copies every component; no
// two values ever share storage, and every function is a pure map from
// inputs to outputs. Calls are safe from any number of goroutines as long
// as no single value is mutated concurrently.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-linmath/lin"
//
//	m := lin.Identity3x3[float32]()
//	m.SetColumn(2, lin.Vec3[float32]{1, 2, 1})
//	p := m.MulVec(lin.Vec3[float32]{3, 4, 1})
//
//	q := lin.RotationQuat(lin.UnitZ3[float64](), math.Pi/2)
//
// The per-shape matrix API (nine shapes, 2-4 columns by 2-4 rows) is
// expanded by cmd/lingen; the generated files mat2xr.go, mat3xr.go and
// mat4xr.go are committed. Everything else is handwritten.
//
// For bulk transformation of coordinate slices with SIMD acceleration, see
// the lin/batch subpackage.
package lin
