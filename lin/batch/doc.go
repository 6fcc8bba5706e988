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

// Package batch applies a single transform to many coordinates at once
// using the go-highway SIMD primitives.
//
// Coordinates are structure-of-arrays: one slice per component. The
// transform's components are broadcast into vector registers once, then
// the coordinate slices are streamed through in full-width chunks with a
// masked tail, so throughput does not depend on the slice length being a
// multiple of the vector width.
//
// Source and destination slices may alias exactly (dstX == srcX and so
// on); partially overlapping slices are not supported.
package batch
