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

import "golang.org/x/exp/constraints"

// Floats is a constraint for floating-point component types.
type Floats interface {
	constraints.Float
}

// SignedInts is a constraint for signed integer component types.
type SignedInts interface {
	constraints.Signed
}

// UnsignedInts is a constraint for unsigned integer component types.
type UnsignedInts interface {
	constraints.Unsigned
}

// Integers is a constraint for all integer component types.
type Integers interface {
	constraints.Integer
}

// Component is the constraint satisfied by every type a vector or matrix
// can hold as its component type.
type Component interface {
	constraints.Float | constraints.Integer
}
