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

// Command lingen expands the per-shape matrix API of package lin.
//
// The matrix family is a single abstract type parameterized by a column
// count and a row count, both in {2, 3, 4}. Go generics cannot carry the
// two dimension parameters, so lingen expands the family into nine
// concrete shapes, grouped by column count into mat2xr.go, mat3xr.go and
// mat4xr.go. The generated files are committed; regenerate with:
//
//	go generate ./lin
//
// or directly:
//
//	go run ./cmd/lingen -output lin
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var outputDir = flag.String("output", ".", "Directory to write the generated files to")

const header = `// Copyright 2026 go-linmath Authors
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

// Code generated by lingen. DO NOT EDIT.

package lin
`

var dims = []int{2, 3, 4}

func main() {
	flag.Parse()

	for _, c := range dims {
		path := filepath.Join(*outputDir, fmt.Sprintf("mat%dxr.go", c))
		if err := os.WriteFile(path, genFile(c), 0o644); err != nil {
			log.Fatalf("lingen: %v", err)
		}
	}
}

// genFile renders the complete generated file for column count c.
func genFile(c int) []byte {
	var buf bytes.Buffer
	buf.WriteString(header)
	for _, r := range dims {
		genShape(&buf, c, r)
	}
	return buf.Bytes()
}

// genShape emits the full API for the shape with c columns and r rows.
func genShape(w *bytes.Buffer, c, r int) {
	s := fmt.Sprintf("%dx%d", c, r)
	mt := fmt.Sprintf("Mat%s[T]", s)
	vc := fmt.Sprintf("Vec%d[T]", c)
	vr := fmt.Sprintf("Vec%d[T]", r)

	p := func(format string, args ...any) {
		fmt.Fprintf(w, format, args...)
	}

	p(`
// Mat%[1]s is a %[2]d-column, %[3]d-row column-major matrix.
type Mat%[1]s[T Component] [%[2]d]Vec%[3]d[T]

// Diag%[1]s returns a Mat%[1]s with s on the diagonal and zeros elsewhere.
func Diag%[1]s[T Component](s T) %[4]s {
	var m %[4]s
	for i := 0; i < %[5]d; i++ {
		m[i][i] = s
	}
	return m
}

// Identity%[1]s returns the identity Mat%[1]s.
func Identity%[1]s[T Component]() %[4]s { return Diag%[1]s[T](1) }

// Zero%[1]s returns the all-zero Mat%[1]s.
func Zero%[1]s[T Component]() %[4]s { return %[4]s{} }

// Column returns a copy of column i.
func (m %[4]s) Column(i int) %[7]s { return m[i] }

// ColumnOK returns a copy of column i, or an error when i is out of range.
func (m %[4]s) ColumnOK(i int) (%[7]s, error) {
	if i < 0 || i >= %[2]d {
		return %[7]s{}, indexErr("column", i, %[2]d)
	}
	return m[i], nil
}

// SetColumn replaces column i.
func (m *%[4]s) SetColumn(i int, v %[7]s) { m[i] = v }

// Row gathers row j from every column.
func (m %[4]s) Row(j int) %[6]s {
	var r %[6]s
	for i := range m {
		r[i] = m[i][j]
	}
	return r
}

// RowOK gathers row j, or returns an error when j is out of range.
func (m %[4]s) RowOK(j int) (%[6]s, error) {
	if j < 0 || j >= %[3]d {
		return %[6]s{}, indexErr("row", j, %[3]d)
	}
	return m.Row(j), nil
}

// SetRow scatters v across row j of every column.
func (m *%[4]s) SetRow(j int, v %[6]s) {
	for i := range m {
		m[i][j] = v[i]
	}
}
`, s, c, r, mt, min(c, r), vc, vr)

	binaryMethod := func(name, op, doc string) {
		p(`
// %[1]s %[4]s
func (m %[3]s) %[1]s(n %[3]s) %[3]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] %[2]s= n[i][j]
		}
	}
	return m
}
`, name, op, mt, doc)
	}

	binaryMethod("Add", "+", "returns the componentwise sum m + n.")
	binaryMethod("Sub", "-", "returns the componentwise difference m - n.")
	binaryMethod("CompMul", "*", "returns the componentwise product of m and n.\n// True matrix multiplication is Mul.")
	binaryMethod("Div", "/", "returns the componentwise quotient m / n.")

	scalarMethod := func(name, op, doc string) {
		p(`
// %[1]s %[4]s
func (m %[3]s) %[1]s(s T) %[3]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] %[2]s= s
		}
	}
	return m
}
`, name, op, mt, doc)
	}

	scalarMethod("AddScalar", "+", "returns m with s added to every component.")
	scalarMethod("SubScalar", "-", "returns m with s subtracted from every component.")
	scalarMethod("MulScalar", "*", "returns m with every component multiplied by s.")
	scalarMethod("DivScalar", "/", "returns m with every component divided by s.")

	scalarLeft := func(name, op, what string) {
		p(`
// %[1]s%[2]s returns the matrix of s %[3]s m[i][j].
func %[1]s%[2]s[T %[5]s](s T, m %[4]s) %[4]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] = s %[3]s m[i][j]
		}
	}
	return m
}
`, name, s, op, mt, what)
	}

	scalarLeft("ScalarSub", "-", "Component")
	scalarLeft("ScalarDiv", "/", "Component")

	p(`
// Neg returns the componentwise negation of m.
func (m %[1]s) Neg() %[1]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] = -m[i][j]
		}
	}
	return m
}

// Inc adds 1 to every component of m in place.
func (m *%[1]s) Inc() {
	for i := range m {
		for j := range m[i] {
			m[i][j]++
		}
	}
}

// Dec subtracts 1 from every component of m in place.
func (m *%[1]s) Dec() {
	for i := range m {
		for j := range m[i] {
			m[i][j]--
		}
	}
}

// Mul returns the linear-map composition m * n for the shape-preserving
// square right operand; the rectangular compositions are the Mul%[2]sBy
// functions.
func (m %[1]s) Mul(n Mat%[3]dx%[3]d[T]) %[1]s { return Mul%[2]sBy%[3]dx%[3]d(m, n) }

// MulVec applies the linear map m to v.
func (m %[1]s) MulVec(v %[4]s) %[5]s {
	var r %[5]s
	for j := range r {
		var sum T
		for k := range m {
			sum += m[k][j] * v[k]
		}
		r[j] = sum
	}
	return r
}

// Transpose returns the transpose of m.
func (m %[1]s) Transpose() Mat%[6]dx%[3]d[T] {
	var r Mat%[6]dx%[3]d[T]
	for i := range m {
		for j := range m[i] {
			r[j][i] = m[i][j]
		}
	}
	return r
}
`, mt, s, c, vc, vr, r)

	// Compositions: a CxR matrix composed with a KxC matrix yields KxR.
	for _, k := range dims {
		p(`
// Mul%[1]sBy%[2]dx%[3]d composes a Mat%[1]s with a Mat%[2]dx%[3]d, yielding a Mat%[2]dx%[4]d.
func Mul%[1]sBy%[2]dx%[3]d[T Component](a %[5]s, b Mat%[2]dx%[3]d[T]) Mat%[2]dx%[4]d[T] {
	var r Mat%[2]dx%[4]d[T]
	for i := range r {
		for j := range r[i] {
			var sum T
			for k := range a {
				sum += a[k][j] * b[i][k]
			}
			r[i][j] = sum
		}
	}
	return r
}
`, s, k, c, r, mt)
	}

	// Shape conversions.
	for _, c2 := range dims {
		for _, r2 := range dims {
			if c2 == c && r2 == r {
				continue
			}
			p(`
// To%[1]dx%[2]d converts m to a Mat%[1]dx%[2]d by overlaying it onto an
// identity matrix.
func (m %[3]s) To%[1]dx%[2]d() Mat%[1]dx%[2]d[T] {
	r := Diag%[1]dx%[2]d[T](1)
	for i := 0; i < %[4]d; i++ {
		for j := 0; j < %[5]d; j++ {
			r[i][j] = m[i][j]
		}
	}
	return r
}
`, c2, r2, mt, min(c, c2), min(r, r2))
		}
	}

	p(`
// Convert%[1]s converts the components of m to another component type. Both
// widening and narrowing are spelled this way; narrowing behaves like any
// Go numeric conversion.
func Convert%[1]s[U, T Component](m %[2]s) Mat%[1]s[U] {
	var r Mat%[1]s[U]
	for i := range m {
		for j := range m[i] {
			r[i][j] = U(m[i][j])
		}
	}
	return r
}
`, s, mt)

	unaryFn := func(name, expr, what, doc string) {
		p(`
// %[1]s%[2]s %[5]s
func %[1]s%[2]s[T %[4]s](m %[3]s) %[3]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] = %[6]s
		}
	}
	return m
}
`, name, s, mt, what, doc, expr)
	}

	unaryFn("Sin", "Sin(m[i][j])", "Floats", "applies Sin to every component of m.")
	unaryFn("Cos", "Cos(m[i][j])", "Floats", "applies Cos to every component of m.")

	p(`
// SinCos%[1]s applies SinCos to every component of m, filling both results
// in lockstep.
func SinCos%[1]s[T Floats](m %[2]s) (sin, cos %[2]s) {
	for i := range m {
		for j := range m[i] {
			sin[i][j], cos[i][j] = SinCos(m[i][j])
		}
	}
	return sin, cos
}

// Pow%[1]s raises every component of base to the matching component of exp.
func Pow%[1]s[T Floats](base, exp %[2]s) %[2]s {
	for i := range base {
		for j := range base[i] {
			base[i][j] = Pow(base[i][j], exp[i][j])
		}
	}
	return base
}

// PowScalar%[1]s raises every component of base to exp.
func PowScalar%[1]s[T Floats](base %[2]s, exp T) %[2]s {
	for i := range base {
		for j := range base[i] {
			base[i][j] = Pow(base[i][j], exp)
		}
	}
	return base
}
`, s, mt)

	unaryFn("Recip", "Recip(m[i][j])", "Floats", "applies Recip to every component of m.")
	unaryFn("Sqrt", "Sqrt(m[i][j])", "Floats", "applies Sqrt to every component of m.")
	unaryFn("RSqrt", "RSqrt(m[i][j])", "Floats", "applies RSqrt to every component of m.")

	minmaxFn := func(name, doc string) {
		p(`
// %[1]s%[2]s %[4]s
func %[1]s%[2]s[T Component](a, b %[3]s) %[3]s {
	for i := range a {
		for j := range a[i] {
			a[i][j] = %[1]s(a[i][j], b[i][j])
		}
	}
	return a
}
`, name, s, mt, doc)
	}

	minmaxFn("Min", "returns the componentwise minimum of a and b.")
	minmaxFn("Max", "returns the componentwise maximum of a and b.")
	unaryFn("Abs", "Abs(m[i][j])", "Component", "applies Abs to every component of m.")

	p(`
// Not%[1]s returns the componentwise bitwise complement of m.
func Not%[1]s[T Integers](m %[2]s) %[2]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] = ^m[i][j]
		}
	}
	return m
}
`, s, mt)

	intBinary := func(name, op, doc string) {
		p(`
// %[1]s%[2]s %[5]s
func %[1]s%[2]s[T Integers](a, b %[3]s) %[3]s {
	for i := range a {
		for j := range a[i] {
			a[i][j] %[4]s= b[i][j]
		}
	}
	return a
}
`, name, s, mt, op, doc)
	}

	intBinary("And", "&", "returns the componentwise a & b.")
	intBinary("Or", "|", "returns the componentwise a | b.")
	intBinary("Xor", "^", "returns the componentwise a ^ b.")
	intBinary("Mod", "%", "returns the componentwise a % b.")
	intBinary("Shl", "<<", "returns the componentwise a << b.")
	intBinary("Shr", ">>", "returns the componentwise a >> b.")

	intScalar := func(name, op, doc string) {
		p(`
// %[1]sScalar%[2]s %[5]s
func %[1]sScalar%[2]s[T Integers](m %[3]s, s T) %[3]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] %[4]s= s
		}
	}
	return m
}
`, name, s, mt, op, doc)
	}

	intScalar("And", "&", "returns m with every component ANDed with s.")
	intScalar("Or", "|", "returns m with every component ORed with s.")
	intScalar("Xor", "^", "returns m with every component XORed with s.")
	intScalar("Mod", "%", "returns m with every component reduced modulo s.")
	intScalar("Shl", "<<", "returns m with every component shifted left by s.")
	intScalar("Shr", ">>", "returns m with every component shifted right by s.")

	intScalarLeft := func(name, op, doc string) {
		p(`
// Scalar%[1]s%[2]s %[5]s
func Scalar%[1]s%[2]s[T Integers](s T, m %[3]s) %[3]s {
	for i := range m {
		for j := range m[i] {
			m[i][j] = s %[4]s m[i][j]
		}
	}
	return m
}
`, name, s, mt, op, doc)
	}

	intScalarLeft("Mod", "%", "returns the matrix of s % m[i][j].")
	intScalarLeft("Shl", "<<", "returns the matrix of s << m[i][j].")
	intScalarLeft("Shr", ">>", "returns the matrix of s >> m[i][j].")
}
