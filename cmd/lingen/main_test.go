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

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// The generated files are committed; regeneration must reproduce them byte
// for byte, otherwise `go generate ./lin` dirties the tree.
func TestGenFileMatchesCommitted(t *testing.T) {
	for _, c := range dims {
		name := fmt.Sprintf("mat%dxr.go", c)
		committed, err := os.ReadFile(filepath.Join("..", "..", "lin", name))
		if err != nil {
			t.Fatalf("reading committed %s: %v", name, err)
		}
		generated := genFile(c)
		if !bytes.Equal(generated, committed) {
			line := 1
			n := min(len(generated), len(committed))
			i := 0
			for ; i < n && generated[i] == committed[i]; i++ {
				if generated[i] == '\n' {
					line++
				}
			}
			t.Errorf("%s drifts from the generator output starting at line %d (byte %d)", name, line, i)
		}
	}
}

// Doc strings are substituted into the templates as arguments, not parsed
// as format strings, so a literal % must not be written escaped.
func TestGenFileDocPercents(t *testing.T) {
	for _, c := range dims {
		out := genFile(c)
		if bytes.Contains(out, []byte("%%")) {
			t.Errorf("mat%dxr.go output contains a doubled percent sign", c)
		}
		want := fmt.Sprintf("// Mod%dx2 returns the componentwise a %% b.", c)
		if !bytes.Contains(out, []byte(want)) {
			t.Errorf("mat%dxr.go output is missing %q", c, want)
		}
	}
}
