// Copyright 2025 go-diffsharp Authors
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

// Package verify compares pipeline output against the reference oracle and
// summarizes output levels.
//
// A mismatch is a logic error, never a transient one, so reports record the
// failing pixel with both inputs and both outputs, up to a cap, while still
// counting every mismatch.
package verify

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxMismatches is the number of mismatches recorded in detail.
const DefaultMaxMismatches = 10

// ErrMismatch is wrapped by Report.Err when any pixel differs.
var ErrMismatch = errors.New("verify: output differs from reference")

// Mismatch describes one differing pixel.
type Mismatch struct {
	Index int
	Row   int
	Col   int
	A     uint8
	B     uint8
	Got   uint8
	Want  uint8
}

func (m Mismatch) String() string {
	return fmt.Sprintf("mismatch at [%d,%d] (pixel %d): a=%d b=%d got=%d want=%d",
		m.Row, m.Col, m.Index, m.A, m.B, m.Got, m.Want)
}

// Report is the result of Compare.
type Report struct {
	// Compared is the number of pixels compared.
	Compared int

	// Total is the number of differing pixels.
	Total int

	// Mismatches holds the first differing pixels, at most the cap passed to
	// Compare.
	Mismatches []Mismatch
}

// OK reports whether every pixel matched.
func (r Report) OK() bool {
	return r.Total == 0
}

// Err returns nil if every pixel matched, else an error wrapping ErrMismatch.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %d of %d pixels, first %s", ErrMismatch, r.Total, r.Compared, r.Mismatches[0])
}

// String renders the recorded mismatches one per line.
func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("all %d pixels match", r.Compared)
	}
	var sb strings.Builder
	for _, m := range r.Mismatches {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	if hidden := r.Total - len(r.Mismatches); hidden > 0 {
		fmt.Fprintf(&sb, "... %d more\n", hidden)
	}
	fmt.Fprintf(&sb, "%d of %d pixels differ", r.Total, r.Compared)
	return sb.String()
}

// Compare checks got against want pixel by pixel for an unpadded image of the
// given width. a and b are the pipeline inputs, reported alongside each
// mismatch. At most maxRecorded mismatches are kept; maxRecorded <= 0 means
// DefaultMaxMismatches.
func Compare(a, b, got, want []uint8, width, maxRecorded int) Report {
	n := len(want)
	if len(got) != n || len(a) != n || len(b) != n {
		panic(fmt.Sprintf("verify: lengths a=%d b=%d got=%d want=%d", len(a), len(b), len(got), n))
	}
	if width <= 0 {
		panic(fmt.Sprintf("verify: width %d", width))
	}
	if maxRecorded <= 0 {
		maxRecorded = DefaultMaxMismatches
	}

	r := Report{Compared: n}
	for i := range want {
		if got[i] == want[i] {
			continue
		}
		r.Total++
		if len(r.Mismatches) < maxRecorded {
			r.Mismatches = append(r.Mismatches, Mismatch{
				Index: i,
				Row:   i / width,
				Col:   i % width,
				A:     a[i],
				B:     b[i],
				Got:   got[i],
				Want:  want[i],
			})
		}
	}
	return r
}
