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

package stage

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-diffsharp/layout"
	"github.com/ajroetker/go-diffsharp/wword"
)

// ErrLaneCount is returned when an input word does not match the layout.
var ErrLaneCount = errors.New("stage: word lane count does not match layout")

// Sharpener is the sliding-window state of the sharpen stage for one image.
// It is not safe for concurrent use.
type Sharpener struct {
	layout layout.Layout
	zero   wword.Word

	// lb[0][c] holds the word two rows above the incoming one in column c,
	// lb[1][c] the word one row above.
	lb [2][]wword.Word

	// win[r][c]: rows north/center/south, columns west/center/east.
	win [3][3]wword.Word

	iter int
}

// NewSharpener allocates line buffers sized for l.
func NewSharpener(l layout.Layout) *Sharpener {
	s := &Sharpener{
		layout: l,
		zero:   wword.NewWord(l.Lanes),
	}
	s.lb[0] = make([]wword.Word, l.ChunksPerRow())
	s.lb[1] = make([]wword.Word, l.ChunksPerRow())
	s.Reset()
	return s
}

// Layout returns the geometry the sharpener was built for.
func (s *Sharpener) Layout() layout.Layout {
	return s.layout
}

// Reset zeroes the line buffers and window for a new image.
func (s *Sharpener) Reset() {
	for i := range s.lb {
		for c := range s.lb[i] {
			s.lb[i][c] = s.zero
		}
	}
	for r := range s.win {
		for c := range s.win[r] {
			s.win[r][c] = s.zero
		}
	}
	s.iter = 0
}

// Step advances the window by one word.
//
// For the first TotalChunks steps ok must be true and in is the next input
// word; for the remaining Latency steps ok must be false and zero words are
// shifted in to flush the window. When emitted is true, out is the output word
// for chunk outIdx. Outputs are produced in increasing index order.
func (s *Sharpener) Step(in wword.Word, ok bool) (out wword.Word, outIdx int, emitted bool) {
	l := s.layout
	if ok != (s.iter < l.TotalChunks()) {
		panic(fmt.Sprintf("sharpen: step %d: input supplied=%v with %d chunks", s.iter, ok, l.TotalChunks()))
	}
	if s.iter >= l.Iterations() {
		panic(fmt.Sprintf("sharpen: step %d past end of image", s.iter))
	}

	for r := range s.win {
		s.win[r][0] = s.win[r][1]
		s.win[r][1] = s.win[r][2]
	}

	if ok {
		if in.NumLanes() != l.Lanes {
			panic(fmt.Sprintf("sharpen: %d-lane word for %d-lane layout", in.NumLanes(), l.Lanes))
		}
		col := s.iter % l.ChunksPerRow()
		s.win[0][2] = s.lb[0][col]
		s.win[1][2] = s.lb[1][col]
		s.win[2][2] = in
		s.lb[0][col] = s.lb[1][col]
		s.lb[1][col] = in
	} else {
		s.win[0][2] = s.zero
		s.win[1][2] = s.zero
		s.win[2][2] = s.zero
	}

	outIdx = s.iter - l.Latency()
	s.iter++
	if outIdx < 0 || outIdx >= l.TotalChunks() {
		return wword.Word{}, outIdx, false
	}
	return s.compute(outIdx), outIdx, true
}

// compute evaluates the kernel for chunk idx, centered at win[1][1].
func (s *Sharpener) compute(idx int) wword.Word {
	l := s.layout
	out := wword.NewWord(l.Lanes)

	row := l.RowOf(idx)
	if row == 0 || row == l.Height-1 {
		return out
	}
	colChunk := l.ColChunkOf(idx)

	center := s.win[1][1]
	north, south := s.win[0][1], s.win[2][1]
	west, east := s.win[1][0], s.win[1][2]
	last := l.Lanes - 1

	for k := 0; k < l.Lanes; k++ {
		j := l.Column(colChunk, k)
		// Border columns and padding stay 0.
		if j == 0 || j >= l.Width-1 {
			continue
		}

		v := 5*int(center.Lane(k)) - int(north.Lane(k)) - int(south.Lane(k))
		if k > 0 {
			v -= int(center.Lane(k - 1))
		} else {
			v -= int(west.Last())
		}
		if k < last {
			v -= int(center.Lane(k + 1))
		} else {
			v -= int(east.First())
		}
		out.SetLane(k, wword.ClipU8(v))
	}
	return out
}

// Run resets the window and drives it over a whole image: next is called
// exactly TotalChunks times and emit exactly TotalChunks times, in chunk
// order. The first error from next or emit is returned.
func (s *Sharpener) Run(next func() (wword.Word, error), emit func(wword.Word) error) error {
	s.Reset()
	l := s.layout
	total := l.TotalChunks()
	for iter := 0; iter < l.Iterations(); iter++ {
		var in wword.Word
		ok := iter < total
		if ok {
			var err error
			if in, err = next(); err != nil {
				return err
			}
			if in.NumLanes() != l.Lanes {
				return fmt.Errorf("%w: chunk %d has %d lanes, want %d", ErrLaneCount, iter, in.NumLanes(), l.Lanes)
			}
		}
		if out, _, emitted := s.Step(in, ok); emitted {
			if err := emit(out); err != nil {
				return err
			}
		}
	}
	return nil
}

// SharpenChunks sharpens a whole materialized image: in and out must both
// hold TotalChunks words.
func SharpenChunks(l layout.Layout, in, out []wword.Word) {
	total := l.TotalChunks()
	if len(in) != total || len(out) != total {
		panic(fmt.Sprintf("sharpen: got %d inputs and %d outputs for %d chunks", len(in), len(out), total))
	}
	s := NewSharpener(l)
	next, emitted := 0, 0
	err := s.Run(
		func() (wword.Word, error) {
			w := in[next]
			next++
			return w, nil
		},
		func(w wword.Word) error {
			out[emitted] = w
			emitted++
			return nil
		},
	)
	if err != nil {
		panic(err)
	}
}
