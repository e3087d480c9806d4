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

// Package reference is the whole-image oracle for the pipeline.
//
// It computes the same difference, posterize and sharpen steps directly on
// unpadded row-major pixel arrays, with no words, padding or windows. It exists
// only to check the pipeline's output and is never on the production path.
package reference

import (
	"fmt"

	"github.com/ajroetker/go-diffsharp/workerpool"
)

// Posterize writes the posterized absolute difference of a and b to out.
func Posterize(a, b, out []uint8, low, high int) {
	if len(a) != len(b) || len(out) != len(a) {
		panic(fmt.Sprintf("reference: posterize lengths %d, %d, %d differ", len(a), len(b), len(out)))
	}
	posterizeRange(a, b, out, low, high, 0, len(a))
}

func posterizeRange(a, b, out []uint8, low, high, start, end int) {
	for i := start; i < end; i++ {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		switch {
		case d < low:
			out[i] = 0
		case d < high:
			out[i] = 128
		default:
			out[i] = 255
		}
	}
}

// Sharpen applies the 3x3 sharpen kernel to p and writes the result to out.
// Border pixels are set to 0.
func Sharpen(p, out []uint8, width, height int) {
	if len(p) != width*height || len(out) != len(p) {
		panic(fmt.Sprintf("reference: sharpen lengths %d, %d for %dx%d", len(p), len(out), width, height))
	}
	sharpenRows(p, out, width, height, 0, height)
}

func sharpenRows(p, out []uint8, width, height, y0, y1 int) {
	for r := y0; r < y1; r++ {
		for c := 0; c < width; c++ {
			idx := r*width + c
			if r == 0 || r == height-1 || c == 0 || c == width-1 {
				out[idx] = 0
				continue
			}
			v := 5*int(p[idx]) -
				int(p[idx-width]) - int(p[idx+width]) -
				int(p[idx-1]) - int(p[idx+1])
			out[idx] = uint8(max(0, min(255, v)))
		}
	}
}

// Run computes the full pipeline on unpadded images of width x height pixels.
func Run(a, b []uint8, width, height, low, high int) []uint8 {
	p := make([]uint8, len(a))
	Posterize(a, b, p, low, high)
	out := make([]uint8, len(a))
	Sharpen(p, out, width, height)
	return out
}

// RunParallel is Run with both steps split across pool workers: the
// difference by pixel ranges, the sharpen by row ranges.
func RunParallel(pool *workerpool.Pool, a, b []uint8, width, height, low, high int) []uint8 {
	if len(a) != len(b) || len(a) != width*height {
		panic(fmt.Sprintf("reference: lengths %d, %d for %dx%d", len(a), len(b), width, height))
	}
	p := make([]uint8, len(a))
	pool.ParallelFor(len(a), func(start, end int) {
		posterizeRange(a, b, p, low, high, start, end)
	})
	out := make([]uint8, len(a))
	pool.ParallelFor(height, func(y0, y1 int) {
		sharpenRows(p, out, width, height, y0, y1)
	})
	return out
}
