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

// Package testimg generates deterministic image pairs for tests, benchmarks
// and examples.
package testimg

import (
	"math/rand/v2"

	"github.com/ajroetker/go-diffsharp/codec"
)

// DefaultSeed is the seed used by tests and examples when none is given.
const DefaultSeed = 42

// Pair returns two images where a is uniform noise and b is a perturbed by
// uniform noise in [-100, 99], clamped to [0, 255]. The same seed always
// produces the same pair.
func Pair(width, height int, seed uint64) (a, b *codec.Image) {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	a = codec.NewImage(width, height)
	b = codec.NewImage(width, height)
	for i := range a.Pix {
		a.Pix[i] = uint8(r.IntN(256))
		v := int(a.Pix[i]) + r.IntN(200) - 100
		b.Pix[i] = uint8(max(0, min(255, v)))
	}
	return a, b
}

// Random returns a single image of uniform noise.
func Random(width, height int, seed uint64) *codec.Image {
	r := rand.New(rand.NewPCG(seed, ^seed))
	img := codec.NewImage(width, height)
	for i := range img.Pix {
		img.Pix[i] = uint8(r.IntN(256))
	}
	return img
}

// CenterBlock returns a pair of width x height images filled with base,
// where b additionally carries value in the block [x0, x1) x [y0, y1).
func CenterBlock(width, height int, base, value uint8, x0, y0, x1, y1 int) (a, b *codec.Image) {
	a = codec.NewImage(width, height)
	a.Fill(base)
	b = a.Clone()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			b.Set(x, y, value)
		}
	}
	return a, b
}

// Toy4x4 returns the 4x4 scenario: a is all 50, b is all 50 except the
// center 2x2 block which is 200.
func Toy4x4() (a, b *codec.Image) {
	return CenterBlock(4, 4, 50, 200, 1, 1, 3, 3)
}
