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
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/go-diffsharp/wword"
)

func TestPosterizeWordBoundaries(t *testing.T) {
	a := wword.LoadWord([]byte{100, 100, 100, 100, 0, 200})
	b := wword.LoadWord([]byte{131, 132, 195, 196, 0, 100})
	// diffs:                  31   32   95   96   0   100
	got := PosterizeWord(a, b, DefaultThresholds())

	expected := []uint8{0, 128, 128, 255, 0, 255}
	for i, want := range expected {
		if got.Lane(i) != want {
			t.Errorf("PosterizeWord: lane %d: got %d, want %d", i, got.Lane(i), want)
		}
	}
}

func TestPosterizeLaneIndependence(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	src := func() wword.Word {
		b := make([]byte, wword.MaxLanes)
		for i := range b {
			b[i] = uint8(r.IntN(256))
		}
		return wword.LoadWord(b)
	}
	th := DefaultThresholds()

	for trial := 0; trial < 50; trial++ {
		a, b := src(), src()
		base := PosterizeWord(a, b, th)
		k := r.IntN(wword.MaxLanes)
		a2 := a
		a2.SetLane(k, a.Lane(k)^0xA5)
		changed := PosterizeWord(a2, b, th)
		for lane := 0; lane < wword.MaxLanes; lane++ {
			if lane == k {
				continue
			}
			if changed.Lane(lane) != base.Lane(lane) {
				t.Fatalf("trial %d: changing lane %d altered lane %d", trial, k, lane)
			}
		}
	}
}

func TestPosterizeChunks(t *testing.T) {
	a := []wword.Word{wword.LoadWord([]byte{0, 0}), wword.LoadWord([]byte{255, 40})}
	b := []wword.Word{wword.LoadWord([]byte{0, 50}), wword.LoadWord([]byte{0, 0})}
	out := make([]wword.Word, 2)
	PosterizeChunks(a, b, out, DefaultThresholds())
	if got := out[0].Bytes(); got[0] != 0 || got[1] != 128 {
		t.Errorf("chunk 0: got %v, want [0 128]", got)
	}
	if got := out[1].Bytes(); got[0] != 255 || got[1] != 128 {
		t.Errorf("chunk 1: got %v, want [255 128]", got)
	}
}

func TestPosterizeChunksLengthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("PosterizeChunks with mismatched lengths should panic")
		}
	}()
	PosterizeChunks(make([]wword.Word, 2), make([]wword.Word, 3), make([]wword.Word, 2), DefaultThresholds())
}

func TestThresholdsValidate(t *testing.T) {
	valid := []Thresholds{{32, 96}, {0, 0}, {0, 256}, {100, 100}}
	for _, th := range valid {
		if err := th.Validate(); err != nil {
			t.Errorf("%+v: unexpected error %v", th, err)
		}
	}
	invalid := []Thresholds{{-1, 96}, {96, 32}, {0, 257}}
	for _, th := range invalid {
		if err := th.Validate(); !errors.Is(err, ErrThresholds) {
			t.Errorf("%+v: err = %v, want ErrThresholds", th, err)
		}
	}
}
