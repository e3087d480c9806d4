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

package wword

import (
	"testing"
)

func TestLoadStoreRoundTrip(t *testing.T) {
	for _, lanes := range []int{1, 3, 4, 8, 13, 16, 32, 63, 64} {
		src := make([]byte, lanes)
		for i := range src {
			src[i] = byte(i*7 + 1)
		}
		w := LoadWord(src)
		if w.NumLanes() != lanes {
			t.Errorf("lanes=%d: NumLanes() = %d", lanes, w.NumLanes())
		}
		dst := make([]byte, lanes)
		if n := w.Store(dst); n != lanes {
			t.Errorf("lanes=%d: Store wrote %d bytes", lanes, n)
		}
		for i := range src {
			if dst[i] != src[i] {
				t.Errorf("lanes=%d: lane %d: got %d, want %d", lanes, i, dst[i], src[i])
			}
		}
	}
}

func TestLaneBitPositions(t *testing.T) {
	src := make([]byte, MaxLanes)
	for i := range src {
		src[i] = byte(i)
	}
	w := LoadWord(src)
	for k := 0; k < MaxLanes; k++ {
		lo := k * LaneBits
		if got := w.Bits(lo, lo+7); got != uint64(k) {
			t.Errorf("Bits(%d, %d): got %d, want %d", lo, lo+7, got, k)
		}
		if got := w.Lane(k); got != uint8(k) {
			t.Errorf("Lane(%d): got %d, want %d", k, got, k)
		}
	}
}

func TestBitsAcrossLimbs(t *testing.T) {
	w := NewWord(16)
	w.SetLane(7, 0xAB)
	w.SetLane(8, 0xCD)
	// Lanes 7 and 8 straddle the first limb boundary.
	if got := w.Bits(56, 71); got != 0xCDAB {
		t.Errorf("Bits(56, 71): got %#x, want %#x", got, 0xCDAB)
	}
	if got := w.Bits(60, 67); got != 0xDA {
		t.Errorf("Bits(60, 67): got %#x, want %#x", got, 0xDA)
	}
}

func TestSetLaneLeavesNeighbors(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	w := LoadWord(src)
	w.SetLane(4, 200)
	for k, want := range []byte{1, 2, 3, 4, 200, 6, 7, 8, 9, 10} {
		if got := w.Lane(k); got != want {
			t.Errorf("lane %d: got %d, want %d", k, got, want)
		}
	}
}

func TestFirstLast(t *testing.T) {
	w := LoadWord([]byte{11, 22, 33})
	if w.First() != 11 {
		t.Errorf("First() = %d, want 11", w.First())
	}
	if w.Last() != 33 {
		t.Errorf("Last() = %d, want 33", w.Last())
	}
}

func TestEqualAndZero(t *testing.T) {
	a := LoadWord([]byte{1, 2, 3, 4})
	b := LoadWord([]byte{1, 2, 3, 4})
	if !a.Equal(b) {
		t.Error("identical words should be equal")
	}
	if a.Equal(LoadWord([]byte{1, 2, 3})) {
		t.Error("words with different lane counts should not be equal")
	}
	if !NewWord(8).IsZero() {
		t.Error("NewWord should be zero")
	}
	if a.IsZero() {
		t.Error("non-zero word reported as zero")
	}
}

func TestNewWordPanics(t *testing.T) {
	for _, lanes := range []int{0, -1, MaxLanes + 1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewWord(%d) should panic", lanes)
				}
			}()
			NewWord(lanes)
		}()
	}
}

func TestLaneOutOfRangePanics(t *testing.T) {
	w := NewWord(4)
	defer func() {
		if recover() == nil {
			t.Error("Lane(4) on a 4-lane word should panic")
		}
	}()
	w.Lane(4)
}

func TestString(t *testing.T) {
	if got := LoadWord([]byte{0, 128, 255}).String(); got != "[0 128 255]" {
		t.Errorf("String() = %q", got)
	}
}
