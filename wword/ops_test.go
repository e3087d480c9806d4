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

import "testing"

func TestAbsDiff(t *testing.T) {
	a := LoadWord([]byte{0, 255, 10, 200, 50})
	b := LoadWord([]byte{255, 0, 20, 100, 50})
	d := AbsDiff(a, b)

	expected := []uint8{255, 255, 10, 100, 0}
	for i, want := range expected {
		if got := d.Lane(i); got != want {
			t.Errorf("AbsDiff: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestPosterizeBoundaries(t *testing.T) {
	tests := []struct {
		v    int
		want uint8
	}{
		{0, 0},
		{31, 0},
		{32, 128},
		{95, 128},
		{96, 255},
		{255, 255},
	}
	for _, tt := range tests {
		if got := PosterizeLane(tt.v, 32, 96); got != tt.want {
			t.Errorf("PosterizeLane(%d): got %d, want %d", tt.v, got, tt.want)
		}
	}

	w := Posterize(LoadWord([]byte{31, 32, 95, 96}), 32, 96)
	for i, want := range []uint8{0, 128, 128, 255} {
		if got := w.Lane(i); got != want {
			t.Errorf("Posterize: lane %d: got %d, want %d", i, got, want)
		}
	}
}

func TestClipU8(t *testing.T) {
	tests := []struct {
		x    int
		want uint8
	}{
		{-510, 0},
		{-1, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{256, 255},
		{1275, 255},
	}
	for _, tt := range tests {
		if got := ClipU8(tt.x); got != tt.want {
			t.Errorf("ClipU8(%d): got %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestAbsDiffLaneMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("AbsDiff with mismatched lane counts should panic")
		}
	}()
	AbsDiff(NewWord(4), NewWord(8))
}
