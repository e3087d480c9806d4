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

import "fmt"

// Posterization output levels.
const (
	LevelLow  uint8 = 0
	LevelMid  uint8 = 128
	LevelHigh uint8 = 255
)

// AbsDiff returns |a - b| per lane.
// The subtraction is done in int so it never wraps.
func AbsDiff(a, b Word) Word {
	mustSameLanes("AbsDiff", a, b)
	out := Word{lanes: a.lanes}
	for k := 0; k < a.lanes; k++ {
		d := int(a.Lane(k)) - int(b.Lane(k))
		if d < 0 {
			d = -d
		}
		out.SetLane(k, uint8(d))
	}
	return out
}

// Posterize maps every lane into one of three levels:
//
//	v <  low         -> LevelLow
//	low <= v < high  -> LevelMid
//	v >= high        -> LevelHigh
func Posterize(w Word, low, high int) Word {
	out := Word{lanes: w.lanes}
	for k := 0; k < w.lanes; k++ {
		out.SetLane(k, PosterizeLane(int(w.Lane(k)), low, high))
	}
	return out
}

// PosterizeLane applies the Posterize mapping to a single value.
func PosterizeLane(v, low, high int) uint8 {
	switch {
	case v < low:
		return LevelLow
	case v < high:
		return LevelMid
	default:
		return LevelHigh
	}
}

// ClipU8 saturates x to [0, 255].
func ClipU8(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

func mustSameLanes(op string, a, b Word) {
	if a.lanes != b.lanes {
		panic(fmt.Sprintf("wword: %s: lane count mismatch %d != %d", op, a.lanes, b.lanes))
	}
}
