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
	"encoding/binary"
	"fmt"
)

// MaxLanes is the largest lane count a Word can hold (a 512-bit bus).
const MaxLanes = 64

// LaneBits is the width of a single lane.
const LaneBits = 8

const numLimbs = MaxLanes / 8

// Word is a fixed-capacity bit-packed container of 8-bit lanes.
//
// Word is a value type: copying a Word copies its lanes. Limbs beyond
// NumLanes are always zero.
type Word struct {
	limbs [numLimbs]uint64
	lanes int
}

// NewWord returns an all-zero word with the given lane count.
// It panics if lanes is outside [1, MaxLanes].
func NewWord(lanes int) Word {
	if lanes < 1 || lanes > MaxLanes {
		panic(fmt.Sprintf("wword: lane count %d out of range [1, %d]", lanes, MaxLanes))
	}
	return Word{lanes: lanes}
}

// LoadWord creates a word with len(src) lanes, lane k taken from src[k].
func LoadWord(src []byte) Word {
	w := NewWord(len(src))
	i := 0
	for ; i+8 <= len(src); i += 8 {
		w.limbs[i>>3] = binary.LittleEndian.Uint64(src[i:])
	}
	for ; i < len(src); i++ {
		w.limbs[i>>3] |= uint64(src[i]) << (uint(i&7) * LaneBits)
	}
	return w
}

// Store writes the word's lanes to dst and returns the number of bytes written.
// At most min(len(dst), NumLanes) lanes are written.
func (w Word) Store(dst []byte) int {
	n := min(len(dst), w.lanes)
	i := 0
	for ; i+8 <= n; i += 8 {
		binary.LittleEndian.PutUint64(dst[i:], w.limbs[i>>3])
	}
	for ; i < n; i++ {
		dst[i] = byte(w.limbs[i>>3] >> (uint(i&7) * LaneBits))
	}
	return n
}

// NumLanes returns the number of lanes in the word.
func (w Word) NumLanes() int {
	return w.lanes
}

// Lane returns lane k.
func (w Word) Lane(k int) uint8 {
	if uint(k) >= uint(w.lanes) {
		panic(fmt.Sprintf("wword: lane %d out of range [0, %d)", k, w.lanes))
	}
	return uint8(w.limbs[k>>3] >> (uint(k&7) * LaneBits))
}

// SetLane replaces lane k with v.
func (w *Word) SetLane(k int, v uint8) {
	if uint(k) >= uint(w.lanes) {
		panic(fmt.Sprintf("wword: lane %d out of range [0, %d)", k, w.lanes))
	}
	shift := uint(k&7) * LaneBits
	limb := &w.limbs[k>>3]
	*limb = *limb&^(0xff<<shift) | uint64(v)<<shift
}

// First returns lane 0.
func (w Word) First() uint8 {
	return uint8(w.limbs[0])
}

// Last returns the highest lane.
func (w Word) Last() uint8 {
	return w.Lane(w.lanes - 1)
}

// Bits returns the inclusive bit range [lo, hi] of the word, right-aligned.
// The range may span two limbs but must be at most 64 bits wide.
func (w Word) Bits(lo, hi int) uint64 {
	n := hi - lo + 1
	if lo < 0 || n <= 0 || n > 64 || hi >= w.lanes*LaneBits {
		panic(fmt.Sprintf("wword: bit range [%d, %d] invalid for %d-lane word", lo, hi, w.lanes))
	}
	limb, off := lo>>6, uint(lo&63)
	v := w.limbs[limb] >> off
	if off != 0 && limb+1 < numLimbs {
		v |= w.limbs[limb+1] << (64 - off)
	}
	if n < 64 {
		v &= 1<<uint(n) - 1
	}
	return v
}

// Equal reports whether both words have the same lane count and lanes.
func (w Word) Equal(o Word) bool {
	return w.lanes == o.lanes && w.limbs == o.limbs
}

// IsZero reports whether every lane is zero.
func (w Word) IsZero() bool {
	return w.limbs == [numLimbs]uint64{}
}

// Bytes returns a copy of the lanes as a byte slice.
func (w Word) Bytes() []byte {
	b := make([]byte, w.lanes)
	w.Store(b)
	return b
}

// String formats the lanes like a byte slice.
func (w Word) String() string {
	return fmt.Sprint(w.Bytes())
}
