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

// Package wword provides the wide-word type that carries pixels through the
// diff/sharpen pipeline.
//
// A Word holds up to MaxLanes 8-bit lanes packed into little-endian 64-bit
// limbs. Lane k occupies bits [k*8, k*8+7], so a 512-bit memory bus word maps to
// a 64-lane Word and a byte buffer maps onto words without any reordering.
//
// Basic usage:
//
//	a := wword.LoadWord(rowA[:64])
//	b := wword.LoadWord(rowB[:64])
//	d := wword.AbsDiff(a, b)
//	p := wword.Posterize(d, 32, 96)
//	p.Store(out)
//
// All lane operations are independent per lane: no carries or lane crossings,
// which is what lets a Word be evaluated at full width.
//
// # Native Width
//
// NativeLanes reports the lane count matching the widest vector register
// detected on the running CPU (64 for AVX-512, 32 for AVX2, 16 otherwise).
// Setting DIFFSHARP_NO_SIMD forces the 16-lane scalar width.
package wword
