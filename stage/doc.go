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

// Package stage implements the two compute stages of the pipeline at word
// granularity.
//
// # Difference-Posterize
//
// PosterizeWord combines two input words lane by lane:
//
//	d = |a - b|
//	d <  Low          -> 0
//	Low <= d < High   -> 128
//	d >= High         -> 255
//
// # Sharpen
//
// Sharpener applies the kernel
//
//	[ 0 -1  0 ]
//	[-1  5 -1 ]
//	[ 0 -1  0 ]
//
// to a stream of posterized words in chunk-index order. It keeps two line
// buffers of one row of words each plus a 3x3 window of words, so every pixel's
// four direct neighbors are available without re-reading the stream. Output
// lags input by Layout.Latency() words; the stream is flushed with zero words.
// Pixels on the outermost image border are always 0, and padding columns are
// emitted as 0.
package stage
