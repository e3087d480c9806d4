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

// Package codec moves pixels between logical images and padded wide-word
// buffers.
//
// An Image is the host's view: Width x Height pixels, row-major, no padding.
// A Buffer is the pipeline's view: TotalChunks words, each row starting on a
// word boundary, padding columns zero. Pack and Unpack convert between them
// with one contiguous copy per row:
//
//	l := layout.Must(256, 256, 64)
//	buf := codec.NewBuffer(l)
//	if err := codec.Pack(img, buf); err != nil {
//	    return err
//	}
//	w := buf.Word(0) // pixels 0..63 of row 0
//
// Unpack(Pack(img)) always reproduces img.
package codec
