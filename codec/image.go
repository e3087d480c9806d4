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

package codec

import "bytes"

// Image is a single-channel 8-bit image without row padding.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a zero image. Non-positive dimensions yield an empty image.
func NewImage(width, height int) *Image {
	if width <= 0 || height <= 0 {
		return &Image{}
	}
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// Row returns row y, or nil if y is out of range.
func (img *Image) Row(y int) []uint8 {
	if y < 0 || y >= img.Height {
		return nil
	}
	start := y * img.Width
	return img.Pix[start : start+img.Width]
}

// At returns the pixel at (x, y), or 0 outside the image.
func (img *Image) At(x, y int) uint8 {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return 0
	}
	return img.Pix[y*img.Width+x]
}

// Set sets the pixel at (x, y). Out-of-range writes are ignored.
func (img *Image) Set(x, y int, v uint8) {
	if x < 0 || x >= img.Width || y < 0 || y >= img.Height {
		return
	}
	img.Pix[y*img.Width+x] = v
}

// Fill sets every pixel to v.
func (img *Image) Fill(v uint8) {
	for i := range img.Pix {
		img.Pix[i] = v
	}
}

// Clone returns a deep copy.
func (img *Image) Clone() *Image {
	return &Image{
		Width:  img.Width,
		Height: img.Height,
		Pix:    bytes.Clone(img.Pix),
	}
}

// Equal reports whether both images have the same size and pixels.
func (img *Image) Equal(o *Image) bool {
	return img.Width == o.Width && img.Height == o.Height && bytes.Equal(img.Pix, o.Pix)
}
