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

import (
	"fmt"

	"github.com/ajroetker/go-diffsharp/layout"
)

// Pack zero-fills dst and copies each row of img to the start of its padded
// row in dst.
func Pack(img *Image, dst *Buffer) error {
	l := dst.layout
	if err := checkSize(img, l); err != nil {
		return err
	}
	clear(dst.data)
	stride := l.PaddedWidth()
	for y := 0; y < l.Height; y++ {
		copy(dst.data[y*stride:y*stride+l.Width], img.Row(y))
	}
	return nil
}

// Unpack copies the Width real pixels of each padded row of src into img.
// Padding bytes are never read.
func Unpack(src *Buffer, img *Image) error {
	l := src.layout
	if err := checkSize(img, l); err != nil {
		return err
	}
	stride := l.PaddedWidth()
	for y := 0; y < l.Height; y++ {
		copy(img.Row(y), src.data[y*stride:y*stride+l.Width])
	}
	return nil
}

// PackImage allocates a buffer for l and packs img into it.
func PackImage(img *Image, l layout.Layout) (*Buffer, error) {
	buf := NewBuffer(l)
	if err := Pack(img, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// UnpackImage allocates an image matching the buffer layout and unpacks into it.
func UnpackImage(buf *Buffer) *Image {
	l := buf.layout
	img := NewImage(l.Width, l.Height)
	// Sizes always match here.
	_ = Unpack(buf, img)
	return img
}

func checkSize(img *Image, l layout.Layout) error {
	if img.Width != l.Width || img.Height != l.Height || len(img.Pix) != l.Pixels() {
		return fmt.Errorf("%w: image %dx%d, layout %dx%d",
			ErrSizeMismatch, img.Width, img.Height, l.Width, l.Height)
	}
	return nil
}
