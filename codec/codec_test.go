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

package codec_test

import (
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-diffsharp/codec"
	"github.com/ajroetker/go-diffsharp/internal/testimg"
	"github.com/ajroetker/go-diffsharp/layout"
	"github.com/ajroetker/go-diffsharp/wword"
)

func TestPackUnpackRoundTrip(t *testing.T) {
	sizes := []struct{ w, h, lanes int }{
		{256, 256, 64},
		{4, 4, 4},
		{100, 7, 64},
		{13, 5, 4},
		{1, 1, 1},
		{65, 3, 16},
	}
	for _, s := range sizes {
		img := testimg.Random(s.w, s.h, uint64(s.w*s.h))
		l := layout.Must(s.w, s.h, s.lanes)
		buf, err := codec.PackImage(img, l)
		if err != nil {
			t.Fatalf("%v: PackImage: %v", l, err)
		}
		got := codec.UnpackImage(buf)
		if diff := cmp.Diff(img, got); diff != "" {
			t.Errorf("%v: round trip mismatch (-want +got):\n%s", l, diff)
		}
	}
}

func TestPackZeroesPadding(t *testing.T) {
	l := layout.Must(5, 3, 4)
	buf := codec.NewBuffer(l)
	// Dirty the buffer so Pack has to clear it.
	for i := range buf.Bytes() {
		buf.Bytes()[i] = 0xEE
	}
	img := codec.NewImage(5, 3)
	img.Fill(7)
	if err := codec.Pack(img, buf); err != nil {
		t.Fatal(err)
	}
	stride := l.PaddedWidth()
	for y := 0; y < l.Height; y++ {
		for x := 0; x < stride; x++ {
			want := uint8(7)
			if x >= l.Width {
				want = 0
			}
			if got := buf.Bytes()[y*stride+x]; got != want {
				t.Errorf("byte (%d, %d): got %d, want %d", y, x, got, want)
			}
		}
	}
}

func TestWordMapping(t *testing.T) {
	l := layout.Must(6, 2, 4)
	img := codec.NewImage(6, 2)
	for i := range img.Pix {
		img.Pix[i] = uint8(i + 1)
	}
	buf, err := codec.PackImage(img, l)
	if err != nil {
		t.Fatal(err)
	}
	want := [][]byte{
		{1, 2, 3, 4},
		{5, 6, 0, 0},
		{7, 8, 9, 10},
		{11, 12, 0, 0},
	}
	for i, w := range buf.Words() {
		if diff := cmp.Diff(want[i], w.Bytes()); diff != "" {
			t.Errorf("word %d (-want +got):\n%s", i, diff)
		}
	}
}

func TestUnpackIgnoresPadding(t *testing.T) {
	l := layout.Must(3, 2, 4)
	buf := codec.NewBuffer(l)
	buf.SetWord(0, wword.LoadWord([]byte{1, 2, 3, 99}))
	buf.SetWord(1, wword.LoadWord([]byte{4, 5, 6, 99}))
	img := codec.UnpackImage(buf)
	if diff := cmp.Diff([]uint8{1, 2, 3, 4, 5, 6}, img.Pix); diff != "" {
		t.Errorf("unpacked pixels (-want +got):\n%s", diff)
	}
}

func TestSizeMismatch(t *testing.T) {
	l := layout.Must(4, 4, 4)
	img := codec.NewImage(5, 4)
	if _, err := codec.PackImage(img, l); !errors.Is(err, codec.ErrSizeMismatch) {
		t.Errorf("PackImage: err = %v, want ErrSizeMismatch", err)
	}
	if err := codec.Unpack(codec.NewBuffer(l), img); !errors.Is(err, codec.ErrSizeMismatch) {
		t.Errorf("Unpack: err = %v, want ErrSizeMismatch", err)
	}
}

func TestReaderWriter(t *testing.T) {
	l := layout.Must(8, 2, 4)
	src := codec.NewBuffer(l)
	for i := range src.Bytes() {
		src.Bytes()[i] = byte(i)
	}
	dst := codec.NewBuffer(l)
	r, w := src.Reader(), dst.Writer()
	for {
		word, err := r.ReadWord()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatal(err)
		}
		if err := w.WriteWord(word); err != nil {
			t.Fatal(err)
		}
	}
	if w.Written() != l.TotalChunks() {
		t.Errorf("Written() = %d, want %d", w.Written(), l.TotalChunks())
	}
	if diff := cmp.Diff(src.Bytes(), dst.Bytes()); diff != "" {
		t.Errorf("copied buffer (-want +got):\n%s", diff)
	}
	if err := w.WriteWord(wword.NewWord(4)); !errors.Is(err, codec.ErrBufferFull) {
		t.Errorf("WriteWord past end: err = %v, want ErrBufferFull", err)
	}
}
