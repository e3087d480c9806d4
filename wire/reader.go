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

package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/ajroetker/go-diffsharp/layout"
	"github.com/ajroetker/go-diffsharp/wword"
)

// Reader decodes a stream written by Writer. It implements
// pipeline.ChunkReader.
type Reader struct {
	layout     layout.Layout
	compressed bool
	r          io.Reader
	dec        *zstd.Decoder
	scratch    []byte
	read       int
}

// NewReader reads and validates the stream header from r.
func NewReader(r io.Reader) (*Reader, error) {
	buf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: short header", ErrFormat)
		}
		return nil, fmt.Errorf("wire: read header: %w", err)
	}
	h, err := decodeHeader(buf)
	if err != nil {
		return nil, err
	}

	rd := &Reader{
		layout:     h.layout,
		compressed: h.flags&flagZstd != 0,
		scratch:    make([]byte, h.layout.Lanes),
	}
	if rd.compressed {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("wire: zstd decoder: %w", err)
		}
		rd.dec = dec
		rd.r = dec
	} else {
		rd.r = bufio.NewReader(r)
	}
	return rd, nil
}

// Layout returns the layout read from the header.
func (r *Reader) Layout() layout.Layout {
	return r.layout
}

// Compressed reports whether the payload is zstd compressed.
func (r *Reader) Compressed() bool {
	return r.compressed
}

// ReadWord returns the next word, or io.EOF after TotalChunks words.
func (r *Reader) ReadWord() (wword.Word, error) {
	if r.read >= r.layout.TotalChunks() {
		return wword.Word{}, io.EOF
	}
	if _, err := io.ReadFull(r.r, r.scratch); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return wword.Word{}, fmt.Errorf("%w: truncated at word %d of %d", ErrFormat, r.read, r.layout.TotalChunks())
		}
		return wword.Word{}, fmt.Errorf("wire: word %d: %w", r.read, err)
	}
	r.read++
	return wword.LoadWord(r.scratch), nil
}

// Close releases the zstd decoder, if any.
func (r *Reader) Close() {
	if r.dec != nil {
		r.dec.Close()
	}
}
