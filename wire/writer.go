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

var errWriterClosed = errors.New("wire: write after close")

// Option configures a Writer.
type Option func(*writerOptions)

type writerOptions struct {
	zstd  bool
	level zstd.EncoderLevel
}

// WithZstd compresses the payload with zstd at the default level.
func WithZstd() Option {
	return func(o *writerOptions) {
		o.zstd = true
	}
}

// WithZstdLevel compresses the payload with zstd at the given level.
func WithZstdLevel(level zstd.EncoderLevel) Option {
	return func(o *writerOptions) {
		o.zstd = true
		o.level = level
	}
}

// Writer encodes words for one layout. It implements pipeline.ChunkWriter.
// Close must be called to flush the payload.
type Writer struct {
	layout  layout.Layout
	bw      *bufio.Writer
	enc     *zstd.Encoder
	scratch []byte
	written int
	closed  bool
}

// NewWriter writes the stream header for l to w and returns a Writer for its
// words.
func NewWriter(w io.Writer, l layout.Layout, opts ...Option) (*Writer, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	o := writerOptions{level: zstd.SpeedDefault}
	for _, opt := range opts {
		opt(&o)
	}

	h := header{layout: l}
	if o.zstd {
		h.flags |= flagZstd
	}
	if _, err := w.Write(h.encode()); err != nil {
		return nil, fmt.Errorf("wire: write header: %w", err)
	}

	wr := &Writer{
		layout:  l,
		scratch: make([]byte, l.Lanes),
	}
	if o.zstd {
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(o.level))
		if err != nil {
			return nil, fmt.Errorf("wire: zstd encoder: %w", err)
		}
		wr.enc = enc
		wr.bw = bufio.NewWriter(enc)
	} else {
		wr.bw = bufio.NewWriter(w)
	}
	return wr, nil
}

// Layout returns the layout written in the header.
func (w *Writer) Layout() layout.Layout {
	return w.layout
}

// Written returns the number of words written so far.
func (w *Writer) Written() int {
	return w.written
}

// WriteWord appends one word to the stream.
func (w *Writer) WriteWord(word wword.Word) error {
	if w.closed {
		return errWriterClosed
	}
	if word.NumLanes() != w.layout.Lanes {
		return fmt.Errorf("wire: word has %d lanes, stream has %d", word.NumLanes(), w.layout.Lanes)
	}
	if w.written >= w.layout.TotalChunks() {
		return fmt.Errorf("%w: layout %s holds %d", ErrOverflow, w.layout, w.layout.TotalChunks())
	}
	word.Store(w.scratch)
	if _, err := w.bw.Write(w.scratch); err != nil {
		return err
	}
	w.written++
	return nil
}

// Close flushes the payload and ends the zstd stream, if any. It does not
// close the underlying writer. Close reports ErrIncomplete if fewer than
// TotalChunks words were written; the stream is flushed regardless.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	err := w.bw.Flush()
	if w.enc != nil {
		if cerr := w.enc.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		return fmt.Errorf("wire: flush: %w", err)
	}
	if total := w.layout.TotalChunks(); w.written != total {
		return fmt.Errorf("%w: wrote %d of %d words", ErrIncomplete, w.written, total)
	}
	return nil
}
