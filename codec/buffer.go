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
	"errors"
	"fmt"
	"io"

	"github.com/ajroetker/go-diffsharp/layout"
	"github.com/ajroetker/go-diffsharp/wword"
)

// ErrSizeMismatch is returned when an image does not match a buffer's layout.
var ErrSizeMismatch = errors.New("codec: image size does not match layout")

// Buffer is a padded, word-aligned pixel buffer of Layout.TotalChunks words.
type Buffer struct {
	layout layout.Layout
	data   []byte
}

// NewBuffer allocates a zero-filled buffer for l.
func NewBuffer(l layout.Layout) *Buffer {
	return &Buffer{
		layout: l,
		data:   make([]byte, l.PaddedSize()),
	}
}

// Layout returns the buffer geometry.
func (b *Buffer) Layout() layout.Layout {
	return b.layout
}

// Len returns the number of words in the buffer.
func (b *Buffer) Len() int {
	return b.layout.TotalChunks()
}

// Bytes returns the raw padded bytes. Word i occupies
// Bytes()[i*Lanes : (i+1)*Lanes].
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Word returns word i.
func (b *Buffer) Word(i int) wword.Word {
	k := b.layout.Lanes
	return wword.LoadWord(b.data[i*k : (i+1)*k])
}

// SetWord stores w as word i. It panics if w has the wrong lane count.
func (b *Buffer) SetWord(i int, w wword.Word) {
	k := b.layout.Lanes
	if w.NumLanes() != k {
		panic(fmt.Sprintf("codec: SetWord: %d-lane word in %d-lane buffer", w.NumLanes(), k))
	}
	w.Store(b.data[i*k : (i+1)*k])
}

// Words returns every word of the buffer in index order.
func (b *Buffer) Words() []wword.Word {
	words := make([]wword.Word, b.Len())
	for i := range words {
		words[i] = b.Word(i)
	}
	return words
}

// SetWords stores words starting at word 0. It panics if len(words) != Len().
func (b *Buffer) SetWords(words []wword.Word) {
	if len(words) != b.Len() {
		panic(fmt.Sprintf("codec: SetWords: %d words for %d-word buffer", len(words), b.Len()))
	}
	for i, w := range words {
		b.SetWord(i, w)
	}
}

// Clear zeroes the whole buffer, padding included.
func (b *Buffer) Clear() {
	clear(b.data)
}

// Reader returns a word reader positioned at word 0.
func (b *Buffer) Reader() *BufferReader {
	return &BufferReader{buf: b}
}

// Writer returns a word writer positioned at word 0.
func (b *Buffer) Writer() *BufferWriter {
	return &BufferWriter{buf: b}
}

// BufferReader reads words sequentially from a Buffer.
type BufferReader struct {
	buf  *Buffer
	next int
}

// ReadWord returns the next word, or io.EOF after the last one.
func (r *BufferReader) ReadWord() (wword.Word, error) {
	if r.next >= r.buf.Len() {
		return wword.Word{}, io.EOF
	}
	w := r.buf.Word(r.next)
	r.next++
	return w, nil
}

// BufferWriter writes words sequentially into a Buffer.
type BufferWriter struct {
	buf  *Buffer
	next int
}

// ErrBufferFull is returned when writing past the last word of a Buffer.
var ErrBufferFull = errors.New("codec: write past end of buffer")

// WriteWord stores w at the next position.
func (w *BufferWriter) WriteWord(word wword.Word) error {
	if w.next >= w.buf.Len() {
		return fmt.Errorf("%w: word %d of %d", ErrBufferFull, w.next, w.buf.Len())
	}
	w.buf.SetWord(w.next, word)
	w.next++
	return nil
}

// Written returns the number of words written so far.
func (w *BufferWriter) Written() int {
	return w.next
}
