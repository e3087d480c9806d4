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

// Package layout derives the padded wide-word geometry of an image.
//
// Every row is padded up to a whole number of words so each row starts on a
// word boundary:
//
//	ChunksPerRow = ceil(Width / Lanes)
//	PaddedWidth  = ChunksPerRow * Lanes
//	TotalChunks  = ChunksPerRow * Height
//
// Chunk index i maps to row i / ChunksPerRow and column chunk
// i % ChunksPerRow; lane k of that chunk is pixel column colChunk*Lanes + k.
// All methods are pure arithmetic.
package layout

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-diffsharp/wword"
)

// ErrInvalid is returned for non-positive dimensions or an unsupported lane count.
var ErrInvalid = errors.New("layout: invalid geometry")

// Layout is the padded geometry of a Width x Height image carried in words of
// Lanes pixels.
type Layout struct {
	Width  int
	Height int
	Lanes  int
}

// New validates the geometry and returns a Layout.
func New(width, height, lanes int) (Layout, error) {
	l := Layout{Width: width, Height: height, Lanes: lanes}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Must is like New but panics on an invalid geometry.
func Must(width, height, lanes int) Layout {
	l, err := New(width, height, lanes)
	if err != nil {
		panic(err)
	}
	return l
}

// Validate checks that all dimensions are positive and Lanes fits a word.
func (l Layout) Validate() error {
	switch {
	case l.Width <= 0:
		return fmt.Errorf("%w: width %d", ErrInvalid, l.Width)
	case l.Height <= 0:
		return fmt.Errorf("%w: height %d", ErrInvalid, l.Height)
	case l.Lanes <= 0 || l.Lanes > wword.MaxLanes:
		return fmt.Errorf("%w: lanes %d not in [1, %d]", ErrInvalid, l.Lanes, wword.MaxLanes)
	}
	return nil
}

// ChunksPerRow returns the number of words per padded row.
func (l Layout) ChunksPerRow() int {
	return (l.Width + l.Lanes - 1) / l.Lanes
}

// PaddedWidth returns the padded row stride in pixels.
func (l Layout) PaddedWidth() int {
	return l.ChunksPerRow() * l.Lanes
}

// TotalChunks returns the number of words in a padded image.
func (l Layout) TotalChunks() int {
	return l.ChunksPerRow() * l.Height
}

// PaddedSize returns the size in bytes of a padded image.
func (l Layout) PaddedSize() int {
	return l.TotalChunks() * l.Lanes
}

// Pixels returns Width * Height.
func (l Layout) Pixels() int {
	return l.Width * l.Height
}

// ChunkOf returns the chunk index of (row, colChunk).
func (l Layout) ChunkOf(row, colChunk int) int {
	return row*l.ChunksPerRow() + colChunk
}

// RowOf returns the image row of chunk idx.
func (l Layout) RowOf(idx int) int {
	return idx / l.ChunksPerRow()
}

// ColChunkOf returns the column chunk of chunk idx within its row.
func (l Layout) ColChunkOf(idx int) int {
	return idx % l.ChunksPerRow()
}

// Column returns the pixel column of lane k in column chunk colChunk.
func (l Layout) Column(colChunk, k int) int {
	return colChunk*l.Lanes + k
}

// IsPadding reports whether col lies in the padding past the last real column.
func (l Layout) IsPadding(col int) bool {
	return col >= l.Width
}

// IsBorder reports whether (row, col) is on the outermost image border.
func (l Layout) IsBorder(row, col int) bool {
	return row == 0 || row == l.Height-1 || col == 0 || col == l.Width-1
}

// Latency returns the number of chunks the sharpen window lags its input:
// one full row plus one chunk, so the south row and east column are present
// when a chunk is centered.
func (l Layout) Latency() int {
	return l.ChunksPerRow() + 1
}

// Iterations returns the number of window steps needed to emit every chunk.
func (l Layout) Iterations() int {
	return l.TotalChunks() + l.Latency()
}

// String describes the geometry.
func (l Layout) String() string {
	return fmt.Sprintf("%dx%d lanes=%d padded=%d chunks=%dx%d",
		l.Width, l.Height, l.Lanes, l.PaddedWidth(), l.ChunksPerRow(), l.Height)
}
