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

// Package wire serializes a stream of wide words in chunk-index order.
//
// A stream is a fixed 16-byte header followed by TotalChunks words of K bytes
// each, lane 0 first. The header is never compressed; with WithZstd the
// payload is a single zstd stream.
//
//	offset  size  field
//	0       4     magic "WWS1"
//	4       1     version
//	5       1     flags (bit 0: zstd payload)
//	6       1     lanes
//	7       1     reserved, zero
//	8       4     width, little endian
//	12      4     height, little endian
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ajroetker/go-diffsharp/layout"
)

const (
	// Magic opens every stream.
	Magic = "WWS1"

	// Version is the only header version understood by Reader.
	Version = 1

	// HeaderSize is the encoded header length in bytes.
	HeaderSize = 16

	flagZstd = 1 << 0
)

var (
	// ErrFormat is wrapped by every error caused by a malformed stream.
	ErrFormat = errors.New("wire: malformed stream")

	// ErrOverflow is returned when writing more words than the layout holds.
	ErrOverflow = errors.New("wire: too many words")

	// ErrIncomplete is returned by Writer.Close when fewer words than the
	// layout holds were written.
	ErrIncomplete = errors.New("wire: incomplete stream")
)

type header struct {
	flags  uint8
	layout layout.Layout
}

func (h header) encode() []byte {
	buf := make([]byte, 0, HeaderSize)
	buf = append(buf, Magic...)
	buf = append(buf, Version, h.flags, uint8(h.layout.Lanes), 0)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.layout.Width))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(h.layout.Height))
	return buf
}

func decodeHeader(buf []byte) (header, error) {
	var h header
	if len(buf) != HeaderSize {
		return h, fmt.Errorf("%w: header is %d bytes", ErrFormat, len(buf))
	}
	if string(buf[:4]) != Magic {
		return h, fmt.Errorf("%w: bad magic %q", ErrFormat, buf[:4])
	}
	if buf[4] != Version {
		return h, fmt.Errorf("%w: unsupported version %d", ErrFormat, buf[4])
	}
	h.flags = buf[5]
	if h.flags&^flagZstd != 0 {
		return h, fmt.Errorf("%w: unknown flags %#x", ErrFormat, h.flags)
	}
	width := binary.LittleEndian.Uint32(buf[8:12])
	height := binary.LittleEndian.Uint32(buf[12:16])
	l, err := layout.New(int(width), int(height), int(buf[6]))
	if err != nil {
		return h, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	h.layout = l
	return h, nil
}
