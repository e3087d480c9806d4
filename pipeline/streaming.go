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

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-diffsharp/codec"
	"github.com/ajroetker/go-diffsharp/stage"
	"github.com/ajroetker/go-diffsharp/wword"
)

// ChunkReader is a source of words in chunk-index order. ReadWord returns
// io.EOF after the last word.
type ChunkReader interface {
	ReadWord() (wword.Word, error)
}

// ChunkWriter is a sink of words in chunk-index order.
type ChunkWriter interface {
	WriteWord(wword.Word) error
}

// RunStreaming runs the three stages concurrently over padded buffers.
func (p *Pipeline) RunStreaming(ctx context.Context, a, b, out *codec.Buffer) error {
	if err := p.checkBuffers(a, b, out); err != nil {
		return err
	}
	return p.RunStreams(ctx, a.Reader(), b.Reader(), out.Writer())
}

// RunStreams runs the three stages concurrently: posterize reads a and b,
// sharpen consumes the posterized queue, and the writer drains the sharpened
// queue into out. Both inputs must yield exactly TotalChunks words.
//
// The first failing stage cancels the others; its error is returned.
func (p *Pipeline) RunStreams(ctx context.Context, a, b ChunkReader, out ChunkWriter) (err error) {
	start := time.Now()
	defer func() { p.logRun(Streaming, start, err) }()

	total := p.layout.TotalChunks()
	g, ctx := errgroup.WithContext(ctx)

	posterized := NewQueue("posterize", p.cfg.QueueDepth, total)
	sharpened := NewQueue("sharpen", p.cfg.QueueDepth, total)

	// A queue is closed only after its producer succeeds, so a downstream
	// stage never mistakes an aborted stream for a short one.
	g.Go(func() error {
		if err := p.posterizeStage(ctx, a, b, posterized); err != nil {
			return err
		}
		posterized.Close()
		return nil
	})

	g.Go(func() error {
		if err := p.sharpenStage(ctx, posterized, sharpened); err != nil {
			return err
		}
		sharpened.Close()
		return nil
	})

	g.Go(func() error {
		return p.writeStage(ctx, sharpened, out)
	})

	return g.Wait()
}

func (p *Pipeline) posterizeStage(ctx context.Context, a, b ChunkReader, out *Queue) error {
	total := p.layout.TotalChunks()
	th := p.cfg.Thresholds
	for i := 0; i < total; i++ {
		wa, err := p.readInput(a, "input A", i)
		if err != nil {
			return err
		}
		wb, err := p.readInput(b, "input B", i)
		if err != nil {
			return err
		}
		if err := out.Push(ctx, stage.PosterizeWord(wa, wb, th)); err != nil {
			return err
		}
	}
	if err := expectEOF(a, "input A", total); err != nil {
		return err
	}
	return expectEOF(b, "input B", total)
}

func (p *Pipeline) readInput(r ChunkReader, name string, idx int) (wword.Word, error) {
	w, err := r.ReadWord()
	if errors.Is(err, io.EOF) {
		return w, &ContractError{Stage: name, Index: idx, Reason: "stream ended early"}
	}
	if err != nil {
		return w, fmt.Errorf("pipeline: %s: chunk %d: %w", name, idx, err)
	}
	if w.NumLanes() != p.layout.Lanes {
		return w, &ContractError{
			Stage:  name,
			Index:  idx,
			Reason: fmt.Sprintf("%d lanes, want %d", w.NumLanes(), p.layout.Lanes),
		}
	}
	return w, nil
}

func expectEOF(r ChunkReader, name string, total int) error {
	_, err := r.ReadWord()
	switch {
	case errors.Is(err, io.EOF):
		return nil
	case err != nil:
		return fmt.Errorf("pipeline: %s: %w", name, err)
	default:
		return &ContractError{Stage: name, Index: total, Reason: "stream longer than image"}
	}
}

func (p *Pipeline) sharpenStage(ctx context.Context, in, out *Queue) error {
	s := stage.NewSharpener(p.layout)
	consumed := 0
	return s.Run(
		func() (wword.Word, error) {
			w, ok, err := in.Pop(ctx)
			if err != nil {
				return w, err
			}
			if !ok {
				return w, &ContractError{Stage: "sharpen", Index: consumed, Reason: "input stream ended early"}
			}
			consumed++
			return w, nil
		},
		func(w wword.Word) error {
			return out.Push(ctx, w)
		},
	)
}

func (p *Pipeline) writeStage(ctx context.Context, in *Queue, out ChunkWriter) error {
	written := 0
	for {
		w, ok, err := in.Pop(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if err := out.WriteWord(w); err != nil {
			return fmt.Errorf("pipeline: write chunk %d: %w", written, err)
		}
		written++
	}
	if total := p.layout.TotalChunks(); written != total {
		return &ContractError{Stage: "write", Index: written, Reason: fmt.Sprintf("wrote %d of %d chunks", written, total)}
	}
	return nil
}
