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
	"fmt"
	"log/slog"
	"time"

	"github.com/ajroetker/go-diffsharp/codec"
	"github.com/ajroetker/go-diffsharp/layout"
	"github.com/ajroetker/go-diffsharp/workerpool"
)

// Pipeline runs the difference, posterize and sharpen stages for images of
// one fixed geometry. A Pipeline may run many image pairs, one at a time or
// concurrently; every run owns its own window state.
type Pipeline struct {
	cfg    Config
	layout layout.Layout
	pool   *workerpool.Pool
	log    *slog.Logger
}

// New validates cfg and returns a ready pipeline. Call Close to release its
// worker pool.
func New(cfg Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l, _ := cfg.Layout()
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:    cfg,
		layout: l,
		pool:   workerpool.New(cfg.Workers),
		log:    logger,
	}, nil
}

// Close releases the worker pool.
func (p *Pipeline) Close() {
	p.pool.Close()
}

// Config returns the pipeline configuration.
func (p *Pipeline) Config() Config {
	return p.cfg
}

// Layout returns the padded geometry.
func (p *Pipeline) Layout() layout.Layout {
	return p.layout
}

// NewBuffer allocates a zeroed buffer matching the pipeline layout.
func (p *Pipeline) NewBuffer() *codec.Buffer {
	return codec.NewBuffer(p.layout)
}

// Run processes padded buffers a and b into out using the configured mode.
// On error the contents of out are undefined.
func (p *Pipeline) Run(ctx context.Context, a, b, out *codec.Buffer) error {
	switch p.cfg.Mode {
	case Materialized:
		return p.RunMaterialized(ctx, a, b, out)
	default:
		return p.RunStreaming(ctx, a, b, out)
	}
}

// Process packs two logical images, runs the pipeline and returns the
// unpacked result.
func (p *Pipeline) Process(ctx context.Context, imgA, imgB *codec.Image) (*codec.Image, error) {
	a, err := codec.PackImage(imgA, p.layout)
	if err != nil {
		return nil, fmt.Errorf("pipeline: image A: %w", err)
	}
	b, err := codec.PackImage(imgB, p.layout)
	if err != nil {
		return nil, fmt.Errorf("pipeline: image B: %w", err)
	}
	out := p.NewBuffer()
	if err := p.Run(ctx, a, b, out); err != nil {
		return nil, err
	}
	return codec.UnpackImage(out), nil
}

// checkBuffers verifies all three buffers carry exactly TotalChunks words of
// the pipeline's lane count.
func (p *Pipeline) checkBuffers(a, b, out *codec.Buffer) error {
	for _, buf := range []struct {
		name string
		b    *codec.Buffer
	}{{"input A", a}, {"input B", b}, {"output", out}} {
		if buf.b.Layout() != p.layout {
			return &ContractError{
				Stage:  buf.name,
				Index:  buf.b.Len(),
				Reason: fmt.Sprintf("buffer layout %v, want %v", buf.b.Layout(), p.layout),
			}
		}
	}
	return nil
}

// logRun emits a debug record for a finished run.
func (p *Pipeline) logRun(mode Mode, start time.Time, err error) {
	if err != nil {
		p.log.Debug("pipeline run failed", "mode", mode, "layout", p.layout, "error", err)
		return
	}
	p.log.Debug("pipeline run", "mode", mode, "layout", p.layout, "elapsed", time.Since(start))
}
