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
	"fmt"
	"log/slog"

	"github.com/ajroetker/go-diffsharp/layout"
	"github.com/ajroetker/go-diffsharp/stage"
	"github.com/ajroetker/go-diffsharp/wword"
)

// Mode selects how stages are executed.
type Mode int

const (
	// Streaming runs stages concurrently over bounded queues.
	Streaming Mode = iota

	// Materialized runs stages one after another over whole-image buffers.
	Materialized
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Streaming:
		return "streaming"
	case Materialized:
		return "materialized"
	default:
		return "unknown"
	}
}

const (
	// DefaultLanes matches a 512-bit memory bus.
	DefaultLanes = 64

	// DefaultQueueDepth is the number of words each inter-stage queue buffers.
	DefaultQueueDepth = 16
)

// Config configures a Pipeline. Every field is fixed for the pipeline's
// lifetime.
type Config struct {
	// Width and Height are the image dimensions in pixels.
	Width  int
	Height int

	// Lanes is the number of pixels per word (bus width in bits / 8).
	Lanes int

	// Thresholds are the posterize band edges.
	Thresholds stage.Thresholds

	// Mode selects materialized or streaming execution.
	Mode Mode

	// QueueDepth is the capacity of each streaming queue, in words.
	QueueDepth int

	// Workers is the worker pool size for materialized mode.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives debug records for each run. nil means slog.Default().
	Logger *slog.Logger
}

// DefaultConfig returns a streaming configuration with 64 lanes and the
// default thresholds.
func DefaultConfig(width, height int) Config {
	return Config{
		Width:      width,
		Height:     height,
		Lanes:      DefaultLanes,
		Thresholds: stage.DefaultThresholds(),
		Mode:       Streaming,
		QueueDepth: DefaultQueueDepth,
	}
}

// NativeConfig is DefaultConfig with Lanes set to the CPU's native vector
// width.
func NativeConfig(width, height int) Config {
	c := DefaultConfig(width, height)
	c.Lanes = wword.NativeLanes()
	return c
}

// Layout returns the padded geometry described by the configuration.
func (c Config) Layout() (layout.Layout, error) {
	l, err := layout.New(c.Width, c.Height, c.Lanes)
	if err != nil {
		return layout.Layout{}, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return l, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if _, err := c.Layout(); err != nil {
		return err
	}
	if err := c.Thresholds.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.Mode != Streaming && c.Mode != Materialized {
		return fmt.Errorf("%w: unknown mode %d", ErrConfig, c.Mode)
	}
	if c.QueueDepth < 1 {
		return fmt.Errorf("%w: queue depth %d", ErrConfig, c.QueueDepth)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrConfig, c.Workers)
	}
	return nil
}
