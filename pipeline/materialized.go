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
	"time"

	"github.com/ajroetker/go-diffsharp/codec"
	"github.com/ajroetker/go-diffsharp/stage"
	"github.com/ajroetker/go-diffsharp/wword"
)

// RunMaterialized runs the stages strictly one after another:
//
//  1. posterize every chunk of a and b into an owned buffer,
//  2. sharpen that buffer into a second owned buffer,
//  3. copy the result into out.
//
// Stage 1 is split across the worker pool.
func (p *Pipeline) RunMaterialized(ctx context.Context, a, b, out *codec.Buffer) (err error) {
	start := time.Now()
	defer func() { p.logRun(Materialized, start, err) }()

	if err := p.checkBuffers(a, b, out); err != nil {
		return err
	}

	total := p.layout.TotalChunks()
	th := p.cfg.Thresholds

	posterized := make([]wword.Word, total)
	err = p.pool.ParallelForCtx(ctx, total, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			posterized[i] = stage.PosterizeWord(a.Word(i), b.Word(i), th)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	filtered := make([]wword.Word, total)
	stage.SharpenChunks(p.layout, posterized, filtered)

	out.SetWords(filtered)
	return nil
}
