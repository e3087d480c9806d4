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

// Package pipeline wires the posterize and sharpen stages into a complete
// image-pair pipeline.
//
// Two execution modes produce identical output:
//
//   - Materialized: each stage consumes its whole input into an owned word
//     buffer before the next stage starts. The posterize stage is split
//     across a worker pool since every chunk is independent.
//   - Streaming: posterize, sharpen and write run as concurrent goroutines
//     connected by bounded queues. A stage blocks only on a full or empty
//     queue, and closes its output queue after its last word.
//
// Usage:
//
//	p, err := pipeline.New(pipeline.DefaultConfig(256, 256))
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//	out, err := p.Process(ctx, imgA, imgB)
//
// Any contract violation (a stream of the wrong length or lane count) aborts
// every stage and is returned as a *ContractError; the output is then invalid.
package pipeline
