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

package stage

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-diffsharp/wword"
)

// Default posterization thresholds.
const (
	ThreshLow  = 32
	ThreshHigh = 96
)

// ErrThresholds is returned by Thresholds.Validate.
var ErrThresholds = errors.New("stage: invalid thresholds")

// Thresholds are the band edges of the posterize mapping.
type Thresholds struct {
	Low  int
	High int
}

// DefaultThresholds returns {ThreshLow, ThreshHigh}.
func DefaultThresholds() Thresholds {
	return Thresholds{Low: ThreshLow, High: ThreshHigh}
}

// Validate requires 0 <= Low <= High <= 256.
func (t Thresholds) Validate() error {
	if t.Low < 0 || t.High < t.Low || t.High > 256 {
		return fmt.Errorf("%w: low=%d high=%d", ErrThresholds, t.Low, t.High)
	}
	return nil
}

// PosterizeWord returns the posterized absolute difference of a and b.
func PosterizeWord(a, b wword.Word, t Thresholds) wword.Word {
	return wword.Posterize(wword.AbsDiff(a, b), t.Low, t.High)
}

// PosterizeChunks posterizes a[i], b[i] into out[i] for every i.
// All three slices must have the same length.
func PosterizeChunks(a, b, out []wword.Word, t Thresholds) {
	if len(a) != len(b) {
		panic(fmt.Sprintf("posterize: input lengths differ: %d != %d", len(a), len(b)))
	}
	if len(out) != len(a) {
		panic(fmt.Sprintf("posterize: output length %d, want %d", len(out), len(a)))
	}
	for i := range a {
		out[i] = PosterizeWord(a[i], b[i], t)
	}
}
