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
	"errors"
	"fmt"
)

var (
	// ErrConfig is wrapped by every configuration error.
	ErrConfig = errors.New("pipeline: invalid configuration")

	// ErrContract is wrapped by every *ContractError.
	ErrContract = errors.New("pipeline: stream contract violated")
)

// ContractError reports a stream that broke the pipeline contract: wrong
// length, wrong lane count, or a write past the end of a stream.
type ContractError struct {
	Stage  string
	Index  int
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("pipeline: %s: chunk %d: %s", e.Stage, e.Index, e.Reason)
}

// Unwrap makes errors.Is(err, ErrContract) hold.
func (e *ContractError) Unwrap() error {
	return ErrContract
}
