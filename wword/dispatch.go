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

package wword

import (
	"log/slog"
	"os"
	"strconv"
)

// scalarLanes is used when no vector unit is detected or SIMD is disabled.
const scalarLanes = 16

// nativeLanes is the lane count for the detected vector width.
// Set by init() in dispatch_*.go files.
var nativeLanes = scalarLanes

// nativeName is the human-readable name of the detected vector unit.
var nativeName = "scalar"

// NativeLanes returns the number of 8-bit lanes in the widest vector register
// detected on this CPU.
func NativeLanes() int {
	return nativeLanes
}

// NativeName returns a human-readable name for the detected vector unit,
// for example "avx512", "avx2", "neon" or "scalar".
func NativeName() string {
	return nativeName
}

// NoSimdEnv checks if the DIFFSHARP_NO_SIMD environment variable is set.
// When set, NativeLanes reports the scalar width regardless of CPU features.
func NoSimdEnv() bool {
	val := os.Getenv("DIFFSHARP_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setNative(lanes int, name string) {
	nativeLanes = lanes
	nativeName = name
	slog.Debug("wword native width selected", "target", name, "lanes", lanes)
}
