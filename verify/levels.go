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

package verify

import "fmt"

// Levels counts pixels by posterization level.
type Levels struct {
	Black int // 0
	Gray  int // 128
	White int // 255
	Other int
}

// CountLevels tallies pix by level.
func CountLevels(pix []uint8) Levels {
	var l Levels
	for _, v := range pix {
		switch v {
		case 0:
			l.Black++
		case 128:
			l.Gray++
		case 255:
			l.White++
		default:
			l.Other++
		}
	}
	return l
}

// Total returns the number of pixels counted.
func (l Levels) Total() int {
	return l.Black + l.Gray + l.White + l.Other
}

func (l Levels) String() string {
	return fmt.Sprintf("black=%d gray=%d white=%d other=%d total=%d",
		l.Black, l.Gray, l.White, l.Other, l.Total())
}
