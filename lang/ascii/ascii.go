// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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

// Package ascii provides helpers for IntCode programs that talk ASCII: input
// text is fed one character per cell and output values below 0x80 are
// characters. Any other output value is a plain number.
package ascii

import (
	"unicode/utf8"

	"github.com/db47h/intcode/vm"
)

// IsText returns true if v is an ASCII character.
func IsText(v vm.Cell) bool {
	return v >= 0 && v < utf8.RuneSelf
}

// Encode returns the cell values for s, one per rune. A trailing "\r\n" is
// converted to "\n".
func Encode(s string) []vm.Cell {
	if n := len(s); n > 1 && s[n-2] == '\r' && s[n-1] == '\n' {
		s = s[:n-2] + "\n"
	}
	v := make([]vm.Cell, 0, len(s))
	for _, r := range s {
		v = append(v, vm.Cell(r))
	}
	return v
}

// Decode splits program output into text and numeric values. Text is built
// from the ASCII values in out, other values are returned in order in nums.
func Decode(out []vm.Cell) (text string, nums []vm.Cell) {
	b := make([]byte, 0, len(out))
	for _, v := range out {
		if IsText(v) {
			b = append(b, byte(v))
			continue
		}
		nums = append(nums, v)
	}
	return string(b), nums
}
