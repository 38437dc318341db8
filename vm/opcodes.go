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

package vm

import "strconv"

// Opcode is the operation part of an instruction word (the two low decimal
// digits).
type Opcode Cell

// IntCode opcodes.
const (
	OpAdd Opcode = 1 + iota
	OpMul
	OpIn
	OpOut
	OpJt
	OpJf
	OpLt
	OpEq
	OpArb
	OpHlt Opcode = 99
)

type opInfo struct {
	name  string
	arity int
}

var opcodes = map[Opcode]opInfo{
	OpAdd: {"add", 3},
	OpMul: {"mul", 3},
	OpIn:  {"in", 1},
	OpOut: {"out", 1},
	OpJt:  {"jt", 2},
	OpJf:  {"jf", 2},
	OpLt:  {"lt", 3},
	OpEq:  {"eq", 3},
	OpArb: {"arb", 1},
	OpHlt: {"hlt", 0},
}

// Valid returns true if op is a known opcode.
func (op Opcode) Valid() bool {
	_, ok := opcodes[op]
	return ok
}

// Arity returns the number of parameters expected by op, or -1 if op is not a
// valid opcode.
func (op Opcode) Arity() int {
	if info, ok := opcodes[op]; ok {
		return info.arity
	}
	return -1
}

// String returns the assembler mnemonic for op.
func (op Opcode) String() string {
	if info, ok := opcodes[op]; ok {
		return info.name
	}
	return "op(" + strconv.FormatInt(int64(op), 10) + ")"
}

// Writes returns true if the last parameter of op is a destination address.
func (op Opcode) Writes() bool {
	switch op {
	case OpAdd, OpMul, OpIn, OpLt, OpEq:
		return true
	}
	return false
}

// Mode is a parameter mode.
type Mode uint8

// Parameter modes.
const (
	Position  Mode = iota // parameter is an address
	Immediate             // parameter is a literal value
	Relative              // parameter is an address relative to the relative base
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}
