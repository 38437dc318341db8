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

package asm

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/iox"
	"github.com/db47h/intcode/vm"
)

// Error is an assembler error at a given position in the source code.
type Error struct {
	Pos scanner.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

// ErrAsm is the error type returned by Assemble. It holds all the errors found
// in the source code.
type ErrAsm []Error

func (e ErrAsm) Error() string {
	var b strings.Builder
	for k := range e {
		if k > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[k].Error())
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting memory image and error if any. If the returned error is not nil,
// it will be of type ErrAsm.
//
// The name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
func Assemble(name string, r io.Reader) (img []vm.Cell, err error) {
	p := newParser()
	if err = p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.mem[:p.size], nil
}

func writeParam(w *iox.ErrWriter, p vm.Param) {
	switch p.Mode {
	case vm.Immediate:
		w.Write([]byte{'#'})
	case vm.Relative:
		w.Write([]byte{'@'})
	}
	w.WriteInt(int64(p.Val))
}

// Disassemble writes a disassembly of the instruction at position pc in mem
// to the specified io.Writer and returns the position of the next
// instruction. Cells that cannot be decoded are written as .dat directives.
func Disassemble(mem []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := iox.NewErrWriter(w)
	ins, err := vm.Decode(mem, pc)
	if err != nil {
		io.WriteString(ew, ".dat ")
		if pc >= 0 && pc < len(mem) {
			ew.WriteInt(int64(mem[pc]))
		} else {
			io.WriteString(ew, "???")
		}
		return pc + 1, ew.Err
	}
	io.WriteString(ew, ins.Op.String())
	for _, p := range ins.Args() {
		ew.Write([]byte{' '})
		writeParam(ew, p)
	}
	return pc + ins.Len(), ew.Err
}

// DisassembleAll writes a disassembly of all cells in mem to the specified
// io.Writer. Addresses are offset by base.
func DisassembleAll(mem []vm.Cell, base int, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	for pc := 0; pc < len(mem); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(mem, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
