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

import (
	"strconv"

	"github.com/pkg/errors"
)

// Cell is the raw type stored in a memory location.
type Cell int64

const maxInt = int(^uint(0) >> 1)

// maxCells is the memory size limit in cells when no MaxMem option is set.
const maxCells = maxInt / 8

// Errors returned by Step and Run. They are always wrapped with additional
// context; use errors.Cause to match them.
var (
	ErrOpcode         = errors.New("unknown opcode")
	ErrMode           = errors.New("invalid parameter mode")
	ErrImmediateWrite = errors.New("write to immediate parameter")
	ErrAddress        = errors.New("negative address")
	ErrMemLimit       = errors.New("memory limit exceeded")
	ErrHalted         = errors.New("program halted")
)

// Kind identifies the type of an Event.
type Kind int

// Event kinds.
const (
	None      Kind = iota // the instruction did not produce any event
	Output                // the program produced a value
	Halt                  // the program has terminated
	NeedInput             // the input queue is empty and the program requests a value
)

var kindNames = [...]string{"none", "output", "halt", "need input"}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Event is the observable result of executing instructions. Value is only
// meaningful for Output events.
type Event struct {
	Kind  Kind
	Value Cell
}

func (e Event) String() string {
	if e.Kind == Output {
		return "output(" + strconv.FormatInt(int64(e.Value), 10) + ")"
	}
	return e.Kind.String()
}

// Instance represents an IntCode VM instance.
type Instance struct {
	PC       int    // Program Counter (aka. Instruction Pointer)
	Mem      []Cell // Memory
	rb       Cell
	input    []Cell
	maxMem   int
	trace    func(*Instance, Instruction)
	insCount int64
	halted   bool
	err      error
}

// Option interface
type Option func(*Instance) error

// Input appends the given values to the input queue.
func Input(v ...Cell) Option {
	return func(i *Instance) error { i.PushInput(v...); return nil }
}

// MaxMem sets the maximum memory size in cells. Any attempt to access memory
// past that limit will fail with ErrMemLimit. The default is 0, meaning no
// limit.
func MaxMem(cells int) Option {
	return func(i *Instance) error {
		if cells < 0 {
			return errors.Errorf("invalid memory limit %d", cells)
		}
		i.maxMem = cells
		return nil
	}
}

// Trace sets a function that will be called before the execution of every
// instruction. At the time of the call, i.PC is the address of the
// instruction.
func Trace(fn func(i *Instance, ins Instruction)) Option {
	return func(i *Instance) error { i.trace = fn; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new IntCode Virtual Machine instance.
//
// The prog parameter is the initial memory contents. It is copied, so the
// caller's slice is never modified by the VM.
//
// Options will be set by calling SetOptions.
func New(prog []Cell, opts ...Option) (*Instance, error) {
	i := &Instance{
		Mem: append(make([]Cell, 0, len(prog)), prog...),
	}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.maxMem > 0 && len(i.Mem) > i.maxMem {
		return nil, errors.Wrapf(ErrMemLimit, "program size %d, limit %d cells", len(i.Mem), i.maxMem)
	}
	return i, nil
}

// PushInput appends the given values to the input queue. It can be called at
// any time, including before the first call to Run.
func (i *Instance) PushInput(v ...Cell) {
	i.input = append(i.input, v...)
}

// Pending returns the number of values in the input queue.
func (i *Instance) Pending() int {
	return len(i.input)
}

// RelativeBase returns the current value of the relative base.
func (i *Instance) RelativeBase() Cell {
	return i.rb
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Halted returns true if the program has executed a halt instruction.
func (i *Instance) Halted() bool {
	return i.halted
}

// Err returns the error that caused the instance to fail, if any.
func (i *Instance) Err() error {
	return i.err
}

// grow ensures that addr is a valid index into i.Mem.
func (i *Instance) grow(addr int) error {
	if addr < 0 {
		return errors.Wrapf(ErrAddress, "address %d", addr)
	}
	if addr < len(i.Mem) {
		return nil
	}
	limit := maxCells
	if i.maxMem > 0 && i.maxMem < limit {
		limit = i.maxMem
	}
	if addr >= limit {
		return errors.Wrapf(ErrMemLimit, "address %d, limit %d cells", addr, limit)
	}
	i.Mem = append(i.Mem, make([]Cell, addr+1-len(i.Mem))...)
	return nil
}
