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

import "github.com/pkg/errors"

// Param is a decoded instruction parameter.
type Param struct {
	Mode Mode
	Val  Cell
}

// Instruction is a decoded instruction.
type Instruction struct {
	PC     int // address of the instruction
	Op     Opcode
	Params [3]Param
}

// Len returns the instruction length in cells, opcode included.
func (ins *Instruction) Len() int {
	return 1 + ins.Op.Arity()
}

// Args returns the instruction parameters.
func (ins *Instruction) Args() []Param {
	return ins.Params[:ins.Op.Arity()]
}

func cellAt(mem []Cell, addr int) Cell {
	if addr < len(mem) {
		return mem[addr]
	}
	return 0
}

// Decode decodes the instruction at address pc in mem. Cells past the end of
// mem read as 0.
func Decode(mem []Cell, pc int) (ins Instruction, err error) {
	if pc < 0 {
		return ins, errors.Wrapf(ErrAddress, "pc %d", pc)
	}
	w := cellAt(mem, pc)
	ins.PC = pc
	ins.Op = Opcode(w % 100)
	n := ins.Op.Arity()
	if n < 0 {
		return ins, errors.Wrapf(ErrOpcode, "%d", w)
	}
	modes := w / 100
	for k := 0; k < n; k++ {
		m := modes % 10
		if m > Cell(Relative) {
			return ins, errors.Wrapf(ErrMode, "%d in parameter %d of %d", m, k+1, w)
		}
		ins.Params[k] = Param{Mode(m), cellAt(mem, pc+1+k)}
		modes /= 10
	}
	return ins, nil
}

// addr returns the memory address designated by p, growing memory as needed.
func (i *Instance) addr(p Param) (int, error) {
	var a Cell
	switch p.Mode {
	case Position:
		a = p.Val
	case Relative:
		a = i.rb + p.Val
	default:
		return 0, errors.Wrapf(ErrMode, "%v parameter used as an address", p.Mode)
	}
	if a < 0 {
		return 0, errors.Wrapf(ErrAddress, "address %d", a)
	}
	if a > Cell(maxInt) {
		return 0, errors.Wrapf(ErrMemLimit, "address %d", a)
	}
	if err := i.grow(int(a)); err != nil {
		return 0, err
	}
	return int(a), nil
}

func (i *Instance) read(p Param) (Cell, error) {
	if p.Mode == Immediate {
		return p.Val, nil
	}
	a, err := i.addr(p)
	if err != nil {
		return 0, err
	}
	return i.Mem[a], nil
}

func (i *Instance) write(p Param, v Cell) error {
	if p.Mode == Immediate {
		return errors.Wrapf(ErrImmediateWrite, "value %d", p.Val)
	}
	a, err := i.addr(p)
	if err != nil {
		return err
	}
	i.Mem[a] = v
	return nil
}

// Step executes a single instruction and returns the resulting event.
// Instructions that do not produce any event return an event of kind None.
//
// If the next instruction is an input instruction and the input queue is
// empty, Step returns a NeedInput event and leaves the PC untouched so that
// the instruction is executed again on the next call.
//
// After an error or a Halt event, the instance cannot be resumed.
func (i *Instance) Step() (Event, error) {
	if i.err != nil {
		return Event{}, i.err
	}
	if i.halted {
		return Event{}, ErrHalted
	}
	pc := i.PC
	ev, err := i.step()
	if err != nil {
		i.err = errors.Wrapf(err, "@pc=%d/%d, rb=%d", pc, len(i.Mem), i.rb)
		return ev, i.err
	}
	return ev, nil
}

func (i *Instance) step() (Event, error) {
	if err := i.grow(i.PC); err != nil {
		return Event{}, err
	}
	ins, err := Decode(i.Mem, i.PC)
	if err != nil {
		return Event{}, err
	}
	if err = i.grow(i.PC + ins.Len() - 1); err != nil {
		return Event{}, err
	}
	if ins.Op == OpIn && len(i.input) == 0 {
		return Event{Kind: NeedInput}, nil
	}
	if i.trace != nil {
		i.trace(i, ins)
	}
	i.insCount++
	i.PC += ins.Len()

	p := &ins.Params
	switch ins.Op {
	case OpAdd, OpMul, OpLt, OpEq:
		a, err := i.read(p[0])
		if err != nil {
			return Event{}, err
		}
		b, err := i.read(p[1])
		if err != nil {
			return Event{}, err
		}
		var v Cell
		switch ins.Op {
		case OpAdd:
			v = a + b
		case OpMul:
			v = a * b
		case OpLt:
			if a < b {
				v = 1
			}
		case OpEq:
			if a == b {
				v = 1
			}
		}
		return Event{}, i.write(p[2], v)
	case OpIn:
		v := i.input[0]
		i.input = i.input[1:]
		return Event{}, i.write(p[0], v)
	case OpOut:
		v, err := i.read(p[0])
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: Output, Value: v}, nil
	case OpJt, OpJf:
		c, err := i.read(p[0])
		if err != nil {
			return Event{}, err
		}
		if (c != 0) != (ins.Op == OpJt) {
			return Event{}, nil
		}
		t, err := i.read(p[1])
		if err != nil {
			return Event{}, err
		}
		if t < 0 {
			return Event{}, errors.Wrapf(ErrAddress, "jump target %d", t)
		}
		if t >= Cell(maxCells) {
			return Event{}, errors.Wrapf(ErrMemLimit, "jump target %d", t)
		}
		i.PC = int(t)
	case OpArb:
		d, err := i.read(p[0])
		if err != nil {
			return Event{}, err
		}
		i.rb += d
	case OpHlt:
		i.halted = true
		return Event{Kind: Halt}, nil
	}
	return Event{}, nil
}

// Run executes instructions until one of them produces an event, and returns
// that event. Calling Run again resumes execution at the instruction following
// the one that produced the event.
func (i *Instance) Run() (Event, error) {
	for {
		ev, err := i.Step()
		if err != nil || ev.Kind != None {
			return ev, err
		}
	}
}
