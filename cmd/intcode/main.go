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

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

var errInputExhausted = errors.New("input exhausted")

type flusher interface {
	Flush() error
}

func loadProgram(c *config) ([]vm.Cell, error) {
	if c.Prog == "" {
		return nil, errors.New("no program file specified")
	}
	if !c.Asm {
		return vm.Load(c.Prog)
	}
	f, err := os.Open(c.Prog)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	return asm.Assemble(c.Prog, bufio.NewReader(f))
}

func tracer(w io.Writer) func(*vm.Instance, vm.Instruction) {
	return func(i *vm.Instance, ins vm.Instruction) {
		fmt.Fprintf(w, "% 10d\t", ins.PC)
		asm.Disassemble(i.Mem, ins.PC, w)
		fmt.Fprintf(w, "\trb=%d\n", i.RelativeBase())
	}
}

// newVM creates a new VM instance, either from a program file or from a
// snapshot.
func newVM(c *config, trace io.Writer) (*vm.Instance, error) {
	opts := []vm.Option{vm.MaxMem(c.MaxMem)}
	if c.Trace {
		opts = append(opts, vm.Trace(tracer(trace)))
	}
	if c.Resume != "" {
		data, err := ioutil.ReadFile(c.Resume)
		if err != nil {
			return nil, errors.Wrap(err, "snapshot read failed")
		}
		i, err := vm.New(nil, opts...)
		if err != nil {
			return nil, err
		}
		if err = i.UnmarshalBinary(data); err != nil {
			return nil, errors.Wrap(err, c.Resume)
		}
		i.PushInput(c.In...)
		return i, nil
	}
	prog, err := loadProgram(c)
	if err != nil {
		return nil, err
	}
	return vm.New(prog, append(opts, vm.Input(c.In...))...)
}

// newSource returns the input source to use with stdin, and an optional
// function that restores the terminal state.
func newSource(c *config, stdin *os.File) (source, func(), error) {
	tty := isTerminal(stdin.Fd())
	if c.ASCII {
		if !c.Raw || !tty {
			return &asciiSource{bufio.NewReader(stdin), false}, nil, nil
		}
		tearDown, err := setRawIO()
		if err != nil {
			return nil, nil, err
		}
		return &asciiSource{bufio.NewReader(stdin), true}, tearDown, nil
	}
	if tty && promptSupported() {
		return newPromptSource(), nil, nil
	}
	return &lineSource{bufio.NewReader(stdin)}, nil, nil
}

func writeOutput(w io.Writer, v vm.Cell, text bool) error {
	var err error
	if text && ascii.IsText(v) {
		_, err = w.Write([]byte{byte(v)})
	} else {
		_, err = io.WriteString(w, strconv.FormatInt(int64(v), 10)+"\n")
	}
	return errors.Wrap(err, "output failed")
}

// execute runs i until it halts. Values are read from src whenever the program
// needs input. It returns errInputExhausted if src runs out of input.
func execute(i *vm.Instance, src source, w io.Writer, text bool) error {
	for {
		ev, err := i.Run()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case vm.Output:
			if err = writeOutput(w, ev.Value, text); err != nil {
				return err
			}
		case vm.NeedInput:
			// make sure that any prompt is visible
			if f, ok := w.(flusher); ok {
				if err = f.Flush(); err != nil {
					return errors.Wrap(err, "output failed")
				}
			}
			v, err := src.next()
			if err == io.EOF {
				return errInputExhausted
			}
			if err != nil {
				return err
			}
			i.PushInput(v...)
		case vm.Halt:
			return nil
		}
	}
}

func saveSnapshot(i *vm.Instance, fileName string) error {
	data, err := i.MarshalBinary()
	if err != nil {
		return err
	}
	return errors.Wrap(ioutil.WriteFile(fileName, data, 0644), "snapshot save failed")
}

func atExit(i *vm.Instance, err error, debug bool) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "\n%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "\n%+v\n", err)
	if i != nil {
		fmt.Fprintf(os.Stderr, "PC: %v, RB: %v, memory: %d cells, instructions: %d\n",
			i.PC, i.RelativeBase(), len(i.Mem), i.InstructionCount())
		if i.PC < len(i.Mem) {
			fmt.Fprintf(os.Stderr, "% 10d\t", i.PC)
			asm.Disassemble(i.Mem, i.PC, os.Stderr)
			fmt.Fprintln(os.Stderr)
		}
	}
	os.Exit(1)
}

func main() {
	var (
		err      error
		i        *vm.Instance
		c        config
		src      source
		tearDown func()
	)

	stdout := bufio.NewWriter(os.Stdout)

	// flush output, catch and log errors
	defer func() {
		if e := stdout.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "output failed")
		}
		atExit(i, err, c.Debug)
	}()

	if err = c.parse(flag.CommandLine, os.Args[1:]); err != nil {
		return
	}

	if c.Disasm {
		var prog []vm.Cell
		if prog, err = loadProgram(&c); err != nil {
			return
		}
		err = asm.DisassembleAll(prog, 0, stdout)
		return
	}

	if i, err = newVM(&c, os.Stderr); err != nil {
		return
	}
	if src, tearDown, err = newSource(&c, os.Stdin); err != nil {
		return
	}
	if tearDown != nil {
		defer tearDown()
	}
	defer src.Close()

	err = execute(i, src, stdout, c.ASCII)
	if err == errInputExhausted && c.Snapshot != "" {
		if err = saveSnapshot(i, c.Snapshot); err == nil {
			fmt.Fprintf(os.Stderr, "input exhausted, VM state saved to %s\n", c.Snapshot)
		}
		return
	}
	if err != nil {
		return
	}
	if c.Out != "" {
		if err = vm.Save(c.Out, i.Mem); err != nil {
			return
		}
	}
	if c.Dump {
		err = dumpVM(i, stdout)
	}
}
