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
	"io"
	"strings"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

// source supplies input values when the VM runs out of input. next returns
// io.EOF when no more input is available.
type source interface {
	next() ([]vm.Cell, error)
	Close() error
}

// lineSource reads values from an io.Reader, one line at a time.
type lineSource struct {
	r *bufio.Reader
}

func (s *lineSource) next() ([]vm.Cell, error) {
	for {
		line, err := s.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "input read failed")
		}
		if len(line) == 0 {
			return nil, io.EOF
		}
		v, perr := parseCells(line)
		if perr != nil {
			return nil, perr
		}
		if len(v) > 0 {
			return v, nil
		}
	}
}

func (s *lineSource) Close() error { return nil }

// promptSource reads values from an interactive terminal.
type promptSource struct {
	ln *liner.State
}

// promptSupported returns true if a promptSource can be used on the
// terminal.
func promptSupported() bool {
	return liner.TerminalSupported()
}

func newPromptSource() *promptSource {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	return &promptSource{ln}
}

func (s *promptSource) next() ([]vm.Cell, error) {
	for {
		line, err := s.ln.Prompt("? ")
		switch err {
		case nil:
		case io.EOF, liner.ErrPromptAborted:
			return nil, io.EOF
		default:
			return nil, errors.Wrap(err, "prompt failed")
		}
		v, err := parseCells(line)
		if err != nil {
			// let the user try again
			continue
		}
		if len(v) > 0 {
			s.ln.AppendHistory(strings.TrimSpace(line))
			return v, nil
		}
	}
}

func (s *promptSource) Close() error { return s.ln.Close() }

// asciiSource reads characters. If raw is true, characters are returned one
// at a time, as they are read. Otherwise, a whole line is returned.
type asciiSource struct {
	r   *bufio.Reader
	raw bool
}

func (s *asciiSource) next() ([]vm.Cell, error) {
	if s.raw {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil, err
			}
			return nil, errors.Wrap(err, "input read failed")
		}
		// in raw tty mode, we need to handle CTRL-D ourselves
		if r == 4 {
			return nil, io.EOF
		}
		if r == '\r' {
			r = '\n'
		}
		return []vm.Cell{vm.Cell(r)}, nil
	}
	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "input read failed")
	}
	if len(line) == 0 {
		return nil, io.EOF
	}
	return ascii.Encode(line), nil
}

func (s *asciiSource) Close() error { return nil }
