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
	"sort"
	"strconv"
	"text/scanner"
	"unicode"

	"github.com/db47h/intcode/vm"
)

var opcodeIndex = make(map[string]vm.Opcode)

func init() {
	for _, op := range []vm.Opcode{vm.OpAdd, vm.OpMul, vm.OpIn, vm.OpOut, vm.OpJt, vm.OpJf, vm.OpLt, vm.OpEq, vm.OpArb, vm.OpHlt} {
		opcodeIndex[op.String()] = op
	}
	opcodeIndex["halt"] = vm.OpHlt
}

// maxSize is the maximum size of an assembled program in cells.
const maxSize = 1 << 24

// mode digit multipliers for parameters 1 to 3
var modeScale = [...]vm.Cell{100, 1000, 10000}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type labelSite struct {
	pos     scanner.Position
	address int
}

type label struct {
	labelSite
	uses []labelSite
}

type parser struct {
	mem    []vm.Cell
	pc     int
	size   int
	s      scanner.Scanner
	labels map[string]*label
	consts map[string]labelSite
	errs   ErrAsm

	// instruction being assembled
	op     vm.Opcode
	opAddr int
	arg    int
}

func newParser() *parser {
	p := new(parser)
	p.labels = make(map[string]*label)
	p.consts = make(map[string]labelSite)
	return p
}

func (p *parser) errorf(pos scanner.Position, format string, args ...interface{}) {
	if !pos.IsValid() {
		pos = p.s.Pos()
	}
	p.errs = append(p.errs, Error{pos, fmt.Sprintf(format, args...)})
}

func (p *parser) write(v vm.Cell) {
	for p.pc >= len(p.mem) {
		p.mem = append(p.mem, make([]vm.Cell, 256)...)
	}
	p.mem[p.pc] = v
	p.pc++
	if p.pc > p.size {
		p.size = p.pc
	}
}

// next returns the next token, skipping comments.
func (p *parser) next() (string, bool) {
	for tok := p.s.Scan(); tok != scanner.EOF; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.errorf(p.s.Position, "unexpected character %s", strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s != "(" {
			return s, true
		}
		pos := p.s.Position
		for {
			tok = p.s.Scan()
			if tok == scanner.EOF {
				p.errorf(pos, "unterminated comment")
				return "", false
			}
			if tok == scanner.Ident && p.s.TokenText() == ")" {
				break
			}
		}
	}
	return "", false
}

// literal converts s to an integer value. s can be a Go integer literal, a
// character literal or a constant name.
func (p *parser) literal(s string) (vm.Cell, bool) {
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return vm.Cell(n), true
	}
	if len(s) > 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		r, _, tail, err := strconv.UnquoteChar(s[1:len(s)-1], '\'')
		if err != nil || tail != "" {
			p.errorf(p.s.Position, "invalid character literal %s", s)
			return 0, true
		}
		return vm.Cell(r), true
	}
	if c, ok := p.consts[s]; ok {
		return vm.Cell(c.address), true
	}
	return 0, false
}

// value returns the value of s. If s is not a literal, it is assumed to be
// a label and the current pc is registered as a use site for that label.
func (p *parser) value(s string) vm.Cell {
	if v, ok := p.literal(s); ok {
		return v
	}
	lbl := p.labels[s]
	if lbl == nil {
		lbl = &label{labelSite{p.s.Position, -1}, nil}
		p.labels[s] = lbl
	}
	lbl.uses = append(lbl.uses, labelSite{p.s.Position, p.pc})
	return 0
}

func (p *parser) operand(s string) {
	mode := vm.Position
	switch s[0] {
	case '#':
		mode, s = vm.Immediate, s[1:]
	case '@':
		mode, s = vm.Relative, s[1:]
	}
	if s == "" {
		p.errorf(p.s.Position, "missing value after mode prefix")
		s = "0"
	}
	if mode == vm.Immediate && p.op.Writes() && p.arg == p.op.Arity()-1 {
		p.errorf(p.s.Position, "%s: immediate destination parameter", p.op)
	}
	p.mem[p.opAddr] += vm.Cell(mode) * modeScale[p.arg]
	p.write(p.value(s))
	p.arg++
}

func (p *parser) directive(s string) {
	pos := p.s.Position
	switch s {
	case ".org", ".dat":
		t, ok := p.next()
		if !ok {
			p.errorf(pos, "%s: missing argument", s)
			return
		}
		if s == ".dat" {
			p.write(p.value(t))
			return
		}
		v, ok := p.literal(t)
		if !ok || v < 0 {
			p.errorf(p.s.Position, ".org: invalid address %s", t)
			return
		}
		if v >= maxSize {
			p.errorf(p.s.Position, ".org: address %s out of range", t)
			return
		}
		p.pc = int(v)
	case ".equ":
		name, ok := p.next()
		if !ok {
			p.errorf(pos, ".equ: missing identifier")
			return
		}
		if l, ok := p.labels[name]; ok {
			p.errorf(p.s.Position, ".equ: redefinition of %s, previously defined/used as a label here: %s", name, l.pos)
			return
		}
		cpos := p.s.Position
		t, ok := p.next()
		if !ok {
			p.errorf(pos, ".equ: missing value")
			return
		}
		v, ok := p.literal(t)
		if !ok {
			p.errorf(p.s.Position, ".equ: invalid value %s", t)
			return
		}
		p.consts[name] = labelSite{cpos, int(v)}
	default:
		p.errorf(pos, "unknown directive %s", s)
	}
}

func (p *parser) defineLabel(n string) {
	pos := p.s.Position
	if len(n) == 0 {
		p.errorf(pos, "empty label name")
		return
	}
	if cst, ok := p.consts[n]; ok {
		p.errorf(pos, "label redefinition: %s, previously defined as a constant here: %s", n, cst.pos)
		return
	}
	if l, ok := p.labels[n]; ok {
		if l.address != -1 {
			p.errorf(pos, "label redefinition: %s, previous definition here: %s", n, l.pos)
			return
		}
		l.address = p.pc
		l.pos = pos
		return
	}
	p.labels[n] = &label{labelSite{pos, p.pc}, nil}
}

func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.errorf(s.Position, "%s", msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for s, ok := p.next(); ok; s, ok = p.next() {
		if p.arg < p.op.Arity() {
			p.operand(s)
			continue
		}
		switch s[0] {
		case ':':
			p.defineLabel(s[1:])
		case '.':
			p.directive(s)
		default:
			if op, ok := opcodeIndex[s]; ok {
				p.op, p.opAddr, p.arg = op, p.pc, 0
				p.write(vm.Cell(op))
				continue
			}
			// anything else is raw data
			p.write(p.value(s))
		}
	}
	if p.arg < p.op.Arity() {
		p.errorf(p.s.Pos(), "%s: expected %d parameters, got %d", p.op, p.op.Arity(), p.arg)
	}

	for n, l := range p.labels {
		if l.address == -1 {
			p.errorf(l.uses[0].pos, "undefined label %s", n)
			continue
		}
		for _, u := range l.uses {
			p.mem[u.address] = vm.Cell(l.address)
		}
	}

	if len(p.errs) > 0 {
		sort.SliceStable(p.errs, func(i, j int) bool { return p.errs[i].Pos.Offset < p.errs[j].Pos.Offset })
		return p.errs
	}
	return nil
}
