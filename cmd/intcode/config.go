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
	"flag"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

type cellList []vm.Cell

func (l *cellList) String() string {
	s := make([]string, len(*l))
	for k, v := range *l {
		s[k] = strconv.FormatInt(int64(v), 10)
	}
	return strings.Join(s, ",")
}

func (l *cellList) Set(s string) error {
	v, err := parseCells(s)
	if err != nil {
		return err
	}
	*l = append(*l, v...)
	return nil
}

func (l *cellList) Get() interface{} { return *l }

// parseCells parses a list of integers separated by commas or white space.
func parseCells(s string) ([]vm.Cell, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r' || r == '\n'
	})
	cells := make([]vm.Cell, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", f)
		}
		cells = append(cells, vm.Cell(n))
	}
	return cells, nil
}

type config struct {
	Prog     string   `toml:"prog"`
	Asm      bool     `toml:"asm"`
	Disasm   bool     `toml:"disasm"`
	In       cellList `toml:"in"`
	ASCII    bool     `toml:"ascii"`
	Raw      bool     `toml:"raw"`
	MaxMem   int      `toml:"maxmem"`
	Out      string   `toml:"o"`
	Dump     bool     `toml:"dump"`
	Snapshot string   `toml:"snapshot"`
	Resume   string   `toml:"resume"`
	Trace    bool     `toml:"trace"`
	Debug    bool     `toml:"debug"`
	file     string
}

func (c *config) setFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Prog, "prog", "", "load program from file `filename`")
	fs.BoolVar(&c.Asm, "asm", false, "the program file is assembly source")
	fs.BoolVar(&c.Disasm, "disasm", false, "disassemble the program to stdout and exit")
	fs.Var(&c.In, "in", "comma separated list of `values` to add to the input queue (can be specified multiple times)")
	fs.BoolVar(&c.ASCII, "ascii", false, "ASCII mode")
	fs.BoolVar(&c.Raw, "raw", false, "in ASCII mode, switch the terminal to raw mode")
	fs.IntVar(&c.MaxMem, "maxmem", 0, "maximum memory size in cells (0 = no limit)")
	fs.StringVar(&c.Out, "o", "", "save memory to `filename` after the program halts")
	fs.BoolVar(&c.Dump, "dump", false, "dump the VM state and memory to stdout after the program halts")
	fs.StringVar(&c.Snapshot, "snapshot", "", "save the VM state to `filename` if input is exhausted")
	fs.StringVar(&c.Resume, "resume", "", "resume the VM from snapshot `filename`")
	fs.StringVar(&c.file, "config", "", "load default flag values from TOML file `filename`")
	fs.BoolVar(&c.Trace, "trace", false, "print a disassembly of each executed instruction to stderr")
	fs.BoolVar(&c.Debug, "debug", false, "enable debug diagnostics")
}

// parse parses the command line arguments and loads the configuration file if
// any.
func (c *config) parse(fs *flag.FlagSet, args []string) error {
	c.setFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.Prog == "" && fs.NArg() > 0 {
		c.Prog = fs.Arg(0)
	}
	if c.file == "" {
		return nil
	}
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if c.Prog != "" {
		set["prog"] = true
	}
	return c.load(c.file, set)
}

// load loads the configuration file fileName. Values for keys in set are
// ignored.
func (c *config) load(fileName string, set map[string]bool) error {
	var fc config
	md, err := toml.DecodeFile(fileName, &fc)
	if err != nil {
		return errors.Wrapf(err, "%s: config load failed", fileName)
	}
	if u := md.Undecoded(); len(u) > 0 {
		keys := make([]string, len(u))
		for k := range u {
			keys[k] = u[k].String()
		}
		sort.Strings(keys)
		return errors.Errorf("%s: unknown configuration keys: %s", fileName, strings.Join(keys, ", "))
	}
	apply := func(key string, fn func()) {
		if md.IsDefined(key) && !set[key] {
			fn()
		}
	}
	apply("prog", func() { c.Prog = fc.Prog })
	apply("asm", func() { c.Asm = fc.Asm })
	apply("disasm", func() { c.Disasm = fc.Disasm })
	apply("in", func() { c.In = fc.In })
	apply("ascii", func() { c.ASCII = fc.ASCII })
	apply("raw", func() { c.Raw = fc.Raw })
	apply("maxmem", func() { c.MaxMem = fc.MaxMem })
	apply("o", func() { c.Out = fc.Out })
	apply("dump", func() { c.Dump = fc.Dump })
	apply("snapshot", func() { c.Snapshot = fc.Snapshot })
	apply("resume", func() { c.Resume = fc.Resume })
	apply("trace", func() { c.Trace = fc.Trace })
	apply("debug", func() { c.Debug = fc.Debug })
	return nil
}
