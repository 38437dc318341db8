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

// The intcode command line tool runs IntCode programs.
//
// Usage:
//
//	intcode [flags] [program]
//
//	-prog filename
//		  load program from file filename (the first non-flag argument may
//		  be used instead)
//	-asm
//		  the program file is assembly source (see package asm)
//	-disasm
//		  disassemble the program to stdout and exit
//	-in values
//		  comma separated list of values to add to the input queue (can be
//		  specified multiple times)
//	-ascii
//		  ASCII mode
//	-raw
//		  in ASCII mode, switch the terminal to raw mode
//	-maxmem int
//		  maximum memory size in cells (default 0, no limit)
//	-o filename
//		  save memory to filename after the program halts
//	-dump
//		  dump the VM state and memory to stdout after the program halts
//	-snapshot filename
//		  save the VM state to filename if input is exhausted
//	-resume filename
//		  resume the VM from a snapshot instead of loading a program
//	-config filename
//		  load default flag values from a TOML file
//	-trace
//		  print a disassembly of each executed instruction to stderr
//	-debug
//		  enable debug diagnostics
//
// Input:
//
// Values given with -in are queued before the program starts. When the program
// requests more input, intcode reads it from stdin. If stdin is a terminal,
// intcode displays a "? " prompt with line editing and history. Otherwise,
// values are read one line at a time; values on a line may be separated by
// commas or white space.
//
// If stdin runs out of input while the program waits for some, intcode fails
// with an "input exhausted" error, unless -snapshot is set, in which case it
// saves the VM state and exits normally. Run intcode with -resume to continue
// execution:
//
//	intcode -snapshot state.cbor prog.txt < part1.txt
//	intcode -resume state.cbor -snapshot state.cbor < part2.txt
//
// ASCII mode:
//
// In ASCII mode, output values in the range 0-127 are printed as characters,
// other values are printed as decimal numbers on their own line. Input is read
// from stdin one line at a time, each character of the line, including the
// trailing new line, being queued as a separate value. With -raw and a
// terminal on stdin, keystrokes are queued as they are typed, without echo.
// In raw mode, CTRL-D terminates input.
//
// Configuration file:
//
// The file given with -config uses flag names as keys. Values set on the
// command line take precedence:
//
//	prog = "day09.txt"
//	in = [2]
//	maxmem = 1048576
//
// -debug: on failure, print a full stacktrace and the VM state.
package main
