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

// Package asm provides utility functions to assemble and disassemble IntCode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm	params	description
//	------	---	------	-----------------------------------------------------------
//	1	add	a b d	store a+b at d
//	2	mul	a b d	store a*b at d
//	3	in	d	read a value from the input queue and store it at d
//	4	out	a	output a
//	5	jt	a t	jump to t if a != 0
//	6	jf	a t	jump to t if a == 0
//	7	lt	a b d	store 1 at d if a < b, 0 otherwise
//	8	eq	a b d	store 1 at d if a == b, 0 otherwise
//	9	arb	a	add a to the relative base
//	99	hlt		halt (also "halt")
//
// Parameters:
//
// A parameter is a value with an optional mode prefix:
//
//	42	position mode: the value at address 42
//	#42	immediate mode: the value 42
//	@-1	relative mode: the value at address relative base - 1
//
// The assembler computes the mode digits of the instruction word from the
// parameter prefixes, so that "mul #3 4 @5" compiles to 20102 3 4 5.
// Destination parameters cannot be immediate.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space:
//
//	( this is a valid comment )
//	(this is not )
//
// Literals and label/const identifiers:
//
// Input is split at white space into tokens. Where a value is expected, the
// parser does the following:
//
//	- If a token can be converted to a Go integer (see strconv.ParseInt), it will
//	  be converted to an integer literal.
//	- If it is a Go character literal between single quotes, it will be converted to
//	  the corresponding integer literal.
//	- If a token is the name of a defined constant, it will be replaced by the
//	  constant's value.
//	- Otherwise, the token is considered to be a label and will be replaced by
//	  the label's address.
//
// Where an instruction is expected, any token that is not a mnemonic, a label
// definition or a directive is compiled as a raw data cell. This allows mixing
// instructions with plain IntCode:
//
//	109 1 204 -1	( compiles as-is )
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:). Forward references are
// ok:
//
//	jt #1 #end	( jump to end )
//	:end	hlt
//
// Note that "jt #1 end" would jump to the address stored at end, not to end.
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value. The value must be an integer value, named constant
// or character literal.
//
//	.org <value>
//
// will place the next instruction at the address specified by the given integer
// literal or named constant.
//
//	.dat <value>
//
// will compile the specified value as-is. Labels are accepted.
package asm
