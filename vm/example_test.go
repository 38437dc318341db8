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

package vm_test

import (
	"fmt"
	"strings"

	"github.com/db47h/intcode/vm"
)

func ExampleInstance_Run() {
	// compares the input value with 8 and outputs 999 if below, 1000 if equal,
	// 1001 if above.
	const src = `3,21,1008,21,8,20,1005,20,22,107,8,21,20,1006,20,31,
		1106,0,36,98,0,0,1002,21,125,20,4,20,1105,1,46,104,
		999,1105,1,46,1101,1000,1,20,4,20,1105,1,46,98,99`

	prog, err := vm.Parse(strings.NewReader(src))
	if err != nil {
		panic(err)
	}

	for _, v := range []vm.Cell{7, 8, 9} {
		i, err := vm.New(prog, vm.Input(v))
		if err != nil {
			panic(err)
		}
		for {
			ev, err := i.Run()
			if err != nil {
				panic(err)
			}
			if ev.Kind == vm.Halt {
				break
			}
			fmt.Println(ev)
		}
	}

	// Output:
	// output(999)
	// output(1000)
	// output(1001)
}

func ExampleInstance_PushInput() {
	// two instances of the same program exchanging values: each reads a
	// value, outputs it incremented, and loops until it reads 10 or more.
	prog := []vm.Cell{
		3, 100, // in 100
		1007, 100, 10, 101, // lt 100 #10 101
		1006, 101, 18, // jf 101 #18
		101, 1, 100, 100, // add #1 100 100
		4, 100, // out 100
		1105, 1, 0, // jt #1 #0
		99, // hlt
	}

	ping, _ := vm.New(prog, vm.Input(0))
	pong, _ := vm.New(prog)
	a, b := ping, pong
	for {
		ev, err := a.Run()
		if err != nil {
			panic(err)
		}
		if ev.Kind == vm.Halt {
			break
		}
		if ev.Kind == vm.Output {
			fmt.Print(ev.Value, " ")
			b.PushInput(ev.Value)
		}
		a, b = b, a
	}
	fmt.Println()

	// Output:
	// 1 2 3 4 5 6 7 8 9 10
}
