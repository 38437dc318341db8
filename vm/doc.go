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

// Package vm implements an IntCode virtual machine.
//
// An IntCode program is a flat sequence of signed integers that serves both as
// code and data. The VM decodes and executes one instruction at a time and
// suspends execution whenever the program produces a value, halts, or needs
// input that has not been supplied yet. The caller then resumes it with
// another call to Run:
//
//	i, err := vm.New(prog, vm.Input(1))
//	if err != nil {
//		return err
//	}
//	for {
//		ev, err := i.Run()
//		if err != nil {
//			return err
//		}
//		switch ev.Kind {
//		case vm.Output:
//			fmt.Println(ev.Value)
//		case vm.NeedInput:
//			i.PushInput(nextValue())
//		case vm.Halt:
//			return nil
//		}
//	}
//
// Memory is unbounded: reading from or writing to an address past the end of
// the memory slice transparently grows it with zeroes. Use the MaxMem option
// to put an upper bound on memory growth.
//
// Any error returned by Step or Run is fatal: the instance must not be reused.
// Errors can be matched against the Err* values in this package with
// errors.Cause from github.com/pkg/errors.
package vm
