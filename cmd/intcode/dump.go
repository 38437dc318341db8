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
	"io"

	"github.com/db47h/intcode/internal/iox"
	"github.com/db47h/intcode/vm"
)

// dumpVM dumps the VM registers and memory to w. The first line contains the
// PC, relative base and instruction count, the second line the memory
// contents.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := iox.NewErrWriter(w)
	ew.WriteInt(int64(i.PC))
	ew.Write([]byte{' '})
	ew.WriteInt(int64(i.RelativeBase()))
	ew.Write([]byte{' '})
	ew.WriteInt(i.InstructionCount())
	ew.Write([]byte{'\n'})
	if ew.Err != nil {
		return ew.Err
	}
	return vm.Write(ew, i.Mem)
}
