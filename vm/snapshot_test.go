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
	"testing"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

func TestSnapshot(t *testing.T) {
	prog := C{109, 20, 203, 0, 204, 0, 203, 0, 204, 0, 99}
	i, err := vm.New(prog, vm.Input(7))
	if err != nil {
		t.Fatal(err)
	}
	ev, err := i.Run()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "first", vm.Event{Kind: vm.Output, Value: 7}, ev)
	if ev, _ = i.Run(); ev.Kind != vm.NeedInput {
		t.Fatalf("unexpected event %v", ev)
	}

	data, err := i.MarshalBinary()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	j, err := vm.New(nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = j.UnmarshalBinary(data); err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "pc", i.PC, j.PC)
	assertEqual(t, "mem", i.Mem, j.Mem)
	assertEqual(t, "relative base", vm.Cell(20), j.RelativeBase())
	assertEqual(t, "count", i.InstructionCount(), j.InstructionCount())

	// both instances now run independently
	i.PushInput(1)
	j.PushInput(2)
	for _, x := range []struct {
		i *vm.Instance
		v vm.Cell
	}{{i, 1}, {j, 2}} {
		out, err := drain(x.i)
		if err != nil {
			t.Fatalf("%+v", err)
		}
		assertEqual(t, "resumed", C{x.v}, out)
	}
}

func TestSnapshot_pendingInput(t *testing.T) {
	i, err := vm.New(C{3, 0, 4, 0, 99}, vm.Input(3, 4))
	if err != nil {
		t.Fatal(err)
	}
	data, err := i.MarshalBinary()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	j, _ := vm.New(nil)
	if err = j.UnmarshalBinary(data); err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "pending", 2, j.Pending())
	out, err := drain(j)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "output", C{3}, out)
}

func TestSnapshot_errors(t *testing.T) {
	i, _ := vm.New(C{42})
	if _, err := i.Run(); err == nil {
		t.Fatal("expected error")
	}
	if _, err := i.MarshalBinary(); err == nil {
		t.Error("snapshot of failed instance should fail")
	}

	i, _ = vm.New(make(C, 20))
	data, err := i.MarshalBinary()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	j, _ := vm.New(nil, vm.MaxMem(10))
	if err = j.UnmarshalBinary(data); errors.Cause(err) != vm.ErrMemLimit {
		t.Errorf("expected %v, got %v", vm.ErrMemLimit, err)
	}
	if err = j.UnmarshalBinary([]byte{0xff, 0x00}); err == nil {
		t.Error("expected decoding error")
	}
}
