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

package vm

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// snapshot is the serialized state of an Instance.
type snapshot struct {
	PC     int    `cbor:"1,keyasint"`
	RB     Cell   `cbor:"2,keyasint"`
	Mem    []Cell `cbor:"3,keyasint"`
	Input  []Cell `cbor:"4,keyasint,omitempty"`
	Count  int64  `cbor:"5,keyasint"`
	Halted bool   `cbor:"6,keyasint,omitempty"`
}

var encMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("vm: failed to create CBOR enc mode: %v", err))
	}
	encMode = em
}

// MarshalBinary implements encoding.BinaryMarshaler. The returned data
// contains the complete VM state: memory, PC, relative base, pending input
// and instruction count. Options are not saved.
//
// A typical use is to save a program suspended on a NeedInput event and to
// resume it later.
func (i *Instance) MarshalBinary() ([]byte, error) {
	if i.err != nil {
		return nil, errors.Wrap(i.err, "cannot snapshot a failed instance")
	}
	b, err := encMode.Marshal(&snapshot{
		PC:     i.PC,
		RB:     i.rb,
		Mem:    i.Mem,
		Input:  i.input,
		Count:  i.insCount,
		Halted: i.halted,
	})
	return b, errors.Wrap(err, "snapshot encoding failed")
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. It replaces the
// state of i with the state saved by MarshalBinary. Options previously set on
// i are preserved.
func (i *Instance) UnmarshalBinary(data []byte) error {
	var s snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "snapshot decoding failed")
	}
	if s.PC < 0 {
		return errors.Wrapf(ErrAddress, "snapshot pc %d", s.PC)
	}
	if i.maxMem > 0 && len(s.Mem) > i.maxMem {
		return errors.Wrapf(ErrMemLimit, "snapshot size %d, limit %d cells", len(s.Mem), i.maxMem)
	}
	i.PC = s.PC
	i.rb = s.RB
	i.Mem = s.Mem
	i.input = s.Input
	i.insCount = s.Count
	i.halted = s.Halted
	i.err = nil
	return nil
}
