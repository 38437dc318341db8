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
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/intcode/vm"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src string
		mem C
		ok  bool
	}{
		{"1,0,0,0,99\n", C{1, 0, 0, 0, 99}, true},
		{" 1101, 100 ,-1,4,\t0 \r\n", C{1101, 100, -1, 4, 0}, true},
		{"+7", C{7}, true},
		{"", nil, true},
		{"  \n", nil, true},
		{"1,,2", nil, false},
		{"1,2,", nil, false},
		{"1;2", nil, false},
		{"99999999999999999999", nil, false},
	}
	for _, test := range tests {
		mem, err := vm.Parse(strings.NewReader(test.src))
		if (err == nil) != test.ok {
			t.Errorf("%q: unexpected error status: %v", test.src, err)
			continue
		}
		if test.ok {
			assertEqual(t, test.src, test.mem, C(mem))
		}
	}
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	if err := vm.Write(&b, C{109, -1, 0, 1125899906842624}); err != nil {
		t.Fatal(err)
	}
	assertEqual(t, "write", "109,-1,0,1125899906842624\n", b.String())
}

func TestSaveLoad(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "prog.txt")
	quine := C{109, 1, 204, -1, 1001, 100, 1, 100, 1008, 100, 16, 101, 1006, 101, 0, 99}
	if err := vm.Save(fileName, quine); err != nil {
		t.Fatalf("%+v", err)
	}
	mem, err := vm.Load(fileName)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	assertEqual(t, "load", quine, C(mem))

	if _, err = vm.Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error loading missing file")
	}
}
