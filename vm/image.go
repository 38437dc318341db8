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
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Parse reads a program from r. The program must be a comma separated list of
// decimal integers. White space around values is ignored.
func Parse(r io.Reader) ([]Cell, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read failed")
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, nil
	}
	fields := bytes.Split(b, []byte{','})
	mem := make([]Cell, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseInt(string(bytes.TrimSpace(f)), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "cell %d", k)
		}
		mem[k] = Cell(v)
	}
	return mem, nil
}

// Load loads a program from file fileName.
func Load(fileName string) ([]Cell, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}
	defer f.Close()
	mem, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: load failed", fileName)
	}
	return mem, nil
}

// Write writes mem to w in the format expected by Parse, followed by a new
// line.
func Write(w io.Writer, mem []Cell) error {
	bw := bufio.NewWriter(w)
	var buf [24]byte
	for k, v := range mem {
		if k > 0 {
			bw.WriteByte(',')
		}
		bw.Write(strconv.AppendInt(buf[:0], int64(v), 10))
	}
	bw.WriteByte('\n')
	return errors.Wrap(bw.Flush(), "write failed")
}

// Save saves mem to file fileName. See Write.
func Save(fileName string, mem []Cell) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "create failed")
	}
	defer func() {
		if e := f.Close(); err == nil && e != nil {
			err = errors.Wrap(e, "close failed")
		}
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	return Write(f, mem)
}
