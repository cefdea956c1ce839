// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package vm_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/machine"
	"github.com/lassandro/gohack/pkg/vm"
)

const stepLimit = 100000

type runCase struct {
	Name   string
	Input  string
	Memory map[uint16]uint16
	Want   map[uint16]uint16
}

// Translates, assembles and runs a program with the stack at 256
func run(t *testing.T, input string, memory map[uint16]uint16) *machine.Machine {
	t.Helper()

	var asm bytes.Buffer

	if err := vm.Translate(strings.NewReader(input), &asm); err != nil {
		t.Fatal(err)
	}

	words, errs := assembler.AssembleHackSource(&asm, nil, nil)

	if len(errs) > 0 {
		t.Fatal(errs[0])
	}

	var mc machine.Machine
	mc.Load(words)
	mc.State.Memory[0] = 256

	for addr, value := range memory {
		mc.State.Memory[addr] = value
	}

	if _, err := mc.Run(stepLimit); err != nil {
		t.Fatal(err)
	}

	return &mc
}

func testRun(t *testing.T, tests []runCase) {
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			mc := run(t, test.Input, test.Memory)

			for addr, want := range test.Want {
				if have := mc.State.Memory[addr]; have != want {
					t.Errorf(
						"Memory mismatch\nwant:%#04x (test.Want[%d])\nhave:%#04x",
						want,
						addr,
						have,
					)
				}
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	testRun(t, []runCase{
		{
			Name:  "Add",
			Input: "push constant 7\npush constant 3\nadd",
			Want:  map[uint16]uint16{0: 257, 256: 10},
		},
		{
			Name:  "Sub",
			Input: "push constant 10\npush constant 3\nsub",
			Want:  map[uint16]uint16{0: 257, 256: 7},
		},
		{
			Name:  "Sub negative",
			Input: "push constant 3\npush constant 10\nsub",
			Want:  map[uint16]uint16{0: 257, 256: 0xFFF9},
		},
		{
			Name:  "Neg",
			Input: "push constant 5\nneg",
			Want:  map[uint16]uint16{0: 257, 256: 0xFFFB},
		},
		{
			Name:  "And",
			Input: "push constant 12\npush constant 10\nand",
			Want:  map[uint16]uint16{0: 257, 256: 8},
		},
		{
			Name:  "Or",
			Input: "push constant 12\npush constant 10\nor",
			Want:  map[uint16]uint16{0: 257, 256: 14},
		},
		{
			Name:  "Not",
			Input: "push constant 0\nnot",
			Want:  map[uint16]uint16{0: 257, 256: 0xFFFF},
		},
		{
			Name: "Nested",
			Input: `// (2 + 3) - (4 - 1)
push constant 2
push constant 3
add
push constant 4
push constant 1
sub
sub`,
			Want: map[uint16]uint16{0: 257, 256: 2},
		},
	})
}

func TestComparison(t *testing.T) {
	testRun(t, []runCase{
		{
			Name:  "Eq true",
			Input: "push constant 5\npush constant 5\neq",
			Want:  map[uint16]uint16{0: 257, 256: 0xFFFF},
		},
		{
			Name:  "Eq false",
			Input: "push constant 5\npush constant 4\neq",
			Want:  map[uint16]uint16{0: 257, 256: 0},
		},
		{
			Name:  "Gt true",
			Input: "push constant 10\npush constant 3\ngt",
			Want:  map[uint16]uint16{0: 257, 256: 0xFFFF},
		},
		{
			Name:  "Gt false",
			Input: "push constant 3\npush constant 10\ngt",
			Want:  map[uint16]uint16{0: 257, 256: 0},
		},
		{
			Name:  "Lt true",
			Input: "push constant 3\npush constant 10\nlt",
			Want:  map[uint16]uint16{0: 257, 256: 0xFFFF},
		},
		{
			Name:  "Lt equal",
			Input: "push constant 3\npush constant 3\nlt",
			Want:  map[uint16]uint16{0: 257, 256: 0},
		},
		{
			Name: "Sequence",
			Input: `push constant 1
push constant 2
lt
push constant 2
push constant 1
lt
push constant 7
push constant 7
eq`,
			Want: map[uint16]uint16{0: 259, 256: 0xFFFF, 257: 0, 258: 0xFFFF},
		},
	})
}

func TestSegments(t *testing.T) {
	pointers := map[uint16]uint16{1: 300, 2: 400, 3: 3000, 4: 3010}

	testRun(t, []runCase{
		{
			Name: "Local and argument",
			Input: `push constant 42
pop local 2
push local 2
pop argument 1
push argument 1`,
			Memory: pointers,
			Want:   map[uint16]uint16{0: 257, 256: 42, 302: 42, 401: 42},
		},
		{
			Name: "This and that",
			Input: `push constant 5
pop this 6
push constant 9
pop that 0
push this 6
push that 0
add`,
			Memory: pointers,
			Want:   map[uint16]uint16{0: 257, 256: 14, 3006: 5, 3010: 9},
		},
		{
			Name: "Temp",
			Input: `push constant 8
pop temp 6
push temp 6`,
			Memory: pointers,
			Want:   map[uint16]uint16{0: 257, 256: 8, 11: 8},
		},
		{
			Name: "Pointer",
			Input: `push constant 3030
pop pointer 0
push constant 3040
pop pointer 1
push constant 1
pop this 0
push constant 2
pop that 0
push pointer 0`,
			Memory: pointers,
			Want: map[uint16]uint16{
				0: 257, 256: 3030, 3: 3030, 4: 3040, 3030: 1, 3040: 2,
			},
		},
		{
			Name: "Static",
			Input: `push constant 111
pop static 3
push static 3
push static 3
add`,
			Want: map[uint16]uint16{0: 257, 256: 222, 19: 111},
		},
	})
}

func TestTranslateEmpty(t *testing.T) {
	var buffer bytes.Buffer

	if err := vm.Translate(strings.NewReader("// nothing here\n\n"), &buffer); err != nil {
		t.Fatal(err)
	}

	if have := buffer.String(); have != trailer {
		t.Fatalf("Output mismatch\nwant:\n%s\nhave:\n%s", trailer, have)
	}
}

func TestTranslateUnknownCommand(t *testing.T) {
	var buffer bytes.Buffer

	err := vm.Translate(
		strings.NewReader("push constant 1\nlabel LOOP\npush constant 2\n"),
		&buffer,
	)

	unknown, ok := err.(*vm.UnknownCommandError)

	if !ok {
		t.Fatalf("Error of incorrect type\nwant:%T\nhave:%T", unknown, err)
	}

	if unknown.Position.Line != 2 || unknown.Received != "label" {
		t.Fatalf("Error mismatch\nwant:label at line 2\nhave:%v", unknown)
	}

	output := buffer.String()

	if strings.Contains(output, "push constant 2") {
		t.Fatal("Translation continued past the failing command")
	}

	if !strings.HasSuffix(output, trailer) || strings.Count(output, "(END)") != 1 {
		t.Fatalf("Output does not end in one trailer:\n%s", output)
	}
}

type failingWriter struct {
	limit int
}

var errWrite = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		n := w.limit
		w.limit = 0
		return n, errWrite
	}

	w.limit -= len(p)
	return len(p), nil
}

func TestTranslateWriteError(t *testing.T) {
	input := strings.Repeat("push constant 1\npush constant 2\nadd\n", 500)

	err := vm.Translate(strings.NewReader(input), &failingWriter{limit: 100})

	if !errors.Is(err, errWrite) {
		t.Fatalf("Error mismatch\nwant:%v\nhave:%v", errWrite, err)
	}
}
