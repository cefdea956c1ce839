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

package machine_test

import (
	"os"
	"strings"
	"testing"

	"github.com/lassandro/gohack/pkg/machine"
)

type testMachineState struct {
	A       uint16
	D       uint16
	Program uint16
	Memory  map[uint16]uint16
}

type testCase struct {
	Name   string
	Steps  uint
	ROM    []uint16
	Input  testMachineState
	Output testMachineState
}

func testMachineSuccess(t *testing.T, test *testCase) {
	var mc machine.Machine

	mc.Load(test.ROM)
	mc.State.A = test.Input.A
	mc.State.D = test.Input.D
	mc.State.Program = test.Input.Program

	for addr, value := range test.Input.Memory {
		mc.State.Memory[addr] = value
	}

	if test.Steps == 0 {
		test.Steps = 1
	}

	for i := uint(0); i < test.Steps; i++ {
		mc.Step()
	}

	if mc.State.A != test.Output.A {
		t.Errorf(
			"A register mismatch\nwant:%#04x (test.Output.A)\nhave:%#04x",
			test.Output.A,
			mc.State.A,
		)
	}

	if mc.State.D != test.Output.D {
		t.Errorf(
			"D register mismatch\nwant:%#04x (test.Output.D)\nhave:%#04x",
			test.Output.D,
			mc.State.D,
		)
	}

	if mc.State.Program != test.Output.Program {
		t.Errorf(
			"Program register mismatch"+
				"\nwant:%#04x (test.Output.Program)\nhave:%#04x",
			test.Output.Program,
			mc.State.Program,
		)
	}

	for addr, want := range test.Output.Memory {
		if have := mc.State.Memory[addr]; have != want {
			t.Errorf(
				"Memory mismatch"+
					"\nwant:%#04x (test.Output.Memory[%#04x])\nhave:%#04x",
				want,
				addr,
				have,
			)
		}
	}
}

func testMachine(t *testing.T, tests []testCase) {
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			testMachineSuccess(t, &test)
		})
	}
}

func TestAddress(t *testing.T) {
	testMachine(t, []testCase{
		{
			Name:   "@5",
			ROM:    []uint16{0x0005},
			Output: testMachineState{A: 5, Program: 1},
		},
		{
			Name:   "@32767",
			ROM:    []uint16{0x7FFF},
			Output: testMachineState{A: 0x7FFF, Program: 1},
		},
		{
			Name:   "Unloaded",
			ROM:    []uint16{0x0005},
			Input:  testMachineState{A: 9, Program: 4},
			Output: testMachineState{A: 0, Program: 5},
		},
	})
}

func TestCompute(t *testing.T) {
	testMachine(t, []testCase{
		{
			Name:   "D=A",
			Steps:  2,
			ROM:    []uint16{0x0005, 0b1110_110000_010_000},
			Output: testMachineState{A: 5, D: 5, Program: 2},
		},
		{
			Name:   "D=D+A",
			ROM:    []uint16{0b1110_000010_010_000},
			Input:  testMachineState{A: 4, D: 3},
			Output: testMachineState{A: 4, D: 7, Program: 1},
		},
		{
			Name:   "D=-1",
			ROM:    []uint16{0b1110_111010_010_000},
			Output: testMachineState{D: 0xFFFF, Program: 1},
		},
		{
			Name:   "M=D",
			ROM:    []uint16{0b1110_001100_001_000},
			Input:  testMachineState{A: 100, D: 42},
			Output: testMachineState{
				A:       100,
				D:       42,
				Program: 1,
				Memory:  map[uint16]uint16{100: 42},
			},
		},
		{
			Name: "D=M",
			ROM:  []uint16{0b1111_110000_010_000},
			Input: testMachineState{
				A:      7,
				Memory: map[uint16]uint16{7: 0x1234},
			},
			Output: testMachineState{A: 7, D: 0x1234, Program: 1},
		},
		{
			Name: "AM=M-1",
			ROM:  []uint16{0b1111_110010_101_000},
			Input: testMachineState{
				Memory: map[uint16]uint16{0: 257},
			},
			Output: testMachineState{
				A:       256,
				Program: 1,
				Memory:  map[uint16]uint16{0: 256},
			},
		},
		{
			Name: "M=!M",
			ROM:  []uint16{0b1111_110001_001_000},
			Input: testMachineState{
				A:      50,
				Memory: map[uint16]uint16{50: 0x00FF},
			},
			Output: testMachineState{
				A:       50,
				Program: 1,
				Memory:  map[uint16]uint16{50: 0xFF00},
			},
		},
		{
			Name: "D=D-M",
			ROM:  []uint16{0b1111_010011_010_000},
			Input: testMachineState{
				A:      7,
				D:      3,
				Memory: map[uint16]uint16{7: 10},
			},
			Output: testMachineState{A: 7, D: 0xFFF9, Program: 1},
		},
		{
			Name: "D=D&M",
			ROM:  []uint16{0b1111_000000_010_000},
			Input: testMachineState{
				A:      7,
				D:      12,
				Memory: map[uint16]uint16{7: 10},
			},
			Output: testMachineState{A: 7, D: 8, Program: 1},
		},
		{
			Name: "D=D|M",
			ROM:  []uint16{0b1111_010101_010_000},
			Input: testMachineState{
				A:      7,
				D:      12,
				Memory: map[uint16]uint16{7: 10},
			},
			Output: testMachineState{A: 7, D: 14, Program: 1},
		},
	})
}

func TestJump(t *testing.T) {
	testMachine(t, []testCase{
		{
			Name:   "0;JMP",
			ROM:    []uint16{0b1110_101010_000_111},
			Input:  testMachineState{A: 10},
			Output: testMachineState{A: 10, Program: 10},
		},
		{
			Name:   "D;JGT taken",
			ROM:    []uint16{0b1110_001100_000_001},
			Input:  testMachineState{A: 10, D: 1},
			Output: testMachineState{A: 10, D: 1, Program: 10},
		},
		{
			Name:   "D;JGT not taken",
			ROM:    []uint16{0b1110_001100_000_001},
			Input:  testMachineState{A: 10, D: 0},
			Output: testMachineState{A: 10, D: 0, Program: 1},
		},
		{
			Name:   "D;JGT negative",
			ROM:    []uint16{0b1110_001100_000_001},
			Input:  testMachineState{A: 10, D: 0x8000},
			Output: testMachineState{A: 10, D: 0x8000, Program: 1},
		},
		{
			Name:   "D;JEQ",
			ROM:    []uint16{0b1110_001100_000_010},
			Input:  testMachineState{A: 10, D: 0},
			Output: testMachineState{A: 10, Program: 10},
		},
		{
			Name:   "D;JLT",
			ROM:    []uint16{0b1110_001100_000_100},
			Input:  testMachineState{A: 10, D: 0xFFFF},
			Output: testMachineState{A: 10, D: 0xFFFF, Program: 10},
		},
		{
			Name:   "D;JNE not taken",
			ROM:    []uint16{0b1110_001100_000_101},
			Input:  testMachineState{A: 10, D: 0},
			Output: testMachineState{A: 10, Program: 1},
		},
	})
}

func TestHalted(t *testing.T) {
	var mc machine.Machine

	// @2, 0;JMP, @2, 0;JMP
	mc.Load([]uint16{0x0002, 0b1110_101010_000_111, 0x0002, 0b1110_101010_000_111})

	if mc.Halted() {
		t.Fatal("Machine halted before reaching the loop")
	}

	steps, err := mc.Run(10)

	if err != nil {
		t.Fatal(err)
	}

	if steps != 2 || mc.State.Program != 2 {
		t.Fatalf(
			"Halt mismatch\nwant:2 steps at 2\nhave:%d steps at %d",
			steps,
			mc.State.Program,
		)
	}

	mc.Step()

	if !mc.Halted() {
		t.Fatal("Machine did not stay halted inside the loop")
	}
}

func TestStepLimit(t *testing.T) {
	var mc machine.Machine

	// @2, 0;JMP, @0, 0;JMP
	mc.Load([]uint16{0x0002, 0b1110_101010_000_111, 0x0000, 0b1110_101010_000_111})

	steps, err := mc.Run(100)

	limit, ok := err.(*machine.StepLimitError)

	if !ok {
		t.Fatalf("Error of incorrect type\nwant:%T\nhave:%T", limit, err)
	}

	if steps != 100 || limit.Limit != 100 {
		t.Fatalf("Step mismatch\nwant:100\nhave:%d", steps)
	}
}

func TestLoadHack(t *testing.T) {
	var mc machine.Machine

	file, err := os.Open("../assembler/testdata/Sum.hack")

	if err != nil {
		t.Fatal(err)
	}

	defer file.Close()

	if err := mc.LoadHack(file); err != nil {
		t.Fatal(err)
	}

	if _, err := mc.Run(10000); err != nil {
		t.Fatal(err)
	}

	// i and sum are the first two variables
	if have := mc.State.Memory[17]; have != 5050 {
		t.Fatalf("Sum mismatch\nwant:5050\nhave:%d", have)
	}
}

func TestLoadHackInvalid(t *testing.T) {
	var mc machine.Machine

	err := mc.LoadHack(strings.NewReader("0000000000000001\n00000000000000x1\n"))

	if err == nil {
		t.Fatal("Invalid word was accepted")
	}
}

func TestLoadResets(t *testing.T) {
	var mc machine.Machine

	mc.State.D = 5
	mc.State.Memory[300] = 7
	mc.Load([]uint16{0x0001})

	if mc.State.D != 0 || mc.State.Memory[300] != 0 || len(mc.ROM) != 1 {
		t.Fatal("Load did not reset the machine")
	}
}

func TestPeek(t *testing.T) {
	var mc machine.Machine

	mc.State.Memory[0] = 258
	mc.State.Memory[257] = 0xBEEF

	if have := mc.Peek(); have != 0xBEEF {
		t.Fatalf("Peek mismatch\nwant:%#04x\nhave:%#04x", 0xBEEF, have)
	}
}
