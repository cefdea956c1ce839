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

// Package machine executes Hack machine code. It implements just enough of
// the CPU to check what assembled programs leave in memory.
package machine

import (
	"io"

	"github.com/lassandro/gohack/pkg/encoding"
)

func (ms *MachineState) Reset() {
	ms.A = 0
	ms.D = 0
	ms.Program = 0

	for i := range ms.Memory {
		ms.Memory[i] = 0x0000
	}
}

// LoadHack resets the machine and loads a program in .hack text form.
func (mc *Machine) LoadHack(reader io.Reader) error {
	words, err := encoding.ReadWords(reader)

	if err != nil {
		return err
	}

	mc.Load(words)

	return nil
}

func (mc *Machine) Load(words []uint16) {
	mc.State.Reset()
	mc.ROM = append(mc.ROM[:0], words...)
}

func (mc *Machine) fetch(addr uint16) uint16 {
	if int(addr) >= len(mc.ROM) {
		// Unloaded instruction memory reads as @0
		return 0
	}

	return mc.ROM[addr]
}

func (mc *Machine) read(addr uint16) uint16 {
	return mc.State.Memory[addr%MEMORY_SIZE]
}

func (mc *Machine) write(addr uint16, value uint16) {
	mc.State.Memory[addr%MEMORY_SIZE] = value
}

func alu(x, y, control uint16) uint16 {
	if control&ALU_ZX != 0 {
		x = 0
	}
	if control&ALU_NX != 0 {
		x = ^x
	}
	if control&ALU_ZY != 0 {
		y = 0
	}
	if control&ALU_NY != 0 {
		y = ^y
	}

	var out uint16

	if control&ALU_F != 0 {
		out = x + y
	} else {
		out = x & y
	}

	if control&ALU_NO != 0 {
		out = ^out
	}

	return out
}

func (mc *Machine) Step() {
	instruction := mc.fetch(mc.State.Program)

	// @value |0|value                        |
	// ------ [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	if instruction&BIT_COMPUTE == 0 {
		mc.State.A = instruction
		mc.State.Program++
		return
	}

	// d=c;j  |1 1 1|a|comp       |dest |jump |
	// ------ [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	y := mc.State.A
	if instruction&BIT_MEMORY != 0 {
		y = mc.read(mc.State.A)
	}

	out := alu(mc.State.D, y, (instruction>>6)&0x3F)
	addr := mc.State.A

	if instruction&DEST_M != 0 {
		mc.write(addr, out)
	}
	if instruction&DEST_A != 0 {
		mc.State.A = out
	}
	if instruction&DEST_D != 0 {
		mc.State.D = out
	}

	value := int16(out)
	jump := (instruction&JUMP_LT != 0 && value < 0) ||
		(instruction&JUMP_EQ != 0 && value == 0) ||
		(instruction&JUMP_GT != 0 && value > 0)

	if jump {
		mc.State.Program = addr
	} else {
		mc.State.Program++
	}
}

// Halted reports whether the machine sits in an @n, 0;JMP loop where n is
// the address of the @n instruction itself.
func (mc *Machine) Halted() bool {
	pc := mc.State.Program
	instruction := mc.fetch(pc)

	if instruction == pc && instruction&BIT_COMPUTE == 0 {
		return mc.fetch(pc+1) == INSTRUCTION_JUMP
	}

	if instruction == INSTRUCTION_JUMP && pc > 0 {
		return mc.State.A == pc-1 && mc.fetch(pc-1) == pc-1
	}

	return false
}

// Run steps until the machine halts, returning the number of steps taken.
func (mc *Machine) Run(limit uint) (uint, error) {
	var steps uint

	for !mc.Halted() {
		if steps >= limit {
			return steps, &StepLimitError{limit, mc.State.Program}
		}

		mc.Step()
		steps++
	}

	return steps, nil
}

// Value on top of the stack whose pointer is kept at SP
func (mc *Machine) Peek() uint16 {
	return mc.read(mc.read(0) - 1)
}
