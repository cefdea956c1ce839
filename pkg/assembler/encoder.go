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

package assembler

import (
	"errors"
	"strconv"

	"github.com/lassandro/gohack/pkg/encoding"
)

// ALU control bits (zx nx zy ny f no) keyed on the canonical mnemonic
var compTable = map[string]uint16{
	"0":   0b101010,
	"1":   0b111111,
	"-1":  0b111010,
	"D":   0b001100,
	"X":   0b110000,
	"!D":  0b001101,
	"!X":  0b110001,
	"-D":  0b001111,
	"-X":  0b110011,
	"D+1": 0b011111,
	"X+1": 0b110111,
	"D-1": 0b001110,
	"X-1": 0b110010,
	"D+X": 0b000010,
	"X+D": 0b000010,
	"D-X": 0b010011,
	"X-D": 0b000111,
	"D&X": 0b000000,
	"X&D": 0b000000,
	"D|X": 0b010101,
	"X|D": 0b010101,
}

// Encode renders an instruction as a machine word. Labels and blank lines
// produce no word, reported by emit being false. Symbolic addresses not yet
// in the table are allocated as variables.
func Encode(inst *Instruction, table *SymbolTable) (word uint16, emit bool, err error) {
	switch inst.Type {
	case INSTRUCTION_NONE, INSTRUCTION_LABEL:
		return 0, false, nil

	// @value |0|value                        |
	// ------ [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case INSTRUCTION_ADDRESS:
		if inst.Symbol == "" {
			if inst.Value > encoding.MaxLiteral {
				return 0, false, &OversizedLiteralError{
					inst.Position, encoding.MaxLiteral, inst.String()[1:],
				}
			}

			return inst.Value, true, nil
		}

		if table == nil {
			return 0, false, &UnresolvedSymbolError{inst.Position, inst.Symbol}
		}

		addr, err := table.AllocateVariable(inst.Symbol)

		if errors.Is(err, ErrVariablesFull) {
			return 0, false, &VariableSpaceError{inst.Position, inst.Symbol}
		} else if err != nil {
			return 0, false, &UnresolvedSymbolError{inst.Position, inst.Symbol}
		}

		// Symbols bound by the caller may lie outside the address range
		if addr > encoding.MaxLiteral {
			return 0, false, &OversizedLiteralError{
				inst.Position, encoding.MaxLiteral, strconv.Itoa(int(addr)),
			}
		}

		return addr, true, nil

	// d=c;j  |1 1 1|a|comp       |dest |jump |
	// ------ [ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ _ ]
	case INSTRUCTION_COMPUTE:
		comp, exists := compTable[inst.Comp.Mnemonic]

		if !exists {
			return 0, false, &UnknownMnemonicError{
				inst.Position, "comp", inst.Comp.Mnemonic,
			}
		}

		if inst.Dest&^DEST_ALL != 0 {
			return 0, false, &UnknownMnemonicError{
				inst.Position, "dest", inst.Dest.String(),
			}
		}

		if inst.Jump > JUMP_JMP {
			return 0, false, &UnknownMnemonicError{
				inst.Position, "jump", inst.Jump.String(),
			}
		}

		word = WORD_COMPUTE
		word |= comp << SHIFT_COMP
		word |= uint16(inst.Dest) << SHIFT_DEST
		word |= uint16(inst.Jump)

		if inst.Comp.Memory {
			word |= WORD_MEMORY
		}

		return word, true, nil
	}

	return 0, false, &MalformedInstructionError{inst.Position, inst.String()}
}
