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

const (
	INSTRUCTION_NONE InstructionType = iota
	INSTRUCTION_ADDRESS
	INSTRUCTION_COMPUTE
	INSTRUCTION_LABEL
)

// Destination bits, positioned as they are encoded (d1 d2 d3 = A D M)
const (
	DEST_NONE DestSet = 0
	DEST_M    DestSet = 1 << 0
	DEST_D    DestSet = 1 << 1
	DEST_A    DestSet = 1 << 2

	DEST_ALL = DEST_A | DEST_D | DEST_M
)

// Jump conditions, valued as they are encoded (j1 j2 j3 = < = >)
const (
	JUMP_NONE JumpType = iota
	JUMP_JGT
	JUMP_JEQ
	JUMP_JGE
	JUMP_JLT
	JUMP_JNE
	JUMP_JLE
	JUMP_JMP
)

const (
	SYMBOL_PREDEFINED SymbolKind = iota
	SYMBOL_LABEL
	SYMBOL_VARIABLE
)

const (
	// First address handed out to variables
	MEMSPACE_VARIABLES uint16 = 0x0010
	MEMSPACE_SCREEN    uint16 = 0x4000
	MEMSPACE_KEYBOARD  uint16 = 0x6000

	// Instruction memory holds 32K words
	ROM_SIZE = 1 << 15
)

// Compute instruction layout
// ---- [ 1 1 1 a c c c c c c d d d j j j ]
const (
	WORD_COMPUTE uint16 = 0b111 << 13
	WORD_MEMORY  uint16 = 1 << 12

	SHIFT_COMP = 6
	SHIFT_DEST = 3
)

// Placeholder standing for either A or M inside computation mnemonics
const compOperand = 'X'
