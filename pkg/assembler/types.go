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
	"fmt"
	"strings"

	"github.com/lassandro/gohack/pkg/source"
)

type InstructionType uint
type DestSet uint8
type JumpType uint8
type SymbolKind uint

// Comp is a computation mnemonic with A and M replaced by a shared
// placeholder. Memory records whether the operand was M.
type Comp struct {
	Mnemonic string
	Memory   bool
}

// Instruction is one parsed line of assembly. Which fields are meaningful
// depends on Type: Value or Symbol for addresses, Symbol for labels and
// Dest, Comp and Jump for computations.
type Instruction struct {
	Type     InstructionType
	Position source.Cursor
	Value    uint16
	Symbol   string
	Dest     DestSet
	Comp     Comp
	Jump     JumpType
}

// Whether the instruction occupies a word of instruction memory
func (inst Instruction) Executable() bool {
	return inst.Type == INSTRUCTION_ADDRESS || inst.Type == INSTRUCTION_COMPUTE
}

func (inst Instruction) String() string {
	switch inst.Type {
	case INSTRUCTION_ADDRESS:
		if inst.Symbol != "" {
			return "@" + inst.Symbol
		}
		return fmt.Sprintf("@%d", inst.Value)
	case INSTRUCTION_LABEL:
		return "(" + inst.Symbol + ")"
	case INSTRUCTION_COMPUTE:
		var builder strings.Builder

		if inst.Dest != DEST_NONE {
			builder.WriteString(inst.Dest.String())
			builder.WriteByte('=')
		}

		operand := "A"
		if inst.Comp.Memory {
			operand = "M"
		}
		builder.WriteString(
			strings.ReplaceAll(inst.Comp.Mnemonic, string(compOperand), operand),
		)

		if inst.Jump != JUMP_NONE {
			builder.WriteByte(';')
			builder.WriteString(inst.Jump.String())
		}

		return builder.String()
	}

	return ""
}

// Canonical spelling, registers in A, D, M order
func (dest DestSet) String() string {
	var builder strings.Builder

	if dest&DEST_A != 0 {
		builder.WriteByte('A')
	}
	if dest&DEST_D != 0 {
		builder.WriteByte('D')
	}
	if dest&DEST_M != 0 {
		builder.WriteByte('M')
	}

	return builder.String()
}

func (jump JumpType) String() string {
	switch jump {
	case JUMP_JGT:
		return "JGT"
	case JUMP_JEQ:
		return "JEQ"
	case JUMP_JGE:
		return "JGE"
	case JUMP_JLT:
		return "JLT"
	case JUMP_JNE:
		return "JNE"
	case JUMP_JLE:
		return "JLE"
	case JUMP_JMP:
		return "JMP"
	}

	return ""
}

func (kind SymbolKind) String() string {
	switch kind {
	case SYMBOL_PREDEFINED:
		return "predefined"
	case SYMBOL_LABEL:
		return "label"
	case SYMBOL_VARIABLE:
		return "variable"
	}

	return "<invalid>"
}

type MalformedInstructionError struct {
	Position source.Cursor
	Received string
}

func (err *MalformedInstructionError) GetPosition() source.Cursor {
	return err.Position
}

func (err *MalformedInstructionError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Malformed instruction '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownMnemonicError struct {
	Position source.Cursor
	Field    string
	Received string
}

func (err *UnknownMnemonicError) GetPosition() source.Cursor {
	return err.Position
}

func (err *UnknownMnemonicError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown %s mnemonic '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Field,
		err.Received,
	)
}

type UnresolvedSymbolError struct {
	Position source.Cursor
	Received string
}

func (err *UnresolvedSymbolError) GetPosition() source.Cursor {
	return err.Position
}

func (err *UnresolvedSymbolError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unresolved symbol '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type VariableSpaceError struct {
	Position source.Cursor
	Received string
}

func (err *VariableSpaceError) GetPosition() source.Cursor {
	return err.Position
}

func (err *VariableSpaceError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: No variable address left for '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type OversizedLiteralError struct {
	Position source.Cursor
	Required uint16
	Received string
}

func (err *OversizedLiteralError) GetPosition() source.Cursor {
	return err.Position
}

func (err *OversizedLiteralError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Literal exceeds allowed size\n\twant:%d\n\thave:%s",
		err.Position.Line,
		err.Position.Column,
		err.Required,
		err.Received,
	)
}

type RedeclaredLabelError struct {
	Position source.Cursor
	Received string
	Address  uint16
}

func (err *RedeclaredLabelError) GetPosition() source.Cursor {
	return err.Position
}

func (err *RedeclaredLabelError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Redeclaration of label '%s' (already bound to %d)",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Address,
	)
}

type OversizedBinaryError struct{}

func (err *OversizedBinaryError) Error() string {
	return "Binary exceeds allowed size"
}
