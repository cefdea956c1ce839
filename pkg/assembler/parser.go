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
	"strings"
	"unicode"

	"github.com/lassandro/gohack/pkg/encoding"
	"github.com/lassandro/gohack/pkg/source"
)

var jumpMnemonics = map[string]JumpType{
	"JGT": JUMP_JGT,
	"JEQ": JUMP_JEQ,
	"JGE": JUMP_JGE,
	"JLT": JUMP_JLT,
	"JNE": JUMP_JNE,
	"JLE": JUMP_JLE,
	"JMP": JUMP_JMP,
}

// Every ordering of every non-empty subset of {A, D, M}
var destMnemonics = make(map[string]DestSet, 15)

func init() {
	registers := []struct {
		name byte
		bit  DestSet
	}{
		{'A', DEST_A},
		{'D', DEST_D},
		{'M', DEST_M},
	}

	var permute func(prefix []byte, set DestSet)
	permute = func(prefix []byte, set DestSet) {
		if len(prefix) > 0 {
			destMnemonics[string(prefix)] = set
		}

		for _, reg := range registers {
			if set&reg.bit == 0 {
				permute(append(prefix, reg.name), set|reg.bit)
			}
		}
	}

	permute(make([]byte, 0, len(registers)), DEST_NONE)
}

func isSymbolChar(char rune) bool {
	if char > unicode.MaxASCII {
		return false
	}

	switch {
	case unicode.IsLetter(char), unicode.IsDigit(char):
		return true
	case char == '_', char == '.', char == '$', char == ':':
		return true
	}

	return false
}

func isSymbol(s string) bool {
	if len(s) == 0 || unicode.IsDigit(rune(s[0])) {
		return false
	}

	for _, char := range s {
		if !isSymbolChar(char) {
			return false
		}
	}

	return true
}

// ParseInstruction classifies one line of assembly. Blank and comment-only
// lines produce an instruction of type INSTRUCTION_NONE.
func ParseInstruction(line string, position source.Cursor) (Instruction, error) {
	inst := Instruction{Type: INSTRUCTION_NONE, Position: position}

	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}

	start := strings.IndexFunc(line, func(r rune) bool { return !unicode.IsSpace(r) })

	if start < 0 {
		return inst, nil
	}

	inst.Position = position.At(
		start+1, len(strings.TrimRightFunc(line, unicode.IsSpace))-start,
	)

	text := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)

	var err error

	switch text[0] {
	case '@':
		err = parseAddress(&inst, text)
	case '(':
		err = parseLabel(&inst, text)
	default:
		err = parseCompute(&inst, text)
	}

	return inst, err
}

func parseAddress(inst *Instruction, text string) error {
	inst.Type = INSTRUCTION_ADDRESS
	operand := text[1:]

	if encoding.IsDecimal(operand) {
		value, err := encoding.DecodeInt(operand)

		if errors.Is(err, encoding.ErrOversizedLiteral) {
			return &OversizedLiteralError{
				inst.Position, encoding.MaxLiteral, operand,
			}
		} else if err != nil {
			return &MalformedInstructionError{inst.Position, text}
		}

		inst.Value = value
		return nil
	}

	if !isSymbol(operand) {
		return &MalformedInstructionError{inst.Position, text}
	}

	inst.Symbol = operand

	return nil
}

func parseLabel(inst *Instruction, text string) error {
	inst.Type = INSTRUCTION_LABEL

	if len(text) < 3 || text[len(text)-1] != ')' {
		return &MalformedInstructionError{inst.Position, text}
	}

	name := text[1 : len(text)-1]

	if !isSymbol(name) {
		return &MalformedInstructionError{inst.Position, text}
	}

	inst.Symbol = name

	return nil
}

// dest=comp;jump with dest and jump optional
func parseCompute(inst *Instruction, text string) error {
	inst.Type = INSTRUCTION_COMPUTE
	rest := text

	if i := strings.IndexByte(rest, ';'); i >= 0 {
		mnemonic := rest[i+1:]
		rest = rest[:i]

		jump, exists := jumpMnemonics[mnemonic]

		if !exists {
			return &UnknownMnemonicError{inst.Position, "jump", mnemonic}
		}

		inst.Jump = jump
	}

	if i := strings.IndexByte(rest, '='); i >= 0 {
		mnemonic := rest[:i]
		rest = rest[i+1:]

		dest, exists := destMnemonics[mnemonic]

		if !exists {
			return &UnknownMnemonicError{inst.Position, "dest", mnemonic}
		}

		inst.Dest = dest
	}

	if rest == "" {
		return &MalformedInstructionError{inst.Position, text}
	}

	inst.Comp.Memory = strings.ContainsRune(rest, 'M')
	inst.Comp.Mnemonic = strings.Map(func(r rune) rune {
		if r == 'A' || r == 'M' {
			return compOperand
		}
		return r
	}, rest)

	return nil
}
