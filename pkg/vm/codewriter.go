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

package vm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

var ErrClosed = errors.New("Code writer is closed")

var segmentBases = map[Segment]string{
	SEGMENT_LOCAL:    "LCL",
	SEGMENT_ARGUMENT: "ARG",
	SEGMENT_THIS:     "THIS",
	SEGMENT_THAT:     "THAT",
}

// CodeWriter emits Hack assembly for VM commands. Each writer numbers its
// comparison labels independently; Close appends the halt loop.
type CodeWriter struct {
	writer *bufio.Writer
	labels uint
	closed bool
	err    error
}

func NewCodeWriter(w io.Writer) *CodeWriter {
	return &CodeWriter{writer: bufio.NewWriter(w)}
}

// Number of comparisons written so far
func (cw *CodeWriter) Labels() uint {
	return cw.labels
}

func (cw *CodeWriter) emit(lines ...string) {
	for _, line := range lines {
		if cw.err != nil {
			return
		}

		if _, err := cw.writer.WriteString(line); err != nil {
			cw.err = err
		} else if err := cw.writer.WriteByte('\n'); err != nil {
			cw.err = err
		}
	}
}

// Rejects commands ParseCommand would never produce
func checkCommand(cmd *Command) error {
	switch cmd.Type {
	case COMMAND_ARITHMETIC:
		if cmd.Op < OP_ADD || cmd.Op > OP_LT {
			return fmt.Errorf("Invalid operation %d", cmd.Op)
		}
	case COMMAND_PUSH, COMMAND_POP:
		if cmd.Segment < SEGMENT_LOCAL || cmd.Segment > SEGMENT_CONSTANT {
			return fmt.Errorf("Invalid segment %d", cmd.Segment)
		}

		if cmd.Type == COMMAND_POP && cmd.Segment == SEGMENT_CONSTANT {
			return fmt.Errorf("Cannot pop to segment %s", cmd.Segment)
		}

		if !indexInRange(cmd.Segment, uint64(cmd.Index)) {
			return &InvalidIndexError{
				cmd.Position, cmd.Segment, strconv.Itoa(int(cmd.Index)),
			}
		}
	default:
		return &MalformedCommandError{cmd.Position, cmd.String()}
	}

	return nil
}

// WriteCommand emits the assembly for cmd, preceded by the command itself as
// a comment. Invalid commands are rejected before anything is written.
func (cw *CodeWriter) WriteCommand(cmd *Command) error {
	if cw.closed {
		return ErrClosed
	}

	if cmd.Type == COMMAND_NONE {
		return nil
	}

	if err := checkCommand(cmd); err != nil {
		return err
	}

	cw.emit("// " + cmd.String())

	var err error

	switch cmd.Type {
	case COMMAND_ARITHMETIC:
		err = cw.writeArithmetic(cmd.Op)
	case COMMAND_PUSH:
		err = cw.writePush(cmd.Segment, cmd.Index)
	case COMMAND_POP:
		err = cw.writePop(cmd.Segment, cmd.Index)
	}

	if err != nil {
		return err
	}

	return cw.err
}

// SP--, D = *SP, reg = D
func (cw *CodeWriter) popTo(reg string) {
	cw.emit("@SP", "M=M-1", "A=M", "D=M", "@"+reg, "M=D")
}

// *SP = D, SP++
func (cw *CodeWriter) pushD() {
	cw.emit("@SP", "A=M", "M=D", "@SP", "M=M+1")
}

// D = scratch1 <op> scratch2
func (cw *CodeWriter) binary(comp string) {
	cw.popTo(REG_SCRATCH2)
	cw.popTo(REG_SCRATCH1)
	cw.emit("@"+REG_SCRATCH1, "D=M", "@"+REG_SCRATCH2, "D="+comp)
}

func (cw *CodeWriter) compare(jump string) {
	n := cw.labels
	cw.labels++

	cw.binary("D-M")
	cw.emit(
		fmt.Sprintf("@TRUE%d", n),
		"D;"+jump,
		fmt.Sprintf("@FALSE%d", n),
		"0;JMP",
		fmt.Sprintf("(TRUE%d)", n),
		"D=-1",
		fmt.Sprintf("@NEXT%d", n),
		"0;JMP",
		fmt.Sprintf("(FALSE%d)", n),
		"D=0",
		fmt.Sprintf("(NEXT%d)", n),
	)
}

func (cw *CodeWriter) writeArithmetic(op Operation) error {
	switch op {
	case OP_ADD:
		cw.binary("D+M")
	case OP_SUB:
		cw.binary("D-M")
	case OP_AND:
		cw.binary("D&M")
	case OP_OR:
		cw.binary("D|M")
	case OP_NEG:
		cw.popTo(REG_SCRATCH2)
		cw.emit("@"+REG_SCRATCH2, "D=-M")
	case OP_NOT:
		cw.popTo(REG_SCRATCH2)
		cw.emit("@"+REG_SCRATCH2, "D=!M")
	case OP_EQ:
		cw.compare("JEQ")
	case OP_GT:
		cw.compare("JGT")
	case OP_LT:
		cw.compare("JLT")
	default:
		return fmt.Errorf("Invalid operation %d", op)
	}

	cw.pushD()

	return nil
}

// Loads the address of a fixed memory cell, if the segment has one
func directAddress(segment Segment, index uint16) (string, bool) {
	switch segment {
	case SEGMENT_TEMP:
		return strconv.Itoa(int(MEMSPACE_TEMP + index)), true
	case SEGMENT_STATIC:
		return strconv.Itoa(int(MEMSPACE_STATIC + index)), true
	case SEGMENT_POINTER:
		switch index {
		case 0:
			return "THIS", true
		case 1:
			return "THAT", true
		}
	}

	return "", false
}

func (cw *CodeWriter) writePush(segment Segment, index uint16) error {
	switch segment {
	case SEGMENT_CONSTANT:
		cw.emit("@"+strconv.Itoa(int(index)), "D=A")
	case SEGMENT_LOCAL, SEGMENT_ARGUMENT, SEGMENT_THIS, SEGMENT_THAT:
		cw.emit(
			"@"+strconv.Itoa(int(index)),
			"D=A",
			"@"+segmentBases[segment],
			"A=M+D",
			"D=M",
		)
	case SEGMENT_TEMP, SEGMENT_STATIC, SEGMENT_POINTER:
		addr, ok := directAddress(segment, index)

		if !ok {
			return fmt.Errorf("Invalid index %d for segment %s", index, segment)
		}

		cw.emit("@"+addr, "D=M")
	default:
		return fmt.Errorf("Invalid segment %d", segment)
	}

	cw.pushD()

	return nil
}

func (cw *CodeWriter) writePop(segment Segment, index uint16) error {
	switch segment {
	case SEGMENT_LOCAL, SEGMENT_ARGUMENT, SEGMENT_THIS, SEGMENT_THAT:
		cw.emit(
			"@"+strconv.Itoa(int(index)),
			"D=A",
			"@"+segmentBases[segment],
			"D=M+D",
			"@"+REG_SCRATCH2,
			"M=D",
		)
		cw.emit("@SP", "M=M-1", "A=M", "D=M")
		cw.emit("@"+REG_SCRATCH2, "A=M", "M=D")
	case SEGMENT_TEMP, SEGMENT_STATIC, SEGMENT_POINTER:
		addr, ok := directAddress(segment, index)

		if !ok {
			return fmt.Errorf("Invalid index %d for segment %s", index, segment)
		}

		cw.emit("@SP", "M=M-1", "A=M", "D=M")
		cw.emit("@"+addr, "M=D")
	case SEGMENT_CONSTANT:
		return fmt.Errorf("Cannot pop to segment %s", segment)
	default:
		return fmt.Errorf("Invalid segment %d", segment)
	}

	return nil
}

// Close writes the halt loop and flushes. It is safe to call more than once;
// the loop is only written the first time.
func (cw *CodeWriter) Close() error {
	if cw.closed {
		return cw.err
	}

	cw.closed = true
	cw.emit("// End of file", "(END)", "@END", "0;JMP")

	if err := cw.writer.Flush(); cw.err == nil {
		cw.err = err
	}

	return cw.err
}
