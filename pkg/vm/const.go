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

const (
	COMMAND_NONE CommandType = iota
	COMMAND_ARITHMETIC
	COMMAND_PUSH
	COMMAND_POP
)

const (
	OP_INVALID Operation = iota
	OP_ADD
	OP_SUB
	OP_NEG
	OP_AND
	OP_OR
	OP_NOT
	OP_EQ
	OP_GT
	OP_LT
)

const (
	SEGMENT_INVALID Segment = iota
	SEGMENT_LOCAL
	SEGMENT_ARGUMENT
	SEGMENT_THIS
	SEGMENT_THAT
	SEGMENT_TEMP
	SEGMENT_POINTER
	SEGMENT_STATIC
	SEGMENT_CONSTANT
)

const (
	MEMSPACE_TEMP   uint16 = 5
	MEMSPACE_STATIC uint16 = 16

	// Largest value push constant can load
	MAX_CONSTANT = 1<<15 - 1
)

// Scratch registers. The top of the stack is popped into the second and the
// value beneath it into the first, so binary results read first op second.
const (
	REG_SCRATCH1 = "R14"
	REG_SCRATCH2 = "R13"
)

var operations = map[string]Operation{
	"add": OP_ADD,
	"sub": OP_SUB,
	"neg": OP_NEG,
	"and": OP_AND,
	"or":  OP_OR,
	"not": OP_NOT,
	"eq":  OP_EQ,
	"gt":  OP_GT,
	"lt":  OP_LT,
}

var segments = map[string]Segment{
	"local":    SEGMENT_LOCAL,
	"argument": SEGMENT_ARGUMENT,
	"this":     SEGMENT_THIS,
	"that":     SEGMENT_THAT,
	"temp":     SEGMENT_TEMP,
	"pointer":  SEGMENT_POINTER,
	"static":   SEGMENT_STATIC,
	"constant": SEGMENT_CONSTANT,
}
