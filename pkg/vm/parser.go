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
	"strconv"
	"strings"
	"unicode"

	"github.com/lassandro/gohack/pkg/encoding"
	"github.com/lassandro/gohack/pkg/source"
)

type token struct {
	value  string
	column int
}

func tokenize(line string) []token {
	var tokens []token
	start := -1

	for i, char := range line {
		if unicode.IsSpace(char) {
			if start >= 0 {
				tokens = append(tokens, token{line[start:i], start + 1})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}

	if start >= 0 {
		tokens = append(tokens, token{line[start:], start + 1})
	}

	return tokens
}

// ParseCommand classifies one line of VM code. Blank and comment-only lines
// produce a command of type COMMAND_NONE.
func ParseCommand(line string, position source.Cursor) (Command, error) {
	cmd := Command{Type: COMMAND_NONE, Position: position}

	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}

	tokens := tokenize(line)

	if len(tokens) == 0 {
		return cmd, nil
	}

	first := tokens[0]
	last := tokens[len(tokens)-1]
	text := line[first.column-1 : last.column-1+len(last.value)]

	cmd.Position = position.At(first.column, len(text))

	switch first.value {
	case "push", "pop":
		if len(tokens) != 3 {
			return cmd, &MalformedCommandError{cmd.Position, text}
		}

		cmd.Type = COMMAND_PUSH
		if first.value == "pop" {
			cmd.Type = COMMAND_POP
		}

		segment, exists := segments[tokens[1].value]

		if !exists {
			return cmd, &UnknownSegmentError{
				position.At(tokens[1].column, len(tokens[1].value)),
				tokens[1].value,
			}
		}

		cmd.Segment = segment

		if cmd.Type == COMMAND_POP && segment == SEGMENT_CONSTANT {
			return cmd, &MalformedCommandError{cmd.Position, text}
		}

		index, ok := parseIndex(segment, tokens[2].value)

		if !ok {
			return cmd, &InvalidIndexError{
				position.At(tokens[2].column, len(tokens[2].value)),
				segment,
				tokens[2].value,
			}
		}

		cmd.Index = index

		return cmd, nil
	}

	if op, exists := operations[first.value]; exists {
		if len(tokens) != 1 {
			return cmd, &MalformedCommandError{cmd.Position, text}
		}

		cmd.Type = COMMAND_ARITHMETIC
		cmd.Op = op

		return cmd, nil
	}

	return cmd, &UnknownCommandError{
		position.At(first.column, len(first.value)), first.value,
	}
}

func parseIndex(segment Segment, s string) (uint16, bool) {
	if !encoding.IsDecimal(s) {
		return 0, false
	}

	index, err := strconv.ParseUint(s, 10, 16)

	if err != nil || !indexInRange(segment, index) {
		return 0, false
	}

	return uint16(index), true
}

// Every index ends up in an address instruction, directly or offset
func indexInRange(segment Segment, index uint64) bool {
	switch segment {
	case SEGMENT_TEMP:
		return index+uint64(MEMSPACE_TEMP) <= MAX_CONSTANT
	case SEGMENT_STATIC:
		return index+uint64(MEMSPACE_STATIC) <= MAX_CONSTANT
	case SEGMENT_POINTER:
		return index <= 1
	}

	return index <= MAX_CONSTANT
}
