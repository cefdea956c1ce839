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
	"fmt"

	"github.com/lassandro/gohack/pkg/source"
)

type CommandType uint
type Operation uint
type Segment uint

// Command is one parsed line of VM code. Op is set for arithmetic commands,
// Segment and Index for push and pop.
type Command struct {
	Type     CommandType
	Position source.Cursor
	Op       Operation
	Segment  Segment
	Index    uint16
}

func (cmd Command) String() string {
	switch cmd.Type {
	case COMMAND_ARITHMETIC:
		return cmd.Op.String()
	case COMMAND_PUSH:
		return fmt.Sprintf("push %s %d", cmd.Segment, cmd.Index)
	case COMMAND_POP:
		return fmt.Sprintf("pop %s %d", cmd.Segment, cmd.Index)
	}

	return ""
}

func (op Operation) String() string {
	for name, value := range operations {
		if value == op {
			return name
		}
	}

	return "<invalid>"
}

func (seg Segment) String() string {
	for name, value := range segments {
		if value == seg {
			return name
		}
	}

	return "<invalid>"
}

type UnknownCommandError struct {
	Position source.Cursor
	Received string
}

func (err *UnknownCommandError) GetPosition() source.Cursor {
	return err.Position
}

func (err *UnknownCommandError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown command '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type MalformedCommandError struct {
	Position source.Cursor
	Received string
}

func (err *MalformedCommandError) GetPosition() source.Cursor {
	return err.Position
}

func (err *MalformedCommandError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Malformed command '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type UnknownSegmentError struct {
	Position source.Cursor
	Received string
}

func (err *UnknownSegmentError) GetPosition() source.Cursor {
	return err.Position
}

func (err *UnknownSegmentError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Unknown segment '%s'",
		err.Position.Line,
		err.Position.Column,
		err.Received,
	)
}

type InvalidIndexError struct {
	Position source.Cursor
	Segment  Segment
	Received string
}

func (err *InvalidIndexError) GetPosition() source.Cursor {
	return err.Position
}

func (err *InvalidIndexError) Error() string {
	return fmt.Sprintf(
		"%02d:%02d: Invalid index '%s' for segment %s",
		err.Position.Line,
		err.Position.Column,
		err.Received,
		err.Segment,
	)
}
