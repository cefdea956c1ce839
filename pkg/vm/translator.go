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

// Package vm translates stack machine commands into Hack assembly.
package vm

import (
	"io"

	"github.com/golang/glog"

	"github.com/lassandro/gohack/pkg/source"
)

// Translate converts every command in input and writes the assembly to
// output. It stops at the first error. The halt loop is written on every
// return path, including empty input and errors.
func Translate(input io.Reader, output io.Writer) (err error) {
	cw := NewCodeWriter(output)

	defer func() {
		if closeErr := cw.Close(); err == nil {
			err = closeErr
		}
	}()

	scanner := source.NewScanner(input)
	count := 0

	for scanner.Scan() {
		cmd, err := ParseCommand(scanner.Text(), scanner.Cursor())

		if err != nil {
			return err
		}

		if cmd.Type == COMMAND_NONE {
			continue
		}

		if err := cw.WriteCommand(&cmd); err != nil {
			return err
		}

		count++
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	glog.V(1).Infof(
		"translated %d commands, %d comparisons", count, cw.Labels(),
	)

	return nil
}
