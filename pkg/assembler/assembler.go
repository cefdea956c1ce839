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

// Package assembler translates Hack symbolic assembly into machine words.
package assembler

import (
	"errors"
	"io"

	"github.com/golang/glog"

	"github.com/lassandro/gohack/pkg/source"
)

// AssembleHackSource runs both passes over input. Labels are bound into
// table during the first pass and variables are allocated during the second.
// A nil table is replaced by a fresh one; debug may be nil.
//
// On failure no words are returned and errs holds every error found by the
// pass that failed.
func AssembleHackSource(input io.Reader, table *SymbolTable, debug *DebugInfo) (result []uint16, errs []error) {
	if table == nil {
		table = NewSymbolTable()
	}

	var program []Instruction
	var counter uint32 = 0
	var oversized bool = false

	scanner := source.NewScanner(input)

	// Pass 1:
	// - Parse every line
	// - Bind labels to the address of the next executable instruction
	for scanner.Scan() {
		inst, err := ParseInstruction(scanner.Text(), scanner.Cursor())

		if err != nil {
			errs = append(errs, err)
			continue
		}

		switch inst.Type {
		case INSTRUCTION_NONE:
			continue

		case INSTRUCTION_LABEL:
			if counter >= ROM_SIZE {
				oversized = true
				break
			}

			if err := table.Bind(inst.Symbol, uint16(counter)); err != nil {
				var conflict *SymbolConflictError

				if errors.As(err, &conflict) {
					errs = append(
						errs,
						&RedeclaredLabelError{
							inst.Position, inst.Symbol, conflict.Have,
						},
					)
				} else {
					errs = append(errs, err)
				}
			}

			if debug != nil {
				debug.addLabel(uint16(counter), inst.Symbol)
			}

		default:
			counter++
		}

		program = append(program, inst)
	}

	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}

	if counter > ROM_SIZE || oversized {
		errs = append(errs, &OversizedBinaryError{})
	}

	if len(errs) > 0 {
		return nil, errs
	}

	glog.V(1).Infof(
		"pass 1: %d instructions, %d symbols", counter, table.Len(),
	)

	// Pass 2:
	// - Encode instructions, allocating variables on first use
	result = make([]uint16, 0, counter)

	for i := range program {
		word, emit, err := Encode(&program[i], table)

		if err != nil {
			errs = append(errs, err)
			continue
		}

		if !emit {
			continue
		}

		if debug != nil {
			debug.Lines[uint16(len(result))] = program[i].Position.Line
		}

		result = append(result, word)
	}

	if len(errs) > 0 {
		return nil, errs
	}

	glog.V(1).Infof(
		"pass 2: %d words, %d symbols", len(result), table.Len(),
	)

	return result, nil
}
