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

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/beevik/prefixtree/v2"
	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"

	"github.com/lassandro/gohack/pkg/assembler"
)

// DumpSymbols pretty prints the table. With queries, only the symbols named
// by each query are printed; a query may be any unambiguous prefix.
func DumpSymbols(w io.Writer, table *assembler.SymbolTable, queries []string, color bool) error {
	printer := pp.New()
	printer.SetColoringEnabled(color)

	entries := table.Entries()

	if len(queries) == 0 {
		_, err := printer.Fprintln(w, entries)
		return err
	}

	tree := prefixtree.New[assembler.Symbol]()

	for _, symbol := range entries {
		tree.Add(symbol.Name, symbol)
	}

	for _, query := range queries {
		var symbol assembler.Symbol

		if entry, exists := table.Symbol(query); exists {
			symbol = entry
		} else {
			var err error

			if symbol, err = tree.FindValue(query); err != nil {
				if _, err := fmt.Fprintf(w, "%s: %v\n", query, err); err != nil {
					return err
				}
				continue
			}
		}

		if _, err := printer.Fprintln(w, symbol); err != nil {
			return err
		}
	}

	return nil
}

// Symbols assembles the input without writing anything and prints its
// symbol table to stdout.
func Symbols(opts Options, queries []string) int {
	in, err := readInput(opts.Input)

	if err != nil {
		glog.Error(err)
		return 1
	}

	table := assembler.NewSymbolTable()
	table.Strict = opts.Strict

	if _, errs := assembler.AssembleHackSource(
		bytes.NewReader(in.Source), table, nil,
	); len(errs) > 0 {
		newReporter(in).Report(errs...)
		return 1
	}

	if err := DumpSymbols(os.Stdout, table, queries, isTerminal(os.Stdout.Fd())); err != nil {
		glog.Error(err)
		return 1
	}

	return 0
}
