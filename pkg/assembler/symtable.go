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
	"fmt"
	"sort"

	"github.com/golang/glog"

	"github.com/lassandro/gohack/pkg/encoding"
)

var (
	ErrVariablesDisabled = errors.New("Implicit variables are disabled")
	ErrVariablesFull     = errors.New("No free variable addresses left")
)

type SymbolConflictError struct {
	Name string
	Have uint16
	Want uint16
}

func (err *SymbolConflictError) Error() string {
	return fmt.Sprintf(
		"Symbol '%s' is bound to %d, cannot rebind to %d",
		err.Name,
		err.Have,
		err.Want,
	)
}

type Symbol struct {
	Name    string
	Address uint16
	Kind    SymbolKind
}

// SymbolTable maps names to addresses for a single assembler run. Once a
// name is bound its address never changes.
type SymbolTable struct {
	// When set, AllocateVariable refuses names it has not seen before
	Strict bool

	symbols  map[string]Symbol
	variable uint16
}

func NewSymbolTable() *SymbolTable {
	st := &SymbolTable{
		symbols:  make(map[string]Symbol, 32),
		variable: MEMSPACE_VARIABLES,
	}

	st.predefine("SP", 0)
	st.predefine("LCL", 1)
	st.predefine("ARG", 2)
	st.predefine("THIS", 3)
	st.predefine("THAT", 4)
	st.predefine("SCREEN", MEMSPACE_SCREEN)
	st.predefine("KBD", MEMSPACE_KEYBOARD)

	for i := uint16(0); i < 16; i++ {
		st.predefine(fmt.Sprintf("R%d", i), i)
	}

	return st
}

func (st *SymbolTable) predefine(name string, addr uint16) {
	st.symbols[name] = Symbol{name, addr, SYMBOL_PREDEFINED}
}

func (st *SymbolTable) Lookup(name string) (uint16, bool) {
	symbol, exists := st.symbols[name]
	return symbol.Address, exists
}

func (st *SymbolTable) Symbol(name string) (Symbol, bool) {
	symbol, exists := st.symbols[name]
	return symbol, exists
}

// Bind associates a label with an address. Binding a name again to the
// address it already has is a no-op.
func (st *SymbolTable) Bind(name string, addr uint16) error {
	if symbol, exists := st.symbols[name]; exists {
		if symbol.Address != addr {
			return &SymbolConflictError{name, symbol.Address, addr}
		}

		return nil
	}

	st.symbols[name] = Symbol{name, addr, SYMBOL_LABEL}
	glog.V(2).Infof("label %s = %d", name, addr)

	return nil
}

// AllocateVariable returns the address of name, assigning it the next free
// variable address if it is not bound yet. Variables occupy 16 up to
// encoding.MaxLiteral; past that ErrVariablesFull is returned.
func (st *SymbolTable) AllocateVariable(name string) (uint16, error) {
	if symbol, exists := st.symbols[name]; exists {
		return symbol.Address, nil
	}

	if st.Strict {
		return 0, ErrVariablesDisabled
	}

	if st.variable > encoding.MaxLiteral {
		return 0, ErrVariablesFull
	}

	addr := st.variable
	st.symbols[name] = Symbol{name, addr, SYMBOL_VARIABLE}
	st.variable++
	glog.V(2).Infof("variable %s = %d", name, addr)

	return addr, nil
}

func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// Entries returns every symbol ordered by address, then name.
func (st *SymbolTable) Entries() []Symbol {
	entries := make([]Symbol, 0, len(st.symbols))

	for _, symbol := range st.symbols {
		entries = append(entries, symbol)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Address != entries[j].Address {
			return entries[i].Address < entries[j].Address
		}
		return entries[i].Name < entries[j].Name
	})

	return entries
}
