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
	"encoding/gob"
	"io"
)

// DebugInfo relates the words of an assembled program back to its source.
type DebugInfo struct {
	Source string
	Lines  map[uint16]int
	Labels map[uint16][]string
}

func NewDebugInfo(source string) *DebugInfo {
	return &DebugInfo{
		Source: source,
		Lines:  make(map[uint16]int),
		Labels: make(map[uint16][]string),
	}
}

func (debug *DebugInfo) addLabel(addr uint16, name string) {
	for _, label := range debug.Labels[addr] {
		if label == name {
			return
		}
	}

	debug.Labels[addr] = append(debug.Labels[addr], name)
}

func (debug *DebugInfo) Encode(w io.Writer) error {
	return gob.NewEncoder(w).Encode(debug)
}

func DecodeDebugInfo(r io.Reader) (*DebugInfo, error) {
	var debug DebugInfo

	if err := gob.NewDecoder(r).Decode(&debug); err != nil {
		return nil, err
	}

	return &debug, nil
}
