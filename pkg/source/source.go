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

// Package source splits program text into lines and tracks where each line
// begins, so that parsers can attach positions to the errors they report.
package source

import (
	"bufio"
	"io"
)

// Cursor locates a token within a source stream. Line and Column are 1-based,
// Byte is the absolute offset of the token and LineByte the offset of the
// start of its line.
type Cursor struct {
	Line     int
	Column   int
	Byte     int64
	Size     int64
	LineByte int64
}

// At returns a cursor pointing at the given 1-based column of the line
// described by cur, spanning size bytes.
func (cur Cursor) At(column int, size int) Cursor {
	if column < 1 {
		column = 1
	}

	return Cursor{
		Line:     cur.Line,
		Column:   column,
		Byte:     cur.LineByte + int64(column-1),
		Size:     int64(size),
		LineByte: cur.LineByte,
	}
}

// TokenError is implemented by errors that point at a location in the input.
type TokenError interface {
	error
	GetPosition() Cursor
}

// Scanner reads a stream one line at a time.
type Scanner struct {
	scanner *bufio.Scanner
	cursor  Cursor
	next    int64
	advance int64
	line    string
}

func NewScanner(input io.Reader) *Scanner {
	s := &Scanner{
		scanner: bufio.NewScanner(input),
		cursor:  Cursor{Line: 0, Column: 1},
	}

	s.scanner.Split(s.scanLines)

	return s
}

// Same as bufio.ScanLines, but remembers how many bytes the line took up
// including its "\n" or "\r\n" terminator.
func (s *Scanner) scanLines(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanLines(data, atEOF)

	if advance > 0 {
		s.advance = int64(advance)
	}

	return advance, token, err
}

// Scan advances to the next line, returning false at the end of the input or
// on a read error.
func (s *Scanner) Scan() bool {
	if !s.scanner.Scan() {
		return false
	}

	s.line = s.scanner.Text()

	s.cursor.Line++
	s.cursor.Byte = s.next
	s.cursor.LineByte = s.next
	s.cursor.Size = int64(len(s.line))

	s.next += s.advance

	return true
}

// Text returns the current line without its terminator.
func (s *Scanner) Text() string {
	return s.line
}

// Cursor returns the position of the current line, spanning all of it.
func (s *Scanner) Cursor() Cursor {
	return s.cursor
}

func (s *Scanner) Err() error {
	return s.scanner.Err()
}
