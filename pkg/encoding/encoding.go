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

package encoding

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Largest value an address instruction can load.
const MaxLiteral = 1<<15 - 1

// Number of characters in the text form of a word.
const WordWidth = 16

var (
	ErrInvalidLiteral   = errors.New("Invalid decimal literal")
	ErrOversizedLiteral = errors.New("Literal exceeds 15 bits")
	ErrInvalidWord      = errors.New("Invalid binary word")
)

// Decodes an unsigned base-10 string in the range 0-32767
func DecodeInt(s string) (uint16, error) {
	if !IsDecimal(s) {
		return 0, ErrInvalidLiteral
	}

	result, err := strconv.ParseUint(s, 10, 16)

	if err != nil || result > MaxLiteral {
		return 0, ErrOversizedLiteral
	}

	return uint16(result), nil
}

// Whether s consists only of decimal digits
func IsDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}

	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// Renders a word as 16 characters of '0' and '1', most significant bit first
func FormatWord(word uint16) string {
	return fmt.Sprintf("%016b", word)
}

// Parses the 16 character text form of a word
func ParseWord(s string) (uint16, error) {
	if len(s) != WordWidth {
		return 0, ErrInvalidWord
	}

	var word uint16

	for i := 0; i < WordWidth; i++ {
		word <<= 1

		switch s[i] {
		case '0':
		case '1':
			word |= 1
		default:
			return 0, ErrInvalidWord
		}
	}

	return word, nil
}

// Writes one word per line in text form
func WriteWords(w io.Writer, words []uint16) error {
	writer := bufio.NewWriter(w)

	for _, word := range words {
		if _, err := writer.WriteString(FormatWord(word)); err != nil {
			return err
		}

		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}

	return writer.Flush()
}

// Reads words written by WriteWords. Blank lines are ignored.
func ReadWords(r io.Reader) ([]uint16, error) {
	var words []uint16

	scanner := bufio.NewScanner(r)
	line := 0

	for scanner.Scan() {
		line++

		text := strings.TrimSpace(scanner.Text())

		if text == "" {
			continue
		}

		word, err := ParseWord(text)

		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		words = append(words, word)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}
