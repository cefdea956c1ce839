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
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lassandro/gohack/pkg/source"
)

// Reporter prints diagnostics, quoting the offending source line when an
// error carries a position.
type Reporter struct {
	Name   string
	Source []byte
	Color  bool
	Out    io.Writer
}

func (r *Reporter) style(code, s string) string {
	if !r.Color {
		return s
	}

	return "\033[" + code + "m" + s + "\033[0m"
}

func (r *Reporter) line(cursor source.Cursor) (string, bool) {
	if cursor.LineByte < 0 || cursor.LineByte > int64(len(r.Source)) {
		return "", false
	}

	line := r.Source[cursor.LineByte:]

	if i := strings.IndexByte(string(line), '\n'); i >= 0 {
		line = line[:i]
	}

	return strings.TrimRight(string(line), "\r"), true
}

func (r *Reporter) Report(errs ...error) {
	prefix := r.style("1", r.Name+":")

	for _, err := range errs {
		var tokenErr source.TokenError

		if !errors.As(err, &tokenErr) {
			fmt.Fprintf(r.Out, "%s %s\n", prefix, err)
			continue
		}

		cursor := tokenErr.GetPosition()
		line, ok := r.line(cursor)

		if !ok {
			fmt.Fprintf(r.Out, "%s %s\n", prefix, err)
			continue
		}

		size := int(cursor.Size)
		if size < 1 {
			size = 1
		}

		column := cursor.Column
		if column < 1 {
			column = 1
		}

		underline := strings.Repeat(" ", column-1) +
			"^" + strings.Repeat("~", size-1)

		fmt.Fprintf(
			r.Out,
			"%s %s\n%s\n%s\n",
			prefix,
			err,
			line,
			r.style("31", underline),
		)
	}
}
