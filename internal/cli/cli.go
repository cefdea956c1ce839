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

// Package cli holds the driver logic shared by the hack command line tools.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
)

var ErrNoInput = errors.New("No input file given and stdin is a terminal")

type Options struct {
	// Input path, empty to read stdin
	Input string

	// Output path, empty to derive it from Input
	Output string

	// Reject symbols that are neither labels nor predefined
	Strict bool

	// Write a .hackdb debug table next to the output
	Debug bool

	// Print the symbol table to stderr after assembling
	Symbols bool
}

// SetupLogging makes glog write to stderr unless the command line says
// otherwise. Call it before flag.Parse.
func SetupLogging() {
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Warningf("could not default logtostderr: %v", err)
	}
}

// OutputPath replaces the extension of input with ext.
func OutputPath(input, ext string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ext
}

// StdinIsPiped reports whether standard input is a file or a pipe.
func StdinIsPiped() bool {
	return !isTerminal(os.Stdin.Fd())
}

// ColorEnabled reports whether diagnostics on stderr may use ANSI escapes.
func ColorEnabled() bool {
	return isTerminal(os.Stderr.Fd())
}

type input struct {
	Name   string
	Path   string
	Source []byte
}

// Reads the named file, or all of stdin when path is empty and stdin is not
// a terminal.
func readInput(path string) (*input, error) {
	if path == "" {
		if !StdinIsPiped() {
			return nil, ErrNoInput
		}

		data, err := io.ReadAll(os.Stdin)

		if err != nil {
			return nil, err
		}

		return &input{Name: "<stdin>", Source: data}, nil
	}

	if stat, err := os.Stat(path); err != nil {
		return nil, err
	} else if stat.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	return &input{Name: filepath.Base(path), Path: path, Source: data}, nil
}

func (opts *Options) outputPath(in *input, ext, fallback string) string {
	if opts.Output != "" {
		return opts.Output
	}

	if in.Path == "" {
		return fallback
	}

	return OutputPath(in.Path, ext)
}
