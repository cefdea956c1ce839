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
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/lassandro/gohack/pkg/assembler"
	"github.com/lassandro/gohack/pkg/encoding"
	"github.com/lassandro/gohack/pkg/vm"
)

func newReporter(in *input) *Reporter {
	return &Reporter{
		Name:   in.Name,
		Source: in.Source,
		Color:  ColorEnabled(),
		Out:    os.Stderr,
	}
}

func assemble(in *input, opts *Options, out string) int {
	table := assembler.NewSymbolTable()
	table.Strict = opts.Strict

	var debug *assembler.DebugInfo

	if opts.Debug {
		source := in.Path
		if source != "" {
			if abs, err := filepath.Abs(source); err == nil {
				source = abs
			}
		}
		debug = assembler.NewDebugInfo(source)
	}

	words, errs := assembler.AssembleHackSource(
		bytes.NewReader(in.Source), table, debug,
	)

	if len(errs) > 0 {
		newReporter(in).Report(errs...)
		return 1
	}

	if opts.Symbols {
		if err := DumpSymbols(os.Stderr, table, nil, ColorEnabled()); err != nil {
			glog.Errorf("Error printing symbol table: %v", err)
		}
	}

	{
		buffer := new(bytes.Buffer)

		if err := encoding.WriteWords(buffer, words); err != nil {
			glog.Errorf("Error writing output file: %v", err)
			return 1
		}

		if err := os.WriteFile(out, buffer.Bytes(), 0666); err != nil {
			glog.Errorf("Error writing output file: %v", err)
			return 1
		}
	}

	if debug != nil {
		filename := OutputPath(out, ".hackdb")

		file, err := os.Create(filename)

		if err != nil {
			glog.Errorf("Error creating debug table: %v", err)
			return 1
		}

		err = debug.Encode(file)

		if closeErr := file.Close(); err == nil {
			err = closeErr
		}

		if err != nil {
			glog.Errorf("Error writing debug table: %v", err)
			return 1
		}
	}

	glog.V(1).Infof("%s: wrote %d words to %s", in.Name, len(words), out)

	return 0
}

// Assemble turns a .asm file into a .hack file. It returns the process exit
// code.
func Assemble(opts Options) int {
	in, err := readInput(opts.Input)

	if err != nil {
		glog.Error(err)
		return 1
	}

	return assemble(in, &opts, opts.outputPath(in, ".hack", "out.hack"))
}

// Translates source into file and closes it. A translation error takes
// precedence over the error from Close.
func writeTranslation(source []byte, file io.WriteCloser) error {
	err := vm.Translate(bytes.NewReader(source), file)

	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	return err
}

// Translate turns a .vm file into a .asm file. It returns the process exit
// code. A failed translation still leaves a terminated .asm file behind.
func Translate(opts Options) int {
	in, err := readInput(opts.Input)

	if err != nil {
		glog.Error(err)
		return 1
	}

	out := opts.outputPath(in, ".asm", "out.asm")
	file, err := os.Create(out)

	if err != nil {
		glog.Errorf("Error creating output file: %v", err)
		return 1
	}

	if err := writeTranslation(in.Source, file); err != nil {
		newReporter(in).Report(err)
		return 1
	}

	glog.V(1).Infof("%s: wrote %s", in.Name, out)

	return 0
}

// Build translates a .vm file and assembles the result straight into a
// .hack file without writing the intermediate assembly.
func Build(opts Options) int {
	in, err := readInput(opts.Input)

	if err != nil {
		glog.Error(err)
		return 1
	}

	var asm bytes.Buffer

	if err := vm.Translate(bytes.NewReader(in.Source), &asm); err != nil {
		newReporter(in).Report(err)
		return 1
	}

	generated := &input{
		Name:   in.Name + " (generated)",
		Path:   in.Path,
		Source: asm.Bytes(),
	}

	return assemble(generated, &opts, opts.outputPath(in, ".hack", "out.hack"))
}
