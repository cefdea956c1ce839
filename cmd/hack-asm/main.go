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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/lassandro/gohack/internal/cli"
)

var helpvar bool
var debugvar bool
var strictvar bool
var symbolsvar bool
var outvar string

const usage = "hack-asm [-debug] [-strict] [-symbols] [-out outfile] filename"

func init() {
	cli.SetupLogging()
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&debugvar, "debug", false,
		"Writes a debugging table mapping instruction addresses to source "+
			"lines. The table uses the output filename with extension "+
			"'.hackdb'",
	)
	flag.BoolVar(
		&strictvar, "strict", false,
		"Rejects symbols that are neither labels nor predefined instead of "+
			"allocating them as variables",
	)
	flag.BoolVar(
		&symbolsvar, "symbols", false,
		"Prints the final symbol table to stderr",
	)
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	flag.Parse()
}

func hack_asm() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()

	var opts = cli.Options{
		Output:  outvar,
		Strict:  strictvar,
		Debug:   debugvar,
		Symbols: symbolsvar,
	}

	switch {
	case len(args) == 1:
		opts.Input = args[0]
	case len(args) == 0 && cli.StdinIsPiped():
	default:
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	return cli.Assemble(opts)
}

func main() {
	code := hack_asm()
	glog.Flush()
	os.Exit(code)
}
