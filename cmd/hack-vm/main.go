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
var outvar string

const usage = "hack-vm [-out outfile] filename"

func init() {
	cli.SetupLogging()
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	flag.Parse()
}

func hack_vm() int {
	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	args := flag.Args()
	opts := cli.Options{Output: outvar}

	switch {
	case len(args) == 1:
		opts.Input = args[0]
	case len(args) == 0 && cli.StdinIsPiped():
	default:
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}

	return cli.Translate(opts)
}

func main() {
	code := hack_vm()
	glog.Flush()
	os.Exit(code)
}
