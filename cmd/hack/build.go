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
	"github.com/spf13/cobra"

	"github.com/lassandro/gohack/internal/cli"
)

var buildOpts cli.Options

var buildCmd = &cobra.Command{
	Use:   "build sourceFile",
	Short: "Translate and assemble a .vm file into .hack machine code",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		buildOpts.Input = args[0]
		exitCode = cli.Build(buildOpts)
	},
}

func init() {
	flags := buildCmd.Flags()
	flags.StringVarP(&buildOpts.Output, "out", "o", "", "output file")
	flags.BoolVar(&buildOpts.Debug, "debug", false, "write a .hackdb debug table")
	flags.BoolVar(&buildOpts.Symbols, "symbols", false, "print the symbol table to stderr")

	rootCmd.AddCommand(buildCmd)
}
