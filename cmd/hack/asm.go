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

var asmOpts cli.Options

var asmCmd = &cobra.Command{
	Use:   "asm sourceFile",
	Short: "Assemble a .asm file into .hack machine code",
	Long: `Asm runs the two pass assembler. The first pass binds every (LABEL) to
the address of the instruction that follows it, the second encodes each
instruction as a 16 character line of binary, allocating variables from
address 16 upwards the first time they are referenced.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		asmOpts.Input = args[0]
		exitCode = cli.Assemble(asmOpts)
	},
}

func init() {
	flags := asmCmd.Flags()
	flags.StringVarP(&asmOpts.Output, "out", "o", "", "output file")
	flags.BoolVar(&asmOpts.Strict, "strict", false, "reject implicit variables")
	flags.BoolVar(&asmOpts.Debug, "debug", false, "write a .hackdb debug table")
	flags.BoolVar(&asmOpts.Symbols, "symbols", false, "print the symbol table to stderr")

	rootCmd.AddCommand(asmCmd)
}
