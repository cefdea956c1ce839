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

var symbolsOpts cli.Options

var symbolsCmd = &cobra.Command{
	Use:   "symbols sourceFile [prefix...]",
	Short: "Print the symbol table of a .asm file",
	Long: `Symbols assembles the file without writing any output and prints the
resulting symbol table. When prefixes are given only the matching symbols are
printed; each prefix must identify exactly one symbol.
`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		symbolsOpts.Input = args[0]
		exitCode = cli.Symbols(symbolsOpts, args[1:])
	},
}

func init() {
	symbolsCmd.Flags().BoolVar(&symbolsOpts.Strict, "strict", false, "reject implicit variables")

	rootCmd.AddCommand(symbolsCmd)
}
