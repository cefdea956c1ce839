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

var vmOpts cli.Options

var vmCmd = &cobra.Command{
	Use:   "vm sourceFile",
	Short: "Translate a .vm file into Hack assembly",
	Long: `Vm translates stack arithmetic and push/pop commands into Hack assembly.
The output always ends in a halt loop, even when translation fails part way.
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vmOpts.Input = args[0]
		exitCode = cli.Translate(vmOpts)
	},
}

func init() {
	vmCmd.Flags().StringVarP(&vmOpts.Output, "out", "o", "", "output file")

	rootCmd.AddCommand(vmCmd)
}
