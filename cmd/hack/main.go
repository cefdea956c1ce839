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
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/lassandro/gohack/internal/cli"
)

var exitCode int

var rootCmd = &cobra.Command{
	Use:   "hack",
	Short: "Hack VM translator and assembler",
	Long: `Hack translates stack machine programs (.vm) into Hack assembly (.asm)
and assembles Hack assembly into machine code (.hack).

Each subcommand takes one input file and writes its output next to it,
replacing the extension, unless --out names another file.
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog reads its settings from the go flag set, which pflag has
		// already filled in; this only marks it as parsed
		return flag.CommandLine.Parse(nil)
	},
}

func init() {
	cli.SetupLogging()
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		exitCode = 1
	}

	glog.Flush()
	os.Exit(exitCode)
}
