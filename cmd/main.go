// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

type config struct {
	wantDOSHeader bool
	wantNTHeader  bool
	wantSections  bool
	wantCLR       bool
}

func main() {

	var cfg config

	var dumpCmd = &cobra.Command{
		Use:   "dump [file or directory]",
		Short: "Dumps the file",
		Long:  "Dumps interesting structures of a Portable Executable file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			parse(args[0], cfg)
		},
	}

	dumpCmd.Flags().BoolVar(&cfg.wantDOSHeader, "dosheader", false, "Dump DOS header")
	dumpCmd.Flags().BoolVar(&cfg.wantNTHeader, "ntheader", false, "Dump NT header")
	dumpCmd.Flags().BoolVar(&cfg.wantSections, "sections", false, "Dump sections")
	dumpCmd.Flags().BoolVar(&cfg.wantCLR, "clr", false, "Dump CLR and .NET metadata")

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 1.3.0")
		},
	}

	var rootCmd = &cobra.Command{
		Use:   "clrdump",
		Short: "A Portable Executable and CLR metadata dumper",
		Long:  showHelp(),
	}

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func showHelp() string {
	return `
╔═╗╔═╗  ┌─┐┌─┐┬─┐┌─┐┌─┐┬─┐
╠═╝║╣   ├─┘├─┤├┬┘└─┐├┤ ├┬┘
╩  ╚═╝  ┴  ┴ ┴┴└─└─┘└─┘┴└─

A PE and ECMA-335 metadata dumper built for speed and malware-analysis in mind.`
}
