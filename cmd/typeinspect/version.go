package main

import (
	"fmt"

	"github.com/andriiyaremenko/typeinspect"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of typeinspect",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "typeinspect version %s\n", typeinspect.Version)
		},
	}
}
