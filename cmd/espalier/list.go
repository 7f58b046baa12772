package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/cli"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the demos in the gallery",
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.List(os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
