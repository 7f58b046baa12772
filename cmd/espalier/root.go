package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "Espalier is a runnable gallery of classic design patterns",
	Long:  `Espalier trains classic behavioral design patterns into small, narrated console demos: Chain of Responsibility, Command, and a state container.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("plain", false, "Disable banner and markdown rendering")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
}
