package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [demo]",
	Short: "Run a pattern demonstration",
	Long:  `Runs the named demo (chain, command, statebox) and prints its narration. Use --all to run the whole gallery, or --script to feed a YAML scenario.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.RunOptions{}
		if len(args) > 0 {
			opts.Demo = args[0]
		}
		opts.All, _ = cmd.Flags().GetBool("all")
		opts.ScriptPath, _ = cmd.Flags().GetString("script")
		opts.Plain, _ = cmd.Flags().GetBool("plain")
		opts.Debug, _ = cmd.Flags().GetBool("debug")

		if err := cli.Run(cmd.Context(), opts); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("all", false, "Run every demo in the gallery")
	runCmd.Flags().String("script", "", "Path to a YAML scenario overriding a demo's literals")

	// Make 'run' the default if no command is provided
	rootCmd.Run = runCmd.Run
	rootCmd.Args = runCmd.Args
}
