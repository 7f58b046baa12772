// Package cli contains the glue between the cobra commands and the library.
package cli

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/catalog"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/presentation/tui"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Demo       string
	All        bool
	ScriptPath string
	Plain      bool
	Debug      bool
}

// Run handles the 'run' command logic.
func Run(ctx context.Context, opts RunOptions) error {
	logger := logging.New(logging.Level(opts.Debug))
	gallery := espalier.New(espalier.WithLogger(logger))

	if showBanner(opts.Plain) {
		tui.PrintBanner(espalier.Version)
	}

	// A scenario replaces the stock demo of the same name in the catalog.
	if opts.ScriptPath != "" {
		scenario, err := catalog.LoadScenario(opts.ScriptPath)
		if err != nil {
			return err
		}
		d, err := scenario.Build()
		if err != nil {
			return err
		}
		gallery.Register(d)
		if opts.Demo == "" {
			opts.Demo = scenario.Demo
		}
	}

	if opts.All {
		for _, d := range gallery.Demos() {
			fmt.Printf("--- %s ---\n", d.Name())
			if _, err := gallery.Run(ctx, d.Name(), os.Stdout); err != nil {
				return err
			}
			fmt.Println()
		}
		return nil
	}

	if opts.Demo == "" {
		return fmt.Errorf("no demo selected (try 'espalier list' or use --all)")
	}

	_, err := gallery.Run(ctx, opts.Demo, os.Stdout)
	return err
}

// showBanner reports whether the decorated banner should be printed:
// only on an interactive terminal and never in plain mode.
func showBanner(plain bool) bool {
	if plain {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}
