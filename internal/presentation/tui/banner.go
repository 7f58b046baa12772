package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner for Espalier.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Green-to-amber gradient, one branch per row
	s1 := termenv.String("                      _ _          ").Foreground(p.Color("#4ade80"))
	s2 := termenv.String("   ___  ___ _ __  ___| (_) ___ _ __").Foreground(p.Color("#86efac"))
	s3 := termenv.String("  / _ \\/ __| '_ \\/ _ \\ | |/ _ \\ '__|").Foreground(p.Color("#bef264"))
	s4 := termenv.String(" |  __/\\__ \\ |_) | (_| | |  __/ |  ").Foreground(p.Color("#fde047"))
	s5 := termenv.String("  \\___||___/ .__/\\__,_|_|_|\\___|_|  ").Foreground(p.Color("#fbbf24"))
	s6 := termenv.String("           |_|                      ").Foreground(p.Color("#f59e0b"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Printf("  patterns in training  ·  v%s\n", version)
	fmt.Println()
}
