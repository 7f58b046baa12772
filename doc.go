/*
Package espalier is a runnable gallery of classic behavioral design patterns, built for teaching how object composition maps onto idiomatic Go.

Like branches trained on a lattice, each demonstration shapes a handful of cooperating types into a fixed, narrated form: Chain of Responsibility, Command, and a minimal shared-state container. Every demo is deterministic, side-effect free beyond console text, and runnable on its own.

# Concept

Espalier treats each pattern as a Demo: a named unit that writes a fixed narration to a writer. The Gallery holds the catalog, and the Runner executes a demo while recording a Transcript of its output. Hosts decide what to do with the transcript: print it, persist it, or expose it over HTTP.

# Key Features

  - Deterministic Demos: Given the same literals, the narration is always reproducible.
  - Hexagonal Architecture: Pattern logic is decoupled from presentation and persistence.
  - Transcripts: Every run is captured line by line under a unique run ID.
  - Lifecycle Hooks: Observability callbacks for run start, steps, and run end.

# Usage

Create a Gallery and run a demo by name:

	package main

	import (
		"context"
		"log"
		"os"

		"github.com/aretw0/espalier"
	)

	func main() {
		gallery := espalier.New()

		transcript, err := gallery.Run(context.Background(), "chain", os.Stdout)
		if err != nil {
			log.Fatal(err)
		}

		log.Printf("run %s produced %d lines", transcript.RunID, len(transcript.Lines))
	}
*/
package espalier
