package espalier_test

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/espalier"
)

// This example runs the command demo headlessly and inspects the transcript.
// This is useful for embedding the gallery in hosts that manage their own output.
func Example() {
	gallery := espalier.New()

	transcript, err := gallery.Run(context.Background(), "command", io.Discard)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(transcript.Demo)
	fmt.Println(transcript.Lines[0])
	// Output:
	// command
	// Invoker: Does anybody want something done before I begin?
}
