package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/espalier/internal/catalog"
	"github.com/aretw0/espalier/internal/presentation/tui"
)

// Explain prints the embedded write-up for the named demo.
// Plain mode skips the markdown rendering.
func Explain(w io.Writer, name string, plain bool) error {
	doc, err := catalog.Doc(name)
	if err != nil {
		return err
	}

	if plain {
		fmt.Fprint(w, doc)
		return nil
	}

	render := tui.NewRenderer()
	rendered, err := render(doc)
	if err != nil {
		// Fall back to the raw markdown rather than failing the command.
		fmt.Fprint(w, doc)
		return nil
	}
	fmt.Fprint(w, rendered)
	return nil
}
