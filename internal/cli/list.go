package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aretw0/espalier"
)

// List prints the demo catalog as an aligned table.
func List(w io.Writer) error {
	gallery := espalier.New()

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSUMMARY")
	for _, d := range gallery.Demos() {
		fmt.Fprintf(tw, "%s\t%s\n", d.Name(), d.Summary())
	}
	return tw.Flush()
}
