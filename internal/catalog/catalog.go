package catalog

import (
	"embed"
	"fmt"

	"github.com/aretw0/espalier/pkg/demo"
)

//go:embed docs/*.md
var docsFS embed.FS

// Doc returns the markdown write-up for the named demo.
// Returns demo.ErrDemoNotFound for an unknown name.
func Doc(name string) (string, error) {
	raw, err := docsFS.ReadFile("docs/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("%w: %s", demo.ErrDemoNotFound, name)
	}
	return string(raw), nil
}
