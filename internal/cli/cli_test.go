package cli_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/espalier/internal/cli"
	"github.com/aretw0/espalier/pkg/demo"
)

func TestList_ShowsCatalog(t *testing.T) {
	var out bytes.Buffer
	if err := cli.List(&out); err != nil {
		t.Fatalf("List failed: %v", err)
	}

	for _, name := range []string{"chain", "command", "statebox"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("Expected listing to contain %q, got:\n%s", name, out.String())
		}
	}
}

func TestExplain_Plain(t *testing.T) {
	var out bytes.Buffer
	if err := cli.Explain(&out, "chain", true); err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	if !strings.Contains(out.String(), "# Chain of Responsibility") {
		t.Errorf("Expected raw markdown in plain mode, got:\n%s", out.String())
	}
}

func TestExplain_UnknownDemo(t *testing.T) {
	var out bytes.Buffer
	err := cli.Explain(&out, "flyweight", true)
	if !errors.Is(err, demo.ErrDemoNotFound) {
		t.Errorf("Expected ErrDemoNotFound, got: %v", err)
	}
}
