package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/espalier/internal/catalog"
	"github.com/aretw0/espalier/pkg/demo"
)

func TestDoc_EmbeddedWriteUps(t *testing.T) {
	for _, name := range []string{"chain", "command", "statebox"} {
		doc, err := catalog.Doc(name)
		if err != nil {
			t.Fatalf("Doc(%s) failed: %v", name, err)
		}
		if !strings.Contains(doc, "espalier run "+name) {
			t.Errorf("Doc(%s) should mention how to run the demo", name)
		}
	}

	if _, err := catalog.Doc("missing"); !errors.Is(err, demo.ErrDemoNotFound) {
		t.Errorf("Expected ErrDemoNotFound, got: %v", err)
	}
}

func TestLoadScenario_ChainOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	content := []byte(`demo: chain
requests:
  - Meatball
  - Pinecone
`)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}

	scenario, err := catalog.LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	d, err := scenario.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var out bytes.Buffer
	if err := d.Run(context.Background(), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "Dog: Nom nom, a Meatball.") {
		t.Errorf("Expected the Dog to accept the Meatball, got:\n%s", output)
	}
	if !strings.Contains(output, "The Pinecone was left untouched.") {
		t.Errorf("Expected the Pinecone to go unhandled, got:\n%s", output)
	}
	if strings.Contains(output, "Nut") {
		t.Error("Default requests should be fully replaced")
	}
}

func TestLoadScenario_EmptyOverridesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte("demo: command\n"), 0644); err != nil {
		t.Fatal(err)
	}

	scenario, err := catalog.LoadScenario(path)
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}

	d, err := scenario.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	var out bytes.Buffer
	if err := d.Run(context.Background(), &out); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Say Hi!") {
		t.Errorf("Expected default greeting, got:\n%s", out.String())
	}
}

func TestLoadScenario_Errors(t *testing.T) {
	dir := t.TempDir()

	// Missing demo key
	noDemo := filepath.Join(dir, "no-demo.yaml")
	if err := os.WriteFile(noDemo, []byte("requests: [Nut]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.LoadScenario(noDemo); err == nil {
		t.Error("Expected an error for a scenario without a demo name")
	}

	// Unknown demo name surfaces the sentinel on Build
	unknown := &catalog.Scenario{Demo: "mediator"}
	if _, err := unknown.Build(); !errors.Is(err, demo.ErrDemoNotFound) {
		t.Errorf("Expected ErrDemoNotFound, got: %v", err)
	}

	// Unreadable file
	if _, err := catalog.LoadScenario(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}
