package demo_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/aretw0/espalier/pkg/demo"
)

type stub struct {
	name string
}

func (s *stub) Name() string    { return s.name }
func (s *stub) Summary() string { return "stub demo " + s.name }

func (s *stub) Run(ctx context.Context, out io.Writer) error {
	fmt.Fprintln(out, s.name)
	return nil
}

func TestRegistry_GetAndList(t *testing.T) {
	reg := demo.NewRegistry()
	reg.Register(&stub{name: "command"})
	reg.Register(&stub{name: "chain"})
	reg.Register(&stub{name: "statebox"})

	// Lookup
	d, err := reg.Get("chain")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d.Name() != "chain" {
		t.Errorf("Expected demo 'chain', got '%s'", d.Name())
	}

	// Listing is sorted by name
	list := reg.List()
	if len(list) != 3 {
		t.Fatalf("Expected 3 demos, got %d", len(list))
	}
	expected := []string{"chain", "command", "statebox"}
	for i, want := range expected {
		if list[i].Name() != want {
			t.Errorf("List[%d]: expected '%s', got '%s'", i, want, list[i].Name())
		}
	}
}

func TestRegistry_NotFound(t *testing.T) {
	reg := demo.NewRegistry()

	_, err := reg.Get("missing")
	if err != demo.ErrDemoNotFound {
		t.Errorf("Expected ErrDemoNotFound, got: %v", err)
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	reg := demo.NewRegistry()
	first := &stub{name: "chain"}
	second := &stub{name: "chain"}
	reg.Register(first)
	reg.Register(second)

	d, err := reg.Get("chain")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if d != demo.Demo(second) {
		t.Error("Expected the second registration to win")
	}
	if len(reg.List()) != 1 {
		t.Errorf("Expected 1 demo after overwrite, got %d", len(reg.List()))
	}
}
