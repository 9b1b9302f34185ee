package commands

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

type namedCommand struct {
	base
	reply string
}

func (c namedCommand) Apply(string) domain.ExecutionResult { return domain.OK(c.reply) }

func named(name, reply string) namedCommand {
	return namedCommand{base: base{name: name, usage: name}, reply: reply}
}

func names(reg *Registry) []string {
	var out []string
	for cmd := range reg.All() {
		out = append(out, cmd.Name())
	}
	return out
}

func TestRegistryKeepsRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	reg.Register("show", named("show", ""))
	reg.Register("add", named("add", ""))
	reg.Register("help", named("help", ""))

	want := []string{"show", "add", "help"}
	if diff := cmp.Diff(want, names(reg)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
	// the sequence is restartable
	if diff := cmp.Diff(want, names(reg)); diff != "" {
		t.Fatalf("second pass mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryReplace(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", named("a", "first"))
	reg.Register("b", named("b", ""))
	reg.Register("a", named("a", "second"))

	cmd, ok := reg.Lookup("a")
	if !ok {
		t.Fatal("lookup failed")
	}
	if got := cmd.Apply("").Message; got != "second" {
		t.Fatalf("expected replacement, got %q", got)
	}
	if reg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", reg.Len())
	}
	if diff := cmp.Diff([]string{"a", "b"}, names(reg)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryLookupMissing(t *testing.T) {
	reg := NewRegistry()
	if cmd, ok := reg.Lookup("nope"); ok || cmd != nil {
		t.Fatalf("expected no command, got %v", cmd)
	}
}

func TestRegistryAllStopsEarly(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", named("a", ""))
	reg.Register("b", named("b", ""))
	var seen []ports.Command
	for cmd := range reg.All() {
		seen = append(seen, cmd)
		break
	}
	if len(seen) != 1 {
		t.Fatalf("expected early stop, saw %d", len(seen))
	}
}
