package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/langel/movieshell/internal/domain"
)

// TestTokenize tests splitting raw lines into name and argument
func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.CommandLine
	}{
		{name: "empty line", raw: "", want: domain.CommandLine{}},
		{name: "whitespace only", raw: " \t  ", want: domain.CommandLine{}},
		{name: "bare command", raw: "show", want: domain.CommandLine{Name: "show"}},
		{name: "command with argument", raw: "remove_by_id 12", want: domain.CommandLine{Name: "remove_by_id", Argument: "12"}},
		{name: "surrounding whitespace", raw: "  update   7  ", want: domain.CommandLine{Name: "update", Argument: "7"}},
		{name: "argument keeps inner spaces", raw: "execute_script my  script.txt", want: domain.CommandLine{Name: "execute_script", Argument: "my  script.txt"}},
		{name: "tab separator", raw: "execute_script\ta.txt", want: domain.CommandLine{Name: "execute_script", Argument: "a.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.Tokenize(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestCommandLineString(t *testing.T) {
	if got := domain.Tokenize("add").String(); got != "add" {
		t.Fatalf("expected add, got %q", got)
	}
	if got := domain.Tokenize(" execute_script  a.txt ").String(); got != "execute_script a.txt" {
		t.Fatalf("expected normalized line, got %q", got)
	}
}

func TestExecutionResultIsExit(t *testing.T) {
	if !domain.Exit().IsExit() {
		t.Fatal("exit result must terminate")
	}
	if domain.OK("exited").IsExit() {
		t.Fatal("plain message must not terminate")
	}
	if !(domain.ExecutionResult{Success: true, Message: "transcript", Terminate: true}).IsExit() {
		t.Fatal("terminate flag must terminate")
	}
}

func TestRecursionBudgetSetOnce(t *testing.T) {
	var budget domain.RecursionBudget
	budget.Set(3)
	budget.Set(7)
	if !budget.IsSet || budget.MaxDepth != 3 {
		t.Fatalf("expected budget fixed at 3, got %+v", budget)
	}
}

func TestValidBudget(t *testing.T) {
	for _, depth := range []int{0, 1, 500} {
		if !domain.ValidBudget(depth) {
			t.Errorf("expected %d to be valid", depth)
		}
	}
	for _, depth := range []int{-1, 501} {
		if domain.ValidBudget(depth) {
			t.Errorf("expected %d to be rejected", depth)
		}
	}
}
