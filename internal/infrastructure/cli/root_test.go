package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type run struct {
	out, errOut bytes.Buffer
	err         error
}

func execute(t *testing.T, input string, args ...string) *run {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MOVIESHELL_CONFIG", "")

	root, err := NewRootCmd(context.Background(), Options{})
	if err != nil {
		t.Fatalf("NewRootCmd: %v", err)
	}
	r := &run{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(&r.out)
	root.SetErr(&r.errOut)
	root.SetArgs(append([]string{"--config", filepath.Join(home, "config.yaml")}, args...))
	r.err = root.ExecuteContext(context.Background())
	return r
}

func TestRootRequiresDataFile(t *testing.T) {
	if r := execute(t, ""); r.err == nil {
		t.Fatal("missing data file argument must fail")
	}
}

func TestSessionLoadsAndSaves(t *testing.T) {
	data := filepath.Join(t.TempDir(), "movies.json")
	if err := os.WriteFile(data, []byte("[]"), 0o644); err != nil {
		t.Fatal(err)
	}
	form := "Stalker\n3\n10\n20\nfantasy\nR\nTarkovsky\n1.78\nblue\n1.5\n2\n3\nMoscow\n"
	r := execute(t, "add\n"+form+"save\nsum_of_oscar_count\nexit\n", "--no-history", data)
	if r.err != nil {
		t.Fatalf("session failed: %v\n%s", r.err, r.errOut.String())
	}
	out := r.out.String()
	for _, want := range []string{"Collection loaded successfully!", "Collection saved successfully!", "Sum of oscarsCount: 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	raw, _ := os.ReadFile(data)
	if !strings.Contains(string(raw), `"name": "Stalker"`) {
		t.Fatalf("data file not written:\n%s", raw)
	}
}

func TestSessionEndOfInputIsNotAnError(t *testing.T) {
	data := filepath.Join(t.TempDir(), "missing.json")
	r := execute(t, "show\n", "--no-history", data)
	if r.err != nil {
		t.Fatalf("end of input must end the session cleanly: %v", r.err)
	}
	errOut := r.errOut.String()
	if !strings.Contains(errOut, "Data file not found") || !strings.Contains(errOut, "No user input detected!") {
		t.Fatalf("unexpected error stream:\n%s", errOut)
	}
	if !strings.Contains(r.out.String(), "The collection is empty!") {
		t.Fatalf("unexpected output:\n%s", r.out.String())
	}
}

func TestSessionJournalsCommands(t *testing.T) {
	data := filepath.Join(t.TempDir(), "movies.json")
	r := execute(t, "info\nhistory\nexit\n", data)
	if r.err != nil {
		t.Fatalf("session failed: %v", r.err)
	}
	if !strings.Contains(r.out.String(), "ok     info") {
		t.Fatalf("history command did not list info:\n%s", r.out.String())
	}
}

func TestVersionCommand(t *testing.T) {
	r := execute(t, "", "version")
	if r.err != nil || !strings.Contains(r.out.String(), "movieshell version dev") {
		t.Fatalf("got %v:\n%s", r.err, r.out.String())
	}
}

func TestConfigCommand(t *testing.T) {
	r := execute(t, "", "config")
	if r.err != nil {
		t.Fatalf("config failed: %v", r.err)
	}
	if !strings.Contains(r.out.String(), "backend: sqlite") {
		t.Fatalf("unexpected config output:\n%s", r.out.String())
	}
}
