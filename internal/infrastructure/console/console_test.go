package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/langel/movieshell/internal/domain"
)

func TestReaderSourceStripsBOMAndTerminators(t *testing.T) {
	src := NewReaderSource(strings.NewReader("\ufeffshow\r\nhelp\nexit"))

	want := []string{"show", "help", "exit"}
	for _, w := range want {
		if !src.HasMore() {
			t.Fatalf("expected more input before %q", w)
		}
		got, err := src.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine error: %v", err)
		}
		if got != w {
			t.Fatalf("got %q, want %q", got, w)
		}
	}
	if src.HasMore() {
		t.Fatal("expected source to be exhausted")
	}
	if _, err := src.ReadLine(); !errors.Is(err, domain.ErrEndOfInput) {
		t.Fatalf("expected ErrEndOfInput, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestReaderSourceDistinguishesFaults(t *testing.T) {
	src := NewReaderSource(failingReader{})
	_, err := src.ReadLine()
	if err == nil || errors.Is(err, domain.ErrEndOfInput) {
		t.Fatalf("expected an I/O fault, got %v", err)
	}
}

func TestConsoleSwitchesSources(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("from-console\n"), &out, &out, "")

	script := c.Wrap(strings.NewReader("first\nsecond\n"))
	c.SelectFile(script)
	if line, _ := c.ReadLine(); line != "first" {
		t.Fatalf("expected script line, got %q", line)
	}

	c.SelectConsole()
	if line, _ := c.ReadLine(); line != "from-console" {
		t.Fatalf("expected console line, got %q", line)
	}

	c.SelectFile(script)
	if c.Active() != script {
		t.Fatal("expected script to be active again")
	}
	if line, _ := c.ReadLine(); line != "second" {
		t.Fatalf("expected script to resume, got %q", line)
	}
	if c.HasMore() {
		t.Fatal("script should be exhausted")
	}
}

func TestConsolePrompt(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out, &out, "")
	c.Prompt()
	if out.String() != domain.DefaultPrompt {
		t.Fatalf("got %q", out.String())
	}
	if c.PromptString() != domain.DefaultPrompt {
		t.Fatalf("got %q", c.PromptString())
	}
	if c.Interactive() {
		t.Fatal("a strings.Reader is never a terminal")
	}
}

func TestConsolePrintError(t *testing.T) {
	var out, errOut bytes.Buffer
	c := New(strings.NewReader(""), &out, &errOut, "> ")
	c.PrintError("bad ", 42)
	if errOut.String() != "Error: bad 42\n" {
		t.Fatalf("got %q", errOut.String())
	}
	if out.Len() != 0 {
		t.Fatalf("stdout should be untouched, got %q", out.String())
	}
}
