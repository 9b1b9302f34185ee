// Package console implements the line source multiplexer: reads come either
// from the interactive stream or from the script currently being replayed.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

// Console implements ports.Console over an input stream and two writers.
type Console struct {
	stdin  *ReaderSource
	file   ports.LineSource
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	prompt string
}

// New constructs a console. Nil streams default to stdio and an empty
// prompt to domain.DefaultPrompt.
func New(in io.Reader, out, errOut io.Writer, prompt string) *Console {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	if prompt == "" {
		prompt = domain.DefaultPrompt
	}
	return &Console{
		stdin:  NewReaderSource(in),
		in:     in,
		out:    out,
		errOut: errOut,
		prompt: prompt,
	}
}

// ReadLine implements ports.LineSource on whichever source is selected.
func (c *Console) ReadLine() (string, error) {
	return c.Active().ReadLine()
}

// HasMore implements ports.LineSource on whichever source is selected.
func (c *Console) HasMore() bool {
	return c.Active().HasMore()
}

// SelectFile routes reads to src. Selecting the same source again resumes
// it where it stopped.
func (c *Console) SelectFile(src ports.LineSource) {
	c.file = src
}

// SelectConsole routes reads back to the interactive stream.
func (c *Console) SelectConsole() {
	c.file = nil
}

// Active returns the selected source.
func (c *Console) Active() ports.LineSource {
	if c.file != nil {
		return c.file
	}
	return c.stdin
}

// Wrap builds a script source over r.
func (c *Console) Wrap(r io.Reader) ports.LineSource {
	return NewReaderSource(r)
}

// Prompt writes the prompt marker. It is only meaningful interactively.
func (c *Console) Prompt() {
	c.Print(c.prompt)
}

// PromptString returns the prompt marker, used to prefix echoed script lines.
func (c *Console) PromptString() string {
	return c.prompt
}

func (c *Console) Print(a ...any) {
	fmt.Fprint(c.out, a...)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// PrintError writes to the error stream with an "Error: " prefix.
func (c *Console) PrintError(a ...any) {
	fmt.Fprintln(c.errOut, "Error: "+fmt.Sprint(a...))
}

// Interactive reports whether the input stream is a terminal.
func (c *Console) Interactive() bool {
	f, ok := c.in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ReaderSource is a buffered line reader. Leading byte-order marks are
// stripped from every line.
type ReaderSource struct {
	r *bufio.Reader
}

// NewReaderSource wraps r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: bufio.NewReader(r)}
}

// ReadLine returns the next line. The last line may lack a terminator.
func (s *ReaderSource) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read line: %w", err)
		}
		if line == "" {
			return "", domain.ErrEndOfInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	line = strings.TrimPrefix(line, string(domain.ByteOrderMark))
	return line, nil
}

// HasMore peeks one byte. It returns immediately for in-memory and file
// streams; on a terminal it waits for the operator like any read.
func (s *ReaderSource) HasMore() bool {
	_, err := s.r.Peek(1)
	return err == nil
}

var (
	_ ports.Console    = (*Console)(nil)
	_ ports.LineSource = (*ReaderSource)(nil)
)
