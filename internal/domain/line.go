package domain

import "strings"

// CommandLine is one input line split into the command name and the rest of
// the line. Both fields are always present; a blank line yields an empty Name.
type CommandLine struct {
	Name     string
	Argument string
}

// Tokenize splits a raw line on the first run of whitespace. The argument is
// trimmed and defaults to "".
func Tokenize(raw string) CommandLine {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return CommandLine{}
	}
	idx := strings.IndexFunc(trimmed, isSpace)
	if idx < 0 {
		return CommandLine{Name: trimmed}
	}
	return CommandLine{
		Name:     trimmed[:idx],
		Argument: strings.TrimSpace(trimmed[idx:]),
	}
}

// Empty reports whether the line carries no command.
func (l CommandLine) Empty() bool {
	return l.Name == ""
}

// String rebuilds the normalized line, as echoed into script transcripts.
func (l CommandLine) String() string {
	if l.Argument == "" {
		return l.Name
	}
	return l.Name + " " + l.Argument
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0:
		return true
	}
	return false
}
