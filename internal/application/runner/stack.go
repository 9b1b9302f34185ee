package runner

import (
	"path/filepath"
	"slices"
)

// ScriptStack lists the scripts currently executing, outermost first.
type ScriptStack struct {
	paths []string
}

// Enter pushes id and returns the func that pops it. Callers defer the
// release so the slot is freed on every exit path.
func (s *ScriptStack) Enter(id string) (release func()) {
	s.paths = append(s.paths, id)
	depth := len(s.paths)
	return func() {
		if len(s.paths) >= depth {
			s.paths = s.paths[:depth-1]
		}
	}
}

// Len returns the current nesting depth.
func (s *ScriptStack) Len() int {
	return len(s.paths)
}

// FirstIndex returns the 1-based position of the outermost entry equal to
// id, or 0 when id is not on the stack.
func (s *ScriptStack) FirstIndex(id string) int {
	return slices.Index(s.paths, id) + 1
}

// Paths returns a copy of the stack, outermost first.
func (s *ScriptStack) Paths() []string {
	return slices.Clone(s.paths)
}

// Top returns the innermost script, or "" outside script mode.
func (s *ScriptStack) Top() string {
	if len(s.paths) == 0 {
		return ""
	}
	return s.paths[len(s.paths)-1]
}

// scriptID normalizes a script argument so that different spellings of the
// same file are recognized as recursion.
func scriptID(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
