package domain

import "errors"

var (
	// ErrEndOfInput is returned when the active line source is exhausted. It
	// is an expected condition (end of script or session), not a fault.
	ErrEndOfInput = errors.New("end of input")
	// ErrInputAborted is returned by interactive forms when the operator
	// types exit in the middle of a form.
	ErrInputAborted = errors.New("input aborted")

	// ErrScriptNotFound means the script path does not exist.
	ErrScriptNotFound = errors.New("script file does not exist")
	// ErrScriptUnreadable means the script exists but cannot be read.
	ErrScriptUnreadable = errors.New("no permission to read script file")
	// ErrScriptEmpty means the script holds no command at all.
	ErrScriptEmpty = errors.New("script file is empty")
)
