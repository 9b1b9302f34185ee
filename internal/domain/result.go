// Package domain defines the core entities of movieshell: command results,
// tokenized input lines, script recursion bookkeeping and the movie records
// the commands operate on.
//
// The domain layer is independent of infrastructure concerns (consoles, files,
// databases) and holds only data structures and their invariants.
package domain

// ExitMessage is the reserved result message that ends the session. It must
// be checked before a result message is shown to the operator.
const ExitMessage = "exit"

// ExecutionResult is the uniform outcome of a command. Success=false marks a
// recoverable failure that is reported and looped past.
type ExecutionResult struct {
	Success bool
	Message string
	// Terminate is set when a script finished on the exit command. The
	// message then carries the script transcript instead of ExitMessage.
	Terminate bool
}

// OK builds a successful result.
func OK(message string) ExecutionResult {
	return ExecutionResult{Success: true, Message: message}
}

// Fail builds a recoverable failure result.
func Fail(message string) ExecutionResult {
	return ExecutionResult{Success: false, Message: message}
}

// Exit builds the session termination result.
func Exit() ExecutionResult {
	return ExecutionResult{Success: true, Message: ExitMessage}
}

// IsExit reports whether the result asks the session to terminate.
func (r ExecutionResult) IsExit() bool {
	return r.Terminate || r.Message == ExitMessage
}

// CommandKind tells the execution loop how a command is dispatched.
type CommandKind int

const (
	// CommandKindPlain commands are applied directly.
	CommandKindPlain CommandKind = iota
	// CommandKindScript commands validate their argument and then hand the
	// named file to script mode.
	CommandKindScript
)

// String implements fmt.Stringer.
func (k CommandKind) String() string {
	switch k {
	case CommandKindScript:
		return "script"
	default:
		return "plain"
	}
}
