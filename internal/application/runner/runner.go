// Package runner implements the execution loop: it reads command lines from
// the console, dispatches them through the command registry and replays
// script files, bounding recursive script invocations.
package runner

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

const (
	msgNoUserInput       = "No user input detected!"
	msgUnexpectedError   = "Unexpected error!"
	msgRecursionExceeded = "Maximum recursion depth exceeded"
	msgCheckScript       = "Check the script for correctness of the entered data!"
)

// Runner owns the console and the script stack for one session.
type Runner struct {
	Console  ports.Console
	Commands ports.CommandLookup
	Logger   ports.Logger
	// History is optional; dispatched lines are journaled when set.
	History   ports.HistoryRepository
	SessionID string

	stack *ScriptStack
	guard *RecursionGuard
}

// New builds a runner for a fresh session.
func New(console ports.Console, commands ports.CommandLookup, logger ports.Logger) *Runner {
	stack := &ScriptStack{}
	return &Runner{
		Console:  console,
		Commands: commands,
		Logger:   logger,
		stack:    stack,
		guard:    NewRecursionGuard(stack, console, logger),
	}
}

// Stack exposes the script stack for inspection.
func (r *Runner) Stack() *ScriptStack {
	return r.stack
}

// Guard exposes the recursion guard for inspection.
func (r *Runner) Guard() *RecursionGuard {
	return r.guard
}

// Interactive runs the prompt loop until a command returns the exit
// sentinel (nil error) or the interactive input fails. Running out of input
// is reported and returned wrapping domain.ErrEndOfInput.
func (r *Runner) Interactive() error {
	for {
		r.Console.Prompt()
		raw, err := r.Console.ReadLine()
		if err != nil {
			return r.fatal(err)
		}

		result, err := r.Launch(domain.Tokenize(raw))
		if err != nil {
			return r.fatal(err)
		}
		if result.IsExit() {
			if result.Terminate {
				r.Console.Println(result.Message)
			}
			r.Logger.Debug("session terminated", map[string]interface{}{"session": r.SessionID})
			return nil
		}
		r.Console.Println(result.Message)
	}
}

// Launch dispatches one tokenized line. A non-nil error means the input
// source failed and the session cannot continue; every command level
// problem is reported through the result instead.
func (r *Runner) Launch(line domain.CommandLine) (domain.ExecutionResult, error) {
	if line.Empty() {
		return domain.OK(""), nil
	}

	cmd, ok := r.Commands.Lookup(line.Name)
	if !ok {
		result := domain.Fail(fmt.Sprintf("Command '%s' not found. Type 'help' for reference", line.Name))
		r.journal(line, result)
		return result, nil
	}

	var result domain.ExecutionResult
	switch cmd.Kind() {
	case domain.CommandKindScript:
		validation := cmd.Apply(line.Argument)
		if !validation.Success {
			r.journal(line, validation)
			return validation, nil
		}
		r.journal(line, validation)
		script, err := r.runScript(line.Argument)
		if err != nil {
			return domain.ExecutionResult{}, err
		}
		result = domain.ExecutionResult{
			Success:   script.Success,
			Message:   validation.Message + "\n" + strings.TrimSpace(script.Message),
			Terminate: script.Terminate,
		}
	default:
		result = cmd.Apply(line.Argument)
		r.journal(line, result)
	}
	return result, nil
}

// runScript replays the file at path. Access problems are reported as
// failed results without touching the stack.
func (r *Runner) runScript(path string) (domain.ExecutionResult, error) {
	data, err := readScript(path)
	if err != nil {
		r.Logger.Warn("script rejected", map[string]interface{}{"script": path, "error": err.Error()})
		return domain.Fail(scriptErrorMessage(err)), nil
	}

	id := scriptID(path)
	release := r.stack.Enter(id)
	defer release()

	src := r.Console.Wrap(bytes.NewReader(data))
	r.Console.SelectFile(src)
	defer r.Console.SelectConsole()

	r.Logger.Debug("script started", map[string]interface{}{"script": id, "depth": r.stack.Len()})
	started := time.Now()

	prompt := r.Console.PromptString()
	var transcript strings.Builder
	var result domain.ExecutionResult
	var line domain.CommandLine
	for {
		line, err = r.nextCommand()
		if err != nil {
			return domain.ExecutionResult{}, fmt.Errorf("script %s: %w", path, err)
		}
		transcript.WriteString(prompt + line.String() + "\n")

		nested := r.invokesScript(line)
		allowed := true
		if nested && line.Argument != "" {
			allowed, err = r.guard.Allow(scriptID(line.Argument))
			if err != nil {
				return domain.ExecutionResult{}, err
			}
		}
		if allowed {
			result, err = r.Launch(line)
			if err != nil {
				return domain.ExecutionResult{}, err
			}
		} else {
			result = domain.Fail(msgRecursionExceeded)
			r.journal(line, result)
		}
		if nested {
			r.Console.SelectFile(src)
		}

		if result.Message != domain.ExitMessage {
			transcript.WriteString(result.Message + "\n")
		}
		if !result.Success || result.IsExit() || !r.Console.HasMore() {
			break
		}
	}

	if !result.Success && !(r.invokesScript(line) && line.Argument != "") {
		transcript.WriteString(msgCheckScript + "\n")
	}

	r.Logger.Debug("script finished", map[string]interface{}{
		"script":      id,
		"success":     result.Success,
		"duration_ms": time.Since(started).Milliseconds(),
	})
	return domain.ExecutionResult{
		Success:   result.Success,
		Message:   transcript.String(),
		Terminate: result.IsExit(),
	}, nil
}

// nextCommand reads the next line of the active script, skipping blank lines
// while more input remains.
func (r *Runner) nextCommand() (domain.CommandLine, error) {
	raw, err := r.Console.ReadLine()
	if err != nil {
		return domain.CommandLine{}, err
	}
	line := domain.Tokenize(raw)
	for line.Empty() && r.Console.HasMore() {
		raw, err = r.Console.ReadLine()
		if err != nil {
			return domain.CommandLine{}, err
		}
		line = domain.Tokenize(raw)
	}
	return line, nil
}

func (r *Runner) invokesScript(line domain.CommandLine) bool {
	cmd, ok := r.Commands.Lookup(line.Name)
	return ok && cmd.Kind() == domain.CommandKindScript
}

func (r *Runner) journal(line domain.CommandLine, result domain.ExecutionResult) {
	if r.History == nil {
		return
	}
	record := domain.HistoryRecord{
		SessionID: r.SessionID,
		Timestamp: time.Now(),
		Command:   line.Name,
		Argument:  line.Argument,
		Script:    r.stack.Top(),
		Success:   result.Success,
	}
	if err := r.History.Save(record); err != nil {
		r.Logger.Warn("history save failed", map[string]interface{}{"error": err.Error()})
	}
}

func (r *Runner) fatal(err error) error {
	if errors.Is(err, domain.ErrEndOfInput) {
		r.Console.PrintError(msgNoUserInput)
	} else {
		r.Console.PrintError(msgUnexpectedError)
	}
	r.Logger.Error("session aborted", err, map[string]interface{}{"session": r.SessionID})
	return err
}

// readScript loads a script, classifying access problems.
func readScript(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrScriptNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrScriptUnreadable, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", domain.ErrScriptUnreadable, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrScriptUnreadable, err)
	}
	content := strings.TrimPrefix(string(data), string(domain.ByteOrderMark))
	if strings.TrimSpace(content) == "" {
		return nil, domain.ErrScriptEmpty
	}
	return data, nil
}

func scriptErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrScriptNotFound):
		return "Script file does not exist!"
	case errors.Is(err, domain.ErrScriptUnreadable):
		return "No permission to read the script file!"
	case errors.Is(err, domain.ErrScriptEmpty):
		return "Script file is empty!"
	default:
		return err.Error()
	}
}
