package runner

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

const (
	msgRecursionDetected  = "Recursion detected! Enter the maximum recursion depth (0..500)"
	msgDepthNotRecognized = "depth not recognized"
)

// RecursionGuard decides whether a nested script invocation may run. It
// never changes the stack itself.
type RecursionGuard struct {
	stack   *ScriptStack
	console ports.Console
	logger  ports.Logger
	budget  domain.RecursionBudget
}

// NewRecursionGuard builds a guard over stack that asks the operator through
// console.
func NewRecursionGuard(stack *ScriptStack, console ports.Console, logger ports.Logger) *RecursionGuard {
	return &RecursionGuard{stack: stack, console: console, logger: logger}
}

// Allow reports whether id may be pushed on top of the current stack. The
// operator is asked for a recursion budget the first time recursion is seen
// in the session; only a failing read of that answer returns an error.
func (g *RecursionGuard) Allow(id string) (bool, error) {
	position := g.stack.Len() + 1
	if position > domain.MaxScriptDepth {
		g.logger.Warn("script depth cap reached", map[string]interface{}{"script": id, "depth": position})
		return false, nil
	}

	start := g.stack.FirstIndex(id)
	if start == 0 {
		return true, nil
	}

	if !g.budget.IsSet {
		if err := g.negotiate(); err != nil {
			return false, err
		}
	}

	if position > start+g.budget.MaxDepth {
		g.logger.Info("recursion limit exceeded", map[string]interface{}{
			"script":          id,
			"position":        position,
			"recursion_start": start,
			"max_depth":       g.budget.MaxDepth,
		})
		return false, nil
	}
	return true, nil
}

// Budget returns the negotiated budget.
func (g *RecursionGuard) Budget() domain.RecursionBudget {
	return g.budget
}

// negotiate pauses the script, reads the budget from the operator and
// resumes the script that was active before.
func (g *RecursionGuard) negotiate() error {
	previous := g.console.Active()
	g.console.SelectConsole()
	defer g.console.SelectFile(previous)

	g.console.Println(msgRecursionDetected)
	for {
		g.console.Print("> ")
		raw, err := g.console.ReadLine()
		if err != nil {
			return fmt.Errorf("read recursion depth: %w", err)
		}
		depth, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || !domain.ValidBudget(depth) {
			g.console.Println(msgDepthNotRecognized)
			continue
		}
		g.budget.Set(depth)
		g.logger.Debug("recursion budget negotiated", map[string]interface{}{"max_depth": depth})
		return nil
	}
}
