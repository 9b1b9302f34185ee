package commands

import (
	"fmt"

	"github.com/langel/movieshell/internal/domain"
)

// base carries the static metadata every command exposes.
type base struct {
	name        string
	usage       string
	description string
}

func (b base) Name() string             { return b.name }
func (b base) Usage() string            { return b.usage }
func (b base) Description() string      { return b.description }
func (b base) Kind() domain.CommandKind { return domain.CommandKindPlain }

// wrongArgs reports an unexpected or missing argument.
func (b base) wrongArgs() domain.ExecutionResult {
	return domain.Fail(fmt.Sprintf("Wrong number of arguments!\nUsage: '%s'", b.usage))
}
