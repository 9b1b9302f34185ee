package commands

import (
	"context"

	"github.com/langel/movieshell/internal/ports"
)

// Options configures the default command set.
type Options struct {
	History      ports.HistoryRepository
	SessionID    string
	HistoryLimit int
}

// RegisterDefaults installs the standard command set in help order.
func RegisterDefaults(ctx context.Context, reg *Registry, deps Deps, opts Options) {
	all := []ports.Command{
		NewHelp(reg),
		NewInfo(deps.Collection),
		NewShow(deps),
		NewAdd(deps),
		NewUpdate(deps),
		NewRemoveByID(deps),
		NewClear(deps),
		NewSave(ctx, deps.Collection),
		NewExecuteScript(),
		NewExit(),
		NewAddIfMax(deps),
		NewAddIfMin(deps),
		NewRemoveLower(deps),
		NewFilterLessThanScreenwriter(deps),
		NewPrintDescending(deps),
		NewSumOfOscarCount(deps),
	}
	if opts.History != nil {
		all = append(all, NewHistory(opts.History, opts.SessionID, opts.HistoryLimit))
	}
	for _, cmd := range all {
		reg.Register(cmd.Name(), cmd)
	}
}
