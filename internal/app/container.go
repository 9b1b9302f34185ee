package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/langel/movieshell/internal/application/asker"
	"github.com/langel/movieshell/internal/application/collection"
	"github.com/langel/movieshell/internal/application/commands"
	configapp "github.com/langel/movieshell/internal/application/config"
	"github.com/langel/movieshell/internal/application/runner"
	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/infrastructure/config"
	"github.com/langel/movieshell/internal/infrastructure/console"
	"github.com/langel/movieshell/internal/infrastructure/dump"
	"github.com/langel/movieshell/internal/infrastructure/history"
	"github.com/langel/movieshell/internal/pkg/logger"
	"github.com/langel/movieshell/internal/ports"
)

// Options selects the session inputs.
type Options struct {
	DataFile   string
	ConfigPath string
	Verbose    bool
	NoHistory  bool

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer
}

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config     domain.Config
	Logger     ports.Logger
	Console    *console.Console
	Collection *collection.Manager
	Commands   *commands.Registry
	History    history.Repository
	Runner     *runner.Runner
	SessionID  string
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, opts Options) (*Container, error) {
	cfgLoader := config.NewFileLoader(opts.ConfigPath)
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := configapp.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", cfgLoader.Path(), err)
	}

	log := logger.NewStd(opts.Verbose)
	con := console.New(opts.In, opts.Out, opts.ErrOut, cfg.Console.Prompt)

	store, err := dump.NewJSONStore(opts.DataFile, cfg.Dump, log)
	if err != nil {
		return nil, err
	}
	manager := collection.NewManager(store, log)

	var journal history.Repository
	if cfg.History.Enabled && !opts.NoHistory {
		journal, err = history.New(cfg.History)
		if err != nil {
			return nil, err
		}
	}

	sessionID := uuid.NewString()
	registry := commands.NewRegistry()
	cmdOpts := commands.Options{SessionID: sessionID, HistoryLimit: cfg.History.Limit}
	if journal != nil {
		cmdOpts.History = journal
	}
	commands.RegisterDefaults(ctx, registry, commands.Deps{
		Console:    con,
		Asker:      asker.New(con),
		Collection: manager,
	}, cmdOpts)

	run := runner.New(con, registry, log)
	run.SessionID = sessionID
	if journal != nil {
		run.History = journal
	}

	log.Debug("container ready", map[string]interface{}{
		"config":  cfgLoader.Path(),
		"data":    store.Path(),
		"session": sessionID,
		"history": journal != nil,
	})

	return &Container{
		Config:     cfg,
		Logger:     log,
		Console:    con,
		Collection: manager,
		Commands:   registry,
		History:    journal,
		Runner:     run,
		SessionID:  sessionID,
	}, nil
}

// LoadCollection reads the data file. Missing or malformed files are
// reported and the session starts with an empty collection; other failures
// are returned.
func (c *Container) LoadCollection(ctx context.Context) error {
	err := c.Collection.Load(ctx)
	switch {
	case err == nil:
		c.Console.Println("Collection loaded successfully!")
		return nil
	case errors.Is(err, dump.ErrNotFound):
		c.Console.PrintError(fmt.Sprintf("Data file not found: '%s'", c.Collection.StorePath()))
	case errors.Is(err, dump.ErrMalformed), errors.Is(err, collection.ErrDuplicateID):
		c.Console.PrintError(fmt.Sprintf("Data file could not be parsed: %v", err))
	default:
		return err
	}
	c.Logger.Warn("starting with an empty collection", map[string]interface{}{"error": err.Error()})
	return nil
}

// Close releases held resources.
func (c *Container) Close() error {
	if c.History == nil {
		return nil
	}
	return c.History.Close()
}
