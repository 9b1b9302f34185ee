package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/langel/movieshell/internal/application/collection"
	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

// Help lists registered commands in registration order.
type Help struct {
	base
	commands ports.CommandLookup
}

// NewHelp builds the help command over lookup.
func NewHelp(lookup ports.CommandLookup) *Help {
	return &Help{
		base:     base{name: "help", usage: "help", description: "show help for the available commands"},
		commands: lookup,
	}
}

func (c *Help) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	var lines []string
	for cmd := range c.commands.All() {
		lines = append(lines, fmt.Sprintf(" %-45s %s", cmd.Usage(), cmd.Description()))
	}
	return domain.OK(strings.Join(lines, "\n"))
}

// Exit ends the session without saving.
type Exit struct {
	base
}

func NewExit() *Exit {
	return &Exit{base: base{name: "exit", usage: "exit", description: "terminate the program (without saving to file)"}}
}

func (c *Exit) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	return domain.Exit()
}

// ExecuteScript only validates its argument; the execution loop replays
// the file itself.
type ExecuteScript struct {
	base
}

func NewExecuteScript() *ExecuteScript {
	return &ExecuteScript{base: base{
		name:        "execute_script",
		usage:       "execute_script file_name",
		description: "read and execute a script from the given file",
	}}
}

// Kind marks the command as script invoking.
func (c *ExecuteScript) Kind() domain.CommandKind {
	return domain.CommandKindScript
}

func (c *ExecuteScript) Apply(argument string) domain.ExecutionResult {
	if argument == "" {
		return domain.Fail("File name not specified!\nUsage: '" + c.usage + "'")
	}
	return domain.OK("execute_script: argument accepted, running script")
}

// Info describes the collection.
type Info struct {
	base
	collection *collection.Manager
	now        func() time.Time
}

func NewInfo(manager *collection.Manager) *Info {
	return &Info{
		base:       base{name: "info", usage: "info", description: "print information about the collection"},
		collection: manager,
		now:        time.Now,
	}
}

func (c *Info) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	var b strings.Builder
	b.WriteString("Collection details:\n")
	fmt.Fprintf(&b, " Type: %T\n", c.collection.All())
	fmt.Fprintf(&b, " Size: %d\n", c.collection.Len())
	fmt.Fprintf(&b, " Data file: %s\n", c.collection.StorePath())
	fmt.Fprintf(&b, " Loaded: %s\n", c.when(c.collection.InitTime()))
	fmt.Fprintf(&b, " Last saved: %s", c.when(c.collection.SaveTime()))
	return domain.OK(b.String())
}

func (c *Info) when(t time.Time) string {
	if t.IsZero() {
		return "never in this session"
	}
	return fmt.Sprintf("%s (%s)", t.Format(domain.TimestampFormat), humanize.RelTime(t, c.now(), "ago", "from now"))
}

// Save writes the collection to the data file.
type Save struct {
	base
	ctx        context.Context
	collection *collection.Manager
}

func NewSave(ctx context.Context, manager *collection.Manager) *Save {
	return &Save{
		base:       base{name: "save", usage: "save", description: "save the collection to the data file"},
		ctx:        ctx,
		collection: manager,
	}
}

func (c *Save) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	if err := c.collection.Save(c.ctx); err != nil {
		return domain.Fail(fmt.Sprintf("Collection could not be saved: %v", err))
	}
	return domain.OK("Collection saved successfully!")
}

// History lists the journaled commands of the current session.
type History struct {
	base
	repo      ports.HistoryRepository
	sessionID string
	limit     int
}

func NewHistory(repo ports.HistoryRepository, sessionID string, limit int) *History {
	if limit <= 0 {
		limit = domain.DefaultHistoryLimit
	}
	return &History{
		base:      base{name: "history", usage: "history [count]", description: fmt.Sprintf("print the last commands of this session (default %d)", limit)},
		repo:      repo,
		sessionID: sessionID,
		limit:     limit,
	}
}

func (c *History) Apply(argument string) domain.ExecutionResult {
	limit := c.limit
	if argument != "" {
		n, err := strconv.Atoi(argument)
		if err != nil || n <= 0 {
			return domain.Fail("count must be a positive integer!\nUsage: '" + c.usage + "'")
		}
		limit = n
	}
	if c.repo == nil {
		return domain.Fail("History is disabled.")
	}
	records, err := c.repo.Records(limit, c.sessionID)
	if err != nil {
		return domain.Fail(fmt.Sprintf("History could not be read: %v", err))
	}
	if len(records) == 0 {
		return domain.OK("No commands recorded yet.")
	}
	lines := make([]string, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		rec := records[i]
		status := "ok"
		if !rec.Success {
			status = "failed"
		}
		line := fmt.Sprintf(" %s  %-6s %s", rec.Timestamp.Format(time.TimeOnly), status, rec.Line())
		if rec.Script != "" {
			line += "  (" + rec.Script + ")"
		}
		lines = append(lines, line)
	}
	return domain.OK(strings.Join(lines, "\n"))
}
