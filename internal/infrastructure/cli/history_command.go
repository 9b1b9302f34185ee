package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/infrastructure/config"
	"github.com/langel/movieshell/internal/infrastructure/history"
)

const msgNoHistoryRecorded = "No history recorded yet."

// newHistoryCommand inspects the command journal across sessions.
func newHistoryCommand(flags *globalFlags) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect the command journal",
	}

	historyCmd.AddCommand(
		newHistoryListCommand(flags),
		newHistoryClearCommand(flags),
	)

	return historyCmd
}

// newHistoryListCommand creates the 'history list' subcommand
func newHistoryListCommand(flags *globalFlags) *cobra.Command {
	var (
		limit   int
		session string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent journal entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(cmd, flags, func(store history.Repository) error {
				return listHistoryEntries(cmd.OutOrStdout(), store, limit, session)
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultHistoryLimit, "Max entries to show")
	cmd.Flags().StringVar(&session, "session", "", "Only show entries of this session id")
	return cmd
}

// newHistoryClearCommand creates the 'history clear' subcommand
func newHistoryClearCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHistory(cmd, flags, func(store history.Repository) error {
				if err := store.Clear(); err != nil {
					return fmt.Errorf("failed to clear history: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
				return nil
			})
		},
	}
}

func withHistory(cmd *cobra.Command, flags *globalFlags, fn func(history.Repository) error) error {
	cfg, err := config.NewFileLoader(flags.configPath).Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	store, err := history.New(cfg.History)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

// listHistoryEntries lists recent journal entries
func listHistoryEntries(out io.Writer, store history.Repository, limit int, session string) error {
	records, err := store.Records(limit, session)
	if err != nil {
		return fmt.Errorf("failed to retrieve history records: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(out, msgNoHistoryRecorded)
		return nil
	}

	for _, rec := range records {
		status := "ok"
		if !rec.Success {
			status = "failed"
		}
		fmt.Fprintf(out, "%s | %s | %-6s | %s\n",
			rec.Timestamp.Format(domain.TimestampFormat),
			rec.SessionID,
			status,
			rec.Line())
	}

	return nil
}
