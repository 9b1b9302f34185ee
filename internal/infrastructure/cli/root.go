package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/langel/movieshell/internal/app"
	"github.com/langel/movieshell/internal/domain"
)

const banner = "movieshell: movie collection manager. Type 'help' for the list of commands."

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// globalFlags are shared by the root command and its subcommands.
type globalFlags struct {
	configPath string
	verbose    bool
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	flags := &globalFlags{verbose: opts.Verbose}
	var noHistory bool

	root := &cobra.Command{
		Use:   "movieshell <data-file>",
		Short: "movieshell - interactive movie collection shell",
		Long: "movieshell manages a collection of movies stored in a JSON data file.\n" +
			"Commands are read from the terminal or replayed from scripts with execute_script.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSession(cmd, app.Options{
				DataFile:   args[0],
				ConfigPath: flags.configPath,
				Verbose:    flags.verbose,
				NoHistory:  noHistory,
				In:         cmd.InOrStdin(),
				Out:        cmd.OutOrStdout(),
				ErrOut:     cmd.ErrOrStderr(),
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default ~/.movieshell/config.yaml)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", opts.Verbose, "Enable verbose logging")
	root.Flags().BoolVar(&noHistory, "no-history", false, "Do not journal commands for this session")

	root.AddCommand(newVersionCommand())
	root.AddCommand(newConfigCommand(flags))
	root.AddCommand(newHistoryCommand(flags))
	return root, nil
}

func runSession(cmd *cobra.Command, opts app.Options) error {
	ctx := cmd.Context()
	container, err := app.BuildContainer(ctx, opts)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.LoadCollection(ctx); err != nil {
		return err
	}
	if container.Config.Console.ShowBanner && container.Console.Interactive() {
		container.Console.Println(banner)
	}

	err = container.Runner.Interactive()
	if errors.Is(err, domain.ErrEndOfInput) {
		return nil
	}
	return err
}
