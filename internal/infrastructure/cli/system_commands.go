package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	configapp "github.com/langel/movieshell/internal/application/config"
	"github.com/langel/movieshell/internal/infrastructure/config"
)

const msgConfigurationValid = "Configuration valid"

// Version metadata, set through -ldflags at build time.
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)

// ============================================================================
// Version Command
// ============================================================================

// newVersionCommand creates the version command to display version information.
func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show movieshell version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displayVersionInformation(cmd.OutOrStdout())
		},
	}
}

func displayVersionInformation(out io.Writer) error {
	fmt.Fprintf(out, "movieshell version %s\n", Version)

	if Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", Commit)
	}

	if BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", BuildDate)
	}

	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())

	return nil
}

// ============================================================================
// Config Command
// ============================================================================

// newConfigCommand prints the effective configuration.
func newConfigCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfiguration(cmd, cmd.OutOrStdout(), flags)
		},
	}
}

func showConfiguration(cmd *cobra.Command, out io.Writer, flags *globalFlags) error {
	loader := config.NewFileLoader(flags.configPath)
	cfg, err := loader.Load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}

	fmt.Fprintf(out, "# %s\n", loader.Path())
	if _, err := out.Write(raw); err != nil {
		return err
	}

	if err := configapp.Validate(cfg); err != nil {
		fmt.Fprintf(out, "# invalid: %v\n", err)
		return nil
	}
	fmt.Fprintln(out, "# "+msgConfigurationValid)
	return nil
}
