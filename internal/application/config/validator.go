// Package config checks loaded configuration for consistency.
package config

import (
	"fmt"
	"strings"

	"github.com/langel/movieshell/internal/domain"
)

// maxIndent bounds the data file indentation.
const maxIndent = 8

// Validate ensures config structure is consistent.
func Validate(cfg domain.Config) error {
	if err := validateConsole(cfg.Console); err != nil {
		return err
	}
	if err := validateHistory(cfg.History); err != nil {
		return err
	}
	if err := validateDump(cfg.Dump); err != nil {
		return err
	}
	return nil
}

func validateConsole(console domain.ConsoleSettings) error {
	if strings.TrimSpace(console.Prompt) == "" {
		return fmt.Errorf("console.prompt must not be blank")
	}
	if strings.ContainsAny(console.Prompt, "\r\n") {
		return fmt.Errorf("console.prompt must be a single line")
	}
	return nil
}

func validateHistory(history domain.HistorySettings) error {
	switch history.Backend {
	case domain.HistoryBackendSQLite, domain.HistoryBackendFile:
	default:
		return fmt.Errorf("history.backend must be %s|%s, got %s",
			domain.HistoryBackendSQLite, domain.HistoryBackendFile, history.Backend)
	}
	if history.Limit <= 0 {
		return fmt.Errorf("history.limit must be > 0")
	}
	return nil
}

func validateDump(dump domain.DumpSettings) error {
	if dump.Indent < 0 || dump.Indent > maxIndent {
		return fmt.Errorf("dump.indent must be between 0 and %d", maxIndent)
	}
	return nil
}
