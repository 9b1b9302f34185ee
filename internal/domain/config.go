package domain

// Config mirrors ~/.movieshell/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Console             ConsoleSettings `yaml:"console"`
	History             HistorySettings `yaml:"history"`
	Dump                DumpSettings    `yaml:"dump"`
}

// ConsoleSettings controls the interactive surface.
type ConsoleSettings struct {
	Prompt     string `yaml:"prompt"`
	ShowBanner bool   `yaml:"show_banner"`
}

// HistorySettings configures the command journal.
type HistorySettings struct {
	Enabled bool   `yaml:"enabled"`
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
	Limit   int    `yaml:"limit"`
}

// DumpSettings configures collection persistence.
type DumpSettings struct {
	ValidateSchema bool `yaml:"validate_schema"`
	Indent         int  `yaml:"indent"`
}

// History backends
const (
	HistoryBackendSQLite = "sqlite"
	HistoryBackendFile   = "file"
)
