package config

import (
	"strings"
	"testing"

	"github.com/langel/movieshell/internal/domain"
)

func validConfig() domain.Config {
	return domain.Config{
		ConfigFormatVersion: "1",
		Console:             domain.ConsoleSettings{Prompt: "$ "},
		History:             domain.HistorySettings{Backend: domain.HistoryBackendSQLite, Limit: 15},
		Dump:                domain.DumpSettings{Indent: 2},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*domain.Config) {}},
		{name: "blank prompt", mutate: func(c *domain.Config) { c.Console.Prompt = "  " }, wantErr: "console.prompt"},
		{name: "multiline prompt", mutate: func(c *domain.Config) { c.Console.Prompt = "a\nb" }, wantErr: "single line"},
		{name: "unknown backend", mutate: func(c *domain.Config) { c.History.Backend = "redis" }, wantErr: "history.backend"},
		{name: "zero limit", mutate: func(c *domain.Config) { c.History.Limit = 0 }, wantErr: "history.limit"},
		{name: "indent too wide", mutate: func(c *domain.Config) { c.Dump.Indent = 12 }, wantErr: "dump.indent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
