package domain

import "time"

// HistoryRecord captures one dispatched command line.
type HistoryRecord struct {
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Argument  string    `json:"argument"`
	Script    string    `json:"script,omitempty"`
	Success   bool      `json:"success"`
}

// Line rebuilds the journaled command line.
func (r HistoryRecord) Line() string {
	return CommandLine{Name: r.Command, Argument: r.Argument}.String()
}
