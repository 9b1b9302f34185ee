package domain

import "time"

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// SecureFilePermissions is the permission for sensitive files (rw-------)
	SecureFilePermissions = 0o600
	// DataFilePermissions is the permission for the collection dump (rw-r--r--)
	DataFilePermissions = 0o644
)

// Console constants
const (
	// DefaultPrompt marks interactive input and prefixes echoed script lines
	DefaultPrompt = "$ "
	// ByteOrderMark is stripped from the start of every line read
	ByteOrderMark = '\uFEFF'
)

// Script recursion constants
const (
	// MaxScriptDepth is the hard cap on nested script invocations
	MaxScriptDepth = 500
	// MinRecursionBudget and MaxRecursionBudget bound the operator answer
	MinRecursionBudget = 0
	MaxRecursionBudget = 500
)

// History constants
const (
	// DefaultHistoryLimit is the default number of journal entries listed
	DefaultHistoryLimit = 15
)

// Time formats
const (
	// TimestampFormat is the standard timestamp format
	TimestampFormat = time.RFC3339
	// DateFormat is the JSON layout of movie creation dates
	DateFormat = "2006-01-02"
)
