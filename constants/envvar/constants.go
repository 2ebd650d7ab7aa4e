// Package envvar defines environment variable keys as constants
package envvar

// General constants
const (
	VerboseLogsEnabled = "VERBOSE_LOGS_ENABLED"
)

// Titlecase-related constants
const (
	Workers = "TITLECASE_WORKERS"
	NFC     = "TITLECASE_NFC"
)
