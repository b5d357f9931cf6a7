package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
var (
	// ErrNoSnapshot is returned when no snapshot file is specified.
	ErrNoSnapshot = errors.New("no snapshot specified: provide one or more snapshot files, or - for stdin")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrStdinUsedTwice is returned when "-" is given more than once.
	ErrStdinUsedTwice = errors.New("standard input can only be read once")
)
