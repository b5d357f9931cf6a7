package snapshot

import "errors"

// Snapshot loading errors.
// Callers can use errors.Is() for programmatic handling; the returned errors
// wrap these with the offending file and configuration names.
var (
	// ErrSnapshotNotFound is returned when the snapshot file does not exist.
	ErrSnapshotNotFound = errors.New("snapshot file not found")

	// ErrMissingProjectName is returned when the snapshot has no project name.
	// The name is needed for the default capability and the empty report message.
	ErrMissingProjectName = errors.New("snapshot has no project name")

	// ErrMissingConfigurationName is returned when a configuration has no name.
	ErrMissingConfigurationName = errors.New("configuration has no name")

	// ErrDuplicateConfiguration is returned when two configurations share a name.
	ErrDuplicateConfiguration = errors.New("duplicate configuration")

	// ErrDuplicateAttribute is returned when a configuration declares the same
	// attribute twice.
	ErrDuplicateAttribute = errors.New("duplicate attribute")

	// ErrMissingCapabilityName is returned when a capability has no name.
	ErrMissingCapabilityName = errors.New("capability has no name")

	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("unsupported snapshot format: use .yaml, .yml or .json")
)
