package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "confreport"

	// DefaultBatchSize is the number of snapshot files processed concurrently.
	DefaultBatchSize = 4

	// StdinPath is the snapshot argument that reads standard input.
	StdinPath = "-"
)

// Config holds all configuration options for confreport.
// This struct is populated from CLI flags and the config file, then passed
// through the application rather than kept in global state.
type Config struct {
	// Snapshots are the snapshot files to report, in output order.
	// "-" reads a snapshot from standard input.
	Snapshots []string

	// IncludeAll also reports legacy configurations.
	IncludeAll bool

	// Configuration restricts the report to one configuration name.
	Configuration string

	// Recursive lists transitively extended configurations.
	Recursive bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of snapshots loaded and built concurrently.
	BatchSize int

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches the current directory, the home directory
	// and the XDG config directory.
	ConfigFilePath string

	// Projects holds per-project settings loaded from the config file.
	Projects *File

	// JSONReport enables JSON report output instead of text.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of text.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	ReportFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BatchSize: DefaultBatchSize,
		Projects:  &File{Projects: make(map[string]ProjectConfig)},
	}
}

// XDGConfigDir returns the XDG config directory for confreport.
// On Linux: ~/.config/confreport
// On macOS: ~/Library/Application Support/confreport
// On Windows: %APPDATA%\confreport
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Snapshots) == 0 {
		return ErrNoSnapshot
	}

	stdin := 0
	for _, s := range c.Snapshots {
		if s == StdinPath {
			stdin++
		}
	}
	if stdin > 1 {
		return ErrStdinUsedTwice
	}

	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	return nil
}

// ProjectOptions returns the report options for the project at path.
// Values from the config file apply first; flags that were explicitly set
// on the command line win.
func (c *Config) ProjectOptions(path string, explicit Overrides) ProjectConfig {
	var pc ProjectConfig
	if c.Projects != nil {
		pc = c.Projects.GetProjectConfig(path)
	}

	if explicit.All || pc.All == nil {
		pc.All = boolPtr(c.IncludeAll)
	}
	if explicit.Recursive || pc.Recursive == nil {
		pc.Recursive = boolPtr(c.Recursive)
	}
	if explicit.Configuration || pc.Configuration == "" {
		pc.Configuration = c.Configuration
	}
	return pc
}

// Overrides records which report flags were set explicitly on the command line.
type Overrides struct {
	All           bool
	Recursive     bool
	Configuration bool
}

func boolPtr(b bool) *bool {
	return &b
}
