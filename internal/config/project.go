package config

import "github.com/nao1215/confreport/internal/model"

// ProjectConfig holds report settings for a single project.
// Pointer fields distinguish "not set" from an explicit false.
type ProjectConfig struct {
	// All also reports legacy configurations.
	All *bool `yaml:"all,omitempty"`

	// Recursive lists transitively extended configurations.
	Recursive *bool `yaml:"recursive,omitempty"`

	// Configuration restricts the report to one configuration name.
	Configuration string `yaml:"configuration,omitempty"`
}

// Options converts the settings into report options.
func (pc ProjectConfig) Options() model.Options {
	return model.Options{
		IncludeAll:    pc.All != nil && *pc.All,
		Recursive:     pc.Recursive != nil && *pc.Recursive,
		Configuration: pc.Configuration,
	}
}

// File represents the structure of the .confreport configuration file.
type File struct {
	// Projects maps project paths (e.g. ":" or ":app") to their settings.
	Projects map[string]ProjectConfig `yaml:"projects,omitempty"`

	// Defaults apply to every project unless overridden in Projects.
	Defaults ProjectConfig `yaml:"defaults,omitempty"`
}

// GetProjectConfig returns the configuration for a project path.
// It merges the project-specific configuration with defaults.
func (cf *File) GetProjectConfig(path string) ProjectConfig {
	result := cf.Defaults

	if pc, ok := cf.Projects[path]; ok {
		if pc.All != nil {
			result.All = pc.All
		}
		if pc.Recursive != nil {
			result.Recursive = pc.Recursive
		}
		if pc.Configuration != "" {
			result.Configuration = pc.Configuration
		}
	}

	return result
}
