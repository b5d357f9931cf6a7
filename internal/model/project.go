package model

// UnspecifiedVersion is the version used for the default capability when
// the project has no version assigned.
const UnspecifiedVersion = "unspecified"

// Project identifies the project that owns the reported configurations.
// Its coordinates are used to synthesize the default capability.
type Project struct {
	// Path is the project path, e.g. ":" for a root project or ":lib" for a subproject.
	Path string `json:"path"`

	// Name is the project name, e.g. "myLib".
	Name string `json:"name"`

	// Group is the project group. Empty is valid and common for local builds.
	Group string `json:"group,omitempty"`

	// Version is the project version. Empty means no version was assigned.
	Version string `json:"version,omitempty"`
}

// DefaultCapability returns the capability implied by the project coordinates.
// It is used for configurations that declare no capability of their own.
func (p Project) DefaultCapability() Capability {
	version := p.Version
	if version == "" {
		version = UnspecifiedVersion
	}
	return Capability{
		Group:   p.Group,
		Name:    p.Name,
		Version: version,
	}
}
