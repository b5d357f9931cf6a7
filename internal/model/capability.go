package model

// Capability is an identifier a configuration's output satisfies.
// Capabilities are used for conflict detection among alternative providers.
type Capability struct {
	Group   string `json:"group"`
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
}

// String returns the capability in "group:name:version" form.
// The version segment is omitted when no version is set.
func (c Capability) String() string {
	if c.Version == "" {
		return c.Group + ":" + c.Name
	}
	return c.Group + ":" + c.Name + ":" + c.Version
}
