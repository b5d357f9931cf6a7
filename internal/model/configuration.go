package model

// Configuration is a named bucket of dependencies or artifacts.
// A resolvable configuration can be resolved into a dependency graph,
// a consumable one can be selected by other projects.
//
// The report treats configurations as a read-only snapshot.
type Configuration struct {
	Name        string
	Description string

	Resolvable bool
	Consumable bool

	// Attributes are the configuration's attributes in declaration order.
	Attributes []Attribute

	// Capabilities are the explicitly declared capabilities.
	// When empty, the project's default capability applies.
	Capabilities []Capability

	// Extends lists the names of the configurations this one directly extends.
	Extends []string
}

// Snapshot is a consistent point-in-time view of a project's configurations.
// Callers build it once and hand it to NewConfigurationReport.
type Snapshot struct {
	// Project owns the configurations.
	Project Project

	// Configurations in any order.
	Configurations []Configuration

	// IncubatingLegend overrides the legend used when incubating attributes
	// are rendered. Empty means DefaultIncubatingLegend.
	IncubatingLegend string
}

// Lookup returns the configuration with the given name.
func (s *Snapshot) Lookup(name string) (Configuration, bool) {
	for _, c := range s.Configurations {
		if c.Name == name {
			return c, true
		}
	}
	return Configuration{}, false
}
