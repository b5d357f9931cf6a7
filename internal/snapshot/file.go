package snapshot

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// File represents the structure of a snapshot file.
//
// Example:
//
//	project:
//	  path: ":"
//	  name: myLib
//	incubatingAttributes:
//	  - org.gradle.category
//	configurations:
//	  - name: compileClasspath
//	    description: Compile classpath for source set 'main'.
//	    resolvable: true
//	    extendsFrom: [implementation]
//	    attributes:
//	      org.gradle.usage: java-api
//	      org.gradle.category: library
//
// JSON files use the same keys.
type File struct {
	// Project identifies the project that owns the configurations.
	Project ProjectFile `yaml:"project" json:"project"`

	// IncubatingLegend overrides the wording of the incubating legend.
	IncubatingLegend string `yaml:"incubatingLegend,omitempty" json:"incubatingLegend,omitempty"`

	// IncubatingAttributes names attributes that are incubating in every
	// configuration, in addition to per-attribute flags.
	IncubatingAttributes []string `yaml:"incubatingAttributes,omitempty" json:"incubatingAttributes,omitempty"`

	// Configurations in any order.
	Configurations []ConfigurationFile `yaml:"configurations" json:"configurations"`
}

// ProjectFile holds the project coordinates.
type ProjectFile struct {
	Path    string `yaml:"path" json:"path"`
	Name    string `yaml:"name" json:"name"`
	Group   string `yaml:"group,omitempty" json:"group,omitempty"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// ConfigurationFile holds one configuration.
type ConfigurationFile struct {
	Name         string           `yaml:"name" json:"name"`
	Description  string           `yaml:"description,omitempty" json:"description,omitempty"`
	Resolvable   bool             `yaml:"resolvable" json:"resolvable"`
	Consumable   bool             `yaml:"consumable" json:"consumable"`
	ExtendsFrom  []string         `yaml:"extendsFrom,omitempty" json:"extendsFrom,omitempty"`
	Attributes   AttributeList    `yaml:"attributes,omitempty" json:"attributes,omitempty"`
	Capabilities []CapabilityFile `yaml:"capabilities,omitempty" json:"capabilities,omitempty"`
}

// CapabilityFile holds one explicit capability.
type CapabilityFile struct {
	Group   string `yaml:"group" json:"group"`
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
}

// AttributeFile holds one attribute in list form.
type AttributeFile struct {
	Name       string `yaml:"name" json:"name"`
	Value      string `yaml:"value" json:"value"`
	Incubating bool   `yaml:"incubating,omitempty" json:"incubating,omitempty"`
}

// AttributeList accepts attributes either as a list of AttributeFile or as
// a plain name-to-value mapping.
type AttributeList []AttributeFile

// UnmarshalYAML decodes both the list and the mapping form.
func (l *AttributeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var items []AttributeFile
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	case yaml.MappingNode:
		items := make([]AttributeFile, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if value.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: attribute %q must have a scalar value", value.Line, key.Value)
			}
			items = append(items, AttributeFile{Name: key.Value, Value: value.Value})
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: attributes must be a list or a mapping", node.Line)
	}
}
