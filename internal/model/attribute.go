package model

import (
	"encoding/json"
	"sort"
)

// AttributeValue is the display form of a typed attribute value.
//
// Build models represent attribute values as named objects (usage, category,
// bundling and so on). The report only needs their stable display string,
// so anything that can produce one satisfies this interface.
type AttributeValue interface {
	// DisplayValue returns the normalized display string, e.g. "java-runtime".
	DisplayValue() string
}

// StringValue is an AttributeValue backed by an already normalized string.
type StringValue string

// DisplayValue returns the string itself.
func (v StringValue) DisplayValue() string {
	return string(v)
}

// Attribute is a single name/value classifier attached to a configuration.
type Attribute struct {
	// Name is a dotted identifier such as "org.gradle.usage".
	Name string

	// Value provides the display string of the attribute value.
	// A nil Value is rendered as an empty string.
	Value AttributeValue

	// Incubating marks attributes whose type is still incubating.
	// Rendering one of them triggers the incubating legend.
	Incubating bool
}

// DisplayValue returns the display string of the attribute value.
func (a Attribute) DisplayValue() string {
	if a.Value == nil {
		return ""
	}
	return a.Value.DisplayValue()
}

// MarshalJSON encodes the attribute with its display value.
func (a Attribute) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name       string `json:"name"`
		Value      string `json:"value"`
		Incubating bool   `json:"incubating,omitempty"`
	}{
		Name:       a.Name,
		Value:      a.DisplayValue(),
		Incubating: a.Incubating,
	})
}

// SortedAttributes returns a copy of attrs ordered by name.
// Names are compared byte-wise, so "Z" sorts before "a".
func SortedAttributes(attrs []Attribute) []Attribute {
	sorted := make([]Attribute, len(attrs))
	copy(sorted, attrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})
	return sorted
}
