package model

import (
	"sort"
)

// Options controls which configurations a report includes.
type Options struct {
	// IncludeAll also reports legacy configurations (resolvable and consumable).
	IncludeAll bool

	// Configuration restricts the report to the configuration with this name.
	// Empty means every reportable configuration.
	Configuration string

	// Recursive lists transitively extended configurations in addition to
	// the directly extended ones.
	Recursive bool
}

// ExtendedConfiguration is an entry of a section's extended configurations block.
type ExtendedConfiguration struct {
	Name       string `json:"name"`
	Transitive bool   `json:"transitive,omitempty"`
}

// Section is the rendered view of one reportable configuration.
type Section struct {
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Classification Classification `json:"classification"`

	// Attributes are sorted by name.
	Attributes []Attribute `json:"attributes,omitempty"`

	// Capabilities are the explicit capabilities in declaration order.
	// An empty slice means the project's default capability applies.
	Capabilities []Capability `json:"capabilities,omitempty"`

	// Extended is sorted by name.
	Extended []ExtendedConfiguration `json:"extended,omitempty"`
}

// Legacy reports whether the section describes a legacy configuration.
func (s Section) Legacy() bool {
	return s.Classification == ReportableLegacy
}

// ConfigurationReport is the outcome of one report generation.
// It is built fresh for every call and holds no references to the snapshot.
type ConfigurationReport struct {
	// Project is the project the configurations belong to.
	Project Project `json:"project"`

	// Filter is the configuration name the report was restricted to, if any.
	Filter string `json:"filter,omitempty"`

	// Sections are sorted by configuration name.
	Sections []Section `json:"sections"`

	// Legends apply to the sections, in emission order.
	Legends []Legend `json:"legends,omitempty"`

	// IncubatingLegend is the wording for LegendIncubating.
	IncubatingLegend string `json:"-"`

	// Diagnostics are the side-channel events raised while building the report.
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// NewConfigurationReport classifies, filters and sorts the snapshot's
// configurations and selects the legends that apply.
//
// It never logs. Every legacy configuration that ends up in the report
// yields one deprecation Diagnostic, which the caller dispatches.
func NewConfigurationReport(snapshot *Snapshot, opts Options) *ConfigurationReport {
	report := &ConfigurationReport{
		Project:          snapshot.Project,
		Filter:           opts.Configuration,
		Sections:         make([]Section, 0),
		IncubatingLegend: snapshot.IncubatingLegend,
	}

	for _, c := range snapshot.Configurations {
		if opts.Configuration != "" && c.Name != opts.Configuration {
			continue
		}

		class := Classify(c)
		if !class.Included(opts.IncludeAll) {
			continue
		}

		report.Sections = append(report.Sections, Section{
			Name:           c.Name,
			Description:    c.Description,
			Classification: class,
			Attributes:     SortedAttributes(c.Attributes),
			Capabilities:   append([]Capability(nil), c.Capabilities...),
			Extended:       extendedConfigurations(snapshot, c, opts.Recursive),
		})
	}

	sort.SliceStable(report.Sections, func(i, j int) bool {
		return report.Sections[i].Name < report.Sections[j].Name
	})

	for _, s := range report.Sections {
		if s.Legacy() {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				Kind:          DiagnosticDeprecation,
				Project:       snapshot.Project.Path,
				ProjectName:   snapshot.Project.Name,
				Configuration: s.Name,
				Message:       LegacyLegend,
			})
		}
	}

	report.Legends = Legends(report.Sections)

	return report
}

// IsEmpty reports whether no configuration qualified for the report.
func (r *ConfigurationReport) IsEmpty() bool {
	return len(r.Sections) == 0
}

// EmptyMessage returns the sentence printed instead of sections when the
// report is empty.
func (r *ConfigurationReport) EmptyMessage() string {
	if r.Filter != "" {
		return "There are no resolvable configurations named " + r.Filter + " on project " + r.Project.Name
	}
	return "There are no resolvable configurations on project " + r.Project.Name
}

// LegendLines returns the full text of every legend that applies.
func (r *ConfigurationReport) LegendLines() []string {
	lines := make([]string, 0, len(r.Legends))
	for _, l := range r.Legends {
		lines = append(lines, l.Text(r.IncubatingLegend))
	}
	return lines
}

// Legends returns the legends triggered by the given sections.
// The order is fixed: legacy, incubating, transitive.
func Legends(sections []Section) []Legend {
	var legacy, incubating, transitive bool
	for _, s := range sections {
		if s.Legacy() {
			legacy = true
		}
		for _, attr := range s.Attributes {
			if attr.Incubating {
				incubating = true
			}
		}
		for _, e := range s.Extended {
			if e.Transitive {
				transitive = true
			}
		}
	}

	var legends []Legend
	if legacy {
		legends = append(legends, LegendLegacy)
	}
	if incubating {
		legends = append(legends, LegendIncubating)
	}
	if transitive {
		legends = append(legends, LegendTransitive)
	}
	return legends
}

// extendedConfigurations resolves the configurations c extends.
// Direct parents are always listed. With recursive set, the parents of
// parents are followed through the snapshot and marked transitive.
// Cycles are tolerated; every name appears once and c never lists itself.
func extendedConfigurations(snapshot *Snapshot, c Configuration, recursive bool) []ExtendedConfiguration {
	if len(c.Extends) == 0 {
		return nil
	}

	seen := map[string]bool{c.Name: true}
	var result []ExtendedConfiguration

	queue := make([]string, 0, len(c.Extends))
	for _, name := range c.Extends {
		if seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, ExtendedConfiguration{Name: name})
		queue = append(queue, name)
	}

	for recursive && len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]

		parent, ok := snapshot.Lookup(name)
		if !ok {
			continue
		}
		for _, ext := range parent.Extends {
			if seen[ext] {
				continue
			}
			seen[ext] = true
			result = append(result, ExtendedConfiguration{Name: ext, Transitive: true})
			queue = append(queue, ext)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}
