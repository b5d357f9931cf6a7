package report

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/confreport/internal/model"
)

// ruleWidth is the width of the dashed rule framing each configuration header.
const ruleWidth = 50

// Block headers and line prefixes of the text report.
const (
	capabilitiesHeader      = "Capabilities"
	attributesHeader        = "Attributes"
	extendedHeader          = "Extended Configurations"
	itemPrefix              = "    - "
	defaultCapabilitySuffix = " (default capability)"
)

// SimpleWriter outputs the human-readable text report.
// The output grammar is fixed so that reports can be compared byte for byte:
//
//	--------------------------------------------------
//	Configuration compileClasspath
//	--------------------------------------------------
//	Description = Compile classpath for source set 'main'.
//
//	Capabilities
//	    - :myLib:unspecified (default capability)
//	Attributes
//	    - org.gradle.category = library
//	    - org.gradle.usage    = java-api
type SimpleWriter struct {
	baseWriter
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer) *SimpleWriter {
	return &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in text form.
func (w *SimpleWriter) Write(report *model.ConfigurationReport) (int, error) {
	return io.WriteString(w.output, Render(report))
}

// Render returns the text form of the report. The result always ends with a newline.
func Render(report *model.ConfigurationReport) string {
	var sb strings.Builder

	if report.IsEmpty() {
		sb.WriteString(report.EmptyMessage())
		sb.WriteString("\n")
		return sb.String()
	}

	for i, section := range report.Sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		writeSection(&sb, report.Project, section)
	}

	if legends := report.LegendLines(); len(legends) > 0 {
		sb.WriteString("\n")
		for _, line := range legends {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Generate builds the report for the snapshot and renders it as text.
// Diagnostics are returned to the caller instead of being logged.
func Generate(snapshot *model.Snapshot, opts model.Options) (string, []model.Diagnostic) {
	report := model.NewConfigurationReport(snapshot, opts)
	return Render(report), report.Diagnostics
}

// writeSection writes one configuration section.
func writeSection(sb *strings.Builder, project model.Project, section model.Section) {
	rule := strings.Repeat("-", ruleWidth)

	sb.WriteString(rule)
	sb.WriteString("\n")
	sb.WriteString("Configuration ")
	sb.WriteString(section.Name)
	if section.Legacy() {
		sb.WriteString(" ")
		sb.WriteString(model.LegacyMarker)
	}
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")

	if section.Description != "" {
		sb.WriteString("Description = ")
		sb.WriteString(section.Description)
		sb.WriteString("\n\n")
	}

	writeBlock(sb, capabilitiesHeader, FormatCapabilities(section.Capabilities, project))
	writeBlock(sb, attributesHeader, FormatAttributes(section.Attributes))
	writeBlock(sb, extendedHeader, formatExtended(section.Extended))
}

// writeBlock writes a header followed by its lines. Nothing is written
// when there are no lines.
func writeBlock(sb *strings.Builder, header string, lines []string) {
	if len(lines) == 0 {
		return
	}
	sb.WriteString(header)
	sb.WriteString("\n")
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
}

// FormatAttributes renders attributes as aligned lines sorted by name.
// The "=" of every line sits in the same column: names are right-padded to
// the longest name. An empty input yields no lines.
func FormatAttributes(attrs []model.Attribute) []string {
	if len(attrs) == 0 {
		return nil
	}

	sorted := model.SortedAttributes(attrs)

	width := 0
	for _, attr := range sorted {
		if n := utf8.RuneCountInString(attr.Name); n > width {
			width = n
		}
	}

	lines := make([]string, 0, len(sorted))
	for _, attr := range sorted {
		padding := strings.Repeat(" ", width-utf8.RuneCountInString(attr.Name))
		lines = append(lines, itemPrefix+attr.Name+padding+" = "+attr.DisplayValue())
	}
	return lines
}

// FormatCapabilities renders capabilities in their given order.
// Without explicit capabilities, the project's default capability is
// rendered instead, so the result is never empty.
func FormatCapabilities(caps []model.Capability, project model.Project) []string {
	if len(caps) == 0 {
		return []string{itemPrefix + project.DefaultCapability().String() + defaultCapabilitySuffix}
	}

	lines := make([]string, 0, len(caps))
	for _, c := range caps {
		lines = append(lines, itemPrefix+c.String())
	}
	return lines
}

// formatExtended renders extended configuration names, marking transitive ones.
func formatExtended(extended []model.ExtendedConfiguration) []string {
	lines := make([]string, 0, len(extended))
	for _, e := range extended {
		line := itemPrefix + e.Name
		if e.Transitive {
			line += " " + model.TransitiveMarker
		}
		lines = append(lines, line)
	}
	return lines
}
