package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/confreport/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version is recorded in the output when set.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the generating tool version in the output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// JSONReport is the JSON document written for one configuration report.
type JSONReport struct {
	// Version is the confreport version that generated this report.
	Version string `json:"version,omitempty"`

	Project model.Project `json:"project"`
	Filter  string        `json:"filter,omitempty"`

	// Message is set instead of Configurations when nothing was reportable.
	Message string `json:"message,omitempty"`

	Configurations []JSONConfiguration `json:"configurations"`
	Legends        []string            `json:"legends,omitempty"`
	Diagnostics    []model.Diagnostic  `json:"diagnostics,omitempty"`
}

// JSONConfiguration is one configuration of a JSONReport.
// Capabilities are resolved, so consumers never synthesize the default
// capability themselves.
type JSONConfiguration struct {
	Name              string                        `json:"name"`
	Description       string                        `json:"description,omitempty"`
	Classification    model.Classification          `json:"classification"`
	Capabilities      []model.Capability            `json:"capabilities"`
	DefaultCapability bool                          `json:"defaultCapability,omitempty"`
	Attributes        []model.Attribute             `json:"attributes,omitempty"`
	Extended          []model.ExtendedConfiguration `json:"extended,omitempty"`
}

// NewJSONReport converts a configuration report into its JSON document.
func NewJSONReport(report *model.ConfigurationReport, version string) *JSONReport {
	doc := &JSONReport{
		Version:        version,
		Project:        report.Project,
		Filter:         report.Filter,
		Configurations: make([]JSONConfiguration, 0, len(report.Sections)),
		Legends:        report.LegendLines(),
		Diagnostics:    report.Diagnostics,
	}

	if report.IsEmpty() {
		doc.Message = report.EmptyMessage()
	}

	for _, s := range report.Sections {
		c := JSONConfiguration{
			Name:           s.Name,
			Description:    s.Description,
			Classification: s.Classification,
			Capabilities:   s.Capabilities,
			Attributes:     s.Attributes,
			Extended:       s.Extended,
		}
		if len(c.Capabilities) == 0 {
			c.Capabilities = []model.Capability{report.Project.DefaultCapability()}
			c.DefaultCapability = true
		}
		doc.Configurations = append(doc.Configurations, c)
	}

	return doc
}

// Write outputs the report in JSON format.
func (w *JSONWriter) Write(report *model.ConfigurationReport) (int, error) {
	return w.writeJSON(NewJSONReport(report, w.version))
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
