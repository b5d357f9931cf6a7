package report

import (
	"io"

	"github.com/nao1215/confreport/internal/model"
)

// Writer renders a configuration report to its destination.
type Writer interface {
	// Write renders the report and returns the number of bytes written.
	Write(report *model.ConfigurationReport) (int, error)
}

// Format selects a report rendering.
type Format int

const (
	// FormatText is the column-aligned console report.
	FormatText Format = iota
	// FormatJSON is one JSON document per report.
	FormatJSON
	// FormatMarkdown is a Markdown document per report.
	FormatMarkdown
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatMarkdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// NewWriter returns the writer for format. version is recorded in JSON
// output and ignored by the other formats. Unknown formats fall back to text.
func NewWriter(format Format, output io.Writer, version string) Writer {
	switch format {
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(version))
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	default:
		return NewSimpleWriter(output)
	}
}

// baseWriter holds the destination shared by all writers.
type baseWriter struct {
	output io.Writer
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
