package report

import (
	"io"

	"github.com/nao1215/confreport/internal/model"
	"github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing, e.g. pasting a
// project's configuration layout into a pull request.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ConfigurationReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Resolvable Configurations of " + report.Project.Name)
	md.PlainText("")

	if report.IsEmpty() {
		md.Note(report.EmptyMessage())
		md.PlainText("")
		return len(md.String()), md.Build()
	}

	title := cases.Title(language.English)
	for _, section := range report.Sections {
		w.writeSection(md, report.Project, section, title)
	}

	w.writeLegends(md, report)

	return len(md.String()), md.Build()
}

// writeSection writes one configuration as an H2 block.
func (w *MarkdownWriter) writeSection(md *markdown.Markdown, project model.Project, section model.Section, title cases.Caser) {
	heading := section.Name
	if section.Legacy() {
		heading += " " + model.LegacyMarker
	}
	md.H2(heading)
	md.PlainText("")

	rows := [][]string{
		{"Classification", title.String(section.Classification.String())},
	}
	if section.Description != "" {
		rows = append(rows, []string{"Description", section.Description})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	md.PlainText("**" + capabilitiesHeader + "**")
	md.PlainText("")
	if len(section.Capabilities) == 0 {
		md.BulletList("`" + project.DefaultCapability().String() + "`" + defaultCapabilitySuffix)
	} else {
		caps := make([]string, 0, len(section.Capabilities))
		for _, c := range section.Capabilities {
			caps = append(caps, "`"+c.String()+"`")
		}
		md.BulletList(caps...)
	}
	md.PlainText("")

	if len(section.Attributes) > 0 {
		md.PlainText("**" + attributesHeader + "**")
		md.PlainText("")

		rows := make([][]string, 0, len(section.Attributes))
		for _, attr := range model.SortedAttributes(section.Attributes) {
			incubating := ""
			if attr.Incubating {
				incubating = "yes"
			}
			rows = append(rows, []string{"`" + attr.Name + "`", attr.DisplayValue(), incubating})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Attribute", "Value", "Incubating"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if len(section.Extended) > 0 {
		md.PlainText("**" + extendedHeader + "**")
		md.PlainText("")
		md.BulletList(formatExtendedMarkdown(section.Extended)...)
		md.PlainText("")
	}
}

// writeLegends writes the legends as a note at the end of the document.
func (w *MarkdownWriter) writeLegends(md *markdown.Markdown, report *model.ConfigurationReport) {
	lines := report.LegendLines()
	if len(lines) == 0 {
		return
	}

	md.HorizontalRule()
	md.PlainText("")
	md.BulletList(lines...)
	md.PlainText("")

	if len(report.Diagnostics) > 0 {
		md.Warningf("%d legacy configuration(s) reported. They are deprecated and kept for backwards compatibility.",
			len(report.Diagnostics))
		md.PlainText("")
	}
}

// formatExtendedMarkdown renders extended configuration names for a bullet list.
func formatExtendedMarkdown(extended []model.ExtendedConfiguration) []string {
	items := make([]string, 0, len(extended))
	for _, e := range extended {
		item := "`" + e.Name + "`"
		if e.Transitive {
			item += " " + model.TransitiveMarker
		}
		items = append(items, item)
	}
	return items
}
