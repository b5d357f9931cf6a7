// Package report renders configuration reports.
//
// This package contains writers for different output formats:
//   - SimpleWriter: The column-aligned text report printed to the console
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for documentation
//
// Report data (classification, ordering, legends) is computed by the model
// package; writers only decide how it looks. Writers implement the Writer
// interface so they can be used interchangeably and composed.
package report
