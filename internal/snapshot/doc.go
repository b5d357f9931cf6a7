// Package snapshot loads project configuration snapshots from YAML or JSON files.
//
// A snapshot is the point-in-time view of a project's configurations that
// the report is built from. The file format is documented on File.
package snapshot
