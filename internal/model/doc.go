// Package model defines the core data structures used throughout confreport.
//
// This package contains the following main types:
//   - Snapshot: A read-only view of a project and its configurations
//   - Configuration: A named bucket of attributes and capabilities
//   - ConfigurationReport: The classified, sorted result of one report run
//
// The report builder (NewConfigurationReport) lives here so that every output
// format works from the same classification, ordering and legend selection.
// Rendering is left to the report package.
package model
