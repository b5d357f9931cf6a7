package model

// DiagnosticKind categorizes a diagnostic raised while building a report.
type DiagnosticKind string

// DiagnosticDeprecation is raised once for every legacy configuration
// included in a report.
const DiagnosticDeprecation DiagnosticKind = "deprecation"

// Diagnostic is a side-channel event produced during report generation.
// The report builder never logs; callers dispatch diagnostics themselves.
type Diagnostic struct {
	Kind DiagnosticKind `json:"kind"`

	// Project is the project path. Root projects all share ":", so
	// ProjectName is needed to tell two of them apart.
	Project       string `json:"project"`
	ProjectName   string `json:"projectName"`
	Configuration string `json:"configuration"`
	Message       string `json:"message"`
}
