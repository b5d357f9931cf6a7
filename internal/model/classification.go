package model

// Classification describes how a configuration takes part in the report.
// String gives the stable name used in JSON and log output.
type Classification int

const (
	// Excluded configurations are never reported because they are not resolvable.
	Excluded Classification = iota

	// Reportable configurations are resolvable and not consumable.
	Reportable

	// ReportableLegacy configurations are both resolvable and consumable.
	// They are kept for backwards compatibility and only reported on request.
	ReportableLegacy
)

// String returns a human-readable name for the classification.
func (c Classification) String() string {
	switch c {
	case Excluded:
		return "excluded"
	case Reportable:
		return "reportable"
	case ReportableLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// MarshalText encodes the classification by name.
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify determines whether a configuration is reportable and whether it is legacy.
// Configurations that are not resolvable are excluded regardless of the
// consumable flag.
func Classify(c Configuration) Classification {
	switch {
	case !c.Resolvable:
		return Excluded
	case c.Consumable:
		return ReportableLegacy
	default:
		return Reportable
	}
}

// Included reports whether a configuration with this classification
// belongs in the report. Legacy configurations need includeAll.
func (c Classification) Included(includeAll bool) bool {
	switch c {
	case Reportable:
		return true
	case ReportableLegacy:
		return includeAll
	default:
		return false
	}
}
