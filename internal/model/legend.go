package model

// Legend explains a marker used in the report body.
type Legend int

const (
	// LegendLegacy explains the "(l)" marker on legacy configurations.
	LegendLegacy Legend = iota

	// LegendIncubating is emitted when incubating attributes were rendered.
	LegendIncubating

	// LegendTransitive explains the "(t)" marker on transitively extended configurations.
	LegendTransitive
)

// Markers appended to names in the report body.
const (
	LegacyMarker     = "(l)"
	TransitiveMarker = "(t)"
)

// Legend texts.
const (
	// LegacyLegend is also the message of the deprecation diagnostic
	// raised for each reported legacy configuration.
	LegacyLegend = "Legacy or deprecated configuration. Those are variants created for backwards compatibility which are both resolvable and consumable."

	// DefaultIncubatingLegend is used when the snapshot does not supply its own wording.
	DefaultIncubatingLegend = "(i) Configuration uses incubating attributes such as Category.VERIFICATION."

	// TransitiveLegend explains the transitive marker.
	TransitiveLegend = "Configuration extended transitively."
)

// String returns the legend's short name.
func (l Legend) String() string {
	switch l {
	case LegendLegacy:
		return "legacy"
	case LegendIncubating:
		return "incubating"
	case LegendTransitive:
		return "transitive"
	default:
		return "unknown"
	}
}

// MarshalText encodes the legend by name.
func (l Legend) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Text returns the full legend line.
// incubating is the wording supplied by the attribute model; it is only
// used for LegendIncubating and falls back to DefaultIncubatingLegend.
func (l Legend) Text(incubating string) string {
	switch l {
	case LegendLegacy:
		return LegacyMarker + " " + LegacyLegend
	case LegendIncubating:
		if incubating == "" {
			return DefaultIncubatingLegend
		}
		return incubating
	case LegendTransitive:
		return TransitiveMarker + " " + TransitiveLegend
	default:
		return ""
	}
}
