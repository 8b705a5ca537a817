package model

import "fmt"

// RiskAxis is one of three cross-cutting dimensions along which structural
// unfairness is classified.
type RiskAxis string

const (
	AxisTemporal       RiskAxis = "temporal"
	AxisResponsibility RiskAxis = "responsibility"
	AxisLiability      RiskAxis = "liability"
)

// ParseRiskAxis validates an axis string at table-load time
func ParseRiskAxis(s string) (RiskAxis, error) {
	switch RiskAxis(s) {
	case AxisTemporal, AxisResponsibility, AxisLiability:
		return RiskAxis(s), nil
	default:
		return "", fmt.Errorf("unknown risk axis %q", s)
	}
}

// RiskField is a structural risk derived from signal text and risk codes.
// Fields are not 1:1 with risk items; multiple axes may fire for one document.
type RiskField struct {
	Axis             RiskAxis `json:"axis"`
	AffectedParty    string   `json:"affected_party"` // Party bearing the risk (always "user")
	Intensity        Severity `json:"intensity"`
	Compounding      bool     `json:"compounding"` // Amplifies when combined with other risks
	Description      string   `json:"description"`
	SourceSegmentIDs []string `json:"source_segment_ids"` // Segments whose signals contributed
}
