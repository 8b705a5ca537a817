package model

import "fmt"

// Severity is the shared low/medium/high scale used for risk items, trap
// severity and field intensity.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// ParseSeverity validates a severity string at table-load time
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s), nil
	default:
		return "", fmt.Errorf("unknown severity %q", s)
	}
}

// Rank returns the precedence of a severity (high > medium > low).
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 3
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 1
	default:
		return 0
	}
}

// MaxSeverity returns the highest severity in the list, or low for an empty list.
func MaxSeverity(severities []Severity) Severity {
	max := SeverityLow
	for _, s := range severities {
		if s.Rank() > max.Rank() {
			max = s
		}
	}
	return max
}

// RiskItem is one distinct contractual risk triggered by at least one signal.
// The aggregation key is RiskCode; evidence accumulates across all signals
// that mapped to the code.
type RiskItem struct {
	RiskCode      string   `json:"risk_code"`
	Severity      Severity `json:"severity"`
	EvidenceRules []string `json:"evidence_rules"` // rule_ids that contributed, first-seen order
	Description   string   `json:"description"`
}

// AnalysisSummary summarizes the aggregated risk picture.
// Confidence is always 1.0: matching is rule-based, there is nothing to estimate.
// The field stays in the schema for compatibility but is never rendered to users.
type AnalysisSummary struct {
	RiskLevel  Severity `json:"risk_level"` // Max severity among risk items, low if none
	RiskFlags  []string `json:"risk_flags"` // Risk codes in emission order
	Confidence float64  `json:"confidence"`
}

// AnalysisOutput is the combined result of risk aggregation and the
// structural risk-field builder.
type AnalysisOutput struct {
	Summary    AnalysisSummary `json:"analysis_summary"`
	RiskItems  []RiskItem      `json:"risk_items"`
	RiskFields []RiskField     `json:"risk_fields"`
}
