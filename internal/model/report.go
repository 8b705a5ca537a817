package model

import "time"

// Report is the audit envelope around one pipeline invocation. The gateway
// output is the only tier-content artifact; the rest exists so every finding
// can be traced back to its segments and signals.
type Report struct {
	SourceID   string    `json:"source_id,omitempty"` // Caller-supplied identifier
	AnalyzedAt time.Time `json:"analyzed_at"`
	Stats      TextStats `json:"stats"`

	Segments []TextSegment      `json:"segments"`
	Signals  []ExtractionSignal `json:"signals"`

	Analysis AnalysisOutput `json:"analysis"`
	Traps    []Trap         `json:"traps"`
	Chains   []RiskChain    `json:"chains"`

	Gateway GatewayOutput `json:"gateway"`
}
