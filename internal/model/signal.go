package model

import "fmt"

// RuleType categorizes an extraction rule
type RuleType string

const (
	RuleTypeKeyword    RuleType = "keyword"    // Single-word substring scan
	RuleTypePhrase     RuleType = "phrase"     // Multi-word substring scan
	RuleTypeStructural RuleType = "structural" // Date/currency/line-prefix detection
)

// ParseRuleType validates a rule type string at table-load time
func ParseRuleType(s string) (RuleType, error) {
	switch RuleType(s) {
	case RuleTypeKeyword, RuleTypePhrase, RuleTypeStructural:
		return RuleType(s), nil
	default:
		return "", fmt.Errorf("unknown rule_type %q", s)
	}
}

// StructuralPattern selects the sub-kind of a structural rule
type StructuralPattern string

const (
	PatternDate      StructuralPattern = "date"       // \d{1,2}[/-]\d{1,2}[/-]\d{2,4}
	PatternCurrency  StructuralPattern = "currency"   // $ followed by grouped digits
	PatternLineStart StructuralPattern = "line_start" // Line begins with a configured label
)

// ParseStructuralPattern validates a structural pattern string at table-load time
func ParseStructuralPattern(s string) (StructuralPattern, error) {
	switch StructuralPattern(s) {
	case PatternDate, PatternCurrency, PatternLineStart:
		return StructuralPattern(s), nil
	default:
		return "", fmt.Errorf("unknown structural pattern %q", s)
	}
}

// ExtractionSignal is a single pattern match produced by the extractor.
// Signals are consumed by the risk aggregator and the risk-field builder.
type ExtractionSignal struct {
	RuleID      string         `json:"rule_id"`            // Rule that matched
	Type        RuleType       `json:"type"`               // keyword, phrase, structural
	MatchedText string         `json:"matched_text"`       // The text that was hit
	SegmentID   string         `json:"segment_id"`         // Segment where the match occurred
	Order       int            `json:"order"`              // Emission order across all segments
	Position    int            `json:"position"`           // Character offset within the segment
	Metadata    map[string]any `json:"metadata,omitempty"` // Pattern kind, line number, matched prefix
}

// SignalType names a categorical risk signal consumed by the trap engine.
// These are higher-level events than extraction signals; several detector
// sets share types on purpose.
type SignalType string

const (
	SignalAutoRenewal             SignalType = "AUTO_RENEWAL"
	SignalShortNoticeWindow       SignalType = "SHORT_NOTICE_WINDOW"
	SignalUserActionRequired      SignalType = "USER_ACTION_REQUIRED"
	SignalUnilateralModification  SignalType = "UNILATERAL_MODIFICATION"
	SignalSilentAcceptance        SignalType = "SILENT_ACCEPTANCE"
	SignalFinalInterpretation     SignalType = "FINAL_INTERPRETATION_RIGHT"
	SignalHighTerminationFee      SignalType = "HIGH_TERMINATION_FEE"
	SignalPenaltyEscalation       SignalType = "PENALTY_ESCALATION"
	SignalExitConditionRestraint  SignalType = "EXIT_CONDITION_RESTRICTION"
	SignalAmbiguousTerm           SignalType = "AMBIGUOUS_TERM"
	SignalSubjectiveCriteria      SignalType = "SUBJECTIVE_CRITERIA"
)

// RiskSignal is a categorical risk event fed to the trap engine.
type RiskSignal struct {
	Type       SignalType     `json:"type"`
	Confidence Severity       `json:"confidence"`
	Details    map[string]any `json:"details,omitempty"`
}
