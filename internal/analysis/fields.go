package analysis

import (
	"strings"

	"github.com/markforge8/ClearLease/internal/model"
)

// Keyword sets for the three axis detectors. These are substring heuristics
// carried over unchanged: tests and downstream tiers depend on the exact
// matching outcomes, so they must not be "improved" into smarter matching.
var (
	responsibilityKeywords = []string{
		"responsible for",
		"maintenance",
		"repair",
		"hvac",
		"plumbing",
		"electrical",
	}

	responsibilityNegations = []string{
		"not be responsible for",
		"not responsible for",
	}

	liabilityPhrases = []string{
		"not be liable",
		"not be responsible for",
	}

	liabilitySourceKeywords = []string{
		"not liable",
		"not be held liable",
		"not be responsible",
		"disclaimer",
		"as-is",
		"as is",
	}

	autoRenewalPhrases = []string{
		"automatically renew",
		"automatic renewal",
		"auto renew",
		"shall automatically renew",
	}

	temporalSourceKeywords = []string{
		"automatically renew",
		"automatic renewal",
		"auto renew",
		"shall automatically renew",
		"early termination",
		"penalty",
	}
)

// FieldBuilder derives cross-cutting risk fields from risk items and signal
// text. Each axis detector is independent; the liability phrase trigger and
// the responsibility negation guard overlap on purpose.
type FieldBuilder struct{}

// NewFieldBuilder creates a new field builder
func NewFieldBuilder() *FieldBuilder {
	return &FieldBuilder{}
}

// Build evaluates the three axis detectors. Each fired axis yields exactly
// one field with a fixed intensity/compounding pair.
func (b *FieldBuilder) Build(riskItems []model.RiskItem, signals []model.ExtractionSignal) []model.RiskField {
	var fields []model.RiskField

	riskCodes := make(map[string]bool, len(riskItems))
	for _, item := range riskItems {
		riskCodes[item.RiskCode] = true
	}

	if b.hasResponsibilityTransfer(signals) {
		fields = append(fields, model.RiskField{
			Axis:             model.AxisResponsibility,
			AffectedParty:    "user",
			Intensity:        model.SeverityHigh,
			Compounding:      true,
			Description:      "Maintenance obligations are shifted onto the user.",
			SourceSegmentIDs: sourceSegments(signals, responsibilityKeywords),
		})
	}

	if b.hasLiabilityRisk(signals, riskCodes) {
		fields = append(fields, model.RiskField{
			Axis:             model.AxisLiability,
			AffectedParty:    "user",
			Intensity:        model.SeverityHigh,
			Compounding:      true,
			Description:      "The counterparty limits or excludes its own liability.",
			SourceSegmentIDs: sourceSegments(signals, liabilitySourceKeywords),
		})
	}

	if b.hasTemporalRisk(signals, riskCodes) {
		fields = append(fields, model.RiskField{
			Axis:             model.AxisTemporal,
			AffectedParty:    "user",
			Intensity:        model.SeverityMedium,
			Compounding:      false,
			Description:      "The agreement auto-renews or penalizes early exit.",
			SourceSegmentIDs: sourceSegments(signals, temporalSourceKeywords),
		})
	}

	return fields
}

// hasResponsibilityTransfer fires on maintenance keywords. The negation
// guard excludes a signal from contributing; it does not flip polarity.
func (b *FieldBuilder) hasResponsibilityTransfer(signals []model.ExtractionSignal) bool {
	for _, signal := range signals {
		text := strings.ToLower(signal.MatchedText)
		if containsAny(text, responsibilityNegations) {
			continue
		}
		if containsAny(text, responsibilityKeywords) {
			return true
		}
	}
	return false
}

// hasLiabilityRisk has two independent trigger paths: the
// LIABILITY_LIMITATION risk code, or liability phrasing in any matched text.
// The second path is not deduplicated against the responsibility negation
// guard; the same signal may suppress one axis and fire the other.
func (b *FieldBuilder) hasLiabilityRisk(signals []model.ExtractionSignal, riskCodes map[string]bool) bool {
	if riskCodes["LIABILITY_LIMITATION"] {
		return true
	}
	for _, signal := range signals {
		if containsAny(strings.ToLower(signal.MatchedText), liabilityPhrases) {
			return true
		}
	}
	return false
}

// hasTemporalRisk fires on an early-termination penalty code or explicit
// auto-renewal phrasing.
func (b *FieldBuilder) hasTemporalRisk(signals []model.ExtractionSignal, riskCodes map[string]bool) bool {
	if riskCodes["EARLY_TERMINATION_PENALTY"] {
		return true
	}
	for _, signal := range signals {
		if containsAny(strings.ToLower(signal.MatchedText), autoRenewalPhrases) {
			return true
		}
	}
	return false
}

// sourceSegments collects the segments whose signals matched any of the
// given keywords, in first-seen order.
func sourceSegments(signals []model.ExtractionSignal, keywords []string) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, signal := range signals {
		if !containsAny(strings.ToLower(signal.MatchedText), keywords) {
			continue
		}
		if !seen[signal.SegmentID] {
			seen[signal.SegmentID] = true
			ids = append(ids, signal.SegmentID)
		}
	}
	return ids
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
