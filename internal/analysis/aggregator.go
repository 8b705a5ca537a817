package analysis

import (
	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/rules"
)

// Aggregator maps extraction signals to risk codes and aggregates evidence
// per code. Signals whose rule id is absent from the mapping table are
// dropped without error: extraction rules exist independently of risk
// classification, and the contract between the two is open.
type Aggregator struct {
	mappings map[string]rules.RiskMapping
	fields   *FieldBuilder
}

// NewAggregator creates an aggregator over a loaded risk-mapping table
func NewAggregator(mappings map[string]rules.RiskMapping) *Aggregator {
	return &Aggregator{
		mappings: mappings,
		fields:   NewFieldBuilder(),
	}
}

// Analyze aggregates signals into risk items, computes the overall risk
// level and derives structural risk fields.
func (a *Aggregator) Analyze(signals []model.ExtractionSignal) model.AnalysisOutput {
	type evidence struct {
		ruleIDs     []string
		seen        map[string]bool
		severity    model.Severity
		description string
	}

	byCode := make(map[string]*evidence)
	var codeOrder []string

	for _, signal := range signals {
		mapping, known := a.mappings[signal.RuleID]
		if !known {
			continue
		}

		ev, exists := byCode[mapping.RiskCode]
		if !exists {
			ev = &evidence{seen: make(map[string]bool)}
			byCode[mapping.RiskCode] = ev
			codeOrder = append(codeOrder, mapping.RiskCode)
		}
		if !ev.seen[signal.RuleID] {
			ev.seen[signal.RuleID] = true
			ev.ruleIDs = append(ev.ruleIDs, signal.RuleID)
		}
		// Last write wins; all rules mapping to one code share severity and
		// description by construction, so no real conflict occurs.
		ev.severity = mapping.Severity
		ev.description = mapping.Description
	}

	riskItems := make([]model.RiskItem, 0, len(codeOrder))
	riskFlags := make([]string, 0, len(codeOrder))
	severities := make([]model.Severity, 0, len(codeOrder))

	for _, code := range codeOrder {
		ev := byCode[code]
		riskItems = append(riskItems, model.RiskItem{
			RiskCode:      code,
			Severity:      ev.severity,
			EvidenceRules: ev.ruleIDs,
			Description:   ev.description,
		})
		riskFlags = append(riskFlags, code)
		severities = append(severities, ev.severity)
	}

	summary := model.AnalysisSummary{
		RiskLevel:  model.MaxSeverity(severities),
		RiskFlags:  riskFlags,
		Confidence: 1.0, // Rule-based matching, nothing to estimate
	}

	return model.AnalysisOutput{
		Summary:    summary,
		RiskItems:  riskItems,
		RiskFields: a.fields.Build(riskItems, signals),
	}
}
