package analysis

import (
	"testing"

	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/rules"
)

func testMappings() map[string]rules.RiskMapping {
	return map[string]rules.RiskMapping{
		"rule_auto_renewal": {
			RiskCode:    "AUTO_RENEWAL",
			Severity:    model.SeverityMedium,
			Description: "The agreement renews by itself unless the user acts in time.",
		},
		"rule_maintenance": {
			RiskCode:    "MAINTENANCE_TRANSFER",
			Severity:    model.SeverityMedium,
			Description: "Maintenance or repair duties are shifted onto the user.",
		},
		"rule_responsibility": {
			RiskCode:    "MAINTENANCE_TRANSFER",
			Severity:    model.SeverityMedium,
			Description: "Maintenance or repair duties are shifted onto the user.",
		},
		"rule_liability": {
			RiskCode:    "LIABILITY_LIMITATION",
			Severity:    model.SeverityHigh,
			Description: "The counterparty limits or excludes its own liability.",
		},
	}
}

func sig(ruleID, text string) model.ExtractionSignal {
	return model.ExtractionSignal{
		RuleID:      ruleID,
		Type:        model.RuleTypePhrase,
		MatchedText: text,
		SegmentID:   "seg_0",
	}
}

func TestAggregator_BasicAggregation(t *testing.T) {
	a := NewAggregator(testMappings())

	out := a.Analyze([]model.ExtractionSignal{
		sig("rule_auto_renewal", "automatically renew"),
		sig("rule_auto_renewal", "automatic renewal"),
	})

	if len(out.RiskItems) != 1 {
		t.Fatalf("expected 1 risk item, got %d", len(out.RiskItems))
	}
	item := out.RiskItems[0]
	if item.RiskCode != "AUTO_RENEWAL" {
		t.Errorf("expected AUTO_RENEWAL, got %s", item.RiskCode)
	}
	if item.Severity != model.SeverityMedium {
		t.Errorf("expected medium severity, got %s", item.Severity)
	}
	// Two signals from the same rule contribute one evidence entry
	if len(item.EvidenceRules) != 1 || item.EvidenceRules[0] != "rule_auto_renewal" {
		t.Errorf("expected deduplicated evidence [rule_auto_renewal], got %v", item.EvidenceRules)
	}
}

func TestAggregator_MultipleRulesOneCode(t *testing.T) {
	a := NewAggregator(testMappings())

	out := a.Analyze([]model.ExtractionSignal{
		sig("rule_maintenance", "maintenance"),
		sig("rule_responsibility", "responsible for"),
	})

	if len(out.RiskItems) != 1 {
		t.Fatalf("expected 1 risk item, got %d", len(out.RiskItems))
	}
	if len(out.RiskItems[0].EvidenceRules) != 2 {
		t.Errorf("expected 2 evidence rules, got %v", out.RiskItems[0].EvidenceRules)
	}
}

func TestAggregator_UnknownRuleIDsDropped(t *testing.T) {
	a := NewAggregator(testMappings())

	out := a.Analyze([]model.ExtractionSignal{
		sig("rule_dates", "01/15/2024"),
		sig("rule_unknown", "whatever"),
	})

	if len(out.RiskItems) != 0 {
		t.Errorf("expected 0 risk items for unmapped rules, got %d", len(out.RiskItems))
	}
	if out.Summary.RiskLevel != model.SeverityLow {
		t.Errorf("expected low risk level, got %s", out.Summary.RiskLevel)
	}
	if len(out.Summary.RiskFlags) != 0 {
		t.Errorf("expected no risk flags, got %v", out.Summary.RiskFlags)
	}
}

func TestAggregator_MaxSeverityWins(t *testing.T) {
	a := NewAggregator(testMappings())

	out := a.Analyze([]model.ExtractionSignal{
		sig("rule_auto_renewal", "automatically renew"),
		sig("rule_maintenance", "maintenance"),
		sig("rule_liability", "not be liable"),
	})

	if len(out.RiskItems) != 3 {
		t.Fatalf("expected 3 risk items, got %d", len(out.RiskItems))
	}
	// One high item among mediums pushes the overall level to high
	if out.Summary.RiskLevel != model.SeverityHigh {
		t.Errorf("expected high risk level, got %s", out.Summary.RiskLevel)
	}
	if len(out.Summary.RiskFlags) != 3 {
		t.Errorf("expected 3 risk flags, got %v", out.Summary.RiskFlags)
	}
}

func TestAggregator_FirstSeenCodeOrder(t *testing.T) {
	a := NewAggregator(testMappings())

	out := a.Analyze([]model.ExtractionSignal{
		sig("rule_liability", "not be liable"),
		sig("rule_auto_renewal", "automatically renew"),
		sig("rule_liability", "disclaimer"),
	})

	if len(out.RiskItems) != 2 {
		t.Fatalf("expected 2 risk items, got %d", len(out.RiskItems))
	}
	if out.RiskItems[0].RiskCode != "LIABILITY_LIMITATION" {
		t.Errorf("expected LIABILITY_LIMITATION first, got %s", out.RiskItems[0].RiskCode)
	}
	if out.RiskItems[1].RiskCode != "AUTO_RENEWAL" {
		t.Errorf("expected AUTO_RENEWAL second, got %s", out.RiskItems[1].RiskCode)
	}
}

func TestAggregator_EmptySignals(t *testing.T) {
	a := NewAggregator(testMappings())

	out := a.Analyze(nil)

	if len(out.RiskItems) != 0 {
		t.Errorf("expected 0 risk items, got %d", len(out.RiskItems))
	}
	if out.Summary.RiskLevel != model.SeverityLow {
		t.Errorf("expected low risk level for empty input, got %s", out.Summary.RiskLevel)
	}
	if out.Summary.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %f", out.Summary.Confidence)
	}
}
