package extract

import (
	"testing"

	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/rules"
)

func segment(text string) model.TextSegment {
	return model.TextSegment{
		ID:             "seg_0",
		Order:          0,
		NormalizedText: text,
	}
}

func TestExtractor_PhraseMatch(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:   "rule_auto_renewal",
			RuleType: model.RuleTypePhrase,
			Phrases:  []string{"automatically renew"},
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("This lease shall automatically renew for successive terms."),
	})

	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	if signals[0].RuleID != "rule_auto_renewal" {
		t.Errorf("expected rule_auto_renewal, got %s", signals[0].RuleID)
	}
	if signals[0].MatchedText != "automatically renew" {
		t.Errorf("expected matched text 'automatically renew', got %q", signals[0].MatchedText)
	}
	if signals[0].Position != 17 {
		t.Errorf("expected position 17, got %d", signals[0].Position)
	}
	if signals[0].SegmentID != "seg_0" {
		t.Errorf("expected segment seg_0, got %s", signals[0].SegmentID)
	}
}

func TestExtractor_CaseInsensitiveByDefault(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:   "rule_maintenance",
			RuleType: model.RuleTypeKeyword,
			Keywords: []string{"maintenance"},
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("MAINTENANCE is the Tenant's duty. Maintenance includes HVAC."),
	})

	if len(signals) != 2 {
		t.Fatalf("expected 2 signals, got %d", len(signals))
	}
	// The matched text is the rule's term, not the document casing
	for _, s := range signals {
		if s.MatchedText != "maintenance" {
			t.Errorf("expected matched text 'maintenance', got %q", s.MatchedText)
		}
	}
}

func TestExtractor_CaseSensitiveRule(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:        "rule_exact",
			RuleType:      model.RuleTypeKeyword,
			Keywords:      []string{"Lessor"},
			CaseSensitive: true,
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("The lessor and the Lessor disagree."),
	})

	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	if signals[0].Position != 19 {
		t.Errorf("expected position 19, got %d", signals[0].Position)
	}
}

func TestExtractor_OverlappingMatches(t *testing.T) {
	// The scan restarts one character past each hit, so self-overlapping
	// terms are reported at every starting offset.
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:   "rule_overlap",
			RuleType: model.RuleTypeKeyword,
			Keywords: []string{"aa"},
		},
	})

	signals := e.Extract([]model.TextSegment{segment("aaa")})

	if len(signals) != 2 {
		t.Fatalf("expected 2 overlapping matches, got %d", len(signals))
	}
	if signals[0].Position != 0 || signals[1].Position != 1 {
		t.Errorf("expected positions 0 and 1, got %d and %d", signals[0].Position, signals[1].Position)
	}
}

func TestExtractor_NoMatchIsSilent(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:   "rule_auto_renewal",
			RuleType: model.RuleTypePhrase,
			Phrases:  []string{"automatically renew"},
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("This document mentions nothing relevant."),
	})

	if len(signals) != 0 {
		t.Errorf("expected 0 signals, got %d", len(signals))
	}
}

func TestExtractor_DatePattern(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:   "rule_dates",
			RuleType: model.RuleTypeStructural,
			Pattern:  model.PatternDate,
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("Lease starts 01/15/2024 and ends 1-14-25."),
	})

	if len(signals) != 2 {
		t.Fatalf("expected 2 date signals, got %d", len(signals))
	}
	if signals[0].MatchedText != "01/15/2024" {
		t.Errorf("expected 01/15/2024, got %q", signals[0].MatchedText)
	}
	if signals[1].MatchedText != "1-14-25" {
		t.Errorf("expected 1-14-25, got %q", signals[1].MatchedText)
	}
	if signals[0].Metadata["pattern_type"] != "date" {
		t.Errorf("expected pattern_type date, got %v", signals[0].Metadata["pattern_type"])
	}
}

func TestExtractor_CurrencyPattern(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:   "rule_amounts",
			RuleType: model.RuleTypeStructural,
			Pattern:  model.PatternCurrency,
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("Rent is $1,500.00 monthly with a $500 deposit."),
	})

	if len(signals) != 2 {
		t.Fatalf("expected 2 currency signals, got %d", len(signals))
	}
	if signals[0].MatchedText != "$1,500.00" {
		t.Errorf("expected $1,500.00, got %q", signals[0].MatchedText)
	}
	if signals[1].MatchedText != "$500" {
		t.Errorf("expected $500, got %q", signals[1].MatchedText)
	}
}

func TestExtractor_LineStartPattern(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:        "rule_section_labels",
			RuleType:      model.RuleTypeStructural,
			Pattern:       model.PatternLineStart,
			LabelPrefixes: []string{"Section", "Clause"},
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("Section 1: Term\nThe term is one year.\nClause 4: Renewal"),
	})

	if len(signals) != 2 {
		t.Fatalf("expected 2 label signals, got %d", len(signals))
	}
	if signals[0].MatchedText != "Section 1: Term" {
		t.Errorf("expected whole line match, got %q", signals[0].MatchedText)
	}
	if signals[0].Metadata["matched_prefix"] != "Section" {
		t.Errorf("expected matched_prefix Section, got %v", signals[0].Metadata["matched_prefix"])
	}
	if signals[1].Metadata["line_number"] != 3 {
		t.Errorf("expected line_number 3, got %v", signals[1].Metadata["line_number"])
	}
}

func TestExtractor_OrderIsMonotonic(t *testing.T) {
	e := NewExtractor([]rules.ExtractionRule{
		{
			RuleID:   "rule_a",
			RuleType: model.RuleTypeKeyword,
			Keywords: []string{"repair"},
		},
		{
			RuleID:   "rule_b",
			RuleType: model.RuleTypeKeyword,
			Keywords: []string{"notice"},
		},
	})

	signals := e.Extract([]model.TextSegment{
		segment("Tenant must repair on notice. Repair again after notice."),
	})

	if len(signals) != 4 {
		t.Fatalf("expected 4 signals, got %d", len(signals))
	}
	for i, s := range signals {
		if s.Order != i {
			t.Errorf("expected order %d at index %d, got %d", i, i, s.Order)
		}
	}
	// All rule_a signals come before rule_b: scan order is rule-major
	if signals[0].RuleID != "rule_a" || signals[2].RuleID != "rule_b" {
		t.Errorf("expected rule-major ordering, got %s then %s", signals[0].RuleID, signals[2].RuleID)
	}
}

func TestExtractor_EmptyRuleTable(t *testing.T) {
	e := NewExtractor(nil)

	signals := e.Extract([]model.TextSegment{segment("anything at all")})
	if len(signals) != 0 {
		t.Errorf("expected 0 signals with empty rule table, got %d", len(signals))
	}
}
