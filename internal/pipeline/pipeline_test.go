package pipeline

import (
	"strings"
	"testing"

	"github.com/markforge8/ClearLease/internal/model"
)

const leaseText = `Section 4: Renewal
This lease shall automatically renew for successive one-year terms unless
the tenant provides written notice at least 90 days before the term ends.
Section 7: Maintenance
The tenant shall be responsible for all maintenance and repair, including
HVAC and plumbing. Monthly rent is $1,500.00.`

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}
	return p
}

func TestPipeline_EndToEnd(t *testing.T) {
	p := newTestPipeline(t)

	report, err := p.Analyze("lease.txt", leaseText)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if report.SourceID != "lease.txt" {
		t.Errorf("expected source lease.txt, got %s", report.SourceID)
	}
	if len(report.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(report.Segments))
	}
	if len(report.Signals) == 0 {
		t.Fatal("expected extraction signals")
	}

	// The renewal and notice clauses must surface as risk items
	var hasAutoRenewal, hasNoticeWindow bool
	for _, item := range report.Analysis.RiskItems {
		switch item.RiskCode {
		case "AUTO_RENEWAL":
			hasAutoRenewal = true
			if item.Severity.Rank() < model.SeverityMedium.Rank() {
				t.Errorf("expected AUTO_RENEWAL at least medium, got %s", item.Severity)
			}
		case "SHORT_NOTICE_WINDOW":
			hasNoticeWindow = true
		}
	}
	if !hasAutoRenewal {
		t.Error("expected AUTO_RENEWAL risk item")
	}
	if !hasNoticeWindow {
		t.Error("expected SHORT_NOTICE_WINDOW risk item")
	}

	// Auto-renewal phrasing must derive a temporal field
	var hasTemporal bool
	for _, field := range report.Analysis.RiskFields {
		if field.Axis == model.AxisTemporal {
			hasTemporal = true
		}
	}
	if !hasTemporal {
		t.Error("expected a temporal risk field")
	}

	// Renewal plus notice window form a temporal lock trap with a chain
	trap, found := findTemporalLock(report.Traps)
	if !found {
		t.Fatal("expected a temporal_lock trap")
	}
	if trap.Severity != model.SeverityHigh {
		t.Errorf("expected high trap severity from two signals, got %s", trap.Severity)
	}
	if len(report.Chains) == 0 {
		t.Error("expected at least one risk chain")
	}

	// v2 renders for the temporal lock
	if report.Gateway.Details.V2 == nil {
		t.Fatal("expected a v2 explanation")
	}
	if report.Gateway.Details.V2.Headline == "" {
		t.Error("expected a v2 headline")
	}
	if report.Gateway.Details.V2.LockInDynamics == nil {
		t.Error("expected lock-in dynamics in the v2 explanation")
	}

	// With a high-severity trap the overview attention must be high
	if report.Gateway.Overview.AttentionLevel != model.SeverityHigh {
		t.Errorf("expected high attention, got %s", report.Gateway.Overview.AttentionLevel)
	}
}

func TestPipeline_EmptyInput(t *testing.T) {
	p := newTestPipeline(t)

	_, err := p.Analyze("empty.txt", "   \n  ")
	if err == nil {
		t.Error("expected error for empty input, got nil")
	}
}

func TestPipeline_BenignDocument(t *testing.T) {
	p := newTestPipeline(t)

	report, err := p.Analyze("note.txt", "The weather was pleasant throughout the inspection visit.")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(report.Analysis.RiskItems) != 0 {
		t.Errorf("expected 0 risk items, got %d", len(report.Analysis.RiskItems))
	}
	if len(report.Traps) != 0 {
		t.Errorf("expected 0 traps, got %d", len(report.Traps))
	}
	if report.Gateway.Overview.AttentionLevel != model.SeverityLow {
		t.Errorf("expected low attention, got %s", report.Gateway.Overview.AttentionLevel)
	}
	if report.Gateway.Details.V2 != nil {
		t.Error("expected no v2 explanation without a temporal lock")
	}
}

func TestPipeline_TierGating(t *testing.T) {
	p := newTestPipeline(t)

	report, err := p.AnalyzeTiers("lease.txt", leaseText, Tiers{V0: true})
	if err != nil {
		t.Fatalf("AnalyzeTiers failed: %v", err)
	}

	if report.Gateway.Details.V0 == nil {
		t.Error("expected v0 details")
	}
	if report.Gateway.Details.V1 != nil {
		t.Error("expected no v1 details when the tier is off")
	}
	if report.Gateway.Details.V2 != nil {
		t.Error("expected no v2 details when the tier is off")
	}
	// Analysis artifacts are produced regardless of tier gating
	if len(report.Analysis.RiskItems) == 0 {
		t.Error("expected risk items with tiers gated")
	}
	if len(report.Traps) == 0 {
		t.Error("expected traps with tiers gated")
	}
}

func TestPipeline_CachedAnalyzeIsStable(t *testing.T) {
	cfg := model.DefaultConfig()
	p, err := NewPipeline(cfg)
	if err != nil {
		t.Fatalf("NewPipeline failed: %v", err)
	}

	first, err := p.Analyze("lease.txt", leaseText)
	if err != nil {
		t.Fatalf("first Analyze failed: %v", err)
	}
	second, err := p.Analyze("lease.txt", leaseText)
	if err != nil {
		t.Fatalf("second Analyze failed: %v", err)
	}

	// The second run is served from cache: identifiers stay identical
	if len(first.Traps) != len(second.Traps) {
		t.Fatalf("expected same trap count, got %d and %d", len(first.Traps), len(second.Traps))
	}
	for i := range first.Traps {
		if first.Traps[i].TrapID != second.Traps[i].TrapID {
			t.Errorf("expected cached trap id %s, got %s", first.Traps[i].TrapID, second.Traps[i].TrapID)
		}
	}
}

func TestDeriveRiskSignals(t *testing.T) {
	items := []model.RiskItem{
		{RiskCode: "AUTO_RENEWAL", Severity: model.SeverityMedium, EvidenceRules: []string{"rule_auto_renewal"}},
		{RiskCode: "MAINTENANCE_TRANSFER", Severity: model.SeverityMedium},
		{RiskCode: "EARLY_TERMINATION_PENALTY", Severity: model.SeverityHigh},
	}

	signals := deriveRiskSignals(items)

	// MAINTENANCE_TRANSFER has no categorical signal type
	if len(signals) != 2 {
		t.Fatalf("expected 2 signals, got %d", len(signals))
	}
	if signals[0].Type != model.SignalAutoRenewal {
		t.Errorf("expected AUTO_RENEWAL signal, got %s", signals[0].Type)
	}
	if signals[0].Confidence != model.SeverityMedium {
		t.Errorf("expected confidence to mirror item severity, got %s", signals[0].Confidence)
	}
	if signals[1].Type != model.SignalHighTerminationFee {
		t.Errorf("expected HIGH_TERMINATION_FEE signal, got %s", signals[1].Type)
	}
}

func TestBuildMechanismInput(t *testing.T) {
	trap := model.Trap{
		TrapID:   "trap_aaaa0001",
		TrapType: model.TrapTemporalLock,
		Severity: model.SeverityHigh,
		RelatedSignals: []model.RiskSignal{
			{Type: model.SignalAutoRenewal},
			{Type: model.SignalShortNoticeWindow},
		},
	}

	input := buildMechanismInput(trap)

	if input.TrapType != model.MechanismTemporalLockIn {
		t.Errorf("expected temporal_lock_in, got %s", input.TrapType)
	}
	if input.Strength != model.StrengthHigh {
		t.Errorf("expected strength to mirror trap severity, got %s", input.Strength)
	}
	if input.CostBearer != "user" {
		t.Errorf("expected cost bearer user, got %s", input.CostBearer)
	}
	if input.Window["exists"] != true {
		t.Errorf("expected window to exist with a notice signal, got %v", input.Window["exists"])
	}
	conditions, _ := input.Window["conditions"].(string)
	if !strings.Contains(conditions, "notice") {
		t.Errorf("expected notice conditions, got %q", conditions)
	}
}

func TestBuildMechanismInput_NoNoticeWindow(t *testing.T) {
	trap := model.Trap{
		TrapID:   "trap_aaaa0002",
		TrapType: model.TrapTemporalLock,
		Severity: model.SeverityLow,
		RelatedSignals: []model.RiskSignal{
			{Type: model.SignalAutoRenewal},
		},
	}

	input := buildMechanismInput(trap)

	if input.Window["exists"] != false {
		t.Errorf("expected window exists=false, got %v", input.Window["exists"])
	}
	if _, ok := input.Window["conditions"]; ok {
		t.Error("expected no conditions without a notice signal")
	}
	if input.Strength != model.StrengthLow {
		t.Errorf("expected low strength, got %s", input.Strength)
	}
}
