package pipeline

import (
	"github.com/markforge8/ClearLease/internal/model"
)

// signalTypeByRiskCode bridges aggregated risk codes to the categorical
// signal types the trap engine consumes. Codes without an entry contribute
// no categorical signal; the trap engine treats their absence as a valid
// quiet result.
var signalTypeByRiskCode = map[string]model.SignalType{
	"AUTO_RENEWAL":              model.SignalAutoRenewal,
	"SHORT_NOTICE_WINDOW":       model.SignalShortNoticeWindow,
	"EARLY_TERMINATION_PENALTY": model.SignalHighTerminationFee,
	"UNILATERAL_MODIFICATION":   model.SignalUnilateralModification,
}

// deriveRiskSignals builds the trap engine's input from risk items, carrying
// each item's severity as the signal confidence.
func deriveRiskSignals(items []model.RiskItem) []model.RiskSignal {
	var signals []model.RiskSignal
	for _, item := range items {
		signalType, ok := signalTypeByRiskCode[item.RiskCode]
		if !ok {
			continue
		}
		signals = append(signals, model.RiskSignal{
			Type:       signalType,
			Confidence: item.Severity,
			Details: map[string]any{
				"risk_code":      item.RiskCode,
				"evidence_rules": item.EvidenceRules,
			},
		})
	}
	return signals
}

// buildMechanismInput assembles the v2 service input from a detected
// temporal lock trap. Strength mirrors the trap severity; the window is
// reported open when a notice-window signal was among the trap's evidence.
func buildMechanismInput(t model.Trap) model.MechanismInput {
	signalTypes := make([]string, 0, len(t.RelatedSignals))
	hasNoticeWindow := false
	for _, s := range t.RelatedSignals {
		signalTypes = append(signalTypes, string(s.Type))
		if s.Type == model.SignalShortNoticeWindow {
			hasNoticeWindow = true
		}
	}

	window := map[string]any{"exists": hasNoticeWindow}
	if hasNoticeWindow {
		window["conditions"] = "provide written termination notice before the renewal window closes"
	}

	return model.MechanismInput{
		TrapType:        model.MechanismTemporalLockIn,
		Strength:        model.Strength(t.Severity),
		Beneficiary:     model.BeneficiaryCounterparty,
		CostBearer:      "user",
		Irreversibility: model.PartiallyReversible,
		Evidence: map[string]any{
			"signals": signalTypes,
			"trap_id": t.TrapID,
		},
		Window: window,
	}
}
