package explain

import (
	"errors"
	"testing"

	"github.com/markforge8/ClearLease/internal/model"
)

func temporalLockInput(strength model.Strength) model.MechanismInput {
	return model.MechanismInput{
		TrapType:        model.MechanismTemporalLockIn,
		Strength:        strength,
		Beneficiary:     model.BeneficiaryCounterparty,
		CostBearer:      "user",
		Irreversibility: model.PartiallyReversible,
		Window:          map[string]any{"exists": true},
	}
}

func TestV2Service_UnsupportedMechanism(t *testing.T) {
	s := NewV2Service()

	for _, mechanism := range []model.MechanismType{
		model.MechanismAsymmetricPower,
		model.MechanismExitBarrier,
		model.MechanismAmbiguity,
	} {
		input := temporalLockInput(model.StrengthHigh)
		input.TrapType = mechanism

		_, err := s.Explain(input)
		if err == nil {
			t.Errorf("mechanism %s: expected error, got nil", mechanism)
			continue
		}
		if !errors.Is(err, ErrUnsupportedMechanism) {
			t.Errorf("mechanism %s: expected ErrUnsupportedMechanism, got %v", mechanism, err)
		}
	}
}

func TestV2Service_TemporalLockIn(t *testing.T) {
	s := NewV2Service()

	out, err := s.Explain(temporalLockInput(model.StrengthHigh))
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	if out.Mechanism != model.MechanismTemporalLockIn {
		t.Errorf("expected temporal_lock_in, got %s", out.Mechanism)
	}
	if out.Headline == "" || out.CoreLogic == "" || out.PowerMap == "" {
		t.Error("expected headline, core logic and power map to be populated")
	}
	if out.LockInDynamics == nil || out.LockInDynamics.Description == "" {
		t.Error("expected lock-in dynamics for the temporal mechanism")
	}
	if out.Irreversibility != model.PartiallyReversible {
		t.Errorf("expected irreversibility carried over, got %s", out.Irreversibility)
	}
}

func TestV2Service_ActionCountScalesWithStrength(t *testing.T) {
	s := NewV2Service()

	cases := []struct {
		strength model.Strength
		actions  int
	}{
		{model.StrengthLow, 1},
		{model.StrengthMedium, 2},
		{model.StrengthHigh, 3},
	}

	for _, tc := range cases {
		out, err := s.Explain(temporalLockInput(tc.strength))
		if err != nil {
			t.Fatalf("strength %s: Explain failed: %v", tc.strength, err)
		}
		if len(out.UserActions) != tc.actions {
			t.Errorf("strength %s: expected %d actions, got %d", tc.strength, tc.actions, len(out.UserActions))
		}
	}
}

func TestV2Service_ConfidenceMirrorsStrength(t *testing.T) {
	s := NewV2Service()

	cases := []struct {
		strength   model.Strength
		confidence model.ConfidenceLevel
	}{
		{model.StrengthLow, model.ConfidenceLow},
		{model.StrengthMedium, model.ConfidenceMedium},
		{model.StrengthHigh, model.ConfidenceHigh},
	}

	for _, tc := range cases {
		out, err := s.Explain(temporalLockInput(tc.strength))
		if err != nil {
			t.Fatalf("strength %s: Explain failed: %v", tc.strength, err)
		}
		if out.ConfidenceLevel != tc.confidence {
			t.Errorf("strength %s: expected confidence %s, got %s", tc.strength, tc.confidence, out.ConfidenceLevel)
		}
	}
}

func TestV2Service_WindowPassesThrough(t *testing.T) {
	s := NewV2Service()

	input := temporalLockInput(model.StrengthMedium)
	input.Window = map[string]any{
		"exists":     true,
		"conditions": "provide written termination notice before the renewal window closes",
	}

	out, err := s.Explain(input)
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	if out.EscapeWindow["exists"] != true {
		t.Errorf("expected escape window exists=true, got %v", out.EscapeWindow["exists"])
	}
	if out.EscapeWindow["conditions"] == "" {
		t.Error("expected window conditions carried over")
	}
}

func TestV2Service_PowerMapVariesByBeneficiary(t *testing.T) {
	s := NewV2Service()

	counterparty, err := s.Explain(temporalLockInput(model.StrengthHigh))
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	input := temporalLockInput(model.StrengthHigh)
	input.Beneficiary = model.BeneficiaryProvider
	provider, err := s.Explain(input)
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}

	if counterparty.PowerMap == provider.PowerMap {
		t.Error("expected distinct power map phrasing per beneficiary")
	}
}
