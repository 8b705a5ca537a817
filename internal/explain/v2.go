package explain

import (
	"errors"
	"fmt"

	"github.com/markforge8/ClearLease/internal/model"
)

// ErrUnsupportedMechanism is returned for any mechanism other than temporal
// lock-in, the only one the v2 service currently renders.
var ErrUnsupportedMechanism = errors.New("unsupported trap mechanism")

// V2Service renders the mechanism tier: a structural explanation of why the
// user is disadvantaged, how the disadvantage accumulates, and the escape
// window. It fails closed on unsupported mechanisms rather than guessing.
type V2Service struct{}

// NewV2Service creates a mechanism-tier explanation service
func NewV2Service() *V2Service {
	return &V2Service{}
}

// Explain converts a mechanism-level input into a rendered explanation.
func (s *V2Service) Explain(input model.MechanismInput) (*model.MechanismOutput, error) {
	if input.TrapType != model.MechanismTemporalLockIn {
		return nil, fmt.Errorf("%w: %s (only %s is supported)",
			ErrUnsupportedMechanism, input.TrapType, model.MechanismTemporalLockIn)
	}
	return s.explainTemporalLockIn(input), nil
}

func (s *V2Service) explainTemporalLockIn(input model.MechanismInput) *model.MechanismOutput {
	powerMap := "The counterparty can extend the agreement automatically at a set time; once the cancellation point passes, the follow-on cost falls on the user."
	if input.Beneficiary == model.BeneficiaryProvider {
		powerMap = "The provider can extend the agreement automatically at a set time; once the cancellation point passes, the follow-on cost falls on the user."
	}

	return &model.MechanismOutput{
		Mechanism: input.TrapType,
		Headline:  "Missing a specific point in time makes exiting later more expensive.",
		CoreLogic: "If a time window is missed, the agreement continues on its own, and cancelling after that point tends to cost more than cancelling now.",
		PowerMap:  powerMap,
		// Carried over from the analysis input; v2 does not re-derive it.
		Irreversibility: input.Irreversibility,
		LockInDynamics: &model.LockInDynamics{
			Description: "Once the cancellation point passes, the agreement keeps running and the price of getting out later can be higher than it is today.",
		},
		EscapeWindow:    input.Window,
		UserActions:     temporalLockInActions(input.Strength),
		ConfidenceLevel: confidenceFromStrength(input.Strength),
	}
}

// temporalLockInActions scales with strength: stronger evidence, more
// concrete actions (1/2/3 for low/medium/high).
func temporalLockInActions(strength model.Strength) []string {
	actions := []string{
		"Write down the decision deadline and set a reminder",
		"Decide before the deadline whether you want to continue",
		"Find out what exiting would cost if the cancellation window is missed",
	}
	switch strength {
	case model.StrengthHigh:
		return actions
	case model.StrengthMedium:
		return actions[:2]
	default:
		return actions[:1]
	}
}

// confidenceFromStrength maps strength directly to disclosed confidence:
// more defining signals mean a stronger detection.
func confidenceFromStrength(strength model.Strength) model.ConfidenceLevel {
	switch strength {
	case model.StrengthHigh:
		return model.ConfidenceHigh
	case model.StrengthMedium:
		return model.ConfidenceMedium
	default:
		return model.ConfidenceLow
	}
}
