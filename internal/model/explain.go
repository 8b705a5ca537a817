package model

import "fmt"

// ExplanationBlock is a free-tier (v0) rendering of one risk item.
type ExplanationBlock struct {
	Title      string   `json:"title"`
	Message    string   `json:"message"`
	UserAction string   `json:"user_action"`
	Severity   Severity `json:"severity"`
	RiskCode   string   `json:"risk_code"`
}

// ExplanationOutput is the free-tier (v0) result: a fixed neutral overall
// sentence plus one block per explainable risk item.
type ExplanationOutput struct {
	OverallMessage    string             `json:"overall_message"`
	ExplanationBlocks []ExplanationBlock `json:"explanation_blocks"`
}

// FieldExplanation is a paid-tier (v1) rendering of one risk field,
// explaining why the term is structurally unfair rather than restating it.
type FieldExplanation struct {
	Axis           RiskAxis `json:"axis"`
	Intensity      Severity `json:"intensity"`
	AffectedParty  string   `json:"affected_party"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	UserAction     string   `json:"user_action"`
	Compounding    bool     `json:"compounding"`
	SourceSegments []string `json:"source_segments"`
}

// ExplanationOutputV1 is the paid-tier (v1) result.
type ExplanationOutputV1 struct {
	FieldExplanations []FieldExplanation `json:"field_explanations"`
}

// MechanismType identifies the trap mechanism a v2 explanation describes.
type MechanismType string

const (
	MechanismTemporalLockIn  MechanismType = "temporal_lock_in"
	MechanismAsymmetricPower MechanismType = "asymmetric_power"
	MechanismExitBarrier     MechanismType = "exit_barrier"
	MechanismAmbiguity       MechanismType = "ambiguity"
)

// Strength grades how strongly a mechanism is evidenced.
type Strength string

const (
	StrengthLow    Strength = "low"
	StrengthMedium Strength = "medium"
	StrengthHigh   Strength = "high"
)

// ParseStrength validates a strength string
func ParseStrength(s string) (Strength, error) {
	switch Strength(s) {
	case StrengthLow, StrengthMedium, StrengthHigh:
		return Strength(s), nil
	default:
		return "", fmt.Errorf("unknown strength %q", s)
	}
}

// Beneficiary names who the mechanism favors.
type Beneficiary string

const (
	BeneficiaryProvider     Beneficiary = "provider"
	BeneficiaryCounterparty Beneficiary = "counterparty"
)

// Irreversibility grades how reversible the mechanism's consequence is.
type Irreversibility string

const (
	Reversible          Irreversibility = "reversible"
	PartiallyReversible Irreversibility = "partially_reversible"
	Irreversible        Irreversibility = "irreversible"
)

// ConfidenceLevel is the disclosed confidence of a v2 explanation.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// MechanismInput is the mechanism-level input record for the v2 explanation
// service. The cost bearer is always the user.
type MechanismInput struct {
	TrapType        MechanismType   `json:"trap_type"`
	Strength        Strength        `json:"strength"`
	Beneficiary     Beneficiary     `json:"beneficiary"`
	CostBearer      string          `json:"cost_bearer"` // Always "user"
	Irreversibility Irreversibility `json:"irreversibility"`
	Evidence        map[string]any  `json:"evidence"` // Clause references and detected signals
	Window          map[string]any  `json:"window"`   // Escape window existence and conditions
}

// LockInDynamics explains time-dependent cost escalation. Required for the
// temporal lock-in mechanism only.
type LockInDynamics struct {
	Description string `json:"description"`
}

// MechanismOutput is the mechanism-tier (v2) explanation.
type MechanismOutput struct {
	Mechanism       MechanismType   `json:"mechanism"`
	Headline        string          `json:"headline"`
	CoreLogic       string          `json:"core_logic"`
	PowerMap        string          `json:"power_map"`
	Irreversibility Irreversibility `json:"irreversibility"`
	LockInDynamics  *LockInDynamics `json:"lock_in_dynamics,omitempty"`
	EscapeWindow    map[string]any  `json:"escape_window"` // Pass-through from input
	UserActions     []string        `json:"user_actions"`  // 1/2/3 actions for low/medium/high
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`
}
