package model

// TierSource identifies which explanation tier produced a gateway entry.
type TierSource string

const (
	SourceV0 TierSource = "v0" // Free tier, risk items
	SourceV1 TierSource = "v1" // Paid tier, risk fields
	SourceV2 TierSource = "v2" // Mechanism tier, traps
)

// Overview is the gateway's top-level judgment, aggregated by tier priority
// (v2 over v1 over v0) without interpreting tier content.
type Overview struct {
	AttentionLevel Severity `json:"attention_level"`
	Summary        string   `json:"summary"`
}

// Finding is one key finding. Only the fields of the originating tier are
// set; the gateway never infers the rest.
type Finding struct {
	Source TierSource `json:"source"`

	// v2 fields
	Headline  string        `json:"headline,omitempty"`
	CoreLogic string        `json:"core_logic,omitempty"`
	PowerMap  string        `json:"power_map,omitempty"`
	Mechanism MechanismType `json:"mechanism,omitempty"`

	// v1 fields
	Axis          RiskAxis `json:"axis,omitempty"`
	Intensity     Severity `json:"intensity,omitempty"`
	AffectedParty string   `json:"affected_party,omitempty"`

	// Shared by v0 and v1
	Title   string `json:"title,omitempty"`
	Message string `json:"message,omitempty"`

	// v0 fields
	Severity Severity `json:"severity,omitempty"`
	RiskCode string   `json:"risk_code,omitempty"`
}

// Action is one recommended next step, carried verbatim from its tier.
type Action struct {
	Source    TierSource    `json:"source"`
	Action    string        `json:"action"`
	Mechanism MechanismType `json:"mechanism,omitempty"`
	Axis      RiskAxis      `json:"axis,omitempty"`
	RiskCode  string        `json:"risk_code,omitempty"`
}

// TierDetails is the per-tier pass-through block, included only for tiers
// present in the gateway input.
type TierDetails struct {
	V0 *ExplanationOutput   `json:"v0,omitempty"`
	V1 *ExplanationOutputV1 `json:"v1,omitempty"`
	V2 *MechanismOutput     `json:"v2,omitempty"`
}

// GatewayOutput is the terminal artifact of the pipeline: bounded, ordered
// and filtered tier content. Immutable once constructed.
type GatewayOutput struct {
	Overview    Overview    `json:"overview"`
	KeyFindings []Finding   `json:"key_findings"`
	NextActions []Action    `json:"next_actions"` // Hard cap of 2
	Details     TierDetails `json:"details"`
}
