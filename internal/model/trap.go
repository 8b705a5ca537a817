package model

// TrapType names a structural disadvantage mechanism detected from
// categorical signal sets.
type TrapType string

const (
	TrapTemporalLock            TrapType = "temporal_lock"
	TrapAsymmetricPower         TrapType = "asymmetric_power"
	TrapExitBarrier             TrapType = "exit_barrier"
	TrapInterpretationAmbiguity TrapType = "interpretation_ambiguity"
)

// Trap is a detected higher-order risk combination. A single signal may
// participate in more than one trap: the defining sets overlap by design
// (FINAL_INTERPRETATION_RIGHT feeds both asymmetric_power and
// interpretation_ambiguity).
type Trap struct {
	TrapID         string       `json:"trap_id"`
	TrapType       TrapType     `json:"trap_type"`
	RelatedSignals []RiskSignal `json:"related_signals"`
	Severity       Severity     `json:"severity"`
}

// ChainStep is one step of a causal risk narrative.
type ChainStep struct {
	StepID      string   `json:"step_id"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Order       int      `json:"order"`
}

// RiskChain expands a trap into a fixed ordered causal narrative.
// Steps and final outcome are a static lookup keyed by trap type; the trap's
// severity and related signals never change chain content.
type RiskChain struct {
	ChainID      string      `json:"chain_id"`
	TrapID       string      `json:"trap_id"`
	Steps        []ChainStep `json:"steps"` // Always exactly 3, severities low/medium/high
	FinalOutcome string      `json:"final_outcome"`
}
