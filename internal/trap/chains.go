package trap

import (
	"github.com/google/uuid"
	"github.com/markforge8/ClearLease/internal/model"
)

// chainNarrative is the static step content for one trap type. Chain content
// never depends on the trap's severity or related signals; step severities
// are fixed low/medium/high in ascending order.
type chainNarrative struct {
	steps        [3]string
	finalOutcome string
}

var narratives = map[model.TrapType]chainNarrative{
	model.TrapTemporalLock: {
		steps: [3]string{
			"The user misses the action window",
			"Automatic renewal takes effect",
			"Exit costs rise and the agreement locks in",
		},
		finalOutcome: "The user loses the low-cost exit path",
	},
	model.TrapAsymmetricPower: {
		steps: [3]string{
			"The agreement looks safe at signing",
			"The counterparty adjusts terms unilaterally",
			"The user is at a disadvantage when a dispute arises",
		},
		finalOutcome: "The user holds a systematically weaker position in future disputes",
	},
	model.TrapExitBarrier: {
		steps: [3]string{
			"Exit appears freely available at the start",
			"Attempting to exit triggers heavy restrictions or fees",
			"The user is forced to keep performing or absorb a significant loss",
		},
		finalOutcome: "Exit barriers force the user to continue or bear significant economic loss",
	},
	model.TrapInterpretationAmbiguity: {
		steps: [3]string{
			"Terms look flexible or harmless at signing",
			"In practice the meaning is interpreted one-sidedly",
			"The user bears the adverse outcome of the interpretation gap",
		},
		finalOutcome: "Unequal interpretation rights leave the user systematically disadvantaged in execution and disputes",
	},
}

var stepSeverities = [3]model.Severity{model.SeverityLow, model.SeverityMedium, model.SeverityHigh}

// ChainBuilder expands detected traps into fixed causal narratives.
type ChainBuilder struct{}

// NewChainBuilder creates a new chain builder
func NewChainBuilder() *ChainBuilder {
	return &ChainBuilder{}
}

// Build emits exactly one chain per trap. Trap types without a narrative
// produce no chain.
func (b *ChainBuilder) Build(traps []model.Trap) []model.RiskChain {
	var chains []model.RiskChain

	for _, t := range traps {
		narrative, ok := narratives[t.TrapType]
		if !ok {
			continue
		}

		steps := make([]model.ChainStep, 3)
		for i, description := range narrative.steps {
			steps[i] = model.ChainStep{
				StepID:      stepID(i),
				Description: description,
				Severity:    stepSeverities[i],
				Order:       i + 1,
			}
		}

		chains = append(chains, model.RiskChain{
			ChainID:      newChainID(),
			TrapID:       t.TrapID,
			Steps:        steps,
			FinalOutcome: narrative.finalOutcome,
		})
	}

	return chains
}

func stepID(index int) string {
	return []string{"step_1", "step_2", "step_3"}[index]
}

func newChainID() string {
	return "chain_" + uuid.NewString()[:8]
}
