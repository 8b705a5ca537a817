package trap

import (
	"github.com/google/uuid"
	"github.com/markforge8/ClearLease/internal/model"
)

// detector defines one trap by its fixed signal-type set and the severity
// assigned when exactly one defining signal matched. Two or more matches
// always escalate to high.
type detector struct {
	trapType       model.TrapType
	definingSet    []model.SignalType
	singleSeverity model.Severity
}

// Detector sets overlap on purpose: FINAL_INTERPRETATION_RIGHT belongs to
// both asymmetric_power and interpretation_ambiguity, and one occurrence may
// trigger both traps. Traps are independent detector outputs over a shared
// signal pool, not a partition.
var detectors = []detector{
	{
		trapType:       model.TrapTemporalLock,
		definingSet:    []model.SignalType{model.SignalAutoRenewal, model.SignalShortNoticeWindow, model.SignalUserActionRequired},
		singleSeverity: model.SeverityLow,
	},
	{
		trapType:       model.TrapAsymmetricPower,
		definingSet:    []model.SignalType{model.SignalUnilateralModification, model.SignalSilentAcceptance, model.SignalFinalInterpretation},
		singleSeverity: model.SeverityMedium,
	},
	{
		trapType:       model.TrapExitBarrier,
		definingSet:    []model.SignalType{model.SignalHighTerminationFee, model.SignalPenaltyEscalation, model.SignalExitConditionRestraint},
		singleSeverity: model.SeverityMedium,
	},
	{
		trapType:       model.TrapInterpretationAmbiguity,
		definingSet:    []model.SignalType{model.SignalAmbiguousTerm, model.SignalSubjectiveCriteria, model.SignalFinalInterpretation},
		singleSeverity: model.SeverityMedium,
	},
}

// Engine detects higher-order traps from categorical risk signals.
type Engine struct{}

// NewEngine creates a new trap engine
func NewEngine() *Engine {
	return &Engine{}
}

// Detect evaluates all four detectors independently. A trap is emitted only
// when at least one defining signal is present; zero traps is a valid result,
// not an error.
func (e *Engine) Detect(signals []model.RiskSignal) []model.Trap {
	var traps []model.Trap

	for _, d := range detectors {
		matched := matchSignals(signals, d.definingSet)
		if len(matched) == 0 {
			continue
		}

		severity := d.singleSeverity
		if len(matched) >= 2 {
			severity = model.SeverityHigh
		}

		traps = append(traps, model.Trap{
			TrapID:         newTrapID(),
			TrapType:       d.trapType,
			RelatedSignals: matched,
			Severity:       severity,
		})
	}

	return traps
}

func matchSignals(signals []model.RiskSignal, definingSet []model.SignalType) []model.RiskSignal {
	defined := make(map[model.SignalType]bool, len(definingSet))
	for _, t := range definingSet {
		defined[t] = true
	}

	var matched []model.RiskSignal
	for _, signal := range signals {
		if defined[signal.Type] {
			matched = append(matched, signal)
		}
	}
	return matched
}

func newTrapID() string {
	return "trap_" + uuid.NewString()[:8]
}
