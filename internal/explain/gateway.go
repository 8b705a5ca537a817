package explain

import (
	"strings"

	"github.com/markforge8/ClearLease/internal/model"
)

const (
	maxKeyFindings = 4
	maxNextActions = 2
	maxV1Findings  = 2
)

// actionDenyList filters legal-advice and refusal phrasing out of next
// actions. Matching is case-insensitive substring, applied before an action
// counts toward the cap.
var actionDenyList = []string{
	"legal advice",
	"refuse to sign",
	"seek legal",
	"consult a lawyer",
}

// Gateway merges the three explanation tiers into one bounded, ordered,
// filtered output. It never mutates, validates or interprets tier content;
// v2 in particular is an opaque trusted payload. It only aggregates, ranks
// by tier priority (v2 over v1 over v0), caps counts and filters actions.
type Gateway struct{}

// NewGateway creates a new aggregation gateway
func NewGateway() *Gateway {
	return &Gateway{}
}

// Aggregate accepts zero or more tier outputs and builds the terminal
// gateway artifact. Absent tiers simply contribute nothing.
func (g *Gateway) Aggregate(v0 *model.ExplanationOutput, v1 *model.ExplanationOutputV1, v2 *model.MechanismOutput) model.GatewayOutput {
	return model.GatewayOutput{
		Overview:    g.buildOverview(v0, v1, v2),
		KeyFindings: g.buildKeyFindings(v0, v1, v2),
		NextActions: g.buildNextActions(v0, v1, v2),
		Details: model.TierDetails{
			V0: v0,
			V1: v1,
			V2: v2,
		},
	}
}

func (g *Gateway) buildOverview(v0 *model.ExplanationOutput, v1 *model.ExplanationOutputV1, v2 *model.MechanismOutput) model.Overview {
	attention := model.SeverityLow
	summary := ""

	switch {
	case v2 != nil:
		// Confidence and severity share the low/medium/high scale.
		attention = model.Severity(v2.ConfidenceLevel)
		summary = v2.Headline
	case v1 != nil && len(v1.FieldExplanations) > 0:
		intensities := make([]model.Severity, 0, len(v1.FieldExplanations))
		for _, exp := range v1.FieldExplanations {
			intensities = append(intensities, exp.Intensity)
		}
		attention = model.MaxSeverity(intensities)
		summary = v1.FieldExplanations[0].Title
	case v0 != nil:
		severities := make([]model.Severity, 0, len(v0.ExplanationBlocks))
		for _, block := range v0.ExplanationBlocks {
			severities = append(severities, block.Severity)
		}
		attention = model.MaxSeverity(severities)
		summary = v0.OverallMessage
	}

	return model.Overview{
		AttentionLevel: attention,
		Summary:        summary,
	}
}

// buildKeyFindings fills slots in strict priority order: the v2 entry first,
// then up to 2 v1 entries, then v0 entries up to the total cap of 4.
func (g *Gateway) buildKeyFindings(v0 *model.ExplanationOutput, v1 *model.ExplanationOutputV1, v2 *model.MechanismOutput) []model.Finding {
	findings := make([]model.Finding, 0, maxKeyFindings)

	if v2 != nil {
		findings = append(findings, model.Finding{
			Source:    model.SourceV2,
			Headline:  v2.Headline,
			CoreLogic: v2.CoreLogic,
			PowerMap:  v2.PowerMap,
			Mechanism: v2.Mechanism,
		})
	}

	if v1 != nil {
		count := min(maxV1Findings, len(v1.FieldExplanations))
		for _, exp := range v1.FieldExplanations[:count] {
			findings = append(findings, model.Finding{
				Source:        model.SourceV1,
				Title:         exp.Title,
				Message:       exp.Message,
				Axis:          exp.Axis,
				Intensity:     exp.Intensity,
				AffectedParty: exp.AffectedParty,
			})
		}
	}

	if v0 != nil {
		remaining := maxKeyFindings - len(findings)
		if remaining > 0 {
			count := min(remaining, len(v0.ExplanationBlocks))
			for _, block := range v0.ExplanationBlocks[:count] {
				findings = append(findings, model.Finding{
					Source:   model.SourceV0,
					Title:    block.Title,
					Message:  block.Message,
					Severity: block.Severity,
					RiskCode: block.RiskCode,
				})
			}
		}
	}

	return findings
}

func (g *Gateway) buildNextActions(v0 *model.ExplanationOutput, v1 *model.ExplanationOutputV1, v2 *model.MechanismOutput) []model.Action {
	actions := make([]model.Action, 0, maxNextActions)

	if v2 != nil {
		for _, action := range v2.UserActions {
			if denied(action) {
				continue
			}
			actions = append(actions, model.Action{
				Source:    model.SourceV2,
				Action:    action,
				Mechanism: v2.Mechanism,
			})
			if len(actions) >= maxNextActions {
				return actions
			}
		}
	}

	if v1 != nil {
		for _, exp := range v1.FieldExplanations {
			if denied(exp.UserAction) {
				continue
			}
			actions = append(actions, model.Action{
				Source: model.SourceV1,
				Action: exp.UserAction,
				Axis:   exp.Axis,
			})
			if len(actions) >= maxNextActions {
				return actions
			}
		}
	}

	if v0 != nil {
		for _, block := range v0.ExplanationBlocks {
			if denied(block.UserAction) {
				continue
			}
			actions = append(actions, model.Action{
				Source:   model.SourceV0,
				Action:   block.UserAction,
				RiskCode: block.RiskCode,
			})
			if len(actions) >= maxNextActions {
				return actions
			}
		}
	}

	return actions
}

func denied(action string) bool {
	lower := strings.ToLower(action)
	for _, phrase := range actionDenyList {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
