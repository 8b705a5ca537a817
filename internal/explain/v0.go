package explain

import (
	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/rules"
)

// V0Service renders the free tier: one block per explainable risk item.
// Risk codes without a template are skipped, never defaulted.
type V0Service struct {
	templates rules.TemplateTableV0
}

// NewV0Service creates a free-tier explanation service over a loaded
// template table
func NewV0Service(templates rules.TemplateTableV0) *V0Service {
	return &V0Service{templates: templates}
}

// Explain maps risk items to explanation blocks. The overall message is a
// fixed neutral sentence: the free tier must not disclose the aggregate risk
// level, so the selection never varies with it.
func (s *V0Service) Explain(analysis model.AnalysisOutput) model.ExplanationOutput {
	blocks := make([]model.ExplanationBlock, 0, len(analysis.RiskItems))

	for _, item := range analysis.RiskItems {
		template, ok := s.templates.RiskExplanations[item.RiskCode]
		if !ok {
			continue
		}
		blocks = append(blocks, model.ExplanationBlock{
			Title:      template.Title,
			Message:    template.Message,
			UserAction: template.UserAction,
			Severity:   item.Severity,
			RiskCode:   item.RiskCode,
		})
	}

	return model.ExplanationOutput{
		OverallMessage:    s.templates.OverallMessages[model.SeverityLow],
		ExplanationBlocks: blocks,
	}
}
