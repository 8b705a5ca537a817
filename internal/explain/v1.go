package explain

import (
	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/rules"
)

// V1Service renders the paid tier: one explanation per risk field, selected
// by the field's axis and intensity. Combinations absent from the template
// table are skipped; empty input yields empty output, never an error.
type V1Service struct {
	templates rules.TemplateTableV1
}

// NewV1Service creates a paid-tier explanation service over a loaded
// template table
func NewV1Service(templates rules.TemplateTableV1) *V1Service {
	return &V1Service{templates: templates}
}

// Explain maps each risk field to its axis/intensity template.
func (s *V1Service) Explain(fields []model.RiskField) model.ExplanationOutputV1 {
	explanations := make([]model.FieldExplanation, 0, len(fields))

	for _, field := range fields {
		byIntensity, ok := s.templates.Templates[field.Axis]
		if !ok {
			continue
		}
		template, ok := byIntensity[field.Intensity]
		if !ok {
			continue
		}
		explanations = append(explanations, model.FieldExplanation{
			Axis:           field.Axis,
			Intensity:      field.Intensity,
			AffectedParty:  field.AffectedParty,
			Title:          template.Title,
			Message:        template.Message,
			UserAction:     template.UserAction,
			Compounding:    field.Compounding,
			SourceSegments: field.SourceSegmentIDs,
		})
	}

	return model.ExplanationOutputV1{FieldExplanations: explanations}
}
