package rules

import (
	"fmt"
	"os"

	"github.com/markforge8/ClearLease/internal/model"
	"gopkg.in/yaml.v3"
)

// ExtractionRule is one validated entry of the extraction rule table.
type ExtractionRule struct {
	RuleID        string
	RuleType      model.RuleType
	Keywords      []string // keyword rules
	Phrases       []string // phrase rules
	Pattern       model.StructuralPattern
	LabelPrefixes []string // line_start structural rules
	CaseSensitive bool
}

// RiskMapping maps a rule id to a risk classification.
type RiskMapping struct {
	RiskCode    string
	Severity    model.Severity
	Description string
}

// ExplanationTemplate is one user-facing template entry.
type ExplanationTemplate struct {
	Title      string `yaml:"title" json:"title"`
	Message    string `yaml:"message" json:"message"`
	UserAction string `yaml:"user_action" json:"user_action"`
}

// TemplateTableV0 holds the free-tier templates.
type TemplateTableV0 struct {
	OverallMessages  map[model.Severity]string
	RiskExplanations map[string]ExplanationTemplate // keyed by risk code
}

// TemplateTableV1 holds the paid-tier templates, keyed by axis then intensity.
// All 3 axes x 3 intensities are required.
type TemplateTableV1 struct {
	Templates map[model.RiskAxis]map[model.Severity]ExplanationTemplate
}

// Tables is the complete rule/template configuration. Built once at service
// construction and read-only afterwards; safe for unbounded concurrent reads.
type Tables struct {
	Extraction   []ExtractionRule
	RiskMappings map[string]RiskMapping // keyed by rule id
	TemplatesV0  TemplateTableV0
	TemplatesV1  TemplateTableV1
}

// Load builds the tables from the configured paths. An empty path selects the
// built-in default table for that concern. Any structural problem in a file is
// fatal: there is no partial or degraded mode.
func Load(cfg model.RulesConfig) (*Tables, error) {
	t := &Tables{}

	if cfg.ExtractionPath == "" {
		t.Extraction = defaultExtractionRules()
	} else {
		data, err := os.ReadFile(cfg.ExtractionPath)
		if err != nil {
			return nil, fmt.Errorf("read extraction rules: %w", err)
		}
		rules, err := ParseExtractionRules(data)
		if err != nil {
			return nil, fmt.Errorf("extraction rules %s: %w", cfg.ExtractionPath, err)
		}
		t.Extraction = rules
	}

	if cfg.RiskMappingPath == "" {
		t.RiskMappings = defaultRiskMappings()
	} else {
		data, err := os.ReadFile(cfg.RiskMappingPath)
		if err != nil {
			return nil, fmt.Errorf("read risk mappings: %w", err)
		}
		mappings, err := ParseRiskMappings(data)
		if err != nil {
			return nil, fmt.Errorf("risk mappings %s: %w", cfg.RiskMappingPath, err)
		}
		t.RiskMappings = mappings
	}

	if cfg.TemplatesV0Path == "" {
		t.TemplatesV0 = defaultTemplatesV0()
	} else {
		data, err := os.ReadFile(cfg.TemplatesV0Path)
		if err != nil {
			return nil, fmt.Errorf("read v0 templates: %w", err)
		}
		tpl, err := ParseTemplatesV0(data)
		if err != nil {
			return nil, fmt.Errorf("v0 templates %s: %w", cfg.TemplatesV0Path, err)
		}
		t.TemplatesV0 = tpl
	}

	if cfg.TemplatesV1Path == "" {
		t.TemplatesV1 = defaultTemplatesV1()
	} else {
		data, err := os.ReadFile(cfg.TemplatesV1Path)
		if err != nil {
			return nil, fmt.Errorf("read v1 templates: %w", err)
		}
		tpl, err := ParseTemplatesV1(data)
		if err != nil {
			return nil, fmt.Errorf("v1 templates %s: %w", cfg.TemplatesV1Path, err)
		}
		t.TemplatesV1 = tpl
	}

	return t, nil
}

// rawExtractionDoc mirrors the on-disk document shape. Tables are YAML/JSON
// key-value documents; YAML is a superset of JSON so one decoder serves both.
type rawExtractionDoc struct {
	Rules []rawExtractionRule `yaml:"rules"`
}

type rawExtractionRule struct {
	RuleID        string   `yaml:"rule_id"`
	RuleType      string   `yaml:"rule_type"`
	Keywords      []string `yaml:"keywords"`
	Phrases       []string `yaml:"phrases"`
	Pattern       string   `yaml:"pattern"`
	LabelPrefixes []string `yaml:"label_prefixes"`
	CaseSensitive bool     `yaml:"case_sensitive"`
}

// ParseExtractionRules decodes and validates an extraction rule table.
// Malformed entries fail here, at load time, never at match time.
func ParseExtractionRules(data []byte) ([]ExtractionRule, error) {
	var doc rawExtractionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.Rules == nil {
		return nil, fmt.Errorf("document must contain a 'rules' list")
	}

	rules := make([]ExtractionRule, 0, len(doc.Rules))
	for i, raw := range doc.Rules {
		if raw.RuleID == "" {
			return nil, fmt.Errorf("rule %d: missing rule_id", i)
		}
		ruleType, err := model.ParseRuleType(raw.RuleType)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", raw.RuleID, err)
		}

		rule := ExtractionRule{
			RuleID:        raw.RuleID,
			RuleType:      ruleType,
			CaseSensitive: raw.CaseSensitive,
		}

		switch ruleType {
		case model.RuleTypeKeyword:
			if len(raw.Keywords) == 0 {
				return nil, fmt.Errorf("rule %s: keyword rule needs a 'keywords' list", raw.RuleID)
			}
			rule.Keywords = raw.Keywords
		case model.RuleTypePhrase:
			if len(raw.Phrases) == 0 {
				return nil, fmt.Errorf("rule %s: phrase rule needs a 'phrases' list", raw.RuleID)
			}
			rule.Phrases = raw.Phrases
		case model.RuleTypeStructural:
			pattern, err := model.ParseStructuralPattern(raw.Pattern)
			if err != nil {
				return nil, fmt.Errorf("rule %s: %w", raw.RuleID, err)
			}
			if pattern == model.PatternLineStart && len(raw.LabelPrefixes) == 0 {
				return nil, fmt.Errorf("rule %s: line_start rule needs a 'label_prefixes' list", raw.RuleID)
			}
			rule.Pattern = pattern
			rule.LabelPrefixes = raw.LabelPrefixes
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

type rawRiskMappingDoc struct {
	RiskMappings []rawRiskMapping `yaml:"risk_mappings"`
}

type rawRiskMapping struct {
	RuleID      string `yaml:"rule_id"`
	RiskCode    string `yaml:"risk_code"`
	Severity    string `yaml:"severity"`
	Description string `yaml:"description"`
}

// ParseRiskMappings decodes and validates a risk-mapping table.
func ParseRiskMappings(data []byte) (map[string]RiskMapping, error) {
	var doc rawRiskMappingDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if doc.RiskMappings == nil {
		return nil, fmt.Errorf("document must contain a 'risk_mappings' list")
	}

	mappings := make(map[string]RiskMapping, len(doc.RiskMappings))
	for i, raw := range doc.RiskMappings {
		if raw.RuleID == "" || raw.RiskCode == "" || raw.Severity == "" {
			return nil, fmt.Errorf("mapping %d: rule_id, risk_code and severity are required", i)
		}
		severity, err := model.ParseSeverity(raw.Severity)
		if err != nil {
			return nil, fmt.Errorf("mapping %s: %w", raw.RuleID, err)
		}
		mappings[raw.RuleID] = RiskMapping{
			RiskCode:    raw.RiskCode,
			Severity:    severity,
			Description: raw.Description,
		}
	}

	return mappings, nil
}

type rawTemplatesV0Doc struct {
	OverallMessages  map[string]string              `yaml:"overall_messages"`
	RiskExplanations map[string]ExplanationTemplate `yaml:"risk_explanations"`
}

// ParseTemplatesV0 decodes and validates the free-tier template table.
func ParseTemplatesV0(data []byte) (TemplateTableV0, error) {
	var doc rawTemplatesV0Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return TemplateTableV0{}, fmt.Errorf("decode: %w", err)
	}
	if doc.OverallMessages == nil {
		return TemplateTableV0{}, fmt.Errorf("document must contain 'overall_messages'")
	}
	if doc.RiskExplanations == nil {
		return TemplateTableV0{}, fmt.Errorf("document must contain 'risk_explanations'")
	}

	overall := make(map[model.Severity]string, 3)
	for _, level := range []model.Severity{model.SeverityLow, model.SeverityMedium, model.SeverityHigh} {
		msg, ok := doc.OverallMessages[string(level)]
		if !ok || msg == "" {
			return TemplateTableV0{}, fmt.Errorf("overall_messages must contain %q", level)
		}
		overall[level] = msg
	}

	for code, tpl := range doc.RiskExplanations {
		if tpl.Title == "" || tpl.Message == "" || tpl.UserAction == "" {
			return TemplateTableV0{}, fmt.Errorf("risk_explanations[%s]: title, message and user_action are required", code)
		}
	}

	return TemplateTableV0{
		OverallMessages:  overall,
		RiskExplanations: doc.RiskExplanations,
	}, nil
}

type rawTemplatesV1Doc struct {
	Templates map[string]map[string]ExplanationTemplate `yaml:"templates"`
}

// ParseTemplatesV1 decodes and validates the paid-tier template table.
// All 3 axes x 3 intensities must be present.
func ParseTemplatesV1(data []byte) (TemplateTableV1, error) {
	var doc rawTemplatesV1Doc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return TemplateTableV1{}, fmt.Errorf("decode: %w", err)
	}
	if doc.Templates == nil {
		return TemplateTableV1{}, fmt.Errorf("document must contain 'templates'")
	}

	templates := make(map[model.RiskAxis]map[model.Severity]ExplanationTemplate, 3)
	axes := []model.RiskAxis{model.AxisTemporal, model.AxisResponsibility, model.AxisLiability}
	intensities := []model.Severity{model.SeverityLow, model.SeverityMedium, model.SeverityHigh}

	for _, axis := range axes {
		byIntensity, ok := doc.Templates[string(axis)]
		if !ok {
			return TemplateTableV1{}, fmt.Errorf("templates must contain axis %q", axis)
		}
		templates[axis] = make(map[model.Severity]ExplanationTemplate, 3)
		for _, intensity := range intensities {
			tpl, ok := byIntensity[string(intensity)]
			if !ok {
				return TemplateTableV1{}, fmt.Errorf("templates[%s] must contain intensity %q", axis, intensity)
			}
			if tpl.Title == "" || tpl.Message == "" || tpl.UserAction == "" {
				return TemplateTableV1{}, fmt.Errorf("templates[%s][%s]: title, message and user_action are required", axis, intensity)
			}
			templates[axis][intensity] = tpl
		}
	}

	return TemplateTableV1{Templates: templates}, nil
}
