package rules

import "github.com/markforge8/ClearLease/internal/model"

// Built-in tables used when the config names no external files. They cover
// the common short-form lease/subscription clauses; deployments override them
// with their own documents.

func defaultExtractionRules() []ExtractionRule {
	return []ExtractionRule{
		{
			RuleID:   "rule_auto_renewal",
			RuleType: model.RuleTypePhrase,
			Phrases: []string{
				"shall automatically renew",
				"automatically renew",
				"automatic renewal",
				"auto renew",
			},
		},
		{
			RuleID:   "rule_notice_window",
			RuleType: model.RuleTypePhrase,
			Phrases: []string{
				"days notice",
				"days' notice",
				"days written notice",
				"90 days",
				"60 days",
				"30 days",
			},
		},
		{
			RuleID:   "rule_maintenance",
			RuleType: model.RuleTypeKeyword,
			Keywords: []string{
				"maintenance",
				"repair",
				"hvac",
				"plumbing",
				"electrical",
			},
		},
		{
			RuleID:   "rule_responsibility",
			RuleType: model.RuleTypePhrase,
			Phrases: []string{
				"responsible for",
				"shall be responsible for",
				"not be responsible for",
			},
		},
		{
			RuleID:   "rule_liability",
			RuleType: model.RuleTypePhrase,
			Phrases: []string{
				"not be liable",
				"shall not be liable",
				"as-is",
				"disclaimer",
			},
		},
		{
			RuleID:   "rule_termination_fee",
			RuleType: model.RuleTypePhrase,
			Phrases: []string{
				"early termination",
				"termination fee",
				"termination penalty",
				"forfeit",
			},
		},
		{
			RuleID:   "rule_unilateral",
			RuleType: model.RuleTypePhrase,
			Phrases: []string{
				"sole discretion",
				"reserves the right to modify",
				"reserves the right to change",
			},
		},
		{
			RuleID:   "rule_dates",
			RuleType: model.RuleTypeStructural,
			Pattern:  model.PatternDate,
		},
		{
			RuleID:   "rule_amounts",
			RuleType: model.RuleTypeStructural,
			Pattern:  model.PatternCurrency,
		},
		{
			RuleID:        "rule_section_labels",
			RuleType:      model.RuleTypeStructural,
			Pattern:       model.PatternLineStart,
			LabelPrefixes: []string{"Section", "Clause", "Article"},
		},
	}
}

// Structural rules (dates, amounts, section labels) are deliberately absent
// here: extraction rules exist independently of risk classification, and
// unmapped rule ids are dropped without error downstream.
func defaultRiskMappings() map[string]RiskMapping {
	return map[string]RiskMapping{
		"rule_auto_renewal": {
			RiskCode:    "AUTO_RENEWAL",
			Severity:    model.SeverityMedium,
			Description: "The agreement renews by itself unless the user acts in time.",
		},
		"rule_notice_window": {
			RiskCode:    "SHORT_NOTICE_WINDOW",
			Severity:    model.SeverityMedium,
			Description: "Cancellation requires notice inside a limited window.",
		},
		"rule_maintenance": {
			RiskCode:    "MAINTENANCE_TRANSFER",
			Severity:    model.SeverityMedium,
			Description: "Maintenance or repair duties are shifted onto the user.",
		},
		"rule_responsibility": {
			RiskCode:    "MAINTENANCE_TRANSFER",
			Severity:    model.SeverityMedium,
			Description: "Maintenance or repair duties are shifted onto the user.",
		},
		"rule_liability": {
			RiskCode:    "LIABILITY_LIMITATION",
			Severity:    model.SeverityHigh,
			Description: "The counterparty limits or excludes its own liability.",
		},
		"rule_termination_fee": {
			RiskCode:    "EARLY_TERMINATION_PENALTY",
			Severity:    model.SeverityHigh,
			Description: "Leaving the agreement early triggers a fee or forfeiture.",
		},
		"rule_unilateral": {
			RiskCode:    "UNILATERAL_MODIFICATION",
			Severity:    model.SeverityHigh,
			Description: "The counterparty may change terms on its own.",
		},
	}
}

func defaultTemplatesV0() TemplateTableV0 {
	return TemplateTableV0{
		OverallMessages: map[model.Severity]string{
			model.SeverityLow:    "We reviewed this agreement and listed the clauses worth reading closely.",
			model.SeverityMedium: "This agreement contains clauses that deserve attention before signing.",
			model.SeverityHigh:   "This agreement contains clauses that could put you at a significant disadvantage.",
		},
		RiskExplanations: map[string]ExplanationTemplate{
			"AUTO_RENEWAL": {
				Title:      "Automatic renewal",
				Message:    "This agreement continues on its own unless you cancel before the renewal date.",
				UserAction: "Note the renewal date and set a reminder well before it.",
			},
			"SHORT_NOTICE_WINDOW": {
				Title:      "Limited cancellation window",
				Message:    "Cancelling requires notice within a specific time window.",
				UserAction: "Check exactly how and when notice must be given.",
			},
			"MAINTENANCE_TRANSFER": {
				Title:      "Maintenance shifted to you",
				Message:    "Upkeep or repair costs that usually fall on the other party are assigned to you.",
				UserAction: "Ask which repairs you would pay for and what they typically cost.",
			},
			"LIABILITY_LIMITATION": {
				Title:      "Limited liability for the other party",
				Message:    "The other party excludes or caps its responsibility if something goes wrong.",
				UserAction: "Check what you could recover if the other party fails to deliver.",
			},
			"EARLY_TERMINATION_PENALTY": {
				Title:      "Early exit costs money",
				Message:    "Ending the agreement early triggers a fee or forfeiture.",
				UserAction: "Work out what leaving early would actually cost you.",
			},
			"UNILATERAL_MODIFICATION": {
				Title:      "Terms can change without your consent",
				Message:    "The other party may change the terms on its own.",
				UserAction: "Check whether changes require notice and whether you can exit when terms change.",
			},
		},
	}
}

func defaultTemplatesV1() TemplateTableV1 {
	return TemplateTableV1{
		Templates: map[model.RiskAxis]map[model.Severity]ExplanationTemplate{
			model.AxisTemporal: {
				model.SeverityLow: {
					Title:      "Mild time pressure",
					Message:    "Some deadlines in this agreement work in the other party's favor.",
					UserAction: "Keep the key dates somewhere you will see them.",
				},
				model.SeverityMedium: {
					Title:      "The clock works against you",
					Message:    "Renewal and cancellation deadlines are set so that missing one extends your commitment.",
					UserAction: "Set reminders ahead of every renewal and notice deadline.",
				},
				model.SeverityHigh: {
					Title:      "Severe time lock-in",
					Message:    "Missing a narrow window locks you into another term with rising exit costs.",
					UserAction: "Decide before the window closes whether you want to continue.",
				},
			},
			model.AxisResponsibility: {
				model.SeverityLow: {
					Title:      "Some duties shifted to you",
					Message:    "A few obligations usually carried by the other party are assigned to you.",
					UserAction: "Confirm which duties you are taking on.",
				},
				model.SeverityMedium: {
					Title:      "Meaningful duties shifted to you",
					Message:    "Several upkeep obligations land on your side of the agreement.",
					UserAction: "Estimate what these duties would cost you per year.",
				},
				model.SeverityHigh: {
					Title:      "The burden lands on you",
					Message:    "Maintenance and repair obligations are shifted onto you while the other party keeps control.",
					UserAction: "Negotiate a cap or carve-out before accepting these duties.",
				},
			},
			model.AxisLiability: {
				model.SeverityLow: {
					Title:      "Narrow liability carve-outs",
					Message:    "The other party excludes responsibility in limited situations.",
					UserAction: "Read the excluded situations and judge how likely they are.",
				},
				model.SeverityMedium: {
					Title:      "Notable liability limits",
					Message:    "The other party caps what it owes you if things go wrong.",
					UserAction: "Compare the cap against what a failure would cost you.",
				},
				model.SeverityHigh: {
					Title:      "You carry the downside",
					Message:    "The other party disclaims responsibility broadly, leaving losses with you.",
					UserAction: "Ask for the disclaimer to be narrowed before signing.",
				},
			},
		},
	}
}
