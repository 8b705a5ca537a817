package extract

import (
	"regexp"
	"strings"

	"github.com/markforge8/ClearLease/internal/model"
	"github.com/markforge8/ClearLease/internal/rules"
)

var (
	datePattern     = regexp.MustCompile(`\b\d{1,2}[/-]\d{1,2}[/-]\d{2,4}\b`)
	currencyPattern = regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)
)

// Extractor applies the extraction rule table to normalized segments.
// Matching is deterministic substring/regex scanning; rules that match
// nothing are silent no-ops.
type Extractor struct {
	rules []rules.ExtractionRule
}

// NewExtractor creates an extractor over a loaded rule table
func NewExtractor(ruleTable []rules.ExtractionRule) *Extractor {
	return &Extractor{rules: ruleTable}
}

// Extract emits one signal per match across all segments, in scan order.
func (e *Extractor) Extract(segments []model.TextSegment) []model.ExtractionSignal {
	var signals []model.ExtractionSignal

	order := 0
	for _, segment := range segments {
		for _, rule := range e.rules {
			for _, m := range e.applyRule(rule, segment.NormalizedText) {
				signals = append(signals, model.ExtractionSignal{
					RuleID:      rule.RuleID,
					Type:        rule.RuleType,
					MatchedText: m.text,
					SegmentID:   segment.ID,
					Order:       order,
					Position:    m.position,
					Metadata:    m.metadata,
				})
				order++
			}
		}
	}

	return signals
}

type match struct {
	text     string
	position int
	metadata map[string]any
}

func (e *Extractor) applyRule(rule rules.ExtractionRule, text string) []match {
	switch rule.RuleType {
	case model.RuleTypeKeyword:
		return scanTerms(text, rule.Keywords, rule.CaseSensitive, "matched_keyword")
	case model.RuleTypePhrase:
		return scanTerms(text, rule.Phrases, rule.CaseSensitive, "matched_phrase")
	case model.RuleTypeStructural:
		return scanStructural(rule, text)
	default:
		return nil
	}
}

// scanTerms finds every occurrence of every term. The scan restarts one
// character past each found position, so overlapping matches are reported.
// That is the intended contract, not an off-by-one.
func scanTerms(text string, terms []string, caseSensitive bool, metaKey string) []match {
	searchText := text
	if !caseSensitive {
		searchText = strings.ToLower(text)
	}

	var matches []match
	for _, term := range terms {
		searchTerm := term
		if !caseSensitive {
			searchTerm = strings.ToLower(term)
		}

		start := 0
		for {
			idx := strings.Index(searchText[start:], searchTerm)
			if idx == -1 {
				break
			}
			position := start + idx
			matches = append(matches, match{
				text:     term,
				position: position,
				metadata: map[string]any{metaKey: term},
			})
			start = position + 1
		}
	}

	return matches
}

func scanStructural(rule rules.ExtractionRule, text string) []match {
	switch rule.Pattern {
	case model.PatternDate:
		return scanRegex(datePattern, text, "date")
	case model.PatternCurrency:
		return scanRegex(currencyPattern, text, "currency")
	case model.PatternLineStart:
		return scanLinePrefixes(text, rule.LabelPrefixes)
	default:
		return nil
	}
}

func scanRegex(pattern *regexp.Regexp, text string, kind string) []match {
	var matches []match
	for _, loc := range pattern.FindAllStringIndex(text, -1) {
		matches = append(matches, match{
			text:     text[loc[0]:loc[1]],
			position: loc[0],
			metadata: map[string]any{"pattern_type": kind},
		})
	}
	return matches
}

// scanLinePrefixes matches whole lines that start with a configured label.
// Position is the offset of the line within the segment text.
func scanLinePrefixes(text string, prefixes []string) []match {
	var matches []match

	lines := strings.Split(text, "\n")
	offset := 0
	for lineIdx, line := range lines {
		trimmed := strings.TrimSpace(line)
		for _, prefix := range prefixes {
			if strings.HasPrefix(trimmed, prefix) {
				matches = append(matches, match{
					text:     trimmed,
					position: offset,
					metadata: map[string]any{
						"matched_prefix": prefix,
						"line_number":    lineIdx + 1,
					},
				})
				break
			}
		}
		offset += len(line) + 1
	}

	return matches
}
