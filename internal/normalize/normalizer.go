package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/markforge8/ClearLease/internal/model"
)

// ErrEmptyInput is returned when the input text is empty after trimming.
var ErrEmptyInput = errors.New("input text is empty")

// Normalizer turns raw agreement text into ordered, immutable text segments.
// It makes no semantic judgment; the result is a pure function of the input.
type Normalizer struct{}

// NewNormalizer creates a new normalizer
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize produces one or more segments by collapsing intra-line
// whitespace and dropping empty lines, preserving line structure for
// position math.
func (n *Normalizer) Normalize(text string) ([]model.TextSegment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}

	normalized := normalizeText(text)

	segment := model.TextSegment{
		ID:               SegmentID(0),
		Order:            0,
		NormalizedText:   normalized,
		OriginalLength:   len(text),
		NormalizedLength: len(normalized),
		LineCount:        lineCount(normalized),
		WordCount:        countWords(normalized),
	}

	return []model.TextSegment{segment}, nil
}

// Stats sums segment statistics into totals.
func Stats(segments []model.TextSegment) model.TextStats {
	stats := model.TextStats{SegmentCount: len(segments)}
	for _, seg := range segments {
		stats.TotalCharacters += seg.NormalizedLength
		stats.TotalWords += seg.WordCount
	}
	return stats
}

// normalizeText collapses runs of whitespace within each line to single
// spaces, trims the line, and drops lines left empty.
func normalizeText(text string) string {
	lines := strings.Split(text, "\n")

	var normalized []string
	for _, line := range lines {
		collapsed := strings.Join(strings.Fields(line), " ")
		if collapsed != "" {
			normalized = append(normalized, collapsed)
		}
	}

	return strings.Join(normalized, "\n")
}

func lineCount(text string) int {
	if text == "" {
		return 1
	}
	return len(strings.Split(text, "\n"))
}

func countWords(text string) int {
	return len(strings.Fields(text))
}

// SegmentID formats a segment id from its order.
func SegmentID(order int) string {
	return fmt.Sprintf("seg_%d", order)
}
