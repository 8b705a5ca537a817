package model

// TextSegment is a normalized block of agreement text with basic statistics.
// Segments are created once by the normalizer and never modified afterwards;
// ordering is the order of appearance in the source text.
type TextSegment struct {
	ID               string `json:"id"`                // Unique identifier (e.g., "seg_0")
	Order            int    `json:"order"`             // Position within the source text
	NormalizedText   string `json:"normalized_text"`   // Whitespace-collapsed text
	OriginalLength   int    `json:"original_length"`   // Raw text length in characters
	NormalizedLength int    `json:"normalized_length"` // Normalized text length in characters
	LineCount        int    `json:"line_count"`        // Lines after dropping empty ones
	WordCount        int    `json:"word_count"`        // Space-separated word count
}

// TextStats summarizes normalization totals across all segments.
type TextStats struct {
	SegmentCount    int `json:"segment_count"`
	TotalCharacters int `json:"total_characters"` // Normalized characters across segments
	TotalWords      int `json:"total_words"`
}
