package models

import "time"

// ContextSource labels where a strategy document's source material came
// from. Exactly three values exist; SourceError marks documents whose
// Content is an error report rather than a strategy.
type ContextSource string

const (
	SourceTranscript ContextSource = "full-transcript"
	SourceMetadata   ContextSource = "title-and-metadata-fallback"
	SourceError      ContextSource = "error"
)

// TranscriptSegment is one timed text segment from the transcript source.
type TranscriptSegment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// StrategyDocument is the outcome of a single strategy request. It is
// created fresh per request and never cached or persisted.
type StrategyDocument struct {
	VideoID     string        `json:"video_id"`
	Title       string        `json:"title"`
	Source      ContextSource `json:"source"`
	Content     string        `json:"content"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// IsError reports whether the document carries an error payload
// instead of generated strategy text.
func (d *StrategyDocument) IsError() bool {
	return d.Source == SourceError
}
