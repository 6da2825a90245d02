// Package strategy turns one selected video into a content-strategy
// document. Source material is the video transcript when available,
// with a title-and-tags fallback; provider failures never escape as
// errors, they become documents with a distinguished source label.
package strategy

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"command-center/internal/models"
)

// DefaultContextRunes caps the source context when no cap is configured.
const DefaultContextRunes = 5000

// TranscriptProvider fetches the timed text segments for a video, or
// fails. The engine treats every failure cause the same way.
type TranscriptProvider interface {
	Fetch(ctx context.Context, videoID string) ([]models.TranscriptSegment, error)
}

// Completer produces generated text for a prompt, or fails.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Engine is the strategy generator. One transcript attempt, one
// completion attempt, no retries, no caching.
type Engine struct {
	transcripts     TranscriptProvider
	completer       Completer
	maxContextRunes int
}

func NewEngine(transcripts TranscriptProvider, completer Completer, maxContextRunes int) *Engine {
	if maxContextRunes <= 0 {
		maxContextRunes = DefaultContextRunes
	}
	return &Engine{
		transcripts:     transcripts,
		completer:       completer,
		maxContextRunes: maxContextRunes,
	}
}

// Generate builds the strategy document for one video. It always
// returns a document: transcript failures fall back to title/tags
// context, and completion failures yield a document whose Source is
// SourceError and whose Content is the error report.
func (e *Engine) Generate(ctx context.Context, videoID, title string, tags []string) *models.StrategyDocument {
	doc := &models.StrategyDocument{
		VideoID:     videoID,
		Title:       title,
		GeneratedAt: time.Now(),
	}

	contextText, source := e.buildContext(ctx, videoID, title, tags)
	doc.Source = source

	text, err := e.completer.Complete(ctx, buildPrompt(contextText, source))
	if err != nil {
		doc.Source = models.SourceError
		doc.Content = fmt.Sprintf("strategy generation failed: %v", err)
		return doc
	}

	doc.Content = text
	return doc
}

// buildContext resolves the source material. The transcript text is
// truncated to the rune cap before any further processing so the prompt
// stays bounded.
func (e *Engine) buildContext(ctx context.Context, videoID, title string, tags []string) (string, models.ContextSource) {
	segments, err := e.transcripts.Fetch(ctx, videoID)
	if err != nil || len(segments) == 0 {
		if err != nil {
			log.Printf("Transcript unavailable for %s, falling back to metadata: %v", videoID, err)
		}
		return truncateRunes(metadataContext(title, tags), e.maxContextRunes), models.SourceMetadata
	}

	texts := make([]string, 0, len(segments))
	for _, seg := range segments {
		texts = append(texts, seg.Text)
	}
	return truncateRunes(strings.Join(texts, " "), e.maxContextRunes), models.SourceTranscript
}

// metadataContext renders the fallback source material from the
// video's title and tag list. Deterministic for identical input.
func metadataContext(title string, tags []string) string {
	return fmt.Sprintf("Video Title: %s. Video Tags: %s.", title, strings.Join(tags, ", "))
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
