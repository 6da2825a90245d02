// Package transcript fetches video caption tracks from YouTube's
// timedtext endpoint. A single attempt per video; any failure (no
// captions, HTTP error, malformed payload) is one error for the caller
// to handle.
package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"command-center/internal/models"
)

const defaultBaseURL = "https://video.google.com/timedtext"

// Client implements strategy.TranscriptProvider over the timedtext API.
type Client struct {
	baseURL string
	lang    string
	client  *http.Client
}

func NewClient(lang string) *Client {
	if lang == "" {
		lang = "en"
	}
	return &Client{
		baseURL: defaultBaseURL,
		lang:    lang,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// timedText mirrors the endpoint's XML payload.
type timedText struct {
	XMLName xml.Name `xml:"transcript"`
	Texts   []struct {
		Start float64 `xml:"start,attr"`
		Dur   float64 `xml:"dur,attr"`
		Body  string  `xml:",chardata"`
	} `xml:"text"`
}

// Fetch returns the caption segments for a video in their served order.
func (c *Client) Fetch(ctx context.Context, videoID string) ([]models.TranscriptSegment, error) {
	endpoint := fmt.Sprintf("%s?lang=%s&v=%s", c.baseURL, url.QueryEscape(c.lang), url.QueryEscape(videoID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create transcript request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transcript: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("transcript endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript response: %w", err)
	}

	// The endpoint answers 200 with an empty body for captionless videos.
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, fmt.Errorf("no captions available for video %s", videoID)
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("failed to parse transcript payload: %w", err)
	}

	segments := make([]models.TranscriptSegment, 0, len(tt.Texts))
	for _, t := range tt.Texts {
		text := strings.TrimSpace(html.UnescapeString(t.Body))
		if text == "" {
			continue
		}
		segments = append(segments, models.TranscriptSegment{
			Start:    t.Start,
			Duration: t.Dur,
			Text:     text,
		})
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("no captions available for video %s", videoID)
	}
	return segments, nil
}
