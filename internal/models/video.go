package models

import "time"

// VideoRecord is one raw row from the metadata source. Counts the
// provider omits stay at zero; the tag list may be empty.
type VideoRecord struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Views        int64     `json:"views"`
	Likes        int64     `json:"likes"`
	Comments     int64     `json:"comments"`
	PublishedAt  time.Time `json:"published_at"`
	Tags         []string  `json:"tags,omitempty"`
	ThumbnailURL string    `json:"thumbnail_url,omitempty"`
	URL          string    `json:"url"`
}

// ScoredVideo is a VideoRecord plus the derived metrics. It is built
// once by the aggregator and never mutated afterwards.
type ScoredVideo struct {
	VideoRecord

	// EngagementPct is (likes+comments)/views*100, 0 for zero-view videos.
	EngagementPct float64 `json:"engagement_pct"`
	// EarningsEstimate is (views/1000)*RPM in dollars.
	EarningsEstimate float64 `json:"earnings_estimate"`
	// ViralityRaw is views*0.5 + likes*50 + comments*100.
	ViralityRaw float64 `json:"virality_raw"`
	// ViralityScore is ViralityRaw normalized to 0-100 against the
	// result set maximum.
	ViralityScore int `json:"virality_score"`
}

// ResultSet holds one scan's scored videos in the provider's ranking
// order, plus the flattened tag multiset across all of them (first
// occurrence order, duplicates retained).
type ResultSet struct {
	Videos []ScoredVideo `json:"videos"`
	Tags   []string      `json:"tags,omitempty"`
}

// TagCount is one entry of a tag frequency ranking.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// ScanSummary carries the headline numbers for a result set.
type ScanSummary struct {
	VideoCount       int     `json:"video_count"`
	TotalViews       int64   `json:"total_views"`
	MarketValue      float64 `json:"market_value"`
	AvgEngagementPct float64 `json:"avg_engagement_pct"`
	TopViralityScore int     `json:"top_virality_score"`
}

// ScanReport is the payload for an emailed market scan report.
type ScanReport struct {
	Query   string        `json:"query"`
	Date    time.Time     `json:"date"`
	Summary ScanSummary   `json:"summary"`
	Videos  []ScoredVideo `json:"videos"`
	TopTags []TagCount    `json:"top_tags"`
}
