package market

import (
	"context"
	"fmt"
	"log"
	"strings"

	"command-center/internal/models"
	"command-center/shared/storage"
)

// MetadataSource is the external provider of raw video records for a
// query. Implemented by market/youtube.
type MetadataSource interface {
	Search(ctx context.Context, query string, maxResults int64) ([]models.VideoRecord, error)
}

// Scanner runs one market scan: fetch ranked raw records, score them,
// collect tags. A session-scoped cache (optional) avoids re-spending
// API quota on repeated identical queries.
type Scanner struct {
	source     MetadataSource
	rpm        float64
	maxResults int64
	cache      *storage.ScanCache
}

// NewScanner wires a scanner over a metadata source. cache may be nil
// to disable caching.
func NewScanner(source MetadataSource, rpm float64, maxResults int64, cache *storage.ScanCache) *Scanner {
	return &Scanner{
		source:     source,
		rpm:        rpm,
		maxResults: maxResults,
		cache:      cache,
	}
}

// Scan fetches and scores the market for a query. A provider failure
// aborts the scan with no partial result set.
func (s *Scanner) Scan(ctx context.Context, query string) (*models.ResultSet, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	key := s.cacheKey(query)
	if s.cache != nil {
		if rs, ok := s.cache.Get(key); ok {
			log.Printf("Serving cached result set for %q", query)
			return rs, nil
		}
	}

	records, err := s.source.Search(ctx, query, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("market data source unavailable: %w", err)
	}

	rs := BuildResultSet(records, s.rpm)
	log.Printf("Scan %q: %d videos, %d tags", query, len(rs.Videos), len(rs.Tags))

	if s.cache != nil {
		s.cache.Put(key, rs)
	}
	return rs, nil
}

// cacheKey includes the RPM rate because earnings estimates depend on it.
func (s *Scanner) cacheKey(query string) string {
	return fmt.Sprintf("%s|%d|%.2f", strings.ToLower(query), s.maxResults, s.rpm)
}
