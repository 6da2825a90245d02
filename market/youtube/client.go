package youtube

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"command-center/internal/models"
	"command-center/shared/config"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client is the metadata source: it answers a topic query with an
// ordered list of raw video records. Results come back in the API's
// view-count ranking; callers must not re-sort them.
type Client struct {
	service *youtube.Service
	region  string
}

// NewClient builds an authenticated YouTube Data API client. An API key
// is preferred; without one the OAuth device flow from oauth.go is used.
func NewClient(ctx context.Context, cfg *config.YouTubeConfig, region string) (*Client, error) {
	var opts []option.ClientOption
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	} else {
		httpClient, err := oauthHTTPClient(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to set up OAuth client: %w", err)
		}
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &Client{service: service, region: region}, nil
}

// Search runs the two-step fetch: a view-count-ordered video search for
// the query, then a stats lookup for the returned IDs. The region code
// is passed through to the API opaquely.
func (c *Client) Search(ctx context.Context, query string, maxResults int64) ([]models.VideoRecord, error) {
	searchResp, err := c.service.Search.List([]string{"snippet"}).
		Q(query).
		Type("video").
		RegionCode(c.region).
		Order("viewCount").
		MaxResults(maxResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video search failed: %w", err)
	}

	var ids []string
	for _, item := range searchResp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		log.Printf("No videos found for query %q", query)
		return nil, nil
	}

	videosResp, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Id(strings.Join(ids, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("video stats lookup failed: %w", err)
	}

	// Index by ID so the search ranking survives the stats lookup.
	byID := make(map[string]*youtube.Video, len(videosResp.Items))
	for _, item := range videosResp.Items {
		byID[item.Id] = item
	}

	records := make([]models.VideoRecord, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			continue
		}
		records = append(records, recordFromItem(item))
	}

	log.Printf("Retrieved %d videos for query %q", len(records), query)
	return records, nil
}

// recordFromItem converts an API video item to a VideoRecord. Absent
// statistics and tag lists default to zero values.
func recordFromItem(item *youtube.Video) models.VideoRecord {
	rec := models.VideoRecord{
		ID:  item.Id,
		URL: fmt.Sprintf("https://www.youtube.com/watch?v=%s", item.Id),
	}

	if item.Snippet != nil {
		rec.Title = item.Snippet.Title
		rec.Tags = item.Snippet.Tags
		rec.ThumbnailURL = thumbnailURL(item.Snippet.Thumbnails)
		if publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
			rec.PublishedAt = publishedAt
		}
	}

	if item.Statistics != nil {
		rec.Views = int64(item.Statistics.ViewCount)
		rec.Likes = int64(item.Statistics.LikeCount)
		rec.Comments = int64(item.Statistics.CommentCount)
	}

	return rec
}

func thumbnailURL(thumbs *youtube.ThumbnailDetails) string {
	if thumbs == nil {
		return ""
	}
	for _, t := range []*youtube.Thumbnail{thumbs.High, thumbs.Medium, thumbs.Default} {
		if t != nil && t.Url != "" {
			return t.Url
		}
	}
	return ""
}
