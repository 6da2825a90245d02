package market

import (
	"errors"
	"math"
	"sort"

	"command-center/internal/models"
)

// ErrNoVideosAvailable is returned by selection helpers when the result
// set contains no videos. An empty result set itself is valid output.
var ErrNoVideosAvailable = errors.New("no videos available in result set")

// BuildResultSet derives per-video metrics from raw records and
// collects the flattened tag multiset. Input order is preserved and the
// input slice is never mutated. rpm must be > 0; that is the caller's
// contract and is not re-validated here.
//
// Virality scores normalize each raw score against the set maximum to a
// 0-100 scale, rounded half away from zero (math.Round). When every raw
// score is zero, or the set is empty, normalization is skipped and all
// scores stay 0.
func BuildResultSet(records []models.VideoRecord, rpm float64) *models.ResultSet {
	rs := &models.ResultSet{
		Videos: make([]models.ScoredVideo, 0, len(records)),
	}

	var maxRaw float64
	for _, rec := range records {
		sv := models.ScoredVideo{VideoRecord: rec}

		if rec.Views > 0 {
			sv.EngagementPct = round2(float64(rec.Likes+rec.Comments) / float64(rec.Views) * 100)
		}
		sv.EarningsEstimate = round2(float64(rec.Views) / 1000 * rpm)
		sv.ViralityRaw = float64(rec.Views)*0.5 + float64(rec.Likes)*50 + float64(rec.Comments)*100

		if sv.ViralityRaw > maxRaw {
			maxRaw = sv.ViralityRaw
		}

		rs.Tags = append(rs.Tags, rec.Tags...)
		rs.Videos = append(rs.Videos, sv)
	}

	if maxRaw > 0 {
		for i := range rs.Videos {
			rs.Videos[i].ViralityScore = int(math.Round(rs.Videos[i].ViralityRaw / maxRaw * 100))
		}
	}

	return rs
}

// TopTags returns the limit most frequent tags in the result set's tag
// multiset, most frequent first. Ties keep first-occurrence order so
// repeated calls on the same input are identical.
func TopTags(rs *models.ResultSet, limit int) []models.TagCount {
	if rs == nil || limit <= 0 {
		return nil
	}

	counts := make(map[string]int, len(rs.Tags))
	var distinct []string
	for _, tag := range rs.Tags {
		if counts[tag] == 0 {
			distinct = append(distinct, tag)
		}
		counts[tag]++
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		return counts[distinct[i]] > counts[distinct[j]]
	})

	if len(distinct) > limit {
		distinct = distinct[:limit]
	}

	out := make([]models.TagCount, 0, len(distinct))
	for _, tag := range distinct {
		out = append(out, models.TagCount{Tag: tag, Count: counts[tag]})
	}
	return out
}

// Summarize computes the headline numbers shown above the scan table.
func Summarize(rs *models.ResultSet) models.ScanSummary {
	summary := models.ScanSummary{VideoCount: len(rs.Videos)}
	if len(rs.Videos) == 0 {
		return summary
	}

	var engagementSum float64
	for _, v := range rs.Videos {
		summary.TotalViews += v.Views
		summary.MarketValue += v.EarningsEstimate
		engagementSum += v.EngagementPct
		if v.ViralityScore > summary.TopViralityScore {
			summary.TopViralityScore = v.ViralityScore
		}
	}
	summary.MarketValue = round2(summary.MarketValue)
	summary.AvgEngagementPct = round2(engagementSum / float64(len(rs.Videos)))
	return summary
}

// TopVideo returns the highest-scoring video, or ErrNoVideosAvailable
// for an empty set. Ties go to the earlier (higher-ranked) row.
func TopVideo(rs *models.ResultSet) (models.ScoredVideo, error) {
	if rs == nil || len(rs.Videos) == 0 {
		return models.ScoredVideo{}, ErrNoVideosAvailable
	}
	top := rs.Videos[0]
	for _, v := range rs.Videos[1:] {
		if v.ViralityScore > top.ViralityScore {
			top = v
		}
	}
	return top, nil
}

// FindVideo looks a video up by its provider identifier.
func FindVideo(rs *models.ResultSet, videoID string) (models.ScoredVideo, error) {
	if rs == nil || len(rs.Videos) == 0 {
		return models.ScoredVideo{}, ErrNoVideosAvailable
	}
	for _, v := range rs.Videos {
		if v.ID == videoID {
			return v, nil
		}
	}
	return models.ScoredVideo{}, ErrNoVideosAvailable
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
