package service

import (
	"sort"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

// Rank returns the top records by the chosen metric: metric value
// descending, then CreatedAt descending, then ID ascending. The input
// slice is never reordered. limit <= 0 means "no results requested" and
// yields an empty sequence, not an error.
func Rank(records []entity.ContentRecord, metric entity.Metric, limit int, window entity.TimeWindow) ([]entity.RankedRecord, error) {
	filtered, err := filterWindow(records, window)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []entity.RankedRecord{}, nil
	}

	sort.Slice(filtered, func(i, j int) bool {
		a, b := filtered[i], filtered[j]
		av, bv := metricValue(a, metric), metricValue(b, metric)
		if av != bv {
			return av > bv
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	if limit < len(filtered) {
		filtered = filtered[:limit]
	}
	out := make([]entity.RankedRecord, 0, len(filtered))
	for _, r := range filtered {
		out = append(out, entity.RankedRecord{
			ID:          r.ID,
			Category:    r.Category,
			Status:      r.Status,
			MetricValue: metricValue(r, metric),
			ViewCount:   r.ViewCount,
			LikeCount:   r.LikeCount,
			CreatedAt:   r.CreatedAt,
		})
	}
	return out, nil
}

func metricValue(r entity.ContentRecord, m entity.Metric) int64 {
	if m == entity.MetricLikes {
		return r.LikeCount
	}
	return r.ViewCount
}
