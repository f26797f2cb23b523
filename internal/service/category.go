package service

import (
	"sort"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

// readingSpeedWPM is the assumed words-per-minute used for per-record
// reading-time estimates.
const readingSpeedWPM = 225

type categoryAcc struct {
	count   int64
	views   int64
	likes   int64
	minutes int64 // sum of per-record reading estimates
}

// CategoryPerformance groups the windowed records by their raw category
// string (empty is its own group) and returns the groups sorted by
// SumViews descending, category ascending on ties.
//
// Reading time is estimated per record as ceil(words / 225) and then
// averaged across the group, so a few very long posts do not skew the
// metric through premature summation. A zero-length record contributes
// an estimate of 0.
func CategoryPerformance(records []entity.ContentRecord, window entity.TimeWindow) ([]entity.CategoryMetrics, error) {
	filtered, err := filterWindow(records, window)
	if err != nil {
		return nil, err
	}

	accs := make(map[string]*categoryAcc, 16)
	for _, r := range filtered {
		a := accs[r.Category]
		if a == nil {
			a = &categoryAcc{}
			accs[r.Category] = a
		}
		a.count++
		a.views += r.ViewCount
		a.likes += r.LikeCount
		a.minutes += readingMinutes(r.ContentLength)
	}

	out := make([]entity.CategoryMetrics, 0, len(accs))
	for cat, a := range accs {
		out = append(out, entity.CategoryMetrics{
			Category:          cat,
			Count:             a.count,
			SumViews:          a.views,
			SumLikes:          a.likes,
			AvgViews:          round2(float64(a.views) / float64(a.count)),
			AvgReadingMinutes: round2(float64(a.minutes) / float64(a.count)),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SumViews != out[j].SumViews {
			return out[i].SumViews > out[j].SumViews
		}
		return out[i].Category < out[j].Category
	})
	return out, nil
}

func readingMinutes(words int64) int64 {
	if words <= 0 {
		return 0
	}
	return (words + readingSpeedWPM - 1) / readingSpeedWPM
}
