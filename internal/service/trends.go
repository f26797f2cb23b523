package service

import (
	"sort"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

type trendAcc struct {
	key   Key
	count int64
	views int64
	likes int64
}

// Trends groups the windowed records into time buckets and returns them
// in chronological order. Buckets exist only for periods that contain at
// least one record; callers wanting a dense time axis synthesize the gaps
// themselves.
func Trends(records []entity.ContentRecord, g entity.Granularity, window entity.TimeWindow) ([]entity.AggregateBucket, error) {
	filtered, err := filterWindow(records, window)
	if err != nil {
		return nil, err
	}

	accs := make(map[string]*trendAcc, 16)
	for _, r := range filtered {
		k := BucketKey(r.CreatedAt, g)
		a := accs[k.Label]
		if a == nil {
			a = &trendAcc{key: k}
			accs[k.Label] = a
		}
		a.count++
		a.views += r.ViewCount
		a.likes += r.LikeCount
	}

	ordered := make([]*trendAcc, 0, len(accs))
	for _, a := range accs {
		ordered = append(ordered, a)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key.Start.Before(ordered[j].key.Start) })

	out := make([]entity.AggregateBucket, 0, len(ordered))
	for _, a := range ordered {
		out = append(out, entity.AggregateBucket{
			Key:      a.key.Label,
			Count:    a.count,
			SumViews: a.views,
			SumLikes: a.likes,
			AvgViews: round2(float64(a.views) / float64(a.count)),
			AvgLikes: round2(float64(a.likes) / float64(a.count)),
		})
	}
	return out, nil
}
