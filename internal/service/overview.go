package service

import (
	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

// Overview computes corpus-wide totals for the windowed records.
// CountsByStatus carries every known status key even at zero, so callers
// never special-case missing keys. Distinct authors are counted from the
// opaque AuthorID values only; no user store is consulted.
func Overview(records []entity.ContentRecord, window entity.TimeWindow) (entity.Overview, error) {
	filtered, err := filterWindow(records, window)
	if err != nil {
		return entity.Overview{}, err
	}

	counts := make(map[string]int64, 3)
	for _, s := range entity.KnownStatuses() {
		counts[string(s)] = 0
	}
	authors := make(map[string]struct{}, len(filtered))

	ov := entity.Overview{CountsByStatus: counts}
	for _, r := range filtered {
		ov.TotalCount++
		ov.SumViews += r.ViewCount
		ov.SumLikes += r.LikeCount
		counts[string(r.Status)]++
		authors[r.AuthorID] = struct{}{}
	}
	ov.DistinctAuthorCount = int64(len(authors))
	return ov, nil
}
