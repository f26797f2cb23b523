package service

import (
	"time"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

var noWindow = entity.TimeWindow{}

func window(from, to time.Time) entity.TimeWindow {
	return entity.TimeWindow{From: &from, To: &to}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// corpusRecords is the reference corpus used across the aggregator tests:
// three posts, two categories, two authors, one draft.
func corpusRecords() []entity.ContentRecord {
	return []entity.ContentRecord{
		{
			ID: "p1", Category: "Tech", Status: entity.StatusPublished,
			ViewCount: 100, LikeCount: 2, ContentLength: 450,
			AuthorID: "a1", CreatedAt: day(2023, time.January, 15),
		},
		{
			ID: "p2", Category: "Design", Status: entity.StatusPublished,
			ViewCount: 200, LikeCount: 1, ContentLength: 900,
			AuthorID: "a2", CreatedAt: day(2023, time.February, 15),
		},
		{
			ID: "p3", Category: "Tech", Status: entity.StatusDraft,
			ViewCount: 50, LikeCount: 0, ContentLength: 0,
			AuthorID: "a1", CreatedAt: day(2023, time.March, 15),
		},
	}
}
