package service

import (
	"errors"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

func TestOverview_Scenario(t *testing.T) {
	ov, err := Overview(corpusRecords(), noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ov.TotalCount != 3 || ov.SumViews != 350 || ov.SumLikes != 3 {
		t.Fatalf("expected totals 3/350/3, got %d/%d/%d", ov.TotalCount, ov.SumViews, ov.SumLikes)
	}
	if ov.CountsByStatus["published"] != 2 || ov.CountsByStatus["draft"] != 1 || ov.CountsByStatus["archived"] != 0 {
		t.Fatalf("unexpected status counts: %v", ov.CountsByStatus)
	}
	if ov.DistinctAuthorCount != 2 {
		t.Fatalf("expected 2 distinct authors, got %d", ov.DistinctAuthorCount)
	}
}

func TestOverview_AlwaysThreeStatusKeys(t *testing.T) {
	records := []entity.ContentRecord{
		{ID: "r1", Status: entity.StatusPublished, AuthorID: "a1", CreatedAt: day(2023, time.May, 1)},
	}
	ov, err := Overview(records, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ov.CountsByStatus) != 3 {
		t.Fatalf("expected exactly 3 status keys, got %v", ov.CountsByStatus)
	}
	for _, s := range entity.KnownStatuses() {
		if _, ok := ov.CountsByStatus[string(s)]; !ok {
			t.Fatalf("missing status key %q", s)
		}
	}
}

func TestOverview_WindowExcludesEverywhere(t *testing.T) {
	win := window(day(2023, time.February, 1), day(2023, time.March, 31))
	ov, err := Overview(corpusRecords(), win)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// January record is excluded from every total.
	if ov.TotalCount != 2 || ov.SumViews != 250 || ov.SumLikes != 1 {
		t.Fatalf("expected windowed totals 2/250/1, got %d/%d/%d", ov.TotalCount, ov.SumViews, ov.SumLikes)
	}
}

func TestOverview_Empty(t *testing.T) {
	ov, err := Overview(nil, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ov.TotalCount != 0 || ov.SumViews != 0 || ov.SumLikes != 0 || ov.DistinctAuthorCount != 0 {
		t.Fatalf("expected zero-valued overview, got %+v", ov)
	}
	if len(ov.CountsByStatus) != 3 {
		t.Fatalf("empty corpus must still carry 3 status keys, got %v", ov.CountsByStatus)
	}
}

func TestOverview_MissingCreatedAt(t *testing.T) {
	records := []entity.ContentRecord{{ID: "broken", Status: entity.StatusDraft}}
	if _, err := Overview(records, noWindow); !errors.Is(err, ErrMissingCreatedAt) {
		t.Fatalf("expected ErrMissingCreatedAt, got %v", err)
	}
}
