package service

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

func TestRank_ByViews(t *testing.T) {
	got, err := Rank(corpusRecords(), entity.MetricViews, 2, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}
	if got[0].ID != "p2" || got[0].MetricValue != 200 {
		t.Fatalf("expected p2 (200 views) first, got %+v", got[0])
	}
	if got[1].ID != "p1" || got[1].MetricValue != 100 {
		t.Fatalf("expected p1 (100 views) second, got %+v", got[1])
	}
}

func TestRank_TieBreaks(t *testing.T) {
	records := []entity.ContentRecord{
		{ID: "b", ViewCount: 10, CreatedAt: day(2023, time.May, 1)},
		{ID: "a", ViewCount: 10, CreatedAt: day(2023, time.May, 1)},
		{ID: "c", ViewCount: 10, CreatedAt: day(2023, time.May, 2)},
	}
	got, err := Rank(records, entity.MetricViews, 10, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Equal metric: newer first; equal metric and time: id ascending.
	wantIDs := []string{"c", "a", "b"}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, got[i].ID)
		}
	}
}

func TestRank_ByLikes(t *testing.T) {
	got, err := Rank(corpusRecords(), entity.MetricLikes, 1, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "p1" || got[0].MetricValue != 2 {
		t.Fatalf("expected p1 with 2 likes, got %+v", got)
	}
}

func TestRank_LimitEdges(t *testing.T) {
	records := corpusRecords()

	zero, err := Rank(records, entity.MetricViews, 0, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zero == nil || len(zero) != 0 {
		t.Fatalf("limit=0 must yield empty non-nil sequence, got %#v", zero)
	}

	neg, err := Rank(records, entity.MetricViews, -3, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(neg) != 0 {
		t.Fatalf("negative limit must yield empty sequence, got %d records", len(neg))
	}

	all, err := Rank(records, entity.MetricViews, 100, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != len(records) {
		t.Fatalf("oversized limit must return full sorted corpus, got %d", len(all))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	records := corpusRecords()
	before := make([]entity.ContentRecord, len(records))
	copy(before, records)

	if _, err := Rank(records, entity.MetricViews, 2, noWindow); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(before, records) {
		t.Fatalf("input slice was reordered")
	}
}

func TestRank_Idempotent(t *testing.T) {
	records := corpusRecords()
	first, err := Rank(records, entity.MetricViews, 3, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Rank(records, entity.MetricViews, 3, noWindow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two identical calls diverged:\n%v\n%v", first, second)
	}
}

func TestRank_MissingCreatedAt(t *testing.T) {
	records := []entity.ContentRecord{{ID: "broken", ViewCount: 5}}
	if _, err := Rank(records, entity.MetricViews, 1, noWindow); !errors.Is(err, ErrMissingCreatedAt) {
		t.Fatalf("expected ErrMissingCreatedAt, got %v", err)
	}
}
