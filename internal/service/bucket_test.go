package service

import (
	"testing"
	"time"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

func TestBucketKey_Day(t *testing.T) {
	ts := time.Date(2023, time.January, 15, 10, 30, 45, 0, time.UTC)
	k := BucketKey(ts, entity.GranularityDay)
	if k.Label != "2023-01-15" {
		t.Fatalf("expected label 2023-01-15, got %q", k.Label)
	}
	if !k.Start.Equal(day(2023, time.January, 15)) {
		t.Fatalf("expected start at midnight UTC, got %s", k.Start)
	}
}

func TestBucketKey_Day_NonUTCInput(t *testing.T) {
	// 02:30 +05:00 is still the previous day in UTC.
	loc := time.FixedZone("UTC+5", 5*3600)
	ts := time.Date(2023, time.March, 1, 2, 30, 0, 0, loc)
	k := BucketKey(ts, entity.GranularityDay)
	if k.Label != "2023-02-28" {
		t.Fatalf("expected label 2023-02-28, got %q", k.Label)
	}
}

func TestBucketKey_Month(t *testing.T) {
	ts := time.Date(2023, time.February, 28, 23, 59, 59, 0, time.UTC)
	k := BucketKey(ts, entity.GranularityMonth)
	if k.Label != "2023-02" {
		t.Fatalf("expected label 2023-02, got %q", k.Label)
	}
	if !k.Start.Equal(day(2023, time.February, 1)) {
		t.Fatalf("expected start at first of month, got %s", k.Start)
	}
}

func TestBucketKey_Week_ISO(t *testing.T) {
	tests := []struct {
		name      string
		ts        time.Time
		wantLabel string
		wantStart time.Time
	}{
		{
			name:      "mid-year sunday belongs to the week of the preceding monday",
			ts:        day(2023, time.January, 15), // Sunday
			wantLabel: "2023-W02",
			wantStart: day(2023, time.January, 9),
		},
		{
			name:      "january days can fall into the previous ISO week-year",
			ts:        day(2021, time.January, 1), // Friday
			wantLabel: "2020-W53",
			wantStart: day(2020, time.December, 28),
		},
		{
			name:      "december days can fall into the next ISO week-year",
			ts:        day(2024, time.December, 30), // Monday
			wantLabel: "2025-W01",
			wantStart: day(2024, time.December, 30),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			k := BucketKey(tc.ts, entity.GranularityWeek)
			if k.Label != tc.wantLabel {
				t.Fatalf("expected label %q, got %q", tc.wantLabel, k.Label)
			}
			if !k.Start.Equal(tc.wantStart) {
				t.Fatalf("expected start %s, got %s", tc.wantStart, k.Start)
			}
		})
	}
}

func TestBucketKey_EqualTimestampsShareBucket(t *testing.T) {
	a := time.Date(2023, time.June, 7, 8, 0, 0, 0, time.UTC)   // Wednesday
	b := time.Date(2023, time.June, 11, 23, 0, 0, 0, time.UTC) // Sunday, same ISO week
	for _, g := range []entity.Granularity{entity.GranularityWeek, entity.GranularityMonth} {
		ka, kb := BucketKey(a, g), BucketKey(b, g)
		if ka != kb {
			t.Fatalf("granularity %s: expected same bucket, got %v and %v", g, ka, kb)
		}
	}
	if BucketKey(a, entity.GranularityDay) == BucketKey(b, entity.GranularityDay) {
		t.Fatalf("different days must not share a day bucket")
	}
}
