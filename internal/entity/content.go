package entity

import (
	"fmt"
	"time"
)

// Status is the publication state of a content record.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// KnownStatuses lists every status the system understands, in the order
// they are reported.
func KnownStatuses() []Status {
	return []Status{StatusDraft, StatusPublished, StatusArchived}
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusPublished, StatusArchived:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// ContentRecord is one row of the analytics snapshot. The engine never
// mutates it; Category is an opaque grouping key (no trimming, no
// case-folding).
type ContentRecord struct {
	ID            string
	Category      string
	Status        Status
	ViewCount     int64
	LikeCount     int64
	ContentLength int64 // words in the body
	AuthorID      string
	CreatedAt     time.Time
}

// TimeWindow bounds a snapshot by CreatedAt, inclusive on both ends.
// A nil bound is unbounded on that side.
type TimeWindow struct {
	From *time.Time
	To   *time.Time
}

func (w TimeWindow) Contains(t time.Time) bool {
	if w.From != nil && t.Before(*w.From) {
		return false
	}
	if w.To != nil && t.After(*w.To) {
		return false
	}
	return true
}
