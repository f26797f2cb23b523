package service

import (
	"fmt"
	"time"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

// Key identifies one time bucket. Start orders buckets chronologically;
// Label is the caller-facing form ("2023-01-15", "2023-W03", "2023-01").
// Equal timestamps always map to equal keys.
type Key struct {
	Start time.Time
	Label string
}

// BucketKey maps a timestamp to its bucket for the given granularity.
// Everything is computed in UTC so the result does not depend on the
// caller's zone. Weeks follow ISO-8601: Monday start, week 1 contains
// the year's first Thursday.
func BucketKey(t time.Time, g entity.Granularity) Key {
	u := t.UTC()
	switch g {
	case entity.GranularityDay:
		d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
		return Key{Start: d, Label: d.Format("2006-01-02")}
	case entity.GranularityMonth:
		m := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
		return Key{Start: m, Label: m.Format("2006-01")}
	default: // week
		d := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
		monday := d.AddDate(0, 0, -((int(d.Weekday()) + 6) % 7))
		year, week := monday.ISOWeek()
		return Key{Start: monday, Label: fmt.Sprintf("%04d-W%02d", year, week)}
	}
}
