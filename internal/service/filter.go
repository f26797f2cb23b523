package service

import (
	"errors"
	"fmt"
	"math"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

// ErrMissingCreatedAt means a record without created_at reached the
// engine. That is an upstream contract violation; the whole call aborts
// so the four reports never drift out of sync with each other.
var ErrMissingCreatedAt = errors.New("content record has no created_at")

// filterWindow returns a fresh slice of the records inside the window.
// Every aggregator goes through here, so all four see the same filtered
// set for a given snapshot and window.
func filterWindow(records []entity.ContentRecord, w entity.TimeWindow) ([]entity.ContentRecord, error) {
	out := make([]entity.ContentRecord, 0, len(records))
	for _, r := range records {
		if r.CreatedAt.IsZero() {
			return nil, fmt.Errorf("%w: id=%s", ErrMissingCreatedAt, r.ID)
		}
		if w.Contains(r.CreatedAt) {
			out = append(out, r)
		}
	}
	return out, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
