package entity

import (
	"fmt"
	"time"
)

// Granularity selects the time-bucketing resolution for trend reports.
type Granularity string

const (
	GranularityDay   Granularity = "day"
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
)

// ParseGranularity maps a query value to a Granularity. Empty input
// falls back to weekly buckets.
func ParseGranularity(s string) (Granularity, error) {
	switch Granularity(s) {
	case "":
		return GranularityWeek, nil
	case GranularityDay, GranularityWeek, GranularityMonth:
		return Granularity(s), nil
	}
	return "", fmt.Errorf("unknown granularity %q", s)
}

// Metric selects the ranking dimension for top-content reports.
type Metric string

const (
	MetricViews Metric = "views"
	MetricLikes Metric = "likes"
)

// ParseMetric maps a query value to a Metric; the field-style spellings
// viewCount/likeCount are accepted as aliases. Empty input defaults to
// views.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "", string(MetricViews), "viewCount":
		return MetricViews, nil
	case string(MetricLikes), "likeCount":
		return MetricLikes, nil
	}
	return "", fmt.Errorf("unknown metric %q", s)
}

// AggregateBucket holds the totals for one time bucket. Buckets exist
// only for periods that contain records.
type AggregateBucket struct {
	Key      string  `json:"key"`
	Count    int64   `json:"count"`
	SumViews int64   `json:"sumViews"`
	SumLikes int64   `json:"sumLikes"`
	AvgViews float64 `json:"avgViewsPerRecord"`
	AvgLikes float64 `json:"avgLikesPerRecord"`
}

// TrendSeries is a chronological bucket sequence for one granularity.
type TrendSeries struct {
	Granularity Granularity       `json:"granularity"`
	Buckets     []AggregateBucket `json:"buckets"`
}

// CategoryMetrics holds per-category totals, sorted by SumViews in the
// report.
type CategoryMetrics struct {
	Category          string  `json:"category"`
	Count             int64   `json:"count"`
	SumViews          int64   `json:"sumViews"`
	SumLikes          int64   `json:"sumLikes"`
	AvgViews          float64 `json:"avgViewsPerRecord"`
	AvgReadingMinutes float64 `json:"avgReadingMinutes"`
}

// Overview carries corpus-wide totals. CountsByStatus always has every
// known status key, zero-valued when absent from the data.
type Overview struct {
	TotalCount          int64            `json:"totalCount"`
	CountsByStatus      map[string]int64 `json:"countsByStatus"`
	SumViews            int64            `json:"sumViews"`
	SumLikes            int64            `json:"sumLikes"`
	DistinctAuthorCount int64            `json:"distinctAuthorCount"`
}

// RankedRecord is one entry of a top-content report.
type RankedRecord struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Status      Status    `json:"status"`
	MetricValue int64     `json:"metricValue"`
	ViewCount   int64     `json:"viewCount"`
	LikeCount   int64     `json:"likeCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Dashboard is the combined response: all four reports computed from one
// snapshot and one window.
type Dashboard struct {
	Overview   Overview          `json:"overview"`
	Top        []RankedRecord    `json:"topContent"`
	Trends     TrendSeries       `json:"trends"`
	Categories []CategoryMetrics `json:"categoryPerformance"`
}
