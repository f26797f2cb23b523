package service

import (
	"context"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
)

// SnapshotPort supplies an immutable list of content records, optionally
// bounded by an inclusive time window on CreatedAt.
type SnapshotPort interface {
	Snapshot(ctx context.Context, window entity.TimeWindow) ([]entity.ContentRecord, error)
}

// ContentWriter — ingest side of the store.
type ContentWriter interface {
	InsertContent(ctx context.Context, rec entity.ContentRecord) error
}

// AnalyticsPort is the surface the transport layer consumes.
type AnalyticsPort interface {
	OverviewReport(ctx context.Context, window entity.TimeWindow) (entity.Overview, error)
	TopContent(ctx context.Context, window entity.TimeWindow, metric entity.Metric, limit int) ([]entity.RankedRecord, error)
	TrendReport(ctx context.Context, window entity.TimeWindow, g entity.Granularity) (entity.TrendSeries, error)
	CategoryReport(ctx context.Context, window entity.TimeWindow) ([]entity.CategoryMetrics, error)
	Dashboard(ctx context.Context, q DashboardQuery) (*entity.Dashboard, error)
}
