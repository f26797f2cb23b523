package service

import (
	"context"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Analytics serves the four reports over one snapshot port. The
// aggregators themselves are pure; this type only loads snapshots and
// fans out.
type Analytics struct {
	log   *zap.Logger
	store SnapshotPort
}

func NewAnalytics(log *zap.Logger, store SnapshotPort) *Analytics {
	return &Analytics{log: log, store: store}
}

// DashboardQuery carries the parameters for a combined report.
type DashboardQuery struct {
	Window      entity.TimeWindow
	Granularity entity.Granularity
	Metric      entity.Metric
	Limit       int
}

func (a *Analytics) OverviewReport(ctx context.Context, window entity.TimeWindow) (entity.Overview, error) {
	records, err := a.store.Snapshot(ctx, window)
	if err != nil {
		return entity.Overview{}, err
	}
	return Overview(records, window)
}

func (a *Analytics) TopContent(ctx context.Context, window entity.TimeWindow, metric entity.Metric, limit int) ([]entity.RankedRecord, error) {
	records, err := a.store.Snapshot(ctx, window)
	if err != nil {
		return nil, err
	}
	return Rank(records, metric, limit, window)
}

func (a *Analytics) TrendReport(ctx context.Context, window entity.TimeWindow, g entity.Granularity) (entity.TrendSeries, error) {
	records, err := a.store.Snapshot(ctx, window)
	if err != nil {
		return entity.TrendSeries{}, err
	}
	buckets, err := Trends(records, g, window)
	if err != nil {
		return entity.TrendSeries{}, err
	}
	return entity.TrendSeries{Granularity: g, Buckets: buckets}, nil
}

func (a *Analytics) CategoryReport(ctx context.Context, window entity.TimeWindow) ([]entity.CategoryMetrics, error) {
	records, err := a.store.Snapshot(ctx, window)
	if err != nil {
		return nil, err
	}
	return CategoryPerformance(records, window)
}

// Dashboard loads one snapshot and runs all four aggregators against it
// concurrently. The first error cancels the group and fails the whole
// call; partial results are discarded so the four reports always reflect
// the same snapshot and window.
func (a *Analytics) Dashboard(ctx context.Context, q DashboardQuery) (*entity.Dashboard, error) {
	records, err := a.store.Snapshot(ctx, q.Window)
	if err != nil {
		return nil, err
	}

	var d entity.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		d.Overview, err = Overview(records, q.Window)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		d.Top, err = Rank(records, q.Metric, q.Limit, q.Window)
		return err
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		buckets, err := Trends(records, q.Granularity, q.Window)
		if err != nil {
			return err
		}
		d.Trends = entity.TrendSeries{Granularity: q.Granularity, Buckets: buckets}
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		var err error
		d.Categories, err = CategoryPerformance(records, q.Window)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
