package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/dayanaadylkhanova/content-admin/internal/adapter/store/postgres"
	http_server "github.com/dayanaadylkhanova/content-admin/internal/adapter/transport/http"
	"github.com/dayanaadylkhanova/content-admin/internal/service"
	"github.com/dayanaadylkhanova/content-admin/pkg/config"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	store     *postgres.Store
	analytics *service.Analytics
	server    *http_server.Server
}

func New(cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	// 1) Store (Postgres)
	st, err := postgres.New(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := st.Init(context.Background()); err != nil {
		return nil, err
	}

	// 2) Analytics engine
	analytics := service.NewAnalytics(log, st)

	// 3) HTTP server (ports: AnalyticsPort + ContentWriter)
	srv := http_server.NewServer(log, cfg.ListenAddr, analytics, st, cfg.ReadMaxRangeDays, cfg.RankLimit)

	return &App{
		cfg:       cfg,
		info:      info,
		log:       log,
		store:     st,
		analytics: analytics,
		server:    srv,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	// Start HTTP
	httpErrCh := make(chan error, 1)
	go func() { httpErrCh <- a.server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		// graceful
		runErr = ErrAppShutdownNormal
	case err := <-httpErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = ErrAppStartup
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	// Graceful shutdown
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	_ = a.server.Shutdown(shutdownCtx)
	a.store.Close()

	return runErr
}
