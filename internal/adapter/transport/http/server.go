package http_server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
	"github.com/dayanaadylkhanova/content-admin/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	log          *zap.Logger
	addr         string
	analytics    service.AnalyticsPort
	writer       service.ContentWriter
	maxDays      int
	defaultLimit int
	httpSrv      *http.Server
}

func NewServer(log *zap.Logger, addr string, analytics service.AnalyticsPort, writer service.ContentWriter, maxDays, defaultLimit int) *Server {
	s := &Server{log: log, addr: addr, analytics: analytics, writer: writer, maxDays: maxDays, defaultLimit: defaultLimit}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Post("/content", s.handleCreateContent())
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/overview", s.handleOverview())
		r.Get("/top", s.handleTop())
		r.Get("/trends", s.handleTrends())
		r.Get("/categories", s.handleCategories())
		r.Get("/dashboard", s.handleDashboard())
	})

	s.httpSrv = &http.Server{Addr: addr, Handler: r}
	return s
}

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

func (s *Server) handleOverview() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := s.window(w, r)
		if !ok {
			return
		}
		ov, err := s.analytics.OverviewReport(r.Context(), window)
		if err != nil {
			s.serveError(w, err)
			return
		}
		writeJSON(w, ov)
	}
}

func (s *Server) handleTop() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := s.window(w, r)
		if !ok {
			return
		}
		metric, err := entity.ParseMetric(r.URL.Query().Get("metric"))
		if err != nil {
			http.Error(w, "invalid metric", http.StatusBadRequest)
			return
		}
		limit, err := s.limit(r)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		top, err := s.analytics.TopContent(r.Context(), window, metric, limit)
		if err != nil {
			s.serveError(w, err)
			return
		}
		writeJSON(w, top)
	}
}

func (s *Server) handleTrends() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := s.window(w, r)
		if !ok {
			return
		}
		g, err := entity.ParseGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			http.Error(w, "invalid granularity", http.StatusBadRequest)
			return
		}
		series, err := s.analytics.TrendReport(r.Context(), window, g)
		if err != nil {
			s.serveError(w, err)
			return
		}
		writeJSON(w, series)
	}
}

func (s *Server) handleCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := s.window(w, r)
		if !ok {
			return
		}
		cats, err := s.analytics.CategoryReport(r.Context(), window)
		if err != nil {
			s.serveError(w, err)
			return
		}
		writeJSON(w, cats)
	}
}

func (s *Server) handleDashboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		window, ok := s.window(w, r)
		if !ok {
			return
		}
		metric, err := entity.ParseMetric(r.URL.Query().Get("metric"))
		if err != nil {
			http.Error(w, "invalid metric", http.StatusBadRequest)
			return
		}
		g, err := entity.ParseGranularity(r.URL.Query().Get("granularity"))
		if err != nil {
			http.Error(w, "invalid granularity", http.StatusBadRequest)
			return
		}
		limit, err := s.limit(r)
		if err != nil {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		d, err := s.analytics.Dashboard(r.Context(), service.DashboardQuery{
			Window:      window,
			Granularity: g,
			Metric:      metric,
			Limit:       limit,
		})
		if err != nil {
			s.serveError(w, err)
			return
		}
		writeJSON(w, d)
	}
}

type contentPayload struct {
	ID            string    `json:"id"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	ViewCount     int64     `json:"viewCount"`
	LikeCount     int64     `json:"likeCount"`
	ContentLength int64     `json:"contentLength"`
	AuthorID      string    `json:"authorId"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (s *Server) handleCreateContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p contentPayload
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&p); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if p.ID == "" {
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if p.AuthorID == "" {
			http.Error(w, "invalid authorId", http.StatusBadRequest)
			return
		}
		status, err := entity.ParseStatus(p.Status)
		if err != nil {
			http.Error(w, "invalid status", http.StatusBadRequest)
			return
		}
		if p.ViewCount < 0 || p.LikeCount < 0 || p.ContentLength < 0 {
			http.Error(w, "counts must be non-negative", http.StatusBadRequest)
			return
		}
		if p.CreatedAt.IsZero() {
			http.Error(w, "invalid createdAt", http.StatusBadRequest)
			return
		}
		rec := entity.ContentRecord{
			ID:            p.ID,
			Category:      p.Category,
			Status:        status,
			ViewCount:     p.ViewCount,
			LikeCount:     p.LikeCount,
			ContentLength: p.ContentLength,
			AuthorID:      p.AuthorID,
			CreatedAt:     p.CreatedAt.UTC(),
		}
		if err := s.writer.InsertContent(r.Context(), rec); err != nil {
			s.log.Error("insert", zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}
}

// window parses the optional from/to query params. A false return means
// the response has already been written.
func (s *Server) window(w http.ResponseWriter, r *http.Request) (entity.TimeWindow, bool) {
	var win entity.TimeWindow
	q := r.URL.Query()
	if v := q.Get("from"); v != "" {
		t, err := parseISO(v)
		if err != nil {
			http.Error(w, "invalid from", http.StatusBadRequest)
			return win, false
		}
		win.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := parseISO(v)
		if err != nil {
			http.Error(w, "invalid to", http.StatusBadRequest)
			return win, false
		}
		win.To = &t
	}
	if win.From != nil && win.To != nil {
		if win.To.Before(*win.From) {
			http.Error(w, "to must not be before from", http.StatusBadRequest)
			return win, false
		}
		if s.maxDays > 0 && win.To.Sub(*win.From) > time.Hour*24*time.Duration(s.maxDays) {
			http.Error(w, "range too large", http.StatusBadRequest)
			return win, false
		}
	}
	return win, true
}

func (s *Server) limit(r *http.Request) (int, error) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return s.defaultLimit, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, errors.New("invalid limit")
	}
	return n, nil
}

func (s *Server) serveError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrMissingCreatedAt) {
		// Upstream corruption, not user error.
		s.log.Error("data integrity violation", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.log.Error("query", zap.Error(err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func parseISO(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, errors.New("bad time")
}
