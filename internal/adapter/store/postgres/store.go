package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/content-admin/internal/entity"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS content_records (
	id             TEXT        PRIMARY KEY,
	category       TEXT        NOT NULL DEFAULT '',
	status         TEXT        NOT NULL,
	view_count     BIGINT      NOT NULL DEFAULT 0,
	like_count     BIGINT      NOT NULL DEFAULT 0,
	content_length BIGINT      NOT NULL DEFAULT 0,
	author_id      TEXT        NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_content_records_created_at ON content_records (created_at);
`
	_, err := s.pool.Exec(ctx, ddl)
	return err
}

// Snapshot implements service.SnapshotPort. Window bounds are inclusive
// on both ends.
func (s *Store) Snapshot(ctx context.Context, w entity.TimeWindow) ([]entity.ContentRecord, error) {
	q := `SELECT id, category, status, view_count, like_count, content_length, author_id, created_at FROM content_records`
	var (
		conds []string
		args  []any
	)
	if w.From != nil {
		args = append(args, *w.From)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if w.To != nil {
		args = append(args, *w.To)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY created_at"

	rows, err := s.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.ContentRecord
	for rows.Next() {
		var (
			rec    entity.ContentRecord
			status string
			ts     time.Time
		)
		if err := rows.Scan(&rec.ID, &rec.Category, &status, &rec.ViewCount, &rec.LikeCount, &rec.ContentLength, &rec.AuthorID, &ts); err != nil {
			return nil, err
		}
		rec.Status = entity.Status(status)
		rec.CreatedAt = ts.UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}

// InsertContent implements service.ContentWriter. Re-inserting an id
// overwrites the record's mutable fields; created_at stays as first set.
func (s *Store) InsertContent(ctx context.Context, rec entity.ContentRecord) error {
	const q = `
INSERT INTO content_records (id, category, status, view_count, like_count, content_length, author_id, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
ON CONFLICT (id) DO UPDATE SET
	category = EXCLUDED.category,
	status = EXCLUDED.status,
	view_count = EXCLUDED.view_count,
	like_count = EXCLUDED.like_count,
	content_length = EXCLUDED.content_length
`
	_, err := s.pool.Exec(ctx, q,
		rec.ID, rec.Category, string(rec.Status),
		rec.ViewCount, rec.LikeCount, rec.ContentLength,
		rec.AuthorID, rec.CreatedAt.UTC(),
	)
	return err
}

func (s *Store) Close() { s.pool.Close() }
