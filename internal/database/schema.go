package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
CREATE TABLE IF NOT EXISTS submissions (
	id                BIGSERIAL PRIMARY KEY,
	submission_id     UUID        NOT NULL UNIQUE,
	operation         TEXT        NOT NULL,
	event_id          TEXT        NOT NULL DEFAULT '',
	outcome           TEXT        NOT NULL,
	image_name        TEXT,
	error             TEXT,
	image_resolved_at TIMESTAMPTZ,
	created_at        TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS submissions_pending_images_idx
	ON submissions (event_id)
	WHERE image_resolved_at IS NULL;
`

// EnsureSchema creates the journal tables when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
