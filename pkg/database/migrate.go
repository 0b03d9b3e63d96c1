package database

import "context"

// submissionsSchema is the full logical schema of the service. The ids are
// BIGSERIAL so concurrent inserts receive distinct values without any
// coordination on our side.
const submissionsSchema = `
CREATE TABLE IF NOT EXISTS submissions (
	id        BIGSERIAL PRIMARY KEY,
	name      TEXT NOT NULL,
	business  TEXT NOT NULL,
	service   TEXT NOT NULL,
	phone     TEXT NOT NULL,
	message   TEXT NOT NULL DEFAULT '',
	"timestamp" TIMESTAMPTZ NOT NULL DEFAULT now(),
	status    TEXT NOT NULL DEFAULT 'new'
);

CREATE INDEX IF NOT EXISTS idx_submissions_timestamp ON submissions ("timestamp" DESC);
`

// Migrate applies the schema. It is idempotent.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, submissionsSchema)
	return err
}
