package postgres

import "context"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS gantt_tasks (
    id         TEXT PRIMARY KEY,
    chart_id   TEXT NOT NULL,
    x          DOUBLE PRECISION NOT NULL DEFAULT 0,
    y          DOUBLE PRECISION NOT NULL DEFAULT 0,
    width      DOUBLE PRECISION NOT NULL DEFAULT 0,
    height     DOUBLE PRECISION NOT NULL DEFAULT 0,
    locked     BOOLEAN NOT NULL DEFAULT FALSE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS gantt_links (
    id           TEXT PRIMARY KEY,
    chart_id     TEXT NOT NULL,
    from_task_id TEXT NOT NULL REFERENCES gantt_tasks(id) ON DELETE CASCADE,
    to_task_id   TEXT NOT NULL REFERENCES gantt_tasks(id) ON DELETE CASCADE,
    link_type    TEXT NOT NULL DEFAULT 'FS',
    lag          DOUBLE PRECISION NOT NULL DEFAULT 0,
    elastic      BOOLEAN NOT NULL DEFAULT TRUE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_gantt_tasks_chart_id ON gantt_tasks(chart_id);
CREATE INDEX IF NOT EXISTS idx_gantt_links_chart_id ON gantt_links(chart_id);
CREATE INDEX IF NOT EXISTS idx_gantt_links_from     ON gantt_links(from_task_id);
CREATE INDEX IF NOT EXISTS idx_gantt_links_to       ON gantt_links(to_task_id);
`

// CreateSchema creates the gantt_tasks and gantt_links tables if they don't exist.
func (s *PGStore) CreateSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, schemaSQL)
	return err
}

// DropSchema drops the gantt_links and gantt_tasks tables.
func (s *PGStore) DropSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `DROP TABLE IF EXISTS gantt_links, gantt_tasks CASCADE;`)
	return err
}
