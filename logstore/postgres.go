package logstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS agent_logs (
	id          BIGSERIAL PRIMARY KEY,
	category    TEXT        NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	payload     JSONB       NOT NULL
);
CREATE INDEX IF NOT EXISTS agent_logs_category_idx ON agent_logs (category, id DESC);
`

// PostgresStore persists log records as JSONB rows. Inserts are independent
// single statements, so concurrent message processing needs no coordination.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("logstore: connect postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, postgresSchema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("logstore: init schema: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Append(ctx context.Context, cat Category, record any) error {
	line, err := encodeRecord(cat, record)
	if err != nil {
		return err
	}
	if _, err := s.pool.Exec(ctx,
		`INSERT INTO agent_logs (category, payload) VALUES ($1, $2)`,
		string(cat), line,
	); err != nil {
		return fmt.Errorf("logstore: insert %s: %w", cat, err)
	}
	return nil
}

func (s *PostgresStore) Tail(ctx context.Context, cat Category, n int) ([]json.RawMessage, error) {
	if !cat.Valid() {
		return nil, fmt.Errorf("logstore: unknown category %q", cat)
	}
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.pool.Query(ctx,
		`SELECT payload FROM agent_logs WHERE category = $1 ORDER BY id DESC LIMIT $2`,
		string(cat), n,
	)
	if err != nil {
		return nil, fmt.Errorf("logstore: query %s: %w", cat, err)
	}
	payloads, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, fmt.Errorf("logstore: collect %s: %w", cat, err)
	}

	records := make([]json.RawMessage, len(payloads))
	for i, p := range payloads {
		records[i] = json.RawMessage(p)
	}
	return records, nil
}

func (s *PostgresStore) Close() {
	s.pool.Close()
}
