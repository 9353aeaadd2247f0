package postgres

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	// Statements run in one implicit transaction; IF NOT EXISTS keeps reruns idempotent.
	ddl := `
CREATE TABLE IF NOT EXISTS sheets (
    id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    spreadsheet TEXT NOT NULL,
    name        TEXT NOT NULL,
    row_count   INTEGER NOT NULL DEFAULT 0,
    col_count   INTEGER NOT NULL DEFAULT 0,
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    CONSTRAINT uq_sheet UNIQUE (spreadsheet, name)
);

CREATE TABLE IF NOT EXISTS sheet_rows (
    sheet_id  BIGINT NOT NULL REFERENCES sheets(id) ON DELETE CASCADE,
    row_index INTEGER NOT NULL,
    cells     JSONB NOT NULL DEFAULT '[]',
    PRIMARY KEY (sheet_id, row_index)
);

CREATE INDEX IF NOT EXISTS idx_sheets_spreadsheet ON sheets (spreadsheet);
`
	if _, err := c.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
