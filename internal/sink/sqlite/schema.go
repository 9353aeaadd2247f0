package sqlite

import (
	"context"
	"fmt"
)

func (c *Client) EnsureSchema(ctx context.Context) error {
	ddl := `
	CREATE TABLE IF NOT EXISTS sheets (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		spreadsheet TEXT NOT NULL,
		name        TEXT NOT NULL,
		row_count   INTEGER NOT NULL DEFAULT 0,
		col_count   INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL,
		CONSTRAINT uq_sheet UNIQUE (spreadsheet, name)
	);

	CREATE TABLE IF NOT EXISTS sheet_rows (
		sheet_id  INTEGER NOT NULL REFERENCES sheets(id) ON DELETE CASCADE,
		row_index INTEGER NOT NULL,
		cells     TEXT NOT NULL DEFAULT '[]',
		PRIMARY KEY (sheet_id, row_index)
	);

	CREATE INDEX IF NOT EXISTS idx_sheets_spreadsheet ON sheets (spreadsheet);
	`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("ensuring schema: %w", err)
	}
	return nil
}
