package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"rosterstats/internal/report"
	"rosterstats/internal/sink"
)

func (c *Client) ReplaceSheet(ctx context.Context, spreadsheet, sheet string, table report.Table) error {
	encoded, err := sink.EncodeTable(table)
	if err != nil {
		return err
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var sheetID int64
	err = tx.QueryRow(ctx, `
INSERT INTO sheets (spreadsheet, name, row_count, col_count, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (spreadsheet, name) DO UPDATE SET
    row_count = EXCLUDED.row_count,
    col_count = EXCLUDED.col_count,
    updated_at = now()
RETURNING id
`, spreadsheet, sheet, len(table), table.Width()).Scan(&sheetID)
	if err != nil {
		return fmt.Errorf("upserting sheet %s: %w", sheet, err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sheet_rows WHERE sheet_id = $1`, sheetID); err != nil {
		return fmt.Errorf("clearing sheet %s: %w", sheet, err)
	}

	batch := &pgx.Batch{}
	for i, cells := range encoded {
		batch.Queue(`INSERT INTO sheet_rows (sheet_id, row_index, cells) VALUES ($1, $2, $3::jsonb)`, sheetID, i, string(cells))
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("writing rows of sheet %s: %w", sheet, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing sheet %s: %w", sheet, err)
	}
	return nil
}

func (c *Client) ReadSheet(ctx context.Context, spreadsheet, sheet string) (report.Table, error) {
	var sheetID int64
	err := c.pool.QueryRow(ctx, `SELECT id FROM sheets WHERE spreadsheet = $1 AND name = $2`, spreadsheet, sheet).Scan(&sheetID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s/%s: %w", spreadsheet, sheet, sink.ErrSheetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up sheet %s: %w", sheet, err)
	}

	rows, err := c.pool.Query(ctx, `SELECT cells::text FROM sheet_rows WHERE sheet_id = $1 ORDER BY row_index`, sheetID)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	defer rows.Close()

	table := report.Table{}
	for rows.Next() {
		var cells string
		if err := rows.Scan(&cells); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}
		row, err := sink.DecodeRow([]byte(cells))
		if err != nil {
			return nil, err
		}
		table = append(table, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sheet rows: %w", err)
	}
	return table, nil
}

func (c *Client) ListSheets(ctx context.Context, spreadsheet string) ([]sink.SheetInfo, error) {
	rows, err := c.pool.Query(ctx, `
SELECT spreadsheet, name, row_count, col_count, updated_at
FROM sheets
WHERE ($1 = '' OR spreadsheet = $1)
ORDER BY spreadsheet, name
`, spreadsheet)
	if err != nil {
		return nil, fmt.Errorf("listing sheets: %w", err)
	}
	defer rows.Close()

	var sheets []sink.SheetInfo
	for rows.Next() {
		var info sink.SheetInfo
		if err := rows.Scan(&info.Spreadsheet, &info.Name, &info.Rows, &info.Columns, &info.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning sheet: %w", err)
		}
		sheets = append(sheets, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sheets: %w", err)
	}
	return sheets, nil
}
