package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rosterstats/internal/report"
	"rosterstats/internal/sink"
)

func (c *Client) ReplaceSheet(ctx context.Context, spreadsheet, sheet string, table report.Table) error {
	encoded, err := sink.EncodeTable(table)
	if err != nil {
		return err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var sheetID int64
	err = tx.QueryRowContext(ctx, `
	INSERT INTO sheets (spreadsheet, name, row_count, col_count, updated_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (spreadsheet, name) DO UPDATE SET
		row_count = excluded.row_count,
		col_count = excluded.col_count,
		updated_at = excluded.updated_at
	RETURNING id
	`, spreadsheet, sheet, len(table), table.Width(), time.Now().UTC().Format(time.RFC3339Nano)).Scan(&sheetID)
	if err != nil {
		return fmt.Errorf("upserting sheet %s: %w", sheet, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM sheet_rows WHERE sheet_id = ?`, sheetID); err != nil {
		return fmt.Errorf("clearing sheet %s: %w", sheet, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO sheet_rows (sheet_id, row_index, cells) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing row insert: %w", err)
	}
	defer stmt.Close()

	for i, cells := range encoded {
		if _, err := stmt.ExecContext(ctx, sheetID, i, string(cells)); err != nil {
			return fmt.Errorf("writing row %d of sheet %s: %w", i+1, sheet, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing sheet %s: %w", sheet, err)
	}
	return nil
}

func (c *Client) ReadSheet(ctx context.Context, spreadsheet, sheet string) (report.Table, error) {
	var sheetID int64
	err := c.db.QueryRowContext(ctx, `SELECT id FROM sheets WHERE spreadsheet = ? AND name = ?`, spreadsheet, sheet).Scan(&sheetID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s/%s: %w", spreadsheet, sheet, sink.ErrSheetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up sheet %s: %w", sheet, err)
	}

	rows, err := c.db.QueryContext(ctx, `SELECT cells FROM sheet_rows WHERE sheet_id = ? ORDER BY row_index`, sheetID)
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
	rows, err := c.db.QueryContext(ctx, `
	SELECT spreadsheet, name, row_count, col_count, updated_at
	FROM sheets
	WHERE (? = '' OR spreadsheet = ?)
	ORDER BY spreadsheet, name
	`, spreadsheet, spreadsheet)
	if err != nil {
		return nil, fmt.Errorf("listing sheets: %w", err)
	}
	defer rows.Close()

	var sheets []sink.SheetInfo
	for rows.Next() {
		var info sink.SheetInfo
		var updatedAt string
		if err := rows.Scan(&info.Spreadsheet, &info.Name, &info.Rows, &info.Columns, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning sheet: %w", err)
		}
		info.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing updated_at of %s: %w", info.Name, err)
		}
		sheets = append(sheets, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sheets: %w", err)
	}
	return sheets, nil
}
