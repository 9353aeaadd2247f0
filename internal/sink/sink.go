package sink

import (
	"context"
	"errors"
	"time"

	"rosterstats/internal/report"
)

var ErrSheetNotFound = errors.New("sheet not found")

// Sink persists report tables as named sheets grouped by spreadsheet.
type Sink interface {
	Close(ctx context.Context) error
	EnsureSchema(ctx context.Context) error

	// ReplaceSheet clears the sheet, creating it when missing, and writes every
	// row of the table in a single transaction.
	ReplaceSheet(ctx context.Context, spreadsheet, sheet string, table report.Table) error
	ReadSheet(ctx context.Context, spreadsheet, sheet string) (report.Table, error)
	ListSheets(ctx context.Context, spreadsheet string) ([]SheetInfo, error)

	Query(ctx context.Context, query string, args ...any) (*QueryResult, error)
}

type SheetInfo struct {
	Spreadsheet string
	Name        string
	Rows        int
	Columns     int
	UpdatedAt   time.Time
}

// QueryResult keeps column order so that results can be printed as a table.
type QueryResult struct {
	Columns []string
	Rows    [][]any
}
