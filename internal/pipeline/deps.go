package pipeline

import (
	"context"

	"rosterstats/internal/report"
)

type Fetcher interface {
	Player(ctx context.Context, allyCode string) ([]byte, error)
}

type SheetWriter interface {
	EnsureSchema(ctx context.Context) error
	ReplaceSheet(ctx context.Context, spreadsheet, sheet string, table report.Table) error
}
