package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"rosterstats/internal/config"
	"rosterstats/internal/pipeline"
	"rosterstats/internal/report"
	"rosterstats/internal/sink"
)

// SheetReader is the read side of the sink used by the tools.
type SheetReader interface {
	ReadSheet(ctx context.Context, spreadsheet, sheet string) (report.Table, error)
	ListSheets(ctx context.Context, spreadsheet string) ([]sink.SheetInfo, error)
}

type Server struct {
	cfg     *config.ProjectConfig
	fetcher pipeline.Fetcher
	sheets  SheetReader
	mcp     *sdk.Server
}

func NewServer(cfg *config.ProjectConfig, fetcher pipeline.Fetcher, sheets SheetReader, version string) *Server {
	s := &Server{
		cfg:     cfg,
		fetcher: fetcher,
		sheets:  sheets,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "rosterstats",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
