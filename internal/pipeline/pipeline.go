package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/rs/zerolog/log"

	"rosterstats/internal/config"
	"rosterstats/internal/export"
	"rosterstats/internal/report"
	"rosterstats/internal/roster"
	"rosterstats/internal/stats"
	"rosterstats/internal/tabulate"
)

type Result struct {
	AllyCode     string
	Units        int
	StatsRows    int
	RosterRows   int
	DocumentHash string
}

// Views holds everything computed from one fetched document.
type Views struct {
	Document []byte
	Player   *roster.Player
	Stats    *stats.Snapshot
	Rows     []tabulate.Row
}

// Load fetches a player and computes both views. Transport errors are
// returned unchanged.
func Load(ctx context.Context, fetcher Fetcher, allyCode string) (*Views, error) {
	log.Info().Str("allyCode", allyCode).Msg("fetching player")
	doc, err := fetcher.Player(ctx, allyCode)
	if err != nil {
		return nil, err
	}

	player, err := roster.Parse(doc)
	if err != nil {
		return nil, fmt.Errorf("parsing player %s: %w", allyCode, err)
	}

	views := &Views{
		Document: doc,
		Player:   player,
		Stats:    stats.Aggregate(player.Units),
		Rows:     tabulate.Tabulate(player.Units),
	}
	for _, row := range views.Rows {
		log.Debug().Str("unit", row.Name).Msg("unit ready")
	}
	return views, nil
}

// Sync fetches the configured player and replaces the stats and characters
// sheets. Any fetch or sink error aborts the run.
func Sync(ctx context.Context, cfg *config.ProjectConfig, fetcher Fetcher, writer SheetWriter) (*Result, error) {
	if err := writer.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	views, err := Load(ctx, fetcher, cfg.Player.AllyCode)
	if err != nil {
		return nil, err
	}

	statsTable := report.StatsTable(views.Stats)
	if err := writer.ReplaceSheet(ctx, cfg.Sink.Spreadsheet, cfg.Sink.StatsSheet, statsTable); err != nil {
		return nil, fmt.Errorf("updating %s sheet: %w", cfg.Sink.StatsSheet, err)
	}
	log.Info().Str("sheet", cfg.Sink.StatsSheet).Str("range", statsTable.Range()).Msg("stats sheet updated")

	rosterTable := report.RosterTable(views.Rows)
	if err := writer.ReplaceSheet(ctx, cfg.Sink.Spreadsheet, cfg.Sink.CharactersSheet, rosterTable); err != nil {
		return nil, fmt.Errorf("updating %s sheet: %w", cfg.Sink.CharactersSheet, err)
	}
	log.Info().
		Str("sheet", cfg.Sink.CharactersSheet).
		Str("range", rosterTable.Range()).
		Int("units", len(views.Rows)).
		Msg("characters sheet updated")

	return &Result{
		AllyCode:     cfg.Player.AllyCode,
		Units:        views.Stats.TotalUnits,
		StatsRows:    len(statsTable),
		RosterRows:   len(views.Rows),
		DocumentHash: documentHash(views.Document),
	}, nil
}

// Export fetches a player and saves the raw document to path.
func Export(ctx context.Context, fetcher Fetcher, allyCode, path string) (*Result, error) {
	log.Info().Str("allyCode", allyCode).Msg("fetching player")
	doc, err := fetcher.Player(ctx, allyCode)
	if err != nil {
		return nil, err
	}
	if err := export.WriteJSON(path, doc); err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Msg("player document saved")

	result := &Result{AllyCode: allyCode, DocumentHash: documentHash(doc)}
	if player, err := roster.Parse(doc); err == nil {
		result.Units = len(player.Units)
	}
	return result, nil
}

func documentHash(doc []byte) string {
	sum := sha256.Sum256(doc)
	return hex.EncodeToString(sum[:])
}
