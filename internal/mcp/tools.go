package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"

	"rosterstats/internal/config"
	"rosterstats/internal/pipeline"
	"rosterstats/internal/sink"
	"rosterstats/internal/stats"
	"rosterstats/internal/tabulate"
)

type GetRosterStatsInput struct {
	AllyCode string `json:"ally_code,omitempty" jsonschema:"player ally code, defaults to the configured player"`
}

type GetRosterUnitsInput struct {
	AllyCode string `json:"ally_code,omitempty" jsonschema:"player ally code, defaults to the configured player"`
	Name     string `json:"name,omitempty" jsonschema:"case-insensitive unit name filter"`
}

type ReadSheetInput struct {
	Sheet string `json:"sheet" jsonschema:"sheet name, e.g. Stats or Characters"`
}

type ListSheetsInput struct{}

type BucketOutput struct {
	Key   int `json:"key"`
	Count int `json:"count"`
}

type FrequencyOutput struct {
	DefinitionID string `json:"definition_id"`
	Count        int    `json:"count"`
}

type RosterStatsOutput struct {
	AllyCode           string            `json:"ally_code"`
	PlayerName         string            `json:"player_name,omitempty"`
	TotalUnits         int               `json:"total_units"`
	AverageLevel       float64           `json:"average_level"`
	AverageGear        float64           `json:"average_gear"`
	RarityDistribution []BucketOutput    `json:"rarity_distribution"`
	GearDistribution   []BucketOutput    `json:"gear_distribution"`
	TopUnits           []FrequencyOutput `json:"top_units"`
}

type UnitOutput struct {
	ID           string `json:"id"`
	DefinitionID string `json:"definition_id"`
	Name         string `json:"name"`
	Stars        int    `json:"stars"`
	Level        int    `json:"level"`
	XP           int    `json:"xp"`
	GearLevel    int    `json:"gear_level"`
	RelicTier    int    `json:"relic_tier"`
	Skills       string `json:"skills"`
	Equipment    string `json:"equipment"`
}

type RosterUnitsOutput struct {
	AllyCode string       `json:"ally_code"`
	Units    []UnitOutput `json:"units"`
}

type SheetOutput struct {
	Spreadsheet string  `json:"spreadsheet"`
	Sheet       string  `json:"sheet"`
	Range       string  `json:"range"`
	Rows        [][]any `json:"rows"`
}

type SheetInfoOutput struct {
	Name      string `json:"name"`
	Rows      int    `json:"rows"`
	Columns   int    `json:"columns"`
	UpdatedAt string `json:"updated_at"`
}

type ListSheetsOutput struct {
	Spreadsheet string            `json:"spreadsheet"`
	Sheets      []SheetInfoOutput `json:"sheets"`
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_roster_stats",
		Description: "Fetch a player's roster and return summary statistics",
	}, s.handleGetRosterStats)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_roster_units",
		Description: "Fetch a player's roster and return one flattened row per unit",
	}, s.handleGetRosterUnits)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "read_sheet",
		Description: "Return the rows last written to a sheet",
	}, s.handleReadSheet)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "list_sheets",
		Description: "List the sheets stored for the configured spreadsheet",
	}, s.handleListSheets)
}

func (s *Server) handleGetRosterStats(ctx context.Context, req *sdk.CallToolRequest, input GetRosterStatsInput) (*sdk.CallToolResult, RosterStatsOutput, error) {
	allyCode, err := s.allyCode(input.AllyCode)
	if err != nil {
		return nil, RosterStatsOutput{}, err
	}
	views, err := pipeline.Load(ctx, s.fetcher, allyCode)
	if err != nil {
		return nil, RosterStatsOutput{}, err
	}

	out := statsOutputFromSnapshot(views.Stats)
	out.AllyCode = allyCode
	out.PlayerName = views.Player.Name
	return nil, out, nil
}

func (s *Server) handleGetRosterUnits(ctx context.Context, req *sdk.CallToolRequest, input GetRosterUnitsInput) (*sdk.CallToolResult, RosterUnitsOutput, error) {
	allyCode, err := s.allyCode(input.AllyCode)
	if err != nil {
		return nil, RosterUnitsOutput{}, err
	}
	views, err := pipeline.Load(ctx, s.fetcher, allyCode)
	if err != nil {
		return nil, RosterUnitsOutput{}, err
	}

	rows := views.Rows
	if name := strings.TrimSpace(input.Name); name != "" {
		rows = lo.Filter(rows, func(row tabulate.Row, _ int) bool {
			return strings.EqualFold(row.Name, name)
		})
	}
	return nil, RosterUnitsOutput{
		AllyCode: allyCode,
		Units:    lo.Map(rows, func(row tabulate.Row, _ int) UnitOutput { return unitOutputFromRow(row) }),
	}, nil
}

func (s *Server) handleReadSheet(ctx context.Context, req *sdk.CallToolRequest, input ReadSheetInput) (*sdk.CallToolResult, SheetOutput, error) {
	if strings.TrimSpace(input.Sheet) == "" {
		return nil, SheetOutput{}, fmt.Errorf("sheet is required")
	}
	table, err := s.sheets.ReadSheet(ctx, s.cfg.Sink.Spreadsheet, input.Sheet)
	if err != nil {
		return nil, SheetOutput{}, err
	}

	rows := make([][]any, 0, len(table))
	for _, row := range table {
		rows = append(rows, row)
	}
	return nil, SheetOutput{
		Spreadsheet: s.cfg.Sink.Spreadsheet,
		Sheet:       input.Sheet,
		Range:       table.Range(),
		Rows:        rows,
	}, nil
}

func (s *Server) handleListSheets(ctx context.Context, req *sdk.CallToolRequest, input ListSheetsInput) (*sdk.CallToolResult, ListSheetsOutput, error) {
	infos, err := s.sheets.ListSheets(ctx, s.cfg.Sink.Spreadsheet)
	if err != nil {
		return nil, ListSheetsOutput{}, err
	}
	return nil, ListSheetsOutput{
		Spreadsheet: s.cfg.Sink.Spreadsheet,
		Sheets:      lo.Map(infos, func(info sink.SheetInfo, _ int) SheetInfoOutput { return sheetInfoOutput(info) }),
	}, nil
}

func (s *Server) allyCode(input string) (string, error) {
	code := input
	if strings.TrimSpace(code) == "" {
		code = s.cfg.Player.AllyCode
	}
	if err := config.ValidateAllyCode(code); err != nil {
		return "", err
	}
	return config.NormalizeAllyCode(code), nil
}

func statsOutputFromSnapshot(snap *stats.Snapshot) RosterStatsOutput {
	return RosterStatsOutput{
		TotalUnits:         snap.TotalUnits,
		AverageLevel:       snap.AverageLevel,
		AverageGear:        snap.AverageGear,
		RarityDistribution: lo.Map(snap.RarityDistribution, bucketOutput),
		GearDistribution:   lo.Map(snap.GearDistribution, bucketOutput),
		TopUnits: lo.Map(snap.TopUnits, func(f stats.Frequency, _ int) FrequencyOutput {
			return FrequencyOutput{DefinitionID: f.Key, Count: f.Count}
		}),
	}
}

func bucketOutput(b stats.Bucket, _ int) BucketOutput {
	return BucketOutput{Key: b.Key, Count: b.Count}
}

func unitOutputFromRow(row tabulate.Row) UnitOutput {
	return UnitOutput{
		ID:           row.ID,
		DefinitionID: row.DefinitionID,
		Name:         row.Name,
		Stars:        row.Stars,
		Level:        row.Level,
		XP:           row.XP,
		GearLevel:    row.GearLevel,
		RelicTier:    row.RelicTier,
		Skills:       row.Skills,
		Equipment:    row.Equipment,
	}
}

func sheetInfoOutput(info sink.SheetInfo) SheetInfoOutput {
	return SheetInfoOutput{
		Name:      info.Name,
		Rows:      info.Rows,
		Columns:   info.Columns,
		UpdatedAt: info.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
