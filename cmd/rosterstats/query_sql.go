package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"rosterstats/internal/config"
	"rosterstats/internal/report"
)

func querySQLCmd() *cobra.Command {
	var params []string
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "sql <query>",
		Short: "Execute a raw SQL query against the sink",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return runSQL(cmd.Context(), query, parseParams(params), asJSON)
		},
	}
	cmd.Flags().StringArrayVar(&params, "param", nil, "Positional query parameter (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print rows as JSON objects")
	return cmd
}

func runSQL(ctx context.Context, query string, params []any, asJSON bool) error {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	db, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	result, err := db.Query(ctx, query, params...)
	if err != nil {
		return err
	}

	if asJSON {
		records := make([]map[string]any, 0, len(result.Rows))
		for _, row := range result.Rows {
			record := make(map[string]any, len(result.Columns))
			for i, col := range result.Columns {
				record[col] = row[i]
			}
			records = append(records, record)
		}
		payload, err := jsoniter.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(payload))
		return nil
	}

	table := make(report.Table, 0, len(result.Rows)+1)
	header := make([]any, len(result.Columns))
	for i, col := range result.Columns {
		header[i] = col
	}
	table = append(table, header)
	table = append(table, result.Rows...)
	printTable(table)
	return nil
}

func parseParams(values []string) []any {
	params := make([]any, len(values))
	for i, v := range values {
		params[i] = v
	}
	return params
}
