package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"rosterstats/internal/config"
	"rosterstats/internal/pipeline"
	"rosterstats/internal/report"
	"rosterstats/internal/tabulate"
)

func rosterCmd() *cobra.Command {
	var allyCode string
	var name string
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Fetch the roster and print one row per unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoster(cmd.Context(), allyCode, name)
		},
	}
	cmd.Flags().StringVar(&allyCode, "ally-code", "", "Override the configured ally code")
	cmd.Flags().StringVar(&name, "name", "", "Only print units with this name")
	return cmd
}

func runRoster(ctx context.Context, allyCode, name string) error {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}
	code, err := allyCodeOrDefault(allyCode, cfg)
	if err != nil {
		return err
	}

	views, err := pipeline.Load(ctx, newFetcher(cfg), code)
	if err != nil {
		return err
	}

	rows := views.Rows
	if name != "" {
		rows = lo.Filter(rows, func(row tabulate.Row, _ int) bool {
			return strings.EqualFold(row.Name, name)
		})
	}
	if len(rows) == 0 {
		fmt.Fprintln(os.Stdout, "No units found.")
		return nil
	}

	printTable(report.RosterTable(rows))
	return nil
}
