package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"rosterstats/internal/config"
	"rosterstats/internal/export"
	"rosterstats/internal/pipeline"
	"rosterstats/internal/report"
)

func statsCmd() *cobra.Command {
	var allyCode string
	var output string
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fetch the roster and print summary statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), allyCode, output)
		},
	}
	cmd.Flags().StringVar(&allyCode, "ally-code", "", "Override the configured ally code")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Also write stats and roster rows to this JSON file")
	return cmd
}

func runStats(ctx context.Context, allyCode, output string) error {
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

	printTable(report.StatsTable(views.Stats))

	if output != "" {
		snapshot := export.Snapshot{AllyCode: code, Stats: views.Stats, Roster: views.Rows}
		if err := export.WriteSnapshot(output, snapshot); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "\nSnapshot written to %s.\n", output)
	}
	return nil
}

// printTable renders a sheet payload as aligned columns on stdout.
func printTable(table report.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range table {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(w, "\t")
			}
			fmt.Fprint(w, cell)
		}
		fmt.Fprintln(w)
	}
	w.Flush()
}
