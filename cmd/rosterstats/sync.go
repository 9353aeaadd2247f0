package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rosterstats/internal/config"
	"rosterstats/internal/pipeline"
)

func syncCmd() *cobra.Command {
	var allyCode string
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Fetch the roster and rewrite the stats and characters sheets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd.Context(), allyCode)
		},
	}
	cmd.Flags().StringVar(&allyCode, "ally-code", "", "Override the configured ally code")
	return cmd
}

func runSync(ctx context.Context, allyCode string) error {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}
	cfg.Player.AllyCode, err = allyCodeOrDefault(allyCode, cfg)
	if err != nil {
		return err
	}

	db, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	result, err := pipeline.Sync(ctx, cfg, newFetcher(cfg), db)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "Sync complete.")
	fmt.Fprintf(os.Stdout, "  Ally code:      %s\n", result.AllyCode)
	fmt.Fprintf(os.Stdout, "  Units:          %d\n", result.Units)
	fmt.Fprintf(os.Stdout, "  Stats rows:     %d (%s)\n", result.StatsRows, cfg.Sink.StatsSheet)
	fmt.Fprintf(os.Stdout, "  Character rows: %d (%s)\n", result.RosterRows, cfg.Sink.CharactersSheet)
	fmt.Fprintf(os.Stdout, "  Document hash:  %s\n", result.DocumentHash)
	return nil
}
