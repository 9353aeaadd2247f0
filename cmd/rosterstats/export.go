package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rosterstats/internal/config"
	"rosterstats/internal/pipeline"
)

func exportCmd() *cobra.Command {
	var allyCode string
	var path string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the raw player document and save it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), allyCode, path)
		},
	}
	cmd.Flags().StringVar(&allyCode, "ally-code", "", "Override the configured ally code")
	cmd.Flags().StringVarP(&path, "output", "o", "", "Output file (defaults to export.path from the config)")
	return cmd
}

func runExport(ctx context.Context, allyCode, path string) error {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}
	code, err := allyCodeOrDefault(allyCode, cfg)
	if err != nil {
		return err
	}
	if path == "" {
		path = cfg.Export.Path
	}

	result, err := pipeline.Export(ctx, newFetcher(cfg), code, path)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Data saved to %s (%d units).\n", path, result.Units)
	return nil
}
