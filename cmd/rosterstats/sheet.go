package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"rosterstats/internal/config"
	"rosterstats/internal/sink"
)

func sheetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sheet <name>",
		Short: "Print a stored sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheet(cmd.Context(), args[0])
		},
	}
	cmd.AddCommand(sheetListCmd())
	return cmd
}

func sheetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the sheets stored for the configured spreadsheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheetList(cmd.Context())
		},
	}
}

func runSheet(ctx context.Context, name string) error {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	db, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	table, err := db.ReadSheet(ctx, cfg.Sink.Spreadsheet, name)
	if errors.Is(err, sink.ErrSheetNotFound) {
		return fmt.Errorf("sheet %q not found in %q, run sync first", name, cfg.Sink.Spreadsheet)
	}
	if err != nil {
		return err
	}

	printTable(table)
	return nil
}

func runSheetList(ctx context.Context) error {
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		return err
	}

	db, err := openSink(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close(ctx)

	sheets, err := db.ListSheets(ctx, cfg.Sink.Spreadsheet)
	if err != nil {
		return err
	}
	if len(sheets) == 0 {
		fmt.Fprintln(os.Stdout, "No sheets stored.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHEET\tROWS\tCOLUMNS\tUPDATED")
	for _, info := range sheets {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", info.Name, info.Rows, info.Columns, info.UpdatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}
