package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rosterstats/internal/config"
)

func initCmd() *cobra.Command {
	var projectName string
	var allyCode string
	var dsn string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a new rosterstats project config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(projectName) == "" {
				return fmt.Errorf("--name is required")
			}
			if err := config.ValidateAllyCode(allyCode); err != nil {
				return fmt.Errorf("--ally-code: %w", err)
			}
			return runInit(configPath, projectName, config.NormalizeAllyCode(allyCode), dsn)
		},
	}
	cmd.Flags().StringVar(&projectName, "name", "", "Project name, also used as the spreadsheet name")
	cmd.Flags().StringVar(&allyCode, "ally-code", "", "Ally code of the player to track")
	cmd.Flags().StringVar(&dsn, "dsn", "sqlite://./rosterstats.db", "Sink database DSN")
	return cmd
}

func runInit(path, projectName, allyCode, dsn string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	contents := fmt.Sprintf(`project: %q
version: 1

service:
  base_url: http://localhost:3000
  timeout: 30s

player:
  ally_code: "%s"

sink:
  dsn: %s
  spreadsheet: %q
  stats_sheet: %s
  characters_sheet: %s

export:
  path: %s
`, projectName, allyCode, dsn, projectName, config.DefaultStatsSheet, config.DefaultCharactersSheet, config.DefaultExportPath)

	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(os.Stdout, "Wrote %s.\n", path)
	return nil
}
