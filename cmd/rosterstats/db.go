package main

import (
	"context"
	"fmt"
	"strings"

	"rosterstats/internal/config"
	"rosterstats/internal/fetch"
	"rosterstats/internal/sink"
	"rosterstats/internal/sink/postgres"
	"rosterstats/internal/sink/sqlite"
)

func openSink(ctx context.Context, cfg *config.ProjectConfig) (sink.Sink, error) {
	dsn := cfg.Sink.DSN
	switch {
	case strings.HasPrefix(dsn, "sqlite://"):
		return sqlite.New(ctx, dsn)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return postgres.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported sink dsn: %s", dsn)
	}
}

func newFetcher(cfg *config.ProjectConfig) *fetch.Client {
	return fetch.New(cfg.Service.BaseURL, cfg.Service.Timeout)
}

// allyCodeOrDefault resolves the --ally-code flag against the configured player.
func allyCodeOrDefault(flag string, cfg *config.ProjectConfig) (string, error) {
	if strings.TrimSpace(flag) == "" {
		return cfg.Player.AllyCode, nil
	}
	if err := config.ValidateAllyCode(flag); err != nil {
		return "", err
	}
	return config.NormalizeAllyCode(flag), nil
}
