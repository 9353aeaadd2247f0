package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rosterstats/internal/sink"

	_ "modernc.org/sqlite"
)

const pingTimeout = 30 * time.Second

var _ sink.Sink = (*Client)(nil)

// Client stores sheets in a single SQLite file, or in memory for tests.
type Client struct {
	db *sql.DB
}

// New opens the database named by a sqlite:// DSN. Connection pragmas travel
// in the driver DSN so that every pooled connection gets them.
func New(ctx context.Context, dsn string) (*Client, error) {
	path, err := parseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parsing sqlite DSN: %w", err)
	}
	memory := isMemory(path)

	db, err := sql.Open("sqlite", withPragmas(path, connectionPragmas(memory)))
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", path, err)
	}
	if memory {
		// each connection to :memory: is its own database
		db.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging sqlite %s: %w", path, err)
	}

	return &Client{db: db}, nil
}

// connectionPragmas lists the pragmas applied to each connection. WAL has no
// meaning for an in-memory database.
func connectionPragmas(memory bool) []string {
	pragmas := []string{"busy_timeout(30000)", "foreign_keys(1)"}
	if !memory {
		pragmas = append(pragmas, "journal_mode(WAL)")
	}
	return pragmas
}

func (c *Client) Close(ctx context.Context) error {
	return c.db.Close()
}
