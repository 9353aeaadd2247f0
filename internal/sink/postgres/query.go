package postgres

import (
	"context"
	"fmt"

	"rosterstats/internal/sink"
)

func (c *Client) Query(ctx context.Context, query string, args ...any) (*sink.QueryResult, error) {
	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running sql: %w", err)
	}
	defer rows.Close()

	fieldDescriptions := rows.FieldDescriptions()
	columns := make([]string, 0, len(fieldDescriptions))
	for _, fd := range fieldDescriptions {
		columns = append(columns, fd.Name)
	}

	result := &sink.QueryResult{Columns: columns, Rows: make([][]any, 0)}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("getting row values: %w", err)
		}
		result.Rows = append(result.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sql rows: %w", err)
	}
	return result, nil
}
