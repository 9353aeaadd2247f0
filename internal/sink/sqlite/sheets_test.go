package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterstats/internal/report"
	"rosterstats/internal/sink"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	ctx := context.Background()
	client, err := New(ctx, "sqlite://:memory:")
	require.NoError(t, err)
	t.Cleanup(func() { client.Close(ctx) })
	require.NoError(t, client.EnsureSchema(ctx))
	return client
}

func TestReplaceSheet(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	table := report.Table{
		{"Statistic", "Value"},
		{"Total units", 2},
		{},
		{"Rarity (stars)", "Units"},
		{"7", 2},
	}
	require.NoError(t, client.ReplaceSheet(ctx, "Plan", "Stats", table))

	got, err := client.ReadSheet(ctx, "Plan", "Stats")
	require.NoError(t, err)
	assert.Equal(t, report.Table{
		{"Statistic", "Value"},
		{"Total units", 2.0},
		{},
		{"Rarity (stars)", "Units"},
		{"7", 2.0},
	}, got)

	t.Run("replacing clears previous rows", func(t *testing.T) {
		require.NoError(t, client.ReplaceSheet(ctx, "Plan", "Stats", report.Table{{"only"}}))
		got, err := client.ReadSheet(ctx, "Plan", "Stats")
		require.NoError(t, err)
		assert.Equal(t, report.Table{{"only"}}, got)
	})

	t.Run("empty table", func(t *testing.T) {
		require.NoError(t, client.ReplaceSheet(ctx, "Plan", "Empty", report.Table{}))
		got, err := client.ReadSheet(ctx, "Plan", "Empty")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestReadSheet_NotFound(t *testing.T) {
	client := newTestClient(t)

	_, err := client.ReadSheet(context.Background(), "Plan", "Missing")
	assert.True(t, errors.Is(err, sink.ErrSheetNotFound))
}

func TestListSheets(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	require.NoError(t, client.ReplaceSheet(ctx, "Plan", "Stats", report.Table{{"a", "b"}, {"c"}}))
	require.NoError(t, client.ReplaceSheet(ctx, "Plan", "Characters", report.Table{{"x", "y", "z"}}))
	require.NoError(t, client.ReplaceSheet(ctx, "Other", "Stats", report.Table{{"q"}}))

	sheets, err := client.ListSheets(ctx, "Plan")
	require.NoError(t, err)
	require.Len(t, sheets, 2)
	assert.Equal(t, "Characters", sheets[0].Name)
	assert.Equal(t, 1, sheets[0].Rows)
	assert.Equal(t, 3, sheets[0].Columns)
	assert.Equal(t, "Stats", sheets[1].Name)
	assert.Equal(t, 2, sheets[1].Rows)
	assert.False(t, sheets[1].UpdatedAt.IsZero())

	all, err := client.ListSheets(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestQuery(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	require.NoError(t, client.ReplaceSheet(ctx, "Plan", "Stats", report.Table{{"a"}, {"b"}}))

	result, err := client.Query(ctx, "SELECT name, row_count FROM sheets WHERE spreadsheet = ?", "Plan")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "row_count"}, result.Columns)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, "Stats", result.Rows[0][0])
	assert.EqualValues(t, 2, result.Rows[0][1])

	_, err = client.Query(ctx, "SELECT * FROM missing_table")
	assert.Error(t, err)
}

func TestNew_ForeignKeysEnabled(t *testing.T) {
	client := newTestClient(t)

	result, err := client.Query(context.Background(), "PRAGMA foreign_keys")
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)
	assert.EqualValues(t, 1, result.Rows[0][0])
}
