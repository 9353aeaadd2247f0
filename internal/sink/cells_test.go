package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosterstats/internal/report"
)

func TestEncodeRow(t *testing.T) {
	data, err := EncodeRow(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))

	data, err = EncodeRow([]any{"Total units", 12, 82.5})
	require.NoError(t, err)
	assert.Equal(t, `["Total units",12,82.5]`, string(data))
}

func TestDecodeRow(t *testing.T) {
	row, err := DecodeRow([]byte(`["7",2]`))
	require.NoError(t, err)
	assert.Equal(t, []any{"7", 2.0}, row)

	row, err = DecodeRow(nil)
	require.NoError(t, err)
	assert.Equal(t, []any{}, row)

	_, err = DecodeRow([]byte(`{"not":"a row"}`))
	assert.Error(t, err)
}

func TestEncodeTable(t *testing.T) {
	encoded, err := EncodeTable(report.Table{{"a"}, {}, {"b", 1}})
	require.NoError(t, err)
	require.Len(t, encoded, 3)
	assert.Equal(t, "[]", string(encoded[1]))
}
