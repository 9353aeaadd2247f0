package sink

import (
	"encoding/json"
	"fmt"

	"rosterstats/internal/report"
)

// EncodeRow serializes one table row. Blank separator rows encode as "[]".
func EncodeRow(row []any) ([]byte, error) {
	if row == nil {
		row = []any{}
	}
	data, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("encoding row: %w", err)
	}
	return data, nil
}

// DecodeRow is the inverse of EncodeRow. Numbers come back as float64.
func DecodeRow(data []byte) ([]any, error) {
	row := []any{}
	if len(data) == 0 {
		return row, nil
	}
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, fmt.Errorf("decoding row: %w", err)
	}
	return row, nil
}

// EncodeTable encodes every row of a table, preserving order.
func EncodeTable(table report.Table) ([][]byte, error) {
	out := make([][]byte, 0, len(table))
	for i, row := range table {
		data, err := EncodeRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out = append(out, data)
	}
	return out, nil
}
