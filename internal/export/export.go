package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"rosterstats/internal/stats"
	"rosterstats/internal/tabulate"
)

const indent = "  "

// Snapshot is the JSON shape of computed views written by WriteSnapshot.
type Snapshot struct {
	AllyCode string          `json:"ally_code,omitempty"`
	Stats    *stats.Snapshot `json:"stats"`
	Roster   []tabulate.Row  `json:"roster"`
}

// WriteJSON saves a raw player document re-indented with two spaces. The
// document bytes are kept as received, so non-ASCII text is not escaped.
func WriteJSON(path string, doc []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, doc, "", indent); err != nil {
		return fmt.Errorf("indenting document: %w", err)
	}
	buf.WriteByte('\n')
	return writeAtomic(path, buf.Bytes())
}

func WriteSnapshot(path string, snapshot Snapshot) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)
	if err := enc.Encode(snapshot); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return writeAtomic(path, buf.Bytes())
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("renaming to %s: %w", path, err)
	}
	return nil
}
