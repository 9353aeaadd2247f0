package sqlite

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

const (
	scheme    = "sqlite://"
	memoryDSN = ":memory:"
)

// parseDSN turns sqlite://<path>[?query] into a path the driver accepts.
// Relative paths are anchored to the working directory.
func parseDSN(dsn string) (string, error) {
	if !strings.HasPrefix(dsn, scheme) {
		return "", fmt.Errorf("invalid sqlite DSN scheme, expected %s", scheme)
	}

	rest := strings.TrimPrefix(dsn, scheme)
	if rest == "" {
		return "", fmt.Errorf("sqlite DSN has no path")
	}
	if rest == memoryDSN {
		return memoryDSN, nil
	}

	path, query, hasQuery := strings.Cut(rest, "?")
	path, err := url.PathUnescape(path)
	if err != nil {
		return "", fmt.Errorf("unescaping path: %w", err)
	}
	if !filepath.IsAbs(path) && !strings.HasPrefix(path, "./") {
		path = "./" + path
	}

	if hasQuery {
		return path + "?" + query, nil
	}
	return path, nil
}

func isMemory(path string) bool {
	name, _, _ := strings.Cut(path, "?")
	return name == memoryDSN
}

// withPragmas appends _pragma query parameters understood by the modernc driver.
func withPragmas(path string, pragmas []string) string {
	if len(pragmas) == 0 {
		return path
	}
	values := make([]string, 0, len(pragmas))
	for _, pragma := range pragmas {
		values = append(values, "_pragma="+url.QueryEscape(pragma))
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + strings.Join(values, "&")
}
