package readers

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// expandPaths resolves path to the list of files to read. Glob patterns
// are expanded and sorted so segmented products are read in order.
func expandPaths(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNoFiles)
	}
	if !strings.ContainsAny(path, "*?[") {
		return []string{path}, nil
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, fmt.Errorf("expanding %q: %w", path, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, path)
	}
	sort.Strings(matches)
	return matches, nil
}
