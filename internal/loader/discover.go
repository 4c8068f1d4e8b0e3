package loader

import (
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover resolves definition file globs into a deduplicated, sorted
// file list. Patterns support doublestar syntax (e.g. "defs/**/*.yml").
func Discover(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid definition glob %q: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}
