package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// ListContexts returns the context directories under the store root, sorted.
// A missing root has no contexts.
func ListContexts(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list contexts: %w", err)
	}

	var contexts []string
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		contexts = append(contexts, entry.Name())
	}
	sort.Strings(contexts)
	return contexts, nil
}
