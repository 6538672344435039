package ui

import (
	"fmt"
	"strings"

	"doer/internal/domain"
)

// StopChoosing is returned by a ChooseFunc to end ordering early
const StopChoosing = -1

// ChooseFunc picks the index in remaining of the priority that takes rank
// (1-based), or StopChoosing.
type ChooseFunc func(remaining []domain.Priority, rank int) (int, error)

// OrderPriorities ranks candidates by asking choose for one priority at a
// time. Ordering stops at domain.MaxPriorities, on StopChoosing, or when
// nothing is left. A single remaining candidate is placed without asking.
func OrderPriorities(candidates []domain.Priority, choose ChooseFunc) ([]domain.Priority, error) {
	remaining := append([]domain.Priority(nil), candidates...)
	var ordered []domain.Priority

	for len(remaining) > 0 && len(ordered) < domain.MaxPriorities {
		if len(remaining) == 1 {
			ordered = append(ordered, remaining[0])
			break
		}

		index, err := choose(remaining, len(ordered)+1)
		if err != nil {
			return nil, err
		}
		if index == StopChoosing {
			break
		}
		if index < 0 || index >= len(remaining) {
			return nil, fmt.Errorf("choice %d out of range", index)
		}

		ordered = append(ordered, remaining[index])
		remaining = append(remaining[:index], remaining[index+1:]...)
	}

	return ordered, nil
}

// MergeItems appends new item names to existing priorities. Blank names and
// names already present are skipped.
func MergeItems(existing []domain.Priority, items []string) []domain.Priority {
	merged := append([]domain.Priority(nil), existing...)
	seen := make(map[string]bool, len(existing)+len(items))
	for _, p := range existing {
		seen[p.Name] = true
	}

	for _, item := range items {
		name := strings.TrimSpace(item)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		merged = append(merged, domain.NewPriority(name))
	}
	return merged
}
