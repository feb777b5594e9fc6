package domain

import (
	"fmt"
	"strings"
)

// DefaultLabel renders an item with its default string form. Used whenever
// the caller supplies no label function.
func DefaultLabel[T any](v T) string {
	return fmt.Sprint(v)
}

// MatchesLabel reports whether label contains query, case-insensitively.
// An empty query matches everything.
func MatchesLabel(label, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(label), strings.ToLower(query))
}

// FilterByLabel returns the subsequence of items whose labels contain query,
// case-insensitively, preserving the original order. An empty query returns
// the input slice unmodified. A nil label function falls back to DefaultLabel.
func FilterByLabel[T any](items []T, label func(T) string, query string) []T {
	if query == "" {
		return items
	}
	if label == nil {
		label = DefaultLabel[T]
	}
	q := strings.ToLower(query)
	result := make([]T, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(label(item)), q) {
			result = append(result, item)
		}
	}
	return result
}
