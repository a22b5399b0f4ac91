package flashcard

import (
	"slices"
	"strings"

	"github.com/abhisek/lexiz/internal/random"
)

// QueueKey identifies a saved queue by the sorted table and relation sets,
// e.g. "t1,t2|r1".
func QueueKey(tableIDs, relationIDs []string) string {
	t := slices.Clone(tableIDs)
	r := slices.Clone(relationIDs)
	slices.Sort(t)
	slices.Sort(r)
	return strings.Join(t, ",") + "|" + strings.Join(r, ",")
}

// BuildQueue merges a previously saved queue with the current rows.
// Saved entries that still exist keep their order; rows missing from
// the saved queue are appended in shuffled order. Duplicates are dropped.
func BuildQueue(saved, rowIDs []string, src random.Source) []string {
	if src == nil {
		src = random.Default()
	}

	exists := make(map[string]bool, len(rowIDs))
	for _, id := range rowIDs {
		exists[id] = true
	}

	queue := make([]string, 0, len(rowIDs))
	queued := make(map[string]bool, len(rowIDs))
	for _, id := range saved {
		if exists[id] && !queued[id] {
			queue = append(queue, id)
			queued[id] = true
		}
	}

	var fresh []string
	for _, id := range rowIDs {
		if !queued[id] {
			fresh = append(fresh, id)
			queued[id] = true
		}
	}
	random.Shuffle(src, len(fresh), func(i, j int) { fresh[i], fresh[j] = fresh[j], fresh[i] })

	return append(queue, fresh...)
}
