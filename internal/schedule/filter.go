package schedule

import "sort"

// SortItems orders items chronologically. When is fixed-width RFC 3339
// UTC, so byte order matches time order; equal timestamps keep their
// input order.
func SortItems(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].When < items[j].When
	})
}

// Truncate caps the list at maxItems, keeping the earliest entries. A
// non-positive maxItems yields an empty list.
func Truncate(items []Item, maxItems int) []Item {
	if maxItems <= 0 {
		return nil
	}
	if len(items) > maxItems {
		return items[:maxItems]
	}
	return items
}
