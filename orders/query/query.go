// Package query provides the derived views over the order collection:
// filtering by status and stable sorting by the supported keys. Both are
// pure functions; the input slice is never mutated.
package query

import (
	"sort"
	"strings"

	"github.com/tomypizza/orderdesk/orders"
)

// Apply filters then sorts a copy of the collection. Unknown filter or sort
// values fall back to FilterAll and SortDueAsc respectively so a stale
// persisted view selection can never make the list disappear.
func Apply(records []orders.Order, filter orders.Filter, key orders.Sort) []orders.Order {
	return Sort(Filter(records, filter), key)
}

// Filter returns the subsequence of records matching the criterion,
// preserving the original order. FilterPending and FilterCompleted
// partition the collection; FilterAll returns a copy of the whole of it.
func Filter(records []orders.Order, filter orders.Filter) []orders.Order {
	result := make([]orders.Order, 0, len(records))
	for _, o := range records {
		switch filter {
		case orders.FilterPending:
			if o.Status == orders.StatusPending {
				result = append(result, o)
			}
		case orders.FilterCompleted:
			if o.Status == orders.StatusCompleted {
				result = append(result, o)
			}
		default:
			result = append(result, o)
		}
	}
	return result
}

// Sort returns a new sequence ordered by the given key. The sort is stable:
// records with equal keys keep their relative order.
func Sort(records []orders.Order, key orders.Sort) []orders.Order {
	result := make([]orders.Order, len(records))
	copy(result, records)

	switch key {
	case orders.SortName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	case orders.SortPriorityDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Priority.Rank() > result[j].Priority.Rank()
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Due.Before(result[j].Due)
		})
	}
	return result
}

// FindByID returns the index of the record with the given id, or -1.
func FindByID(records []orders.Order, id int64) int {
	for i, o := range records {
		if o.ID == id {
			return i
		}
	}
	return -1
}
