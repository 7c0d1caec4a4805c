package orders

// Filter selects a subsequence of the collection for display.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Valid reports whether f is a known filter criterion.
func (f Filter) Valid() bool {
	return f == FilterAll || f == FilterPending || f == FilterCompleted
}

// Sort selects the display ordering of the collection.
type Sort string

const (
	// SortDueAsc orders by due timestamp, earliest first.
	SortDueAsc Sort = "due"
	// SortName orders lexicographically by name.
	SortName Sort = "name"
	// SortPriorityDesc orders by priority, high before medium before low.
	SortPriorityDesc Sort = "priority"
)

// Valid reports whether s is a known sort key.
func (s Sort) Valid() bool {
	return s == SortDueAsc || s == SortName || s == SortPriorityDesc
}
