package domain

// MaxPriorities is how many priorities the planning workflow keeps for a day.
// Storage does not enforce it.
const MaxPriorities = 6

// Priority is one planned task for a day
type Priority struct {
	Done bool
	Name string
}

// NewPriority creates an unticked priority
func NewPriority(name string) Priority {
	return Priority{Name: name}
}

// TickResult reports the outcome of ticking or unticking a priority.
// An out-of-range index is not an error: Applied is false and MaxIndex
// holds the largest valid index (-1 when the day has no priorities).
type TickResult struct {
	Applied  bool
	Index    int
	MaxIndex int
}
