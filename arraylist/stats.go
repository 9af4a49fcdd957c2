package arraylist

import (
	"fmt"
)

// Stats represents list metrics.
type Stats struct {
	// Size is the current number of elements in the list.
	Size int
	// Capacity is the current length of the backing buffer.
	Capacity int
	// Grows is the number of times the backing buffer was doubled since the list was created.
	// Clear does not reset it.
	Grows uint64
}

// String returns formatted string.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Size: %d, Capacity: %d, Utilization: %f, Grows: %d",
		s.Size, s.Capacity,
		s.Utilization(),
		s.Grows,
	)
}

// Utilization returns the ratio of used slots in the backing buffer.
func (s Stats) Utilization() float64 {
	if s.Capacity == 0 {
		return 0
	}
	return float64(s.Size) / float64(s.Capacity)
}

// Stats returns list metrics.
// It is useful for tuning the initial capacity given to WithCapacity.
func (l *List[T]) Stats() Stats {
	return Stats{
		Size:     l.size,
		Capacity: len(l.items),
		Grows:    l.grows,
	}
}
