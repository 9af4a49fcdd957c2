package arraylist

import (
	"fmt"
)

// DefaultCapacity is the capacity of a new or cleared list unless WithCapacity is given.
const DefaultCapacity = 8

type Option func(c *config)

type config struct {
	capacity int
}

func defaultConfig() config {
	return config{
		capacity: DefaultCapacity,
	}
}

// WithCapacity sets the capacity the list starts with and returns to on Clear.
// Capacity needs to be non-negative; a zero capacity list allocates on the first Add.
func WithCapacity(capacity int) Option {
	if capacity < 0 {
		panic(fmt.Sprintf("arraylist: negative capacity %d", capacity))
	}
	return func(c *config) {
		c.capacity = capacity
	}
}
