package store

import "time"

// Activation records one time an item was activated from the menu.
type Activation struct {
	ID          string
	Label       string
	Index       int
	ActivatedAt time.Time
}

// LabelStats aggregates activations of one label.
type LabelStats struct {
	Label string
	Count int
	Last  time.Time
}
