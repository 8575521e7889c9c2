package pqueue

// Options represents the configuration options for a priority queue.
type Options struct {
	// MaxSize bounds the number of queued items. Zero or negative means
	// unbounded.
	MaxSize int `json:"max_size"`

	// Stable makes items of equal priority come out in insertion order.
	// Without it their relative order is unspecified.
	Stable bool `json:"stable"`
}

func DefaultOptions() *Options {
	return &Options{Stable: true}
}
