package queue

// Options represents the configuration options for a queue.
type Options struct {
	// MaxSize bounds the number of elements. Zero or negative means
	// unbounded, in which case the ring grows on demand.
	MaxSize int `json:"max_size"`
}

const defaultArrSize = 8
