package stack

// Options represents the configuration options for a stack.
type Options struct {
	// MaxSize bounds the number of elements. Push on a stack holding
	// MaxSize elements fails. Zero or negative means unbounded.
	MaxSize int `json:"max_size"`
}

const defaultArrSize = 8
