package list

// Options represents the configuration options for a linked list.
type Options struct {
	// MaxSize bounds the number of elements. Zero or negative means
	// unbounded.
	MaxSize int `json:"max_size"`
}
