package filter

import (
	"combogrip/internal/domain"
)

// State is what a filter function sees besides the options
type State[V any] struct {
	InputValue     string
	GetOptionLabel func(V) string
}

// Func reduces options to the ones matching state. Custom implementations
// may be plugged into the engine in place of the default.
type Func[V any] func(options []V, state State[V]) []V

// Config tunes the default filter
type Config[V any] struct {
	IgnoreCase    bool
	IgnoreAccents bool
	MatchFrom     domain.MatchFrom
	// Limit truncates the matches; 0 means no limit
	Limit int
	// Stringify overrides the label used for matching
	Stringify func(V) string
	// Trim strips whitespace around the query
	Trim bool
}

// DefaultConfig matches case- and accent-insensitively anywhere in the label
func DefaultConfig[V any]() Config[V] {
	return Config[V]{
		IgnoreCase:    true,
		IgnoreAccents: true,
		MatchFrom:     domain.MatchAny,
	}
}

// Input is everything the filter service needs for one computation
type Input[V any] struct {
	Options    []V
	InputValue string
	Pristine   bool
	// Value is the committed selection; at most one entry unless Multiple
	Value          []V
	Multiple       bool
	FilterSelected bool
	Equal          func(option, value V) bool
	Label          func(V) string
}
