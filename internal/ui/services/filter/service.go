package filter

import (
	"strings"

	"combogrip/internal/domain"
	"combogrip/internal/textnorm"
)

// CreateFilterOptions builds the default substring/prefix filter
func CreateFilterOptions[V any](cfg Config[V]) Func[V] {
	return func(options []V, state State[V]) []V {
		query := textnorm.Normalize(state.InputValue, textnorm.Options{
			Trim:          cfg.Trim,
			IgnoreCase:    cfg.IgnoreCase,
			IgnoreAccents: cfg.IgnoreAccents,
		})

		var matched []V
		if query == "" {
			matched = options
		} else {
			stringify := cfg.Stringify
			if stringify == nil {
				stringify = state.GetOptionLabel
			}
			candidateOpts := textnorm.Options{IgnoreCase: cfg.IgnoreCase, IgnoreAccents: cfg.IgnoreAccents}

			matched = make([]V, 0, len(options))
			for _, option := range options {
				candidate := textnorm.Normalize(stringify(option), candidateOpts)
				if cfg.MatchFrom == domain.MatchStart {
					if strings.HasPrefix(candidate, query) {
						matched = append(matched, option)
					}
				} else if strings.Contains(candidate, query) {
					matched = append(matched, option)
				}
			}
		}

		if cfg.Limit > 0 && len(matched) > cfg.Limit {
			return matched[:cfg.Limit]
		}
		return matched
	}
}

// Default is CreateFilterOptions with DefaultConfig
func Default[V any]() Func[V] {
	return CreateFilterOptions(DefaultConfig[V]())
}

// Service applies selection exclusion and the pristine rule before calling
// the configured filter function
type Service[V any] struct {
	filter Func[V]
}

// NewService creates a filter service; a nil fn uses the default filter
func NewService[V any](fn Func[V]) *Service[V] {
	if fn == nil {
		fn = Default[V]()
	}
	return &Service[V]{filter: fn}
}

// SetFilter swaps the filter function
func (s *Service[V]) SetFilter(fn Func[V]) {
	if fn == nil {
		fn = Default[V]()
	}
	s.filter = fn
}

// QueryFor returns the text handed to the filter function. A single value
// whose label is still in the input shows the full list until the user types.
func QueryFor[V any](in Input[V]) string {
	if in.Pristine && !in.Multiple && len(in.Value) == 1 && in.InputValue == in.Label(in.Value[0]) {
		return ""
	}
	return in.InputValue
}

// Apply computes the filtered options
func (s *Service[V]) Apply(in Input[V]) []V {
	candidates := in.Options
	if in.FilterSelected && len(in.Value) > 0 {
		candidates = make([]V, 0, len(in.Options))
		for _, option := range in.Options {
			if !s.isSelected(option, in) {
				candidates = append(candidates, option)
			}
		}
	}

	return s.filter(candidates, State[V]{
		InputValue:     QueryFor(in),
		GetOptionLabel: in.Label,
	})
}

func (s *Service[V]) isSelected(option V, in Input[V]) bool {
	for _, v := range in.Value {
		if in.Equal(option, v) {
			return true
		}
	}
	return false
}
