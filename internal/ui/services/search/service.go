// Package search looks up the option label closest to a query that matched
// nothing, for a "did you mean" hint.
package search

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// minThreshold is the smallest edit distance still accepted as a typo
const minThreshold = 2

// Service finds near misses among the current labels
type Service struct {
	state        *State
	candidatesFn func() []string
}

// NewService creates a search service with no candidates
func NewService() *Service {
	return &Service{
		state: &State{Distance: -1},
	}
}

// SetCandidatesFunction sets the function that lists the labels to search
func (s *Service) SetCandidatesFunction(fn func() []string) {
	s.candidatesFn = fn
}

// Suggest returns the label nearest to query, if one is close enough.
// Results are cached until the query changes.
func (s *Service) Suggest(query string) string {
	query = strings.TrimSpace(query)
	if query == s.state.Query {
		return s.state.Suggestion
	}

	s.state.Query = query
	s.state.Suggestion = ""
	s.state.Distance = -1
	if query == "" || s.candidatesFn == nil {
		return ""
	}

	needle := strings.ToLower(query)
	limit := Threshold(query)
	for _, label := range s.candidatesFn() {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(label))
		if d > limit {
			continue
		}
		if s.state.Distance == -1 || d < s.state.Distance {
			s.state.Suggestion = label
			s.state.Distance = d
		}
	}
	return s.state.Suggestion
}

// Clear forgets the cached lookup, e.g. after the options change
func (s *Service) Clear() {
	s.state.Query = ""
	s.state.Suggestion = ""
	s.state.Distance = -1
}

// GetQuery returns the last query looked up
func (s *Service) GetQuery() string {
	return s.state.Query
}

// GetDistance returns the edit distance of the last suggestion, or -1
func (s *Service) GetDistance() int {
	return s.state.Distance
}

// Threshold is the largest edit distance accepted for query: a third of its
// length, but never less than minThreshold
func Threshold(query string) int {
	t := utf8.RuneCountInString(query) / 3
	if t < minThreshold {
		t = minThreshold
	}
	return t
}
