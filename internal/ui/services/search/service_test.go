package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fruitService() *Service {
	s := NewService()
	s.SetCandidatesFunction(func() []string {
		return []string{"Apple", "Banana", "Cherry"}
	})
	return s
}

func TestSuggestFindsTypo(t *testing.T) {
	s := fruitService()

	assert.Equal(t, "Banana", s.Suggest("banan"))
	assert.Equal(t, 1, s.GetDistance())
}

func TestSuggestIgnoresCase(t *testing.T) {
	s := fruitService()

	assert.Equal(t, "Cherry", s.Suggest("CHERY"))
}

func TestSuggestNothingClose(t *testing.T) {
	s := fruitService()

	assert.Equal(t, "", s.Suggest("zzzzzzzz"))
	assert.Equal(t, -1, s.GetDistance())
}

func TestSuggestEmptyQuery(t *testing.T) {
	s := fruitService()

	assert.Equal(t, "", s.Suggest("   "))
}

func TestSuggestWithoutCandidates(t *testing.T) {
	s := NewService()

	assert.Equal(t, "", s.Suggest("apple"))
}

func TestSuggestCachesUntilCleared(t *testing.T) {
	calls := 0
	s := NewService()
	s.SetCandidatesFunction(func() []string {
		calls++
		return []string{"Apple"}
	})

	s.Suggest("aple")
	s.Suggest("aple")
	assert.Equal(t, 1, calls)
	assert.Equal(t, "aple", s.GetQuery())

	s.Clear()
	s.Suggest("aple")
	assert.Equal(t, 2, calls)
}

func TestThreshold(t *testing.T) {
	assert.Equal(t, 2, Threshold("ab"))
	assert.Equal(t, 2, Threshold("abcdef"))
	assert.Equal(t, 4, Threshold("abcdefghijkl"))
}
