// Package sorting orders options so that grouped lists render one header per
// group.
package sorting

import (
	"sort"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"combogrip/internal/options"
)

// Service handles sorting logic
type Service struct {
	state *State
}

// NewService creates a sorting service
func NewService(mode Mode) *Service {
	return &Service{
		state: &State{CurrentMode: mode},
	}
}

// GetCurrentMode returns the current sort mode
func (s *Service) GetCurrentMode() Mode {
	return s.state.CurrentMode
}

// SetMode sets the sort mode
func (s *Service) SetMode(mode Mode) {
	s.state.CurrentMode = mode
}

// NextMode cycles to the next sort mode
func (s *Service) NextMode() {
	modes := []Mode{SortNone, SortByGroup, SortByLabel}

	currentIndex := 0
	for i, mode := range modes {
		if mode == s.state.CurrentMode {
			currentIndex = i
			break
		}
	}
	s.state.CurrentMode = modes[(currentIndex+1)%len(modes)]
}

// Sort returns items ordered by the current mode. The input is not modified.
func (s *Service) Sort(items []options.Item) []options.Item {
	switch s.state.CurrentMode {
	case SortByGroup:
		return gatherGroups(items)
	case SortByLabel:
		sorted := append([]options.Item(nil), items...)
		sort.SliceStable(sorted, func(i, j int) bool {
			gi, gj := strings.ToLower(sorted[i].Group), strings.ToLower(sorted[j].Group)
			if gi != gj {
				return gi < gj
			}
			return strings.ToLower(sorted[i].Text) < strings.ToLower(sorted[j].Text)
		})
		return sorted
	default:
		return items
	}
}

func gatherGroups(items []options.Item) []options.Item {
	buckets := orderedmap.New[string, []options.Item]()
	for _, item := range items {
		existing, _ := buckets.Get(item.Group)
		buckets.Set(item.Group, append(existing, item))
	}

	sorted := make([]options.Item, 0, len(items))
	for pair := buckets.Oldest(); pair != nil; pair = pair.Next() {
		sorted = append(sorted, pair.Value...)
	}
	return sorted
}
