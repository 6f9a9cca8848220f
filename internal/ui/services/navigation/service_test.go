package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combogrip/internal/domain"
	"combogrip/internal/ui/services/events"
)

func TestNextIndexAbsolute(t *testing.T) {
	assert.Equal(t, -1, NextIndex(3, 5, Reset, Config{}))
	assert.Equal(t, 0, NextIndex(3, 5, Reset, Config{AutoHighlight: true}))
	assert.Equal(t, 0, NextIndex(3, 5, Start, Config{}))
	assert.Equal(t, 4, NextIndex(1, 5, End, Config{}))
}

func TestNextIndexSteps(t *testing.T) {
	tests := []struct {
		name    string
		current int
		step    int
		cfg     Config
		want    int
	}{
		{"down", 1, 1, Config{}, 2},
		{"wrap past end", 4, 1, Config{}, 0},
		{"wrap below start", 0, -1, Config{}, 4},
		{"up from input wraps", -1, -1, Config{}, 4},
		{"up from input without wrap", -1, -1, Config{DisableListWrap: true}, 4},
		{"clamp at end without wrap", 4, 1, Config{DisableListWrap: true}, 4},
		{"clamp at start without wrap", 0, -1, Config{DisableListWrap: true}, 0},
		{"input in list below", 0, -1, Config{IncludeInputInList: true}, -1},
		{"input in list above", 4, 1, Config{IncludeInputInList: true}, -1},
		{"page down clamps", 3, 5, Config{}, 4},
		{"page up clamps", 2, -5, Config{}, 0},
		{"page down from input", -1, 5, Config{}, 4},
		{"page inside list", 0, 5, Config{}, 4},
		{"down from input", -1, 1, Config{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextIndex(tt.current, 5, Step(tt.step), tt.cfg))
		})
	}
}

func newService(options []string, cfg Config) (*Service[string], *events.Recorder) {
	rec := events.NewRecorder()
	s := NewService[string](rec, "combo", cfg)
	s.SetQueryFunction(func() []string { return options })
	return s, rec
}

func TestMoveCyclesThroughEveryOption(t *testing.T) {
	options := []string{"a", "b", "c", "d"}
	s, _ := newService(options, Config{})

	s.Set(0, domain.HighlightKeyboard)
	var seen []int
	for i := 0; i < len(options); i++ {
		seen = append(seen, s.Move(Step(1), domain.DirectionNext, domain.HighlightKeyboard))
	}
	assert.Equal(t, []int{1, 2, 3, 0}, seen)
}

func TestMoveWithoutWrapStopsAtLast(t *testing.T) {
	s, _ := newService([]string{"a", "b", "c"}, Config{DisableListWrap: true})
	s.Set(0, domain.HighlightKeyboard)

	for i := 0; i < 5; i++ {
		s.Move(Step(1), domain.DirectionNext, domain.HighlightKeyboard)
	}
	assert.Equal(t, 2, s.Index())
}

func TestMoveSkipsDisabled(t *testing.T) {
	s, _ := newService([]string{"a", "b", "c", "d"}, Config{})
	s.SetFocusableFunction(func(i int) bool { return i != 1 && i != 2 })

	s.Set(0, domain.HighlightKeyboard)
	assert.Equal(t, 3, s.Move(Step(1), domain.DirectionNext, domain.HighlightKeyboard))
	assert.Equal(t, 0, s.Move(Step(-1), domain.DirectionPrevious, domain.HighlightKeyboard))
}

func TestMoveAllDisabled(t *testing.T) {
	s, _ := newService([]string{"a", "b"}, Config{})
	s.SetFocusableFunction(func(int) bool { return false })

	assert.Equal(t, -1, s.Move(Start, domain.DirectionNext, domain.HighlightKeyboard))
}

func TestSetPublishesSideEffects(t *testing.T) {
	s, rec := newService([]string{"a", "b"}, Config{})

	s.Set(1, domain.HighlightKeyboard)

	require.Equal(t, []domain.EventType{
		domain.EventActiveOptionChanged,
		domain.EventHighlightChanged,
		domain.EventScrollRequested,
	}, rec.Types())
	assert.Equal(t, domain.ActiveOptionChangedEvent{Index: 1, ID: "combo-option-1"}, rec.Events[0])
	assert.Equal(t, domain.HighlightChangedEvent[string]{Index: 1, Option: "b", HasOption: true, Reason: domain.HighlightKeyboard}, rec.Events[1])
}

func TestSetMouseDoesNotScroll(t *testing.T) {
	s, rec := newService([]string{"a", "b"}, Config{})

	s.Set(1, domain.HighlightMouse)
	assert.Empty(t, rec.OfType(domain.EventScrollRequested))

	rec.Reset()
	s.Set(-1, domain.HighlightMouse)
	scrolls := rec.OfType(domain.EventScrollRequested)
	require.Len(t, scrolls, 1)
	assert.Equal(t, -1, scrolls[0].(domain.ScrollRequestedEvent).Index)
}

func TestSetOutOfRangeClears(t *testing.T) {
	s, rec := newService([]string{"a"}, Config{})

	s.Set(7, domain.HighlightAuto)

	assert.Equal(t, -1, s.Index())
	assert.Equal(t, domain.ActiveOptionChangedEvent{Index: -1}, rec.Events[0])
	assert.Equal(t, domain.HighlightChangedEvent[string]{Index: -1, Reason: domain.HighlightAuto}, rec.Events[1])
}

func eq(a, b string) bool { return a == b }
func label(s string) string { return s }

func TestSyncKeepsHighlightedOptionByLabel(t *testing.T) {
	filtered := []string{"Apple", "Cherry"}
	s, rec := newService(filtered, Config{})
	s.state.Index = 2

	s.Sync(SyncInput[string]{
		Filtered:     filtered,
		PrevFiltered: []string{"Apple", "Banana", "Cherry"},
		Label:        label,
		Equal:        eq,
	})

	assert.Equal(t, 1, s.Index())
	assert.Equal(t, []domain.EventType{domain.EventActiveOptionChanged}, rec.Types())
}

func TestSyncResetsWhenValueIsEmpty(t *testing.T) {
	filtered := []string{"Apple", "Banana"}
	s, _ := newService(filtered, Config{AutoHighlight: true})
	s.state.Index = 1

	s.Sync(SyncInput[string]{Filtered: filtered, PrevFiltered: filtered, Label: label, Equal: eq})
	assert.Equal(t, 0, s.Index())
}

func TestSyncHighlightsValue(t *testing.T) {
	filtered := []string{"Apple", "Banana", "Cherry"}
	s, _ := newService(filtered, Config{})

	s.Sync(SyncInput[string]{Filtered: filtered, Value: []string{"Cherry"}, Label: label, Equal: eq})
	assert.Equal(t, 2, s.Index())

	s.Sync(SyncInput[string]{Filtered: filtered, Value: []string{"Kiwi"}, Label: label, Equal: eq})
	assert.Equal(t, -1, s.Index())
}

func TestSyncMultipleKeepsSelectedHighlight(t *testing.T) {
	filtered := []string{"Apple", "Banana", "Cherry"}
	s, _ := newService(filtered, Config{})
	s.state.Index = 2

	s.Sync(SyncInput[string]{
		Filtered: filtered,
		Value:    []string{"Apple", "Cherry"},
		Multiple: true,
		Label:    label,
		Equal:    eq,
	})
	assert.Equal(t, 2, s.Index())

	s.state.Index = 1
	s.Sync(SyncInput[string]{
		Filtered: filtered,
		Value:    []string{"Apple", "Cherry"},
		Multiple: true,
		Label:    label,
		Equal:    eq,
	})
	assert.Equal(t, 0, s.Index())
}
