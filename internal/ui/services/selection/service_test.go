package selection

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"combogrip/internal/diag"
	"combogrip/internal/domain"
	"combogrip/internal/ui/services/events"
)

func TestSelectNewOptionAppends(t *testing.T) {
	s := NewService[string](nil, true, nil, nil)
	s.Replace([]string{"Apple"})

	value, reason := s.Toggle("Banana", domain.OriginOptions)

	assert.Equal(t, []string{"Apple", "Banana"}, value)
	assert.Equal(t, domain.ReasonSelectOption, reason)
}

func TestReselectRemoves(t *testing.T) {
	s := NewService[string](nil, true, nil, nil)
	s.Replace([]string{"Apple"})

	value, reason := s.Toggle("Apple", domain.OriginOptions)

	assert.Empty(t, value)
	assert.Equal(t, domain.ReasonRemoveOption, reason)
	assert.Equal(t, []string{"Apple"}, s.Value(), "toggle only computes")
}

func TestFreeSoloNeverRemoves(t *testing.T) {
	s := NewService[string](nil, true, nil, nil)
	s.Replace([]string{"kiwi"})

	value, reason := s.Toggle("kiwi", domain.OriginFreeSolo)

	assert.Equal(t, []string{"kiwi"}, value)
	assert.Equal(t, domain.ReasonSelectOption, reason)
}

func TestSingleModeReplaces(t *testing.T) {
	s := NewService[string](nil, false, nil, nil)
	s.Replace([]string{"Apple"})

	value, reason := s.Toggle("Banana", domain.OriginOptions)
	assert.Equal(t, []string{"Banana"}, value)
	assert.Equal(t, domain.ReasonSelectOption, reason)
}

func TestCommitSameValueIsNoop(t *testing.T) {
	rec := events.NewRecorder()
	s := NewService[string](rec, false, nil, nil)

	require.True(t, s.Commit([]string{"Apple"}, domain.ReasonSelectOption, domain.ChangeDetails[string]{Option: "Apple", HasOption: true}))
	version := s.Version()
	assert.False(t, s.Commit([]string{"Apple"}, domain.ReasonSelectOption, domain.ChangeDetails[string]{Option: "Apple", HasOption: true}))

	assert.Len(t, rec.OfType(domain.EventValueChanged), 1)
	assert.Equal(t, version, s.Version())
}

func TestCommitPublishesChange(t *testing.T) {
	rec := events.NewRecorder()
	s := NewService[string](rec, true, nil, nil)

	s.Commit([]string{"Apple", "Banana"}, domain.ReasonSelectOption, domain.ChangeDetails[string]{Option: "Banana", HasOption: true})

	require.Len(t, rec.Events, 1)
	assert.Equal(t, domain.ValueChangedEvent[string]{
		Value:   []string{"Apple", "Banana"},
		Reason:  domain.ReasonSelectOption,
		Details: domain.ChangeDetails[string]{Option: "Banana", HasOption: true},
	}, rec.Events[0])
}

func TestRemoveAtCarriesRemovedOption(t *testing.T) {
	rec := events.NewRecorder()
	s := NewService[string](rec, true, nil, nil)
	s.Replace([]string{"Apple", "Banana", "Cherry"})

	require.True(t, s.RemoveAt(1))
	assert.False(t, s.RemoveAt(5))

	assert.Equal(t, []string{"Apple", "Cherry"}, s.Value())
	change := rec.Events[0].(domain.ValueChangedEvent[string])
	assert.Equal(t, domain.ReasonRemoveOption, change.Reason)
	assert.Equal(t, "Banana", change.Details.Option)
}

func TestClear(t *testing.T) {
	rec := events.NewRecorder()
	s := NewService[string](rec, false, nil, nil)
	s.Replace([]string{"Apple"})

	require.True(t, s.Clear())
	assert.False(t, s.Clear())

	_, ok := s.Single()
	assert.False(t, ok)
	assert.Equal(t, domain.ReasonClear, rec.Events[0].(domain.ValueChangedEvent[string]).Reason)
}

func TestCustomEqualityAndAmbiguityDiagnostic(t *testing.T) {
	type fruit struct {
		ID   int
		Name string
	}
	byName := func(option, value fruit) bool { return strings.EqualFold(option.Name, value.Name) }
	rep := &diag.Recorder{}
	s := NewService[fruit](nil, true, byName, rep)
	s.Replace([]fruit{{1, "apple"}, {2, "APPLE"}})

	value, reason := s.Toggle(fruit{3, "Apple"}, domain.OriginOptions)

	assert.Equal(t, 1, rep.Count(diag.AmbiguousEquality))
	assert.Equal(t, domain.ReasonRemoveOption, reason)
	assert.Equal(t, []fruit{{2, "APPLE"}}, value)
}

func TestMultipleModeStaysDeduplicated(t *testing.T) {
	s := NewService[string](nil, true, nil, nil)
	picks := []string{"a", "b", "a", "c", "b", "b", "a"}

	for _, p := range picks {
		value, reason := s.Toggle(p, domain.OriginOptions)
		s.Commit(value, reason, domain.ChangeDetails[string]{Option: p, HasOption: true})

		seen := map[string]bool{}
		for _, v := range s.Value() {
			assert.False(t, seen[v], "duplicate %q in %v", v, s.Value())
			seen[v] = true
		}
	}
	assert.Equal(t, []string{"c", "b", "a"}, s.Value())
}
