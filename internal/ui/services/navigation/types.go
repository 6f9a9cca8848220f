package navigation

// State holds the highlighted option index; -1 means nothing is highlighted
type State struct {
	Index int
}

// Config holds the wrap rules for highlight moves
type Config struct {
	// IncludeInputInList lets a single step past either end land on the input (-1)
	IncludeInputInList bool
	// DisableListWrap stops at the ends instead of wrapping around
	DisableListWrap bool
	// AutoHighlight makes a reset land on the first option instead of -1
	AutoHighlight bool
}

type diffKind int

const (
	diffStep diffKind = iota
	diffReset
	diffStart
	diffEnd
)

// Diff describes a highlight move: a relative step or an absolute target
type Diff struct {
	kind diffKind
	step int
}

var (
	// Reset moves to the configured default highlight
	Reset = Diff{kind: diffReset}
	// Start moves to the first option
	Start = Diff{kind: diffStart}
	// End moves to the last option
	End = Diff{kind: diffEnd}
)

// Step moves by n options
func Step(n int) Diff {
	return Diff{kind: diffStep, step: n}
}

// IsReset reports whether d is Reset
func (d Diff) IsReset() bool {
	return d.kind == diffReset
}

// SyncInput is the before/after snapshot used to re-synchronize the highlight
// after the filtered options, input text or value change
type SyncInput[V any] struct {
	Filtered     []V
	PrevFiltered []V

	InputValue     string
	PrevInputValue string

	Value     []V
	PrevValue []V
	Multiple  bool

	Label func(V) string
	Equal func(option, value V) bool
}
