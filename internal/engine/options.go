package engine

import (
	"combogrip/internal/diag"
	"combogrip/internal/domain"
	"combogrip/internal/eventbus"
	"combogrip/internal/ui/services/filter"
)

// DefaultPageSize is how far PageUp and PageDown move the highlight
const DefaultPageSize = 5

// Options configures one engine instance. Fields left nil or zero take the
// documented defaults.
type Options[V comparable] struct {
	// ID prefixes the active-option marker of each option
	ID string

	Multiple              bool
	FreeSolo              bool
	AutoHighlight         bool
	AutoSelect            bool
	AutoComplete          bool
	ClearOnEscape         bool
	DisableCloseOnSelect  bool
	DisableListWrap       bool
	IncludeInputInList    bool
	FilterSelectedOptions bool
	OpenOnFocus           bool
	// DisabledItemsFocusable lets the highlight land on disabled options
	DisabledItemsFocusable bool
	// DisableClearable keeps the value when the input is emptied
	DisableClearable bool
	ReadOnly         bool
	Disabled         bool
	BlurOnSelect     domain.BlurOnSelect

	// ClearOnBlur defaults to !FreeSolo
	ClearOnBlur *bool
	// HandleHomeEndKeys defaults to !FreeSolo
	HandleHomeEndKeys *bool
	// SelectOnFocus defaults to !FreeSolo
	SelectOnFocus *bool

	// PageSize defaults to DefaultPageSize
	PageSize int

	GetOptionLabel       func(V) string
	GetOptionKey         func(V) string
	GetOptionDisabled    func(V) bool
	GroupBy              func(V) string
	IsOptionEqualToValue func(option, value V) bool
	FilterOptions        filter.Func[V]
	// FreeSoloValue turns typed text into a value. Defaults to a plain
	// conversion when V is string.
	FreeSoloValue func(string) V

	// DefaultValue is the initial value; single mode uses the first entry
	DefaultValue []V
}

// Bool returns a pointer to b for the tri-state options
func Bool(b bool) *bool {
	return &b
}

type resolved struct {
	clearOnBlur       bool
	handleHomeEndKeys bool
	selectOnFocus     bool
	pageSize          int
}

func (o Options[V]) resolve() resolved {
	r := resolved{
		clearOnBlur:       !o.FreeSolo,
		handleHomeEndKeys: !o.FreeSolo,
		selectOnFocus:     !o.FreeSolo,
		pageSize:          o.PageSize,
	}
	if o.ClearOnBlur != nil {
		r.clearOnBlur = *o.ClearOnBlur
	}
	if o.HandleHomeEndKeys != nil {
		r.handleHomeEndKeys = *o.HandleHomeEndKeys
	}
	if o.SelectOnFocus != nil {
		r.selectOnFocus = *o.SelectOnFocus
	}
	if r.pageSize <= 0 {
		r.pageSize = DefaultPageSize
	}
	return r
}

// Probe answers the questions only the view can: whether an option or chip
// is rendered and can take focus, and where focus currently is
type Probe interface {
	IsOptionFocusable(index int) bool
	IsOptionDisabled(index int) bool
	IsTagFocusable(index int) bool
	IsFocusInsideOptionList() bool
}

type settings struct {
	bus      eventbus.EventBus
	probe    Probe
	reporter diag.Reporter
}

// Option customizes how the engine is wired
type Option func(*settings)

// WithBus publishes events on bus instead of a private one
func WithBus(bus eventbus.EventBus) Option {
	return func(s *settings) {
		s.bus = bus
	}
}

// WithProbe queries the view through p
func WithProbe(p Probe) Option {
	return func(s *settings) {
		s.probe = p
	}
}

// WithReporter sends diagnostics to r
func WithReporter(r diag.Reporter) Option {
	return func(s *settings) {
		s.reporter = r
	}
}

// Key names the keys the engine reacts to
type Key string

const (
	KeyHome       Key = "Home"
	KeyEnd        Key = "End"
	KeyPageUp     Key = "PageUp"
	KeyPageDown   Key = "PageDown"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeyEnter      Key = "Enter"
	KeyEscape     Key = "Escape"
	KeyBackspace  Key = "Backspace"
	KeyDelete     Key = "Delete"
)

// Modifiers describes the modifier keys held during a gesture
type Modifiers struct {
	Ctrl  bool
	Meta  bool
	Shift bool
	Alt   bool
	// Composing is set while an input method is still composing text
	Composing bool
}

func (m Modifiers) keepsOpen() bool {
	return m.Ctrl || m.Meta
}
