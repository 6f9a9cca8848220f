// Package engine coordinates the combobox services: it owns the value, the
// input text, the open flag, the highlight and the chip focus, accepts user
// gestures and recomputes everything derived from them before returning.
package engine

import (
	"fmt"
	"strings"

	"combogrip/internal/diag"
	"combogrip/internal/domain"
	"combogrip/internal/eventbus"
	"combogrip/internal/ui/services/filter"
	"combogrip/internal/ui/services/groups"
	"combogrip/internal/ui/services/navigation"
	"combogrip/internal/ui/services/openstate"
	"combogrip/internal/ui/services/selection"
	"combogrip/internal/ui/services/tags"
)

// maxSettlePasses bounds the fixed-point loop in settle
const maxSettlePasses = 16

// Engine is a headless combobox. It is not safe for concurrent use; drive it
// from one goroutine.
type Engine[V comparable] struct {
	opts Options[V]
	res  resolved

	// Services
	Filter     *filter.Service[V]
	Navigation *navigation.Service[V]
	Selection  *selection.Service[V]
	OpenState  *openstate.Service
	Tags       *tags.Service

	// Dependencies
	bus      eventbus.EventBus
	probe    Probe
	reporter diag.Reporter

	options        []V
	optionsVersion int

	filtered  []V
	grouped   []groups.Bucket[V, string]
	filterKey filterKey
	computed  bool

	last         renderSnapshot[V]
	validityKey  [2]int
	checkedValid bool

	isTouch     bool
	labelWarned bool
	labelFn     func(V) string
	equalFn     func(option, value V) bool
}

type filterKey struct {
	inputValue     string
	pristine       bool
	valueVersion   int
	optionsVersion int
	popupOpen      bool
}

// renderSnapshot is what the previous settle pass saw
type renderSnapshot[V comparable] struct {
	valid        bool
	filtered     []V
	inputValue   string
	value        []V
	valueVersion int
	popupOpen    bool
	focused      bool
}

type stateKey struct {
	inputValue     string
	valueVersion   int
	open           bool
	focused        bool
	pristine       bool
	optionsVersion int
	disabled       bool
	focusedTag     int
}

// New creates an engine over options
func New[V comparable](options []V, opts Options[V], extra ...Option) *Engine[V] {
	st := settings{}
	for _, o := range extra {
		o(&st)
	}
	if st.bus == nil {
		st.bus = eventbus.New()
	}
	if st.reporter == nil {
		st.reporter = diag.Default()
	}
	if opts.ID == "" {
		opts.ID = "combogrip"
	}

	e := &Engine[V]{
		opts:     opts,
		res:      opts.resolve(),
		bus:      st.bus,
		reporter: st.reporter,
		options:  options,
	}
	e.labelFn = e.buildLabel()
	e.equalFn = opts.IsOptionEqualToValue
	if e.equalFn == nil {
		e.equalFn = func(option, value V) bool { return option == value }
	}

	e.probe = st.probe
	if e.probe == nil {
		e.probe = defaultProbe[V]{e: e}
	}

	e.Filter = filter.NewService[V](opts.FilterOptions)
	e.Navigation = navigation.NewService[V](e.bus, opts.ID, navigation.Config{
		IncludeInputInList: opts.IncludeInputInList,
		DisableListWrap:    opts.DisableListWrap,
		AutoHighlight:      opts.AutoHighlight,
	})
	e.Selection = selection.NewService[V](e.bus, opts.Multiple, e.equalFn, e.reporter)
	e.OpenState = openstate.NewService(e.bus)
	e.Tags = tags.NewService(e.bus)

	e.wireServices()

	initial := opts.DefaultValue
	if !opts.Multiple && len(initial) > 1 {
		initial = initial[:1]
	}
	e.Selection.Replace(initial)

	e.settle()
	return e
}

// wireServices connects services with their dependencies
func (e *Engine[V]) wireServices() {
	e.Navigation.SetQueryFunction(func() []V {
		return e.filtered
	})
	e.Navigation.SetFocusableFunction(e.optionFocusable)
	e.Selection.SetLabelFunction(e.labelFn)
}

func (e *Engine[V]) buildLabel() func(V) string {
	if e.opts.GetOptionLabel != nil {
		return e.opts.GetOptionLabel
	}
	return func(v V) string {
		switch x := any(v).(type) {
		case interface{ Label() string }:
			return x.Label()
		case string:
			return x
		case fmt.Stringer:
			return x.String()
		}
		if !e.labelWarned {
			e.labelWarned = true
			e.reporter.Report(diag.LabelNotString,
				"no label function for %T; using its printed form %q", v, fmt.Sprint(v))
		}
		return fmt.Sprint(v)
	}
}

// Subscribe registers handler for one event type and returns an unsubscribe
// function. Handlers run synchronously and may call back into the engine.
func (e *Engine[V]) Subscribe(eventType domain.EventType, handler eventbus.EventHandler) func() {
	return e.bus.Subscribe(eventType, handler)
}

// SubscribeAll registers handler for every event
func (e *Engine[V]) SubscribeAll(handler eventbus.EventHandler) func() {
	return e.bus.SubscribeAll(handler)
}

// OptionLabel returns the label of option
func (e *Engine[V]) OptionLabel(option V) string {
	return e.labelFn(option)
}

// OptionKey returns the stable key of option, falling back to its label
func (e *Engine[V]) OptionKey(option V) string {
	if e.opts.GetOptionKey != nil {
		return e.opts.GetOptionKey(option)
	}
	return e.labelFn(option)
}

// OptionSelected reports whether option matches the value
func (e *Engine[V]) OptionSelected(option V) bool {
	return e.Selection.IsSelected(option)
}

// OptionDisabled reports whether option is disabled
func (e *Engine[V]) OptionDisabled(option V) bool {
	return e.optionDisabled(option)
}

// OptionID returns the active-option marker of the option at index
func (e *Engine[V]) OptionID(index int) string {
	return e.Navigation.OptionID(index)
}

func (e *Engine[V]) optionDisabled(option V) bool {
	if e.opts.GetOptionDisabled == nil {
		return false
	}
	return e.opts.GetOptionDisabled(option)
}

func (e *Engine[V]) optionFocusable(index int) bool {
	if !e.probe.IsOptionFocusable(index) {
		return false
	}
	return e.opts.DisabledItemsFocusable || !e.probe.IsOptionDisabled(index)
}

func (e *Engine[V]) popupOpen() bool {
	return e.OpenState.IsOpen() && !e.opts.ReadOnly
}

// inputIsSelectedValue reports whether the input shows the single value's label
func (e *Engine[V]) inputIsSelectedValue() bool {
	if e.opts.Multiple {
		return false
	}
	v, ok := e.Selection.Single()
	return ok && e.OpenState.InputValue() == e.labelFn(v)
}

func (e *Engine[V]) freeSoloValue(text string) (V, bool) {
	if e.opts.FreeSoloValue != nil {
		return e.opts.FreeSoloValue(text), true
	}
	v, ok := any(text).(V)
	return v, ok
}

// State returns a snapshot of the engine
func (e *Engine[V]) State() State[V] {
	open := e.OpenState.State()
	popupOpen := e.popupOpen()
	value := e.Selection.Value()

	highlighted := -1
	if popupOpen {
		highlighted = e.Navigation.Index()
	}

	dirty := e.opts.FreeSolo && open.InputValue != ""
	dirty = dirty || len(value) > 0

	filtered := make([]V, len(e.filtered))
	copy(filtered, e.filtered)

	return State[V]{
		Value:            value,
		InputValue:       open.InputValue,
		Open:             open.Open,
		PopupOpen:        popupOpen,
		ListboxAvailable: popupOpen && len(e.filtered) > 0,
		Expanded:         popupOpen,
		HighlightedIndex: highlighted,
		ActiveOptionID:   e.Navigation.OptionID(highlighted),
		FocusedTag:       e.Tags.Focused(),
		Focused:          open.Focused || e.Tags.Focused() != -1,
		Pristine:         open.Pristine,
		FilteredOptions:  filtered,
		GroupedOptions:   e.grouped,
		Dirty:            dirty,
		Multiple:         e.opts.Multiple,
		Disabled:         e.opts.Disabled,
		ReadOnly:         e.opts.ReadOnly,
	}
}

// SetOptions replaces the candidate list
func (e *Engine[V]) SetOptions(options []V) {
	e.options = options
	e.optionsVersion++
	e.settle()
}

// SetValue replaces the value on behalf of the host. No change event fires.
func (e *Engine[V]) SetValue(value []V) {
	e.Selection.Replace(value)
	e.settle()
}

// SetDisabled disables or enables the combobox. Disabling a focused
// combobox blurs it.
func (e *Engine[V]) SetDisabled(disabled bool) {
	e.opts.Disabled = disabled
	e.settle()
}

func (e *Engine[V]) key() stateKey {
	open := e.OpenState.State()
	return stateKey{
		inputValue:     open.InputValue,
		valueVersion:   e.Selection.Version(),
		open:           open.Open,
		focused:        open.Focused,
		pristine:       open.Pristine,
		optionsVersion: e.optionsVersion,
		disabled:       e.opts.Disabled,
		focusedTag:     e.Tags.Focused(),
	}
}

// settle recomputes derived state until nothing changes
func (e *Engine[V]) settle() {
	for i := 0; i < maxSettlePasses; i++ {
		before := e.key()
		e.pass()
		if e.key() == before {
			return
		}
	}
}

// pass is one render: derive the filtered options, then run the effects
// that depend on what changed since the previous pass
func (e *Engine[V]) pass() {
	if e.opts.Disabled && e.OpenState.Focused() {
		e.handleBlur()
	}

	e.recompute()
	e.checkValue()

	cur := renderSnapshot[V]{
		valid:        true,
		filtered:     e.filtered,
		inputValue:   e.OpenState.InputValue(),
		value:        e.Selection.Value(),
		valueVersion: e.Selection.Version(),
		popupOpen:    e.popupOpen(),
		focused:      e.OpenState.Focused(),
	}
	prev := e.last
	e.last = cur

	// tie the input text back to the value
	valueChange := !prev.valid || cur.valueVersion != prev.valueVersion
	if valueChange || cur.focused != prev.focused || cur.inputValue != prev.inputValue {
		if !(cur.focused && !valueChange) && !(e.opts.FreeSolo && !valueChange) {
			e.resetInputValue(cur.value)
		}
	}

	if e.opts.Multiple {
		e.Tags.Clamp(len(cur.value))
	}

	if !prev.valid ||
		len(cur.filtered) != len(prev.filtered) ||
		(!e.opts.Multiple && cur.valueVersion != prev.valueVersion) ||
		cur.popupOpen != prev.popupOpen ||
		cur.inputValue != prev.inputValue {
		e.syncHighlightedIndex(prev, cur)
	}
}

func (e *Engine[V]) recompute() {
	key := filterKey{
		inputValue:     e.OpenState.InputValue(),
		pristine:       e.OpenState.Pristine(),
		valueVersion:   e.Selection.Version(),
		optionsVersion: e.optionsVersion,
		popupOpen:      e.popupOpen(),
	}
	if e.computed && key == e.filterKey {
		return
	}
	e.filterKey = key
	e.computed = true

	if !key.popupOpen {
		e.filtered = []V{}
		e.grouped = nil
		return
	}

	e.filtered = e.Filter.Apply(filter.Input[V]{
		Options:        e.options,
		InputValue:     key.inputValue,
		Pristine:       key.pristine,
		Value:          e.Selection.Value(),
		Multiple:       e.opts.Multiple,
		FilterSelected: e.opts.FilterSelectedOptions,
		Equal:          e.equalFn,
		Label:          e.labelFn,
	})
	if e.filtered == nil {
		e.filtered = []V{}
	}

	e.grouped = nil
	if e.opts.GroupBy != nil {
		buckets, summary := groups.PartitionWithSummary(e.filtered, e.opts.GroupBy)
		e.grouped = buckets
		if len(summary.Duplicated) > 0 {
			e.reporter.Report(diag.DuplicateGroupKeys,
				"groupBy returned duplicated headers (%s); sort the options by their group key first",
				strings.Join(summary.Duplicated, ", "))
		}
	}
}

// checkValue reports values that match no option, once per value/options pair
func (e *Engine[V]) checkValue() {
	key := [2]int{e.Selection.Version(), e.optionsVersion}
	if e.checkedValid && key == e.validityKey {
		return
	}
	e.validityKey = key
	e.checkedValid = true

	if e.opts.FreeSolo || len(e.options) == 0 {
		return
	}
	var missing []string
	for _, v := range e.Selection.Value() {
		found := false
		for _, option := range e.options {
			if e.equalFn(option, v) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, fmt.Sprintf("%q", e.labelFn(v)))
		}
	}
	if len(missing) > 0 {
		e.reporter.Report(diag.ValueNotInOptions,
			"none of the options match %s; check IsOptionEqualToValue", strings.Join(missing, ", "))
	}
}

// resetInputValue sets the input text from newValue. It compares against the
// current value to tell whether something was added.
func (e *Engine[V]) resetInputValue(newValue []V) {
	current := e.Selection.Value()
	var optionSelected bool
	if e.opts.Multiple {
		optionSelected = len(current) < len(newValue)
	} else {
		optionSelected = len(newValue) > 0
	}

	text := ""
	if !e.opts.Multiple && len(newValue) > 0 {
		text = e.labelFn(newValue[0])
	}
	e.OpenState.ResetInput(text, optionSelected, e.res.clearOnBlur)
}

func (e *Engine[V]) syncHighlightedIndex(prev, cur renderSnapshot[V]) {
	if !cur.popupOpen {
		return
	}
	in := navigation.SyncInput[V]{
		Filtered:   cur.filtered,
		InputValue: cur.inputValue,
		Value:      cur.value,
		Multiple:   e.opts.Multiple,
		Label:      e.labelFn,
		Equal:      e.equalFn,
	}
	if prev.valid {
		in.PrevFiltered = prev.filtered
		in.PrevInputValue = prev.inputValue
		in.PrevValue = prev.value
	}
	e.Navigation.Sync(in)
}
