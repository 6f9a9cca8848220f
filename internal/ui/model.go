package ui

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"combogrip/internal/config"
	"combogrip/internal/domain"
	"combogrip/internal/engine"
	"combogrip/internal/eventbus"
	"combogrip/internal/options"
	"combogrip/internal/ui/input"
	inputtypes "combogrip/internal/ui/input/types"
	"combogrip/internal/ui/logic"
	"combogrip/internal/ui/services/search"
	"combogrip/internal/ui/views"
)

// Settings are the front-end choices that are not part of the config file
type Settings struct {
	// Group shows a header per Item.Group
	Group    bool
	ReadOnly bool
	Disabled bool
	// Value holds the labels selected on start
	Value []string
	// Ready runs once the terminal size is known
	Ready func()
}

// Model represents the UI state
type Model struct {
	engine *engine.Engine[options.Item]
	config *config.Config
	items  []options.Item
	ready  func()

	width  int
	height int

	help         help.Model
	textInput    textinput.Model
	inputHandler *input.Handler
	renderer     *views.Renderer
	viewport     *logic.Viewport
	search       *search.Service

	// display is the last text the engine asked to show, with its selection
	display      *domain.InputDisplayRequestedEvent
	displayShown bool
	// scroll is the option to bring into view on the next refresh
	scroll *domain.ScrollRequestedEvent
	frame  views.Frame

	submitPending bool
	done          bool
	cancelled     bool
	result        []options.Item
}

// NewModel creates a new UI model over items
func NewModel(items []options.Item, cfg *config.Config, settings Settings) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		config:       cfg,
		items:        items,
		ready:        settings.Ready,
		help:         help.New(),
		textInput:    textinput.New(),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(),
		viewport:     logic.NewViewport(cfg.UISettings.ListHeight),
		search:       search.NewService(),
	}

	m.textInput.Prompt = ""
	m.textInput.Placeholder = cfg.UISettings.Placeholder
	m.textInput.PlaceholderStyle = m.renderer.Styles().Placeholder
	m.textInput.Focus()

	m.search.SetCandidatesFunction(func() []string {
		var labels []string
		for _, item := range m.items {
			if !item.Disabled {
				labels = append(labels, item.Label())
			}
		}
		return labels
	})

	opts := config.EngineOptions[options.Item](cfg)
	opts.ReadOnly = settings.ReadOnly
	opts.Disabled = settings.Disabled
	opts.GetOptionLabel = options.Item.Label
	opts.GetOptionKey = options.Item.Key
	opts.GetOptionDisabled = func(item options.Item) bool { return item.Disabled }
	opts.IsOptionEqualToValue = func(option, value options.Item) bool {
		return option.Key() == value.Key()
	}
	opts.FreeSoloValue = func(text string) options.Item {
		return options.Item{Text: text}
	}
	if settings.Group {
		opts.GroupBy = func(item options.Item) string { return item.Group }
	}
	for _, label := range settings.Value {
		item, ok := options.Find(items, label)
		if !ok {
			item = options.Item{Text: label}
		}
		opts.DefaultValue = append(opts.DefaultValue, item)
	}

	bus := eventbus.New()
	m.subscribe(bus)
	m.engine = engine.New(items, opts, engine.WithBus(bus))
	m.engine.OnFocus()
	m.refresh()
	return m
}

// subscribe wires engine events into the model
func (m *Model) subscribe(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventInputChanged, func(e eventbus.DomainEvent) {
		m.display = nil
	})
	bus.Subscribe(eventbus.EventInputDisplayRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.InputDisplayRequestedEvent); ok {
			m.display = &event
			m.displayShown = false
		}
	})
	bus.Subscribe(eventbus.EventScrollRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ScrollRequestedEvent); ok {
			m.scroll = &event
		}
	})
	bus.Subscribe(eventbus.EventValueChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(domain.ValueChangedEvent[options.Item]); ok {
			log.Printf("Value changed (%s): %v", event.Reason, options.Labels(event.Value))
		}
	})
	bus.Subscribe(eventbus.EventClosed, func(e eventbus.DomainEvent) {
		m.viewport.Top()
	})
	bus.Subscribe(eventbus.EventBlurRequested, func(e eventbus.DomainEvent) {
		// nothing else can take focus in a terminal, so leaving the input
		// accepts the value
		m.submitPending = true
	})
}

// Engine exposes the combobox engine
func (m *Model) Engine() *engine.Engine[options.Item] {
	return m.engine
}

// Result returns the accepted value. It is empty until the user submits.
func (m *Model) Result() []options.Item {
	return m.result
}

// Cancelled reports whether the user quit without accepting
func (m *Model) Cancelled() bool {
	return m.cancelled
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		if m.ready != nil {
			m.ready()
			m.ready = nil
		}

	case tea.KeyMsg:
		for _, action := range m.inputHandler.HandleKey(msg, m) {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
			if m.done {
				break
			}
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.FocusMsg:
		m.engine.OnFocus()

	case tea.BlurMsg:
		m.engine.OnBlur()
		m.submitPending = false

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}

	default:
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	if m.submitPending && !m.done {
		m.submit()
	}
	if m.done {
		return m, tea.Quit
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.EngineKeyAction:
		if m.engine.OnKeyDown(a.Key, a.Mods) {
			return nil
		}
		if a.Fallback != nil {
			return m.processAction(a.Fallback)
		}

	case inputtypes.EditTextAction:
		return m.editText(a.Msg)

	case inputtypes.SubmitAction:
		m.submit()

	case inputtypes.CancelAction:
		m.cancelled = true
		m.done = true

	case inputtypes.ClearAction:
		m.engine.OnClear()

	case inputtypes.TogglePopupAction:
		m.engine.OnTogglePopup()

	case inputtypes.ShowHelpAction:
		return m.showHelp()

	default:
		log.Printf("Unhandled action: %s", action.Type())
	}
	return nil
}

// submit accepts the value. Leaving the input runs the blur policies first,
// so auto-select and free-solo text are committed before the result is read.
func (m *Model) submit() {
	m.submitPending = false
	if m.engine.State().Focused {
		m.engine.OnBlur()
	}
	m.result = m.engine.State().Value
	m.done = true
}

// editText applies a key to the text input and reports the new text to the
// engine. A selection shown on the engine's behalf is replaced by typing.
func (m *Model) editText(msg tea.KeyMsg) tea.Cmd {
	before := m.textInput.Value()

	if sel := m.display; sel != nil && sel.SelectionEnd > sel.SelectionStart {
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
			runes := []rune(sel.Text)
			start, end := clampRange(sel.SelectionStart, sel.SelectionEnd, len(runes))
			m.textInput.SetValue(string(runes[:start]) + string(runes[end:]))
			m.textInput.SetCursor(start)
			m.display = nil
			if msg.Type == tea.KeyBackspace || msg.Type == tea.KeyDelete {
				m.engine.OnTextInput(m.textInput.Value())
				return nil
			}
		case tea.KeyLeft, tea.KeyRight:
			// collapse the selection onto the side the arrow points at
			pos := sel.SelectionEnd
			if msg.Type == tea.KeyLeft {
				pos = sel.SelectionStart
			}
			m.display = &domain.InputDisplayRequestedEvent{Text: sel.Text, SelectionStart: pos, SelectionEnd: pos}
			m.displayShown = false
			return nil
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if text := m.textInput.Value(); text != before || text != m.engine.State().InputValue {
		m.engine.OnTextInput(text)
	}
	return cmd
}

// handleMouse maps pointer gestures onto the rendered frame
func (m *Model) handleMouse(msg tea.MouseMsg) {
	option, onOption := m.frame.OptionAt[msg.Y]
	mods := engine.Modifiers{Ctrl: msg.Ctrl, Alt: msg.Alt, Shift: msg.Shift, Meta: msg.Alt}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.viewport.Scroll(-1, len(m.rows()))
	case msg.Button == tea.MouseButtonWheelDown:
		m.viewport.Scroll(1, len(m.rows()))
	case msg.Action == tea.MouseActionMotion && onOption:
		m.engine.OnOptionPointerMove(option)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && onOption:
		m.engine.OnOptionClick(option, mods)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == m.frame.InputLine:
		m.engine.OnInputMouseDown()
		m.engine.OnClick()
	}
}

// refresh brings the text input and the viewport in line with the engine
func (m *Model) refresh() {
	state := m.engine.State()

	if m.display != nil {
		if !m.displayShown {
			m.textInput.SetValue(m.display.Text)
			m.textInput.SetCursor(m.display.SelectionEnd)
			m.displayShown = true
		}
	} else if m.textInput.Value() != state.InputValue {
		m.textInput.SetValue(state.InputValue)
		m.textInput.CursorEnd()
	}

	rows := buildRows(m.engine, state)
	if m.scroll != nil {
		if m.scroll.Index == -1 {
			m.viewport.Top()
		} else {
			m.scrollTo(rows, rowPosition(rows, m.scroll.Index))
		}
		m.scroll = nil
	}
	m.viewport.EnsureVisible(-1, len(rows))
}

// scrollTo brings row pos into view, along with its group header when the
// header sits just above the window
func (m *Model) scrollTo(rows []views.Row, pos int) {
	m.viewport.EnsureVisible(pos, len(rows))
	if pos > 0 && pos == m.viewport.Offset && rows[pos-1].Header {
		m.viewport.EnsureVisible(pos-1, len(rows))
	}
}

func (m *Model) updateViewportHeight() {
	height := m.config.UISettings.ListHeight
	if m.height > 0 {
		// input line, blank line and help line
		if avail := m.height - 3; avail < height {
			height = avail
		}
	}
	state := m.engine.State()
	rows := buildRows(m.engine, state)
	m.viewport.SetHeight(height, rowPosition(rows, state.HighlightedIndex), len(rows))
}

func (m *Model) rows() []views.Row {
	return buildRows(m.engine, m.engine.State())
}

// View renders the UI
func (m *Model) View() string {
	if m.done {
		return ""
	}
	state := m.engine.State()
	rows := buildRows(m.engine, state)
	start, end := m.viewport.Window(len(rows))

	vs := views.ViewState{
		Width:            m.width,
		Prompt:           m.config.UISettings.Prompt,
		Input:            m.inputView(),
		Chips:            buildChips(m.engine, state),
		Multiple:         state.Multiple,
		ReadOnly:         state.ReadOnly,
		Disabled:         state.Disabled,
		Open:             state.PopupOpen,
		ListboxAvailable: state.ListboxAvailable,
		Rows:             rows[start:end],
		Above:            start,
		Below:            len(rows) - end,
		Query:            state.InputValue,
	}
	if m.config.UISettings.Suggest && state.PopupOpen && !state.ListboxAvailable {
		vs.Suggestion = m.search.Suggest(state.InputValue)
	}
	if m.config.UISettings.ShowHelp {
		vs.Help = m.help.View(m.inputHandler.KeyMap())
	}

	m.frame = m.renderer.Render(vs)
	return m.frame.Content
}

func (m *Model) inputView() string {
	if sel := m.display; sel != nil && sel.SelectionEnd > sel.SelectionStart {
		return m.renderer.RenderSelection(sel.Text, sel.SelectionStart, sel.SelectionEnd)
	}
	return m.textInput.View()
}

// PopupOpen implements the input context
func (m *Model) PopupOpen() bool {
	return m.engine.State().PopupOpen
}

// FocusedTag implements the input context
func (m *Model) FocusedTag() int {
	return m.engine.State().FocusedTag
}

// Multiple implements the input context
func (m *Model) Multiple() bool {
	return m.engine.State().Multiple
}

func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end < start {
		end = start
	}
	if end > n {
		end = n
	}
	return start, end
}
