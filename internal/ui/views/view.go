package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chip is a selected value shown before the input in multiple mode
type Chip struct {
	Label   string
	Focused bool
}

// Row is one line of the option list: a group header or an option
type Row struct {
	Header      bool
	Label       string
	Option      int
	Indent      bool
	Highlighted bool
	Selected    bool
	Disabled    bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width    int
	Prompt   string
	Input    string
	Chips    []Chip
	Multiple bool
	ReadOnly bool
	Disabled bool

	Open             bool
	ListboxAvailable bool
	Rows             []Row
	// Above and Below count the rows scrolled out of view
	Above int
	Below int
	// Query is highlighted inside option labels
	Query      string
	Suggestion string

	Help string
}

// Frame is a rendered view plus where things landed, for mouse handling
type Frame struct {
	Content   string
	InputLine int
	// OptionAt maps a screen line to the option index drawn on it
	OptionAt map[int]int
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
	option *OptionRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles: styles,
		option: NewOptionRenderer(styles),
	}
}

// Styles exposes the styles, for the text input
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) Frame {
	frame := Frame{OptionAt: make(map[int]int)}
	var lines []string

	frame.InputLine = len(lines)
	lines = append(lines, r.renderInputLine(state))

	if state.Open {
		if state.ListboxAvailable {
			if state.Above > 0 {
				lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↑ %d more", state.Above)))
			}
			width := contentWidth(state.Width)
			for _, row := range state.Rows {
				if !row.Header {
					frame.OptionAt[len(lines)] = row.Option
				}
				lines = append(lines, r.option.Render(row, state.Multiple, state.Query, width))
			}
			if state.Below > 0 {
				lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("  ↓ %d more", state.Below)))
			}
		} else {
			lines = append(lines, r.styles.Empty.Render("  No options"))
			if state.Suggestion != "" {
				lines = append(lines, r.styles.Suggestion.Render(fmt.Sprintf("  Did you mean %q?", state.Suggestion)))
			}
		}
	}

	if state.Help != "" {
		lines = append(lines, "", r.styles.Help.Render(state.Help))
	}

	frame.Content = r.styles.Main.Render(strings.Join(lines, "\n"))
	return frame
}

func (r *Renderer) renderInputLine(state ViewState) string {
	var parts []string
	parts = append(parts, r.styles.Prompt.Render(state.Prompt))
	for _, chip := range state.Chips {
		style := r.styles.Chip
		if chip.Focused {
			style = r.styles.ChipFocused
		}
		parts = append(parts, style.Render(chip.Label), " ")
	}
	parts = append(parts, state.Input)

	indicator := r.styles.PopupClosed.Render(" ▾")
	if state.Open {
		indicator = r.styles.PopupOpened.Render(" ▴")
	}
	parts = append(parts, indicator)

	switch {
	case state.Disabled:
		parts = append(parts, r.styles.Dim.Render(" (disabled)"))
	case state.ReadOnly:
		parts = append(parts, r.styles.ReadOnlyMark.Render(" (read-only)"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func contentWidth(width int) int {
	if width <= 0 {
		width = 80 // Default terminal width
	}
	// Account for main container padding
	return width - 2
}

// RenderSelection draws text with the rune range [start, end) selected. The
// caret is not drawn.
func (r *Renderer) RenderSelection(text string, start, end int) string {
	runes := []rune(text)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))
	if start == end {
		return text
	}
	return string(runes[:start]) + r.styles.Selection.Render(string(runes[start:end])) + string(runes[end:])
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
