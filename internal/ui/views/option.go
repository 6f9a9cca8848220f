package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// OptionRenderer handles rendering of option rows and group headers
type OptionRenderer struct {
	styles *Styles
}

// NewOptionRenderer creates a new option renderer
func NewOptionRenderer(styles *Styles) *OptionRenderer {
	return &OptionRenderer{
		styles: styles,
	}
}

// Render renders one row, truncated to width cells
func (o *OptionRenderer) Render(row Row, multiple bool, query string, width int) string {
	if row.Header {
		return o.styles.GroupHeader.Render(runewidth.Truncate(row.Label, width, "…"))
	}

	var prefix string
	if row.Indent {
		prefix = "  "
	}
	switch {
	case multiple && row.Selected:
		prefix += "[x] "
	case multiple:
		prefix += "[ ] "
	case row.Selected:
		prefix += "✓ "
	default:
		prefix += "  "
	}

	label := runewidth.Truncate(row.Label, width-runewidth.StringWidth(prefix), "…")

	base := o.styles.Option
	switch {
	case row.Disabled:
		base = o.styles.Disabled
	case row.Selected:
		base = o.styles.Selected
	}
	if row.Highlighted {
		base = base.Inherit(o.styles.Highlighted)
	}

	var text string
	if row.Disabled {
		text = base.Render(label)
	} else {
		text = highlightMatch(label, query, o.styles.Match.Inherit(base), base)
	}
	line := base.Render(prefix) + text

	// Pad the highlighted line to full width
	if row.Highlighted && width > 0 {
		if lineLen := lipgloss.Width(line); lineLen < width {
			line += base.Render(strings.Repeat(" ", width-lineLen))
		}
	}
	return line
}

// highlightMatch highlights the first case-insensitive occurrence of query
func highlightMatch(text, query string, highlightStyle, normalStyle lipgloss.Style) string {
	query = strings.TrimSpace(query)
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	index := strings.Index(lowerText, lowerQuery)
	// Lowercasing can change byte lengths; skip highlighting then
	if query == "" || index == -1 || len(lowerText) != len(text) || len(lowerQuery) != len(query) {
		return normalStyle.Render(text)
	}

	// Split the text into parts
	before := text[:index]
	match := text[index : index+len(query)]
	after := text[index+len(query):]

	var result []string
	if before != "" {
		result = append(result, normalStyle.Render(before))
	}
	result = append(result, highlightStyle.Render(match))
	if after != "" {
		result = append(result, normalStyle.Render(after))
	}
	return strings.Join(result, "")
}
