package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"combogrip/internal/ui/input"
)

// helpSections titles the columns of KeyMap.FullHelp
var helpSections = []string{"Navigation", "Selection", "Chips", "Other"}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note:    lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

// Render generates the help page for keys
func (r *HelpRenderer) Render(keys input.KeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("combogrip Help"))
	help.WriteString("\n")

	for i, column := range keys.FullHelp() {
		title := "Keys"
		if i < len(helpSections) {
			title = helpSections[i]
		}
		help.WriteString(r.section.Render(title))
		help.WriteString("\n")
		for _, b := range column {
			help.WriteString(r.binding(b))
		}
		help.WriteString("\n")
	}

	help.WriteString(r.note.Render("  Type to filter. Alt+Enter selects without closing the list."))
	help.WriteString("\n")
	help.WriteString(r.note.Render("  Enter with the list closed accepts the value; Ctrl+C quits without one."))
	return help.String()
}

func (r *HelpRenderer) binding(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("  %s  %s\n", r.key.Render(fmt.Sprintf("%-12s", strings.Join(b.Keys(), ", "))), r.desc.Render(h.Desc))
}

// pagerCommand runs ov over the help text. It satisfies tea.ExecCommand so
// Bubble Tea releases the terminal while the pager runs.
type pagerCommand struct {
	content string
}

// Run shows the content until the user quits the pager
func (c *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(c.content))
	if err != nil {
		return err
	}

	// Keep the help off the screen once the pager exits
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (c *pagerCommand) SetStdin(io.Reader)  {}
func (c *pagerCommand) SetStdout(io.Writer) {}
func (c *pagerCommand) SetStderr(io.Writer) {}

// showHelp returns a command that shows help using the ov pager
func (m *Model) showHelp() tea.Cmd {
	content := NewHelpRenderer().Render(m.inputHandler.KeyMap())
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
