// Package cli wires the combobox into the combogrip command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"combogrip/internal/config"
	"combogrip/internal/options"
	"combogrip/internal/ui"
	"combogrip/internal/ui/services/sorting"
)

// Version is set at build time
var Version = "dev"

// ErrCancelled is returned when the user quits without accepting a value
var ErrCancelled = errors.New("cancelled")

// E2EEnv makes the program announce when it is ready for input
const E2EEnv = "COMBOGRIP_E2E_TEST"

// RunFunc runs the model until the user is done with it
type RunFunc func(m *ui.Model) error

// IO bundles the streams the command uses
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

type rootFlags struct {
	configPath  string
	writeConfig string
	format      string
	sortMode    string
	value       []string
	group       bool
	readOnly    bool
	disabled    bool
}

// boolFlag is a command-line switch overriding one config field
type boolFlag struct {
	name  string
	usage string
	field func(*config.Config) *bool
}

var boolFlags = []boolFlag{
	{"multiple", "accept several values", func(c *config.Config) *bool { return &c.Behavior.Multiple }},
	{"free-solo", "accept text that matches no option", func(c *config.Config) *bool { return &c.Behavior.FreeSolo }},
	{"auto-highlight", "highlight the first option while filtering", func(c *config.Config) *bool { return &c.Behavior.AutoHighlight }},
	{"auto-select", "select the highlighted option when leaving the prompt", func(c *config.Config) *bool { return &c.Behavior.AutoSelect }},
	{"auto-complete", "complete the input with the highlighted label", func(c *config.Config) *bool { return &c.Behavior.AutoComplete }},
	{"clear-on-escape", "clear the input on escape once the list is closed", func(c *config.Config) *bool { return &c.Behavior.ClearOnEscape }},
	{"disable-close-on-select", "keep the list open after a selection", func(c *config.Config) *bool { return &c.Behavior.DisableCloseOnSelect }},
	{"disable-list-wrap", "stop at the ends of the list", func(c *config.Config) *bool { return &c.Behavior.DisableListWrap }},
	{"include-input-in-list", "let the highlight move back to the input", func(c *config.Config) *bool { return &c.Behavior.IncludeInputInList }},
	{"filter-selected", "hide options that are already selected", func(c *config.Config) *bool { return &c.Behavior.FilterSelectedOptions }},
	{"open-on-focus", "open the list on start", func(c *config.Config) *bool { return &c.Behavior.OpenOnFocus }},
	{"disabled-items-focusable", "let the highlight land on disabled options", func(c *config.Config) *bool { return &c.Behavior.DisabledItemsFocusable }},
	{"disable-clearable", "keep the value when the input is emptied", func(c *config.Config) *bool { return &c.Behavior.DisableClearable }},
	{"ignore-case", "match without regard to case", func(c *config.Config) *bool { return &c.Filter.IgnoreCase }},
	{"ignore-accents", "match without regard to accents", func(c *config.Config) *bool { return &c.Filter.IgnoreAccents }},
	{"trim", "trim spaces around the query", func(c *config.Config) *bool { return &c.Filter.Trim }},
	{"show-help", "show the key help line", func(c *config.Config) *bool { return &c.UISettings.ShowHelp }},
	{"suggest", "suggest a close label when nothing matches", func(c *config.Config) *bool { return &c.UISettings.Suggest }},
}

// triStateFlags default to the opposite of free-solo when not given
var triStateFlags = []string{"clear-on-blur", "handle-home-end", "select-on-focus"}

// NewRootCommand creates the combogrip command. run drives the UI; nil runs a
// Bubble Tea program on the terminal.
func NewRootCommand(streams IO, run RunFunc) *cobra.Command {
	f := &rootFlags{}
	if run == nil {
		run = runProgram(streams)
	}

	cmd := &cobra.Command{
		Use:   "combogrip [flags] [options-file|-]",
		Short: "Pick values from a list with an autocomplete prompt",
		Long: `combogrip reads candidate options from a text or YAML file (or stdin) and
lets you filter and pick them interactively. The accepted value is printed one
label per line. The exit status is 1 when the prompt is cancelled.`,
		Version:       Version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return execute(cmd, f, source, streams, run)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "config file (default: ./"+config.FileName+", then the user config)")
	flags.StringVar(&f.writeConfig, "write-config", "", "write the effective config to `path` and exit")
	flags.StringVar(&f.format, "format", "", "options format: text or yaml (default: from the file extension)")
	flags.StringVar(&f.sortMode, "sort", "none", "order options: none, group or label")
	flags.StringSliceVar(&f.value, "value", nil, "labels selected on start")
	flags.BoolVarP(&f.group, "group", "g", false, "show a header per option group")
	flags.BoolVar(&f.readOnly, "read-only", false, "show the value without allowing changes")
	flags.BoolVar(&f.disabled, "disabled", false, "disable the prompt")

	defaults := config.DefaultConfig()
	for _, b := range boolFlags {
		flags.Bool(b.name, *b.field(defaults), b.usage)
	}
	for _, name := range triStateFlags {
		flags.Bool(name, false, name+" (default: the opposite of --free-solo)")
	}
	flags.String("blur-on-select", "", "leave the prompt after a selection: always, touch or mouse")
	flags.Int("page-size", defaults.Behavior.PageSize, "options skipped by page up/down")
	flags.String("match-from", defaults.Filter.MatchFrom, "match anywhere (any) or at the start (start)")
	flags.Int("limit", 0, "show at most this many options (0: all)")
	flags.String("prompt", defaults.UISettings.Prompt, "prompt shown before the input")
	flags.String("placeholder", "", "text shown while the input is empty")
	flags.Int("height", defaults.UISettings.ListHeight, "option rows shown at once")

	cmd.SetIn(streams.In)
	cmd.SetOut(streams.Out)
	cmd.SetErr(streams.Err)
	return cmd
}

func execute(cmd *cobra.Command, f *rootFlags, source string, streams IO, run RunFunc) error {
	cfg, err := loadConfig(f.configPath)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if f.writeConfig != "" {
		if err := config.NewConfigServiceAt(f.writeConfig).Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(streams.Out, "Config written to %s\n", f.writeConfig)
		return nil
	}

	mode, err := sorting.ParseMode(f.sortMode)
	if err != nil {
		return err
	}

	switch format := options.Format(f.format); format {
	case options.FormatAuto, options.FormatText, options.FormatYAML:
	default:
		return fmt.Errorf("unknown options format %q (want text or yaml)", format)
	}
	if source == "-" && isTerminal(streams.In) {
		return fmt.Errorf("no options file given and stdin is a terminal")
	}
	items, err := options.Load(source, options.Format(f.format), streams.In)
	if err != nil {
		return err
	}
	items = sorting.NewService(mode).Sort(items)
	log.Printf("Loaded %d options from %s", len(items), source)

	settings := ui.Settings{
		Group:    f.group,
		ReadOnly: f.readOnly,
		Disabled: f.disabled,
		Value:    f.value,
	}
	if os.Getenv(E2EEnv) == "1" {
		settings.Ready = func() {
			fmt.Fprintln(streams.Err, "__READY__")
		}
	}

	m := ui.NewModel(items, cfg, settings)
	if err := run(m); err != nil {
		return fmt.Errorf("running prompt: %w", err)
	}
	if m.Cancelled() {
		return ErrCancelled
	}
	for _, item := range m.Result() {
		fmt.Fprintln(streams.Out, item.Label())
	}
	return nil
}

// loadConfig reads the explicit config, a config in the working directory,
// or the user config, in that order
func loadConfig(explicit string) (*config.Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		dir = "."
	}
	if path := config.Locate(explicit, dir); path != "" {
		cfg, err := config.NewConfigServiceAt(path).Load()
		if err != nil {
			return nil, err
		}
		log.Printf("Loaded config from %s", path)
		return cfg, nil
	}
	return config.NewConfigService().Load()
}

// applyFlags copies the flags given on the command line over cfg
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	for _, b := range boolFlags {
		if !flags.Changed(b.name) {
			continue
		}
		v, err := flags.GetBool(b.name)
		if err != nil {
			return err
		}
		*b.field(cfg) = v
	}

	triState := map[string]**bool{
		"clear-on-blur":   &cfg.Behavior.ClearOnBlur,
		"handle-home-end": &cfg.Behavior.HandleHomeEndKeys,
		"select-on-focus": &cfg.Behavior.SelectOnFocus,
	}
	for name, target := range triState {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return err
		}
		*target = &v
	}

	stringFlags := map[string]*string{
		"blur-on-select": &cfg.Behavior.BlurOnSelect,
		"match-from":     &cfg.Filter.MatchFrom,
		"prompt":         &cfg.UISettings.Prompt,
		"placeholder":    &cfg.UISettings.Placeholder,
	}
	for name, target := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*target = v
	}

	intFlags := map[string]*int{
		"page-size": &cfg.Behavior.PageSize,
		"limit":     &cfg.Filter.Limit,
		"height":    &cfg.UISettings.ListHeight,
	}
	for name, target := range intFlags {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetInt(name)
		if err != nil {
			return err
		}
		*target = v
	}
	return nil
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// runProgram runs the model as a full-screen Bubble Tea program. The prompt
// draws on stderr so stdout carries only the result.
func runProgram(streams IO) RunFunc {
	return func(m *ui.Model) error {
		opts := []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithMouseAllMotion(),
			tea.WithReportFocus(),
			tea.WithOutput(streams.Err),
		}
		if isTerminal(streams.In) {
			opts = append(opts, tea.WithInput(streams.In))
		} else {
			// options came on stdin; keys come from the terminal
			opts = append(opts, tea.WithInputTTY())
		}

		p := tea.NewProgram(m, opts...)
		_, err := p.Run()
		return err
	}
}
