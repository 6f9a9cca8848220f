package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"combogrip/internal/domain"
	"combogrip/internal/engine"
	"combogrip/internal/ui/services/filter"
)

// FileName is the per-directory config file looked up before the user config
const FileName = ".combogrip.toml"

// Config represents the application configuration
type Config struct {
	Version    int            `toml:"version"`
	Behavior   Behavior       `toml:"behavior"`
	Filter     FilterSettings `toml:"filter"`
	UISettings UISettings     `toml:"ui"`
}

// Behavior mirrors the engine options that make sense in a config file
type Behavior struct {
	Multiple               bool   `toml:"multiple"`
	FreeSolo               bool   `toml:"free_solo"`
	AutoHighlight          bool   `toml:"auto_highlight"`
	AutoSelect             bool   `toml:"auto_select"`
	AutoComplete           bool   `toml:"auto_complete"`
	ClearOnEscape          bool   `toml:"clear_on_escape"`
	DisableCloseOnSelect   bool   `toml:"disable_close_on_select"`
	DisableListWrap        bool   `toml:"disable_list_wrap"`
	IncludeInputInList     bool   `toml:"include_input_in_list"`
	FilterSelectedOptions  bool   `toml:"filter_selected_options"`
	OpenOnFocus            bool   `toml:"open_on_focus"`
	DisabledItemsFocusable bool   `toml:"disabled_items_focusable"`
	DisableClearable       bool   `toml:"disable_clearable"`
	BlurOnSelect           string `toml:"blur_on_select,omitempty"`
	PageSize               int    `toml:"page_size"`

	// unset means "the opposite of free_solo"
	ClearOnBlur       *bool `toml:"clear_on_blur,omitempty"`
	HandleHomeEndKeys *bool `toml:"handle_home_end_keys,omitempty"`
	SelectOnFocus     *bool `toml:"select_on_focus,omitempty"`
}

// FilterSettings configures the default filter
type FilterSettings struct {
	IgnoreCase    bool   `toml:"ignore_case"`
	IgnoreAccents bool   `toml:"ignore_accents"`
	MatchFrom     string `toml:"match_from"`
	Limit         int    `toml:"limit"`
	Trim          bool   `toml:"trim"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Prompt      string `toml:"prompt"`
	Placeholder string `toml:"placeholder"`
	ListHeight  int    `toml:"list_height"`
	ShowHelp    bool   `toml:"show_help"`
	Suggest     bool   `toml:"suggest"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "combogrip", "config.toml"),
	}
}

// NewConfigServiceAt creates a config service backed by path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Load loads the configuration, falling back to defaults when the file is
// missing
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys missing from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Locate returns the config file to use for dir: an explicit path wins, then
// FileName inside dir. It returns "" when neither exists.
func Locate(explicit, dir string) string {
	if explicit != "" {
		return explicit
	}
	local := filepath.Join(dir, FileName)
	if _, err := os.Stat(local); err == nil {
		return local
	}
	return ""
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Behavior: Behavior{
			PageSize: engine.DefaultPageSize,
		},
		Filter: FilterSettings{
			IgnoreCase:    true,
			IgnoreAccents: true,
			MatchFrom:     string(domain.MatchAny),
		},
		UISettings: UISettings{
			Prompt:     "> ",
			ListHeight: 10,
			ShowHelp:   true,
			Suggest:    true,
		},
	}
}

// Validate rejects enum values the engine does not know
func (c *Config) Validate() error {
	switch domain.MatchFrom(c.Filter.MatchFrom) {
	case domain.MatchAny, domain.MatchStart:
	default:
		return fmt.Errorf("filter.match_from must be %q or %q, got %q", domain.MatchAny, domain.MatchStart, c.Filter.MatchFrom)
	}
	switch domain.BlurOnSelect(c.Behavior.BlurOnSelect) {
	case domain.BlurNever, domain.BlurAlways, domain.BlurTouch, domain.BlurMouse:
	default:
		return fmt.Errorf("behavior.blur_on_select must be one of always, touch, mouse; got %q", c.Behavior.BlurOnSelect)
	}
	if c.Behavior.PageSize < 0 {
		return fmt.Errorf("behavior.page_size must not be negative")
	}
	if c.UISettings.ListHeight < 1 {
		return fmt.Errorf("ui.list_height must be at least 1")
	}
	return nil
}

// FilterConfig converts the filter settings for an option type
func FilterConfig[V any](s FilterSettings) filter.Config[V] {
	return filter.Config[V]{
		IgnoreCase:    s.IgnoreCase,
		IgnoreAccents: s.IgnoreAccents,
		MatchFrom:     domain.MatchFrom(s.MatchFrom),
		Limit:         s.Limit,
		Trim:          s.Trim,
	}
}

// EngineOptions builds engine options from the behavior and filter sections.
// Label and key callbacks are left to the caller.
func EngineOptions[V comparable](c *Config) engine.Options[V] {
	b := c.Behavior
	return engine.Options[V]{
		Multiple:               b.Multiple,
		FreeSolo:               b.FreeSolo,
		AutoHighlight:          b.AutoHighlight,
		AutoSelect:             b.AutoSelect,
		AutoComplete:           b.AutoComplete,
		ClearOnEscape:          b.ClearOnEscape,
		DisableCloseOnSelect:   b.DisableCloseOnSelect,
		DisableListWrap:        b.DisableListWrap,
		IncludeInputInList:     b.IncludeInputInList,
		FilterSelectedOptions:  b.FilterSelectedOptions,
		OpenOnFocus:            b.OpenOnFocus,
		DisabledItemsFocusable: b.DisabledItemsFocusable,
		DisableClearable:       b.DisableClearable,
		BlurOnSelect:           domain.BlurOnSelect(b.BlurOnSelect),
		PageSize:               b.PageSize,
		ClearOnBlur:            b.ClearOnBlur,
		HandleHomeEndKeys:      b.HandleHomeEndKeys,
		SelectOnFocus:          b.SelectOnFocus,
		FilterOptions:          filter.CreateFilterOptions(FilterConfig[V](c.Filter)),
	}
}
