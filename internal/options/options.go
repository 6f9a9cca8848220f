// Package options loads the candidate list shown by the combobox from YAML
// or plain-text sources.
package options

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Item is one selectable entry
type Item struct {
	Text     string `yaml:"label"`
	Group    string `yaml:"group,omitempty"`
	ID       string `yaml:"key,omitempty"`
	Disabled bool   `yaml:"disabled,omitempty"`
}

// Label is the text shown and matched for the item
func (i Item) Label() string {
	return i.Text
}

// Key identifies the item; it defaults to the label
func (i Item) Key() string {
	if i.ID != "" {
		return i.ID
	}
	return i.Text
}

// Format selects how a source is parsed
type Format string

const (
	FormatAuto Format = ""
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// FormatFor picks a format from a file extension
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

// Load reads items from path; "-" reads stdin
func Load(path string, format Format, stdin io.Reader) ([]Item, error) {
	if path == "-" {
		if format == FormatAuto {
			format = FormatText
		}
		return Parse(stdin, format)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open options: %w", err)
	}
	defer f.Close()

	if format == FormatAuto {
		format = FormatFor(path)
	}
	items, err := Parse(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// Parse reads items in the given format
func Parse(r io.Reader, format Format) ([]Item, error) {
	if format == FormatYAML {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("failed to read options: %w", err)
		}
		return ParseYAML(data)
	}
	return ParseText(r)
}

// ParseText reads one item per line. Blank lines and lines starting with #
// are skipped.
func ParseText(r io.Reader) ([]Item, error) {
	var items []Item
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		items = append(items, Item{Text: trimmed})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read options: %w", err)
	}
	return items, nil
}

// ParseYAML accepts a list of labels, a list of item mappings, or a mapping
// from group name to either kind of list
func ParseYAML(data []byte) ([]Item, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing options: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.SequenceNode:
		return parseSequence(root, "")
	case yaml.MappingNode:
		var items []Item
		for i := 0; i < len(root.Content)-1; i += 2 {
			group := root.Content[i].Value
			grouped, err := parseSequence(root.Content[i+1], group)
			if err != nil {
				return nil, fmt.Errorf("parsing group %q: %w", group, err)
			}
			items = append(items, grouped...)
		}
		return items, nil
	default:
		return nil, fmt.Errorf("parsing options: expected a list or a mapping of groups at line %d", root.Line)
	}
}

func parseSequence(node *yaml.Node, group string) ([]Item, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected a list at line %d", node.Line)
	}

	items := make([]Item, 0, len(node.Content))
	for _, entry := range node.Content {
		var item Item
		switch entry.Kind {
		case yaml.ScalarNode:
			item.Text = entry.Value
		case yaml.MappingNode:
			if err := entry.Decode(&item); err != nil {
				return nil, fmt.Errorf("line %d: %w", entry.Line, err)
			}
		default:
			return nil, fmt.Errorf("line %d: expected a label or a mapping", entry.Line)
		}
		if item.Text == "" {
			return nil, fmt.Errorf("line %d: item has no label", entry.Line)
		}
		if item.Group == "" {
			item.Group = group
		}
		items = append(items, item)
	}
	return items, nil
}

// Labels returns the labels of items in order
func Labels(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Text
	}
	return out
}

// Find returns the first item whose label is label
func Find(items []Item, label string) (Item, bool) {
	for _, item := range items {
		if item.Text == label {
			return item, true
		}
	}
	return Item{}, false
}
