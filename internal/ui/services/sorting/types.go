package sorting

import "fmt"

// Mode is how options are ordered before they reach the engine
type Mode int

const (
	// SortNone keeps source order
	SortNone Mode = iota
	// SortByGroup gathers options of one group together, keeping source order
	// inside each group and groups in first-seen order
	SortByGroup
	// SortByLabel orders by group name, then label
	SortByLabel
)

// State holds sorting state
type State struct {
	CurrentMode Mode
}

// String returns the flag spelling of m
func (m Mode) String() string {
	switch m {
	case SortNone:
		return "none"
	case SortByGroup:
		return "group"
	case SortByLabel:
		return "label"
	default:
		return "unknown"
	}
}

// ParseMode reads a mode from its flag spelling
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "none":
		return SortNone, nil
	case "group":
		return SortByGroup, nil
	case "label":
		return SortByLabel, nil
	default:
		return SortNone, fmt.Errorf("unknown sort mode %q (want none, group or label)", s)
	}
}
