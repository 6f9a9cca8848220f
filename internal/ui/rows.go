package ui

import (
	"combogrip/internal/engine"
	"combogrip/internal/options"
	"combogrip/internal/ui/views"
)

// ungroupedHeader labels the bucket of options without a group
const ungroupedHeader = "Other"

// buildRows flattens the filtered options into list rows, with a header row
// in front of every group bucket
func buildRows(e *engine.Engine[options.Item], state engine.State[options.Item]) []views.Row {
	row := func(index int, item options.Item, indent bool) views.Row {
		return views.Row{
			Label:       e.OptionLabel(item),
			Option:      index,
			Indent:      indent,
			Highlighted: index == state.HighlightedIndex,
			Selected:    e.OptionSelected(item),
			Disabled:    e.OptionDisabled(item),
		}
	}

	if state.GroupedOptions == nil {
		rows := make([]views.Row, 0, len(state.FilteredOptions))
		for i, item := range state.FilteredOptions {
			rows = append(rows, row(i, item, false))
		}
		return rows
	}

	rows := make([]views.Row, 0, len(state.FilteredOptions)+len(state.GroupedOptions))
	for _, bucket := range state.GroupedOptions {
		header := bucket.Key
		if header == "" {
			header = ungroupedHeader
		}
		rows = append(rows, views.Row{Header: true, Label: header, Option: -1})
		for j, item := range bucket.Options {
			rows = append(rows, row(bucket.Index+j, item, true))
		}
	}
	return rows
}

// rowPosition returns the row showing option index, or -1
func rowPosition(rows []views.Row, index int) int {
	if index < 0 {
		return -1
	}
	for i, row := range rows {
		if !row.Header && row.Option == index {
			return i
		}
	}
	return -1
}

// buildChips lists the selected values in multiple mode
func buildChips(e *engine.Engine[options.Item], state engine.State[options.Item]) []views.Chip {
	if !state.Multiple {
		return nil
	}
	chips := make([]views.Chip, len(state.Value))
	for i, item := range state.Value {
		chips[i] = views.Chip{Label: e.OptionLabel(item), Focused: i == state.FocusedTag}
	}
	return chips
}
