package engine

// defaultProbe treats every filtered option and chip as rendered and derives
// disabled options from GetOptionDisabled
type defaultProbe[V comparable] struct {
	e *Engine[V]
}

func (p defaultProbe[V]) IsOptionFocusable(index int) bool {
	return index >= 0 && index < len(p.e.filtered)
}

func (p defaultProbe[V]) IsOptionDisabled(index int) bool {
	if index < 0 || index >= len(p.e.filtered) {
		return true
	}
	return p.e.optionDisabled(p.e.filtered[index])
}

func (p defaultProbe[V]) IsTagFocusable(index int) bool {
	return index >= 0 && index < p.e.Selection.Len()
}

func (p defaultProbe[V]) IsFocusInsideOptionList() bool {
	return false
}
