package engine

import (
	"unicode/utf8"

	"combogrip/internal/domain"
	"combogrip/internal/textnorm"
	"combogrip/internal/ui/services/navigation"
)

// OnTextInput handles an edit of the input text
func (e *Engine[V]) OnTextInput(text string) {
	if e.opts.Disabled || e.opts.ReadOnly {
		return
	}
	e.OpenState.Focus()
	e.Tags.Clear()

	e.OpenState.Input(text)
	if text == "" {
		if !e.opts.DisableClearable && !e.opts.Multiple {
			e.Selection.Commit(nil, domain.ReasonClear, domain.ChangeDetails[V]{})
		}
	} else {
		e.handleOpen()
	}
	e.settle()
}

// OnKeyDown handles a key press in the input. It returns true when the
// engine consumed the key and the view should not act on it.
func (e *Engine[V]) OnKeyDown(key Key, mods Modifiers) bool {
	if e.opts.Disabled {
		return false
	}
	// chip removal acts on the chip focused when the key went down
	focusedTag := e.Tags.Focused()
	if focusedTag == -1 {
		e.OpenState.Focus()
	}
	if key != KeyArrowLeft && key != KeyArrowRight {
		e.Tags.Clear()
	}

	handled := false
	if !mods.Composing {
		handled = e.handleKey(key, mods, focusedTag)
	}
	e.settle()
	return handled
}

func (e *Engine[V]) handleKey(key Key, mods Modifiers, focusedTag int) bool {
	switch key {
	case KeyHome:
		if e.popupOpen() && e.res.handleHomeEndKeys {
			e.changeHighlightedIndex(navigation.Start, domain.DirectionNext, domain.HighlightKeyboard)
			return true
		}
	case KeyEnd:
		if e.popupOpen() && e.res.handleHomeEndKeys {
			e.changeHighlightedIndex(navigation.End, domain.DirectionPrevious, domain.HighlightKeyboard)
			return true
		}
	case KeyPageUp:
		e.changeHighlightedIndex(navigation.Step(-e.res.pageSize), domain.DirectionPrevious, domain.HighlightKeyboard)
		e.handleOpen()
		return true
	case KeyPageDown:
		e.changeHighlightedIndex(navigation.Step(e.res.pageSize), domain.DirectionNext, domain.HighlightKeyboard)
		e.handleOpen()
		return true
	case KeyArrowDown:
		e.changeHighlightedIndex(navigation.Step(1), domain.DirectionNext, domain.HighlightKeyboard)
		e.handleOpen()
		return true
	case KeyArrowUp:
		e.changeHighlightedIndex(navigation.Step(-1), domain.DirectionPrevious, domain.HighlightKeyboard)
		e.handleOpen()
		return true
	case KeyArrowLeft:
		e.handleFocusTag(domain.DirectionPrevious)
	case KeyArrowRight:
		e.handleFocusTag(domain.DirectionNext)
	case KeyEnter:
		return e.handleEnter(mods)
	case KeyEscape:
		if e.popupOpen() {
			e.handleClose(domain.CloseEscape)
			return true
		}
		if e.opts.ClearOnEscape && (e.OpenState.InputValue() != "" || (e.opts.Multiple && e.Selection.Len() > 0)) {
			e.handleClear()
			return true
		}
	case KeyBackspace:
		if e.opts.Multiple && !e.opts.ReadOnly && e.OpenState.InputValue() == "" && e.Selection.Len() > 0 {
			index := focusedTag
			if index == -1 {
				index = e.Selection.Len() - 1
			}
			e.Selection.RemoveAt(index)
			return true
		}
	case KeyDelete:
		if e.opts.Multiple && !e.opts.ReadOnly && e.OpenState.InputValue() == "" && e.Selection.Len() > 0 && focusedTag != -1 {
			e.Selection.RemoveAt(focusedTag)
			return true
		}
	}
	return false
}

func (e *Engine[V]) handleEnter(mods Modifiers) bool {
	index := e.Navigation.Index()
	if index != -1 && e.popupOpen() && index < len(e.filtered) {
		option := e.filtered[index]
		if e.optionDisabled(option) {
			return true
		}
		e.selectNewValue(option, domain.ReasonSelectOption, domain.OriginOptions, mods)

		if e.opts.AutoComplete {
			// caret to the end of the committed text
			text := e.OpenState.InputValue()
			n := utf8.RuneCountInString(text)
			e.bus.Publish(domain.InputDisplayRequestedEvent{Text: text, SelectionStart: n, SelectionEnd: n})
		}
		return true
	}

	text := e.OpenState.InputValue()
	if e.opts.FreeSolo && text != "" && !e.inputIsSelectedValue() {
		value, ok := e.freeSoloValue(text)
		if !ok {
			return false
		}
		e.selectNewValue(value, domain.ReasonCreateOption, domain.OriginFreeSolo, mods)
		return e.opts.Multiple
	}
	return false
}

// OnOptionPointerMove highlights the option under the pointer
func (e *Engine[V]) OnOptionPointerMove(index int) {
	if e.opts.Disabled {
		return
	}
	if e.Navigation.Index() != index {
		e.Navigation.Set(index, domain.HighlightMouse)
	}
	e.settle()
}

// OnOptionTouchStart highlights the touched option
func (e *Engine[V]) OnOptionTouchStart(index int) {
	if e.opts.Disabled {
		return
	}
	e.Navigation.Set(index, domain.HighlightTouch)
	e.isTouch = true
	e.settle()
}

// OnOptionClick selects the option at index
func (e *Engine[V]) OnOptionClick(index int, mods Modifiers) {
	if e.opts.Disabled {
		return
	}
	if index >= 0 && index < len(e.filtered) && !e.optionDisabled(e.filtered[index]) {
		e.selectNewValue(e.filtered[index], domain.ReasonSelectOption, domain.OriginOptions, mods)
	}
	e.isTouch = false
	e.settle()
}

// OnTagDelete removes the chip at index
func (e *Engine[V]) OnTagDelete(index int) {
	if e.opts.Disabled || e.opts.ReadOnly {
		return
	}
	e.Selection.RemoveAt(index)
	e.settle()
}

// OnClear empties the input and the value
func (e *Engine[V]) OnClear() {
	if e.opts.Disabled {
		return
	}
	e.handleClear()
	if !e.OpenState.Focused() {
		// the refocus must not reopen the list
		e.handleFocus()
		e.bus.Publish(domain.FocusRequestedEvent{})
	}
	e.settle()
}

// OnOpenRequest opens the list
func (e *Engine[V]) OnOpenRequest() {
	if e.opts.Disabled {
		return
	}
	e.handleOpen()
	e.settle()
}

// OnTogglePopup opens a closed list and closes an open one
func (e *Engine[V]) OnTogglePopup() {
	if e.opts.Disabled {
		return
	}
	e.togglePopup()
	e.settle()
}

// OnInputMouseDown toggles the list when the input is empty or closed
func (e *Engine[V]) OnInputMouseDown() {
	if e.opts.Disabled {
		return
	}
	if e.OpenState.InputValue() == "" || !e.OpenState.IsOpen() {
		e.togglePopup()
	}
	e.settle()
}

// OnClick focuses the input. The first click after gaining focus selects the
// whole text when SelectOnFocus is on.
func (e *Engine[V]) OnClick() {
	if e.opts.Disabled {
		return
	}
	if !e.OpenState.Focused() {
		e.handleFocus()
	}
	first := e.OpenState.ConsumeFirstFocus()
	if e.res.selectOnFocus && first {
		if text := e.OpenState.InputValue(); text != "" {
			e.bus.Publish(domain.InputDisplayRequestedEvent{
				Text:         text,
				SelectionEnd: utf8.RuneCountInString(text),
			})
		}
	}
	e.settle()
}

// OnFocus handles the input gaining focus
func (e *Engine[V]) OnFocus() {
	if e.opts.Disabled {
		return
	}
	e.handleFocus()
	e.settle()
}

// OnBlur handles the input losing focus
func (e *Engine[V]) OnBlur() {
	e.handleBlur()
	e.settle()
}

func (e *Engine[V]) handleFocus() {
	if e.OpenState.Focus() && e.opts.OpenOnFocus {
		e.handleOpen()
	}
}

func (e *Engine[V]) handleBlur() {
	if e.probe.IsFocusInsideOptionList() {
		e.bus.Publish(domain.FocusRequestedEvent{})
		return
	}

	e.OpenState.Blur()

	index := e.Navigation.Index()
	text := e.OpenState.InputValue()
	switch {
	case e.opts.AutoSelect && index != -1 && e.popupOpen() && index < len(e.filtered):
		e.selectNewValue(e.filtered[index], domain.ReasonBlur, domain.OriginOptions, Modifiers{})
	case e.opts.AutoSelect && e.opts.FreeSolo && text != "":
		if value, ok := e.freeSoloValue(text); ok {
			e.selectNewValue(value, domain.ReasonBlur, domain.OriginFreeSolo, Modifiers{})
		}
	case e.res.clearOnBlur:
		e.resetInputValue(e.Selection.Value())
	}

	e.handleClose(domain.CloseBlur)
}

func (e *Engine[V]) handleOpen() {
	e.OpenState.Open()
}

func (e *Engine[V]) handleClose(reason domain.CloseReason) {
	e.OpenState.Close(reason)
}

func (e *Engine[V]) togglePopup() {
	if e.OpenState.IsOpen() {
		e.handleClose(domain.CloseToggleInput)
	} else {
		e.handleOpen()
	}
}

func (e *Engine[V]) handleClear() {
	e.OpenState.ClearInput()
	e.Selection.Commit(nil, domain.ReasonClear, domain.ChangeDetails[V]{})
}

func (e *Engine[V]) handleFocusTag(dir domain.Direction) {
	if !e.opts.Multiple {
		return
	}
	inputEmpty := e.OpenState.InputValue() == ""
	if inputEmpty {
		e.handleClose(domain.CloseToggleInput)
	}
	e.Tags.Move(dir, inputEmpty, e.Selection.Len(), e.probe.IsTagFocusable)
}

// changeHighlightedIndex moves the highlight and, with AutoComplete, shows
// the highlighted label in the input with the untyped tail selected
func (e *Engine[V]) changeHighlightedIndex(diff navigation.Diff, dir domain.Direction, reason domain.HighlightReason) {
	if !e.popupOpen() {
		return
	}
	next := e.Navigation.Move(diff, dir, reason)

	if !e.opts.AutoComplete || diff.IsReset() {
		return
	}
	typed := e.OpenState.InputValue()
	if next == -1 {
		n := utf8.RuneCountInString(typed)
		e.bus.Publish(domain.InputDisplayRequestedEvent{Text: typed, SelectionStart: n, SelectionEnd: n})
		return
	}

	label := e.labelFn(e.filtered[next])
	end := utf8.RuneCountInString(label)
	display := domain.InputDisplayRequestedEvent{Text: label, SelectionStart: end, SelectionEnd: end}
	if _, ok := textnorm.HasPrefixFold(label, typed); ok && typed != "" {
		display.SelectionStart = utf8.RuneCountInString(typed)
	}
	e.bus.Publish(display)
}

// selectNewValue commits option, resets the input and applies the close and
// blur policies
func (e *Engine[V]) selectNewValue(option V, reason domain.ChangeReason, origin domain.Origin, mods Modifiers) {
	newValue, toggled := e.Selection.Toggle(option, origin)
	if toggled == domain.ReasonRemoveOption {
		reason = toggled
	}

	e.resetInputValue(newValue)
	e.Selection.Commit(newValue, reason, domain.ChangeDetails[V]{Option: option, HasOption: true})

	if !e.opts.DisableCloseOnSelect && !mods.keepsOpen() {
		e.handleClose(domain.CloseReasonFor(reason))
	}

	if e.opts.BlurOnSelect.ShouldBlur(e.isTouch) && e.OpenState.Focused() {
		e.bus.Publish(domain.BlurRequestedEvent{})
		e.handleBlur()
	}
}
