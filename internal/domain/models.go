package domain

// ChangeReason tags every committed value transition
type ChangeReason string

const (
	ReasonSelectOption ChangeReason = "selectOption"
	ReasonRemoveOption ChangeReason = "removeOption"
	ReasonCreateOption ChangeReason = "createOption"
	ReasonClear        ChangeReason = "clear"
	ReasonBlur         ChangeReason = "blur"
)

// InputChangeReason tags changes of the input text
type InputChangeReason string

const (
	InputReasonInput InputChangeReason = "input"
	InputReasonReset InputChangeReason = "reset"
	InputReasonClear InputChangeReason = "clear"
)

// CloseReason explains why the option list closed
type CloseReason string

const (
	CloseToggleInput  CloseReason = "toggleInput"
	CloseEscape       CloseReason = "escape"
	CloseSelectOption CloseReason = "selectOption"
	CloseRemoveOption CloseReason = "removeOption"
	CloseCreateOption CloseReason = "createOption"
	CloseBlur         CloseReason = "blur"
)

// CloseReasonFor maps a change reason onto the close reason reported when a
// selection closes the list.
func CloseReasonFor(reason ChangeReason) CloseReason {
	switch reason {
	case ReasonRemoveOption:
		return CloseRemoveOption
	case ReasonCreateOption:
		return CloseCreateOption
	case ReasonBlur:
		return CloseBlur
	default:
		return CloseSelectOption
	}
}

// HighlightReason explains why the highlighted option changed
type HighlightReason string

const (
	HighlightAuto     HighlightReason = "auto"
	HighlightMouse    HighlightReason = "mouse"
	HighlightTouch    HighlightReason = "touch"
	HighlightKeyboard HighlightReason = "keyboard"
)

// Direction is the walk direction used when probing for focusable items
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// Step returns +1 for next and -1 for previous
func (d Direction) Step() int {
	if d == DirectionPrevious {
		return -1
	}
	return 1
}

// Origin says where a selected value came from
type Origin string

const (
	OriginOptions  Origin = "options"
	OriginFreeSolo Origin = "freeSolo"
)

// BlurOnSelect controls whether the input loses focus after a selection
type BlurOnSelect string

const (
	BlurNever  BlurOnSelect = ""
	BlurAlways BlurOnSelect = "always"
	BlurTouch  BlurOnSelect = "touch"
	BlurMouse  BlurOnSelect = "mouse"
)

// ShouldBlur reports whether the policy asks for a blur after an interaction
// that was (or was not) a touch.
func (b BlurOnSelect) ShouldBlur(touch bool) bool {
	switch b {
	case BlurAlways:
		return true
	case BlurTouch:
		return touch
	case BlurMouse:
		return !touch
	default:
		return false
	}
}

// MatchFrom selects substring or prefix matching in the filter engine
type MatchFrom string

const (
	MatchAny   MatchFrom = "any"
	MatchStart MatchFrom = "start"
)
