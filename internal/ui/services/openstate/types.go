package openstate

// State holds the open flag, the input text and focus bookkeeping
type State struct {
	Open       bool
	InputValue string
	// Pristine is set on open and cleared by the first edit
	Pristine bool
	Focused  bool
	// FirstFocus is true until the first click after gaining focus
	FirstFocus bool
	// IgnoreFocus suppresses open-on-focus for the refocus after a clear
	IgnoreFocus bool
}
