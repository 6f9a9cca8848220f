package selection

// State holds the committed value. Single mode keeps at most one entry.
type State[V any] struct {
	Value []V
	// Version increases on every committed change
	Version int
}
