package search

// State holds the last query looked up and its nearest label
type State struct {
	Query      string
	Suggestion string
	Distance   int
}
