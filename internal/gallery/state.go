package gallery

import (
	"strconv"
	"strings"

	"face-gallery/internal/catalog"
)

const (
	// BatchSize is the number of cards added by every "load more"
	BatchSize = 35

	PreviewFilename = catalog.PreviewFilename
)

// State is the user-driven part of a render: the name filter and how many cards to show
type State struct {
	Filter    string
	Threshold int
}

// NewState returns the initial state: no filter, one batch
func NewState() State {
	return State{Threshold: BatchSize}
}

// SetFilter replaces the filter and resets the threshold to one batch
func (s *State) SetFilter(filter string) {
	s.Filter = filter
	s.Threshold = BatchSize
}

// LoadMore grows the threshold by one batch
func (s *State) LoadMore() {
	s.Threshold += BatchSize
}

// ParseState rebuilds a state from request parameters. shown must be a positive
// multiple of BatchSize; anything else falls back to one batch.
func ParseState(filter, shown string) State {
	s := NewState()
	s.SetFilter(filter)

	n, err := strconv.Atoi(strings.TrimSpace(shown))
	if err != nil || n <= 0 || n%BatchSize != 0 {
		return s
	}
	s.Threshold = n
	return s
}

// Next returns the state after one "load more"
func (s State) Next() State {
	s.LoadMore()
	return s
}

func (s State) matches(name string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(s.Filter))
}
