package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, "", s.Filter)
	assert.Equal(t, 35, s.Threshold)
}

func TestState_SetFilterResetsThreshold(t *testing.T) {
	s := NewState()
	s.LoadMore()
	s.LoadMore()
	assert.Equal(t, 105, s.Threshold)

	s.SetFilter("ali")

	assert.Equal(t, "ali", s.Filter)
	assert.Equal(t, BatchSize, s.Threshold)

	// unchanged text still resets
	s.LoadMore()
	s.SetFilter("ali")
	assert.Equal(t, BatchSize, s.Threshold)
}

func TestState_LoadMoreKeepsFilter(t *testing.T) {
	s := NewState()
	s.SetFilter("zo")
	s.LoadMore()

	assert.Equal(t, "zo", s.Filter)
	assert.Equal(t, 70, s.Threshold)
	assert.Equal(t, 105, s.Next().Threshold)
	assert.Equal(t, 70, s.Threshold)
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name   string
		filter string
		shown  string
		want   State
	}{
		{"defaults", "", "", State{Threshold: 35}},
		{"filter kept verbatim", " Zo ", "", State{Filter: " Zo ", Threshold: 35}},
		{"multiple of batch", "al", "105", State{Filter: "al", Threshold: 105}},
		{"not a multiple", "", "40", State{Threshold: 35}},
		{"zero", "", "0", State{Threshold: 35}},
		{"negative", "", "-35", State{Threshold: 35}},
		{"garbage", "", "lots", State{Threshold: 35}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseState(tt.filter, tt.shown))
		})
	}
}
