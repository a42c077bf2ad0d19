package portfolio

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"", ""},
		{"2020-01", "Jan 2020"},
		{"2021-07", "Jul 2021"},
		{"1999-12", "Dec 1999"},
		{"Present", "Present"},
		{"2020-13", "2020-13"},
		{"2020-00", "2020-00"},
		{"2020-1", "2020-1"},
		{"2020/01", "2020/01"},
		{"20x0-01", "20x0-01"},
		{"2020-01-15", "2020-01-15"},
		{"soon", "soon"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.input), "FormatDate(%q)", tt.input)
	}
}
