package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
		ok       bool
	}{
		{
			name:     "rupee symbol with thousands separator",
			text:     "₹1,999",
			expected: 1999,
			ok:       true,
		},
		{
			name:     "plain digits",
			text:     "549",
			expected: 549,
			ok:       true,
		},
		{
			name:     "surrounding whitespace",
			text:     "  2,000 ",
			expected: 2000,
			ok:       true,
		},
		{
			name:     "other currency glyphs",
			text:     "$1,299",
			expected: 1299,
			ok:       true,
		},
		{
			name: "empty string",
			text: "",
			ok:   false,
		},
		{
			name: "whitespace only",
			text: "   ",
			ok:   false,
		},
		{
			name: "non-numeric label",
			text: "Free",
			ok:   false,
		},
		{
			name: "unavailable label",
			text: "Price unavailable",
			ok:   false,
		},
		{
			name: "bare currency glyph",
			text: "₹",
			ok:   false,
		},
		{
			name: "decimal prices are not whole units",
			text: "₹1,999.50",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := ParsePrice(tt.text)

			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, price)
			} else {
				assert.Zero(t, price)
			}
		})
	}
}
