package parser

import (
	"strconv"
	"strings"
)

// priceCleaner drops currency glyphs and grouping separators. Extend the
// pairs when a new locale's separator shows up in card markup.
var priceCleaner = strings.NewReplacer(
	"₹", "",
	"$", "",
	"£", "",
	"€", "",
	",", "",
	" ", "",
)

// ParsePrice normalizes a card's price text into whole currency units.
// Absent or non-numeric text ("", "Price unavailable", "Free") is an
// expected case and yields ok=false, not an error.
func ParsePrice(text string) (int, bool) {
	cleaned := strings.TrimSpace(priceCleaner.Replace(strings.TrimSpace(text)))
	if cleaned == "" {
		return 0, false
	}

	price, err := strconv.Atoi(cleaned)
	if err != nil || price < 0 {
		return 0, false
	}

	return price, true
}
