package fixedwidth

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// asciiOnly replaces anything outside printable ASCII with a placeholder so
// an exotic character in registry data degrades to '?' instead of aborting
// the run or corrupting the byte offsets downstream.
var asciiOnly = runes.Map(func(r rune) rune {
	if r < ' ' || r > '~' {
		return '?'
	}
	return r
})

// Format renders a value into a fixed-width slot: the first width characters
// of the value (or of fallback when the value is empty), right-padded with
// spaces to exactly width. Truncation is silent.
func Format(value, fallback string, width int) string {
	if width <= 0 {
		return ""
	}
	if value == "" {
		value = fallback
	}
	value = sanitize(value)
	if len(value) > width {
		value = value[:width]
	}
	if len(value) < width {
		value += strings.Repeat(" ", width-len(value))
	}
	return value
}

func sanitize(value string) string {
	out, _, err := transform.String(asciiOnly, value)
	if err != nil {
		return value
	}
	return out
}
