// Package sanitizer normalizes free-form request text before it is persisted
// or echoed back in notifications.
package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reControlChars = regexp.MustCompile(`[\x00-\x1f\x7f]+`)
	reMultiSpace   = regexp.MustCompile(`\s{2,}`)
)

func stripControlChars(s string) string {
	return reControlChars.ReplaceAllString(s, " ")
}

func collapseSpaces(s string) string {
	return reMultiSpace.ReplaceAllString(s, " ")
}

// SanitizeFreeText cleans operator-supplied prose such as conflict details.
func SanitizeFreeText(input string) string {
	p := Pipeline{
		stripControlChars,
		collapseSpaces,
		strings.TrimSpace,
	}
	return p.Apply(input)
}

// SanitizeRoomName normalizes room identifiers for comparison against the
// room directory: trimmed, inner whitespace collapsed, case preserved.
func SanitizeRoomName(input string) string {
	p := Pipeline{
		stripControlChars,
		collapseSpaces,
		strings.TrimSpace,
	}
	return p.Apply(input)
}
