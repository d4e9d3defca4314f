package scripture

import (
	"regexp"
	"strings"
)

// Highlighter wraps a matched fragment for display. The UI installs a
// style-aware implementation; tests use plain markers.
type Highlighter func(match string) string

// HighlightAll wraps every case-insensitive occurrence of needle inside
// text, preserving the original casing of each match. A blank needle
// returns the text unchanged.
func HighlightAll(text, needle string, wrap Highlighter) string {
	needle = strings.TrimSpace(needle)
	if needle == "" || wrap == nil {
		return text
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(needle))
	if err != nil {
		return text
	}
	return re.ReplaceAllStringFunc(text, wrap)
}
