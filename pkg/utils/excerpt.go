package utils

// Excerpt truncates s to at most max runes, appending an ellipsis when
// anything was cut. Truncation is rune-aware so multi-byte content never
// gets split mid-character.
func Excerpt(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
