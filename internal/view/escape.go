package view

import "strings"

// EscapeAttr escapes a value for a double-quoted HTML attribute. '&' goes
// first so the entities introduced afterwards are not escaped again. The
// result is also safe as element text.
func EscapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
