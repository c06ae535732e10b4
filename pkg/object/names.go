package object

import (
	"strings"
	"unicode"
)

// KebabCase converts a camelCase property name to kebab-case.
// "iconName" becomes "icon-name"; names that are already lower-case pass
// through unchanged. Consecutive upper-case runs stay together so "URL"
// does not become "u-r-l".
func KebabCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (i > 0 && nextLower) {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// NotifySignal returns the change-signal name for a property:
// "notify::<kebab-case-property>".
func NotifySignal(property string) string {
	return "notify::" + KebabCase(property)
}
