package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Pascal converts a name in any common casing (camel, snake, kebab,
// space- or dot-separated) to PascalCase. Acronym runs are retitled as
// single words, so mixed-case runs flatten: "HTTPServer" becomes
// "HttpServer" and "UUIDv4" becomes "UuiDv4" (the lowercase tail starts
// a new word).
func Pascal(s string) string {
	title := cases.Title(language.English)

	var b strings.Builder
	b.Grow(len(s))
	for _, word := range split(s) {
		b.WriteString(title.String(strings.ToLower(word)))
	}
	return b.String()
}

// Camel converts a name in any common casing to camelCase.
func Camel(s string) string {
	words := split(s)
	if len(words) == 0 {
		return ""
	}

	title := cases.Title(language.English)

	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(title.String(strings.ToLower(word)))
	}
	return b.String()
}

// split breaks a name on explicit separators and camel boundaries.
// Acronym runs stay together: "HTTPServer" splits into "HTTP", "Server".
func split(s string) []string {
	var words []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || r == ' ' || r == '.':
			flush()
		case unicode.IsUpper(r) && i > 0 &&
			(unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))):
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}
