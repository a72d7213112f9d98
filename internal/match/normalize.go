package match

import (
	"strings"
	"unicode"
)

// Normalize lower-cases s and drops separators.
func Normalize(s string) string {
	return strings.Join(Tokens(s), "")
}

// Tokens splits an identifier into lower-case words:
//   - "onParse" -> ["on", "parse"]
//   - "parse_HTTPResponse" -> ["parse", "http", "response"]
func Tokens(s string) []string {
	var (
		tokens []string
		word   []rune
	)

	flush := func() {
		if len(word) > 0 {
			tokens = append(tokens, strings.ToLower(string(word)))
			word = word[:0]
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if r == '_' || r == '-' || r == ' ' || r == '.' {
			flush()
			continue
		}

		if i > 0 && wordBoundary(runes, i) {
			flush()
		}

		word = append(word, r)
	}

	flush()

	return tokens
}

// wordBoundary reports whether a new word starts at runes[i]: a lower-to-upper
// transition ("onParse") or the last capital of an acronym ("HTTPResponse").
func wordBoundary(runes []rune, i int) bool {
	if !unicode.IsUpper(runes[i]) {
		return false
	}

	prev := runes[i-1]
	if unicode.IsLower(prev) || unicode.IsDigit(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
