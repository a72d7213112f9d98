package common

import "unicode"

// UnknownStr is the String() value of out-of-range enums.
const UnknownStr = "unknown"

// IsIdent returns true if s is a valid identifier in the generated language.
func IsIdent(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if i == 0 && !unicode.IsLetter(r) && r != '_' {
			return false
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return true
}
