package plan

import (
	"parser-generator/internal/match"
	"parser-generator/internal/model"
)

// SuggestParseMethod returns the member of d whose name is closest to the
// configured parse method, for declarations whose parse method was not found.
func SuggestParseMethod(d *model.Declaration, parseMethod string) (string, bool) {
	names := make([]string, 0, len(d.Methods))

	for _, m := range d.Methods {
		if !m.Static {
			names = append(names, m.Name)
		}
	}

	return match.Closest(parseMethod, names, match.DefaultThreshold)
}
