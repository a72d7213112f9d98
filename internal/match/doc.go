// Package match ranks identifiers by similarity for "did you mean" hints.
//
// Names are normalized before comparison: CamelCase and snake_case are split
// into tokens, lower-cased and re-joined, so "onParse", "on_parse" and
// "OnParse" all compare equal.
package match
