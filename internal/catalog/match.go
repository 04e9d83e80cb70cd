package catalog

import "strings"

// Matches reports whether fragment occurs anywhere in candidate, ignoring case.
func Matches(candidate, fragment string) bool {
	return strings.Contains(strings.ToLower(candidate), strings.ToLower(fragment))
}

// EscapeLike escapes the LIKE wildcards in s using '\' as the escape character.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// LikePattern turns a fragment into the lower-cased substring pattern used with
// lower(column) LIKE ? ESCAPE '\'. The column must be folded with the same
// Unicode rules as strings.ToLower.
func LikePattern(fragment string) string {
	return "%" + EscapeLike(strings.ToLower(fragment)) + "%"
}
