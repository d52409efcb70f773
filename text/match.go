package text

import "github.com/bmatcuk/doublestar/v4"

// MatchAny reports whether name matches any of the glob patterns.
// Patterns use doublestar syntax: "*" stays within a path segment, "**"
// crosses segments, and "{a,b}" alternates. Invalid patterns never match.
func MatchAny(name string, patterns ...string) bool {
	_, ok := FirstMatch(name, patterns...)
	return ok
}

// FirstMatch returns the index of the first pattern that matches name.
func FirstMatch(name string, patterns ...string) (int, bool) {
	for i, p := range patterns {
		if ok, err := doublestar.Match(p, name); err == nil && ok {
			return i, true
		}
	}
	return -1, false
}
