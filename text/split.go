package text

import "strings"

// SafeSplit splits s around sep into exactly n parts, splitting from the
// left. Missing parts are filled with pad; the last part holds the
// unsplit remainder.
//
//	SafeSplit("key=value=x", "=", 2, "")  // ["key", "value=x"]
//	SafeSplit("key", "=", 2, "default")   // ["key", "default"]
//
// A non-positive n splits on every separator without padding.
func SafeSplit(s, sep string, n int, pad string) []string {
	if n <= 0 {
		return strings.Split(s, sep)
	}
	return padRight(strings.SplitN(s, sep, n), n, pad)
}

// SafeSplitRight is SafeSplit splitting from the right: the first part
// holds the unsplit remainder and missing parts are padded at the front.
//
//	SafeSplitRight("a.b.c", ".", 2, "")  // ["a.b", "c"]
//	SafeSplitRight("c", ".", 2, "")      // ["", "c"]
func SafeSplitRight(s, sep string, n int, pad string) []string {
	if n <= 0 {
		return strings.Split(s, sep)
	}
	if sep == "" {
		return padLeft(splitRunesRight(s, n), n, pad)
	}

	var parts []string
	rest := s
	for len(parts) < n-1 {
		i := strings.LastIndex(rest, sep)
		if i < 0 {
			break
		}
		parts = append(parts, rest[i+len(sep):])
		rest = rest[:i]
	}
	parts = append(parts, rest)

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return padLeft(parts, n, pad)
}

func splitRunesRight(s string, n int) []string {
	runes := []rune(s)
	if len(runes) <= n {
		parts := make([]string, len(runes))
		for i, r := range runes {
			parts[i] = string(r)
		}
		return parts
	}
	head := len(runes) - (n - 1)
	parts := []string{string(runes[:head])}
	for _, r := range runes[head:] {
		parts = append(parts, string(r))
	}
	return parts
}

func padRight(parts []string, n int, pad string) []string {
	for len(parts) < n {
		parts = append(parts, pad)
	}
	return parts
}

func padLeft(parts []string, n int, pad string) []string {
	if len(parts) >= n {
		return parts
	}
	out := make([]string, 0, n)
	for range n - len(parts) {
		out = append(out, pad)
	}
	return append(out, parts...)
}
