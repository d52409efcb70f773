package text

import "strings"

// Dedent removes the whitespace prefix common to all non-blank lines of s.
//
// A leading newline is dropped, as is a final line containing only
// whitespace, so raw string literals can be written indented in source:
//
//	text.Dedent(`
//	    first
//	      second
//	`)
//	// "first\n  second\n"
//
// Blank lines are emptied and do not take part in the common prefix.
func Dedent(s string) string {
	s = strings.TrimPrefix(s, "\n")
	lines := strings.Split(s, "\n")

	trailingNewline := false
	if last := lines[len(lines)-1]; strings.TrimSpace(last) == "" && len(lines) > 1 {
		lines = lines[:len(lines)-1]
		trailingNewline = true
	}

	prefix, found := "", false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		ws := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix, found = ws, true
			continue
		}
		prefix = commonPrefix(prefix, ws)
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = strings.TrimPrefix(line, prefix)
	}

	out := strings.Join(lines, "\n")
	if trailingNewline {
		out += "\n"
	}
	return out
}

// Indent prefixes every non-blank line of s with prefix.
func Indent(s, prefix string) string {
	if prefix == "" {
		return s
	}
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			b.WriteString(prefix)
		}
		b.WriteString(line)
	}
	return b.String()
}

func commonPrefix(a, b string) string {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
