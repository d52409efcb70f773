// Package text holds small string helpers: dedenting and indenting blocks
// of text, splitting with a guaranteed result length, rendering nested
// collections deterministically and matching names against glob patterns.
package text
