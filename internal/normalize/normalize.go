// Package normalize turns raw per-page extraction output into the single
// cleaned string every analysis stage operates on.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// A token ending in a hyphen directly before a line break was split by
	// the PDF layout; rejoin it with the next line.
	hyphenBreak = regexp.MustCompile(`(\w)-\s*\n\s*(\w)`)
	spaceRun    = regexp.MustCompile(`[ \t\x{00A0}]+`)
)

// Clean normalizes raw extracted text: hyphenation repair, continuation-line
// joining, whitespace collapse. Paragraph boundaries survive as a single
// newline; everything else collapses to single spaces. Empty input yields
// empty output, never an error, and cleaning already-clean text is a no-op.
func Clean(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = hyphenBreak.ReplaceAllString(text, "$1$2")

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(spaceRun.ReplaceAllString(line, " "))
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	var out strings.Builder
	out.WriteString(lines[0])
	for i := 1; i < len(lines); i++ {
		if continues(lines[i-1], lines[i]) {
			out.WriteString(" ")
		} else {
			out.WriteString("\n")
		}
		out.WriteString(lines[i])
	}
	return out.String()
}

// continues reports whether next is a wrapped continuation of line rather
// than a new paragraph. A line that ends mid-clause followed by a
// lowercase-or-digit start is a layout wrap; a terminator or a fresh
// capitalized line is a boundary. The decision depends only on the line
// pair, which is what makes Clean idempotent.
func continues(line, next string) bool {
	switch line[len(line)-1] {
	case '.', '!', '?', ':', ';':
		return false
	}
	first := next[0]
	if first >= 'a' && first <= 'z' {
		return true
	}
	return first >= '0' && first <= '9'
}
