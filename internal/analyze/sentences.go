package analyze

import (
	"strings"
)

// abbreviations that end in a period without ending a sentence. Legal text
// is dense with citation shorthand ("s. 4", "reg. 2", "para. 3").
var abbreviations = map[string]bool{
	"ss":   true,
	"reg":  true,
	"regs": true,
	"para": true,
	"art":  true,
	"no":   true,
	"cf":   true,
	"etc":  true,
	"viz":  true,
}

// SplitSentences splits normalized text into sentences. Boundary rules are
// tolerant of citation abbreviations and numbered sub-clauses: a terminator
// after a single letter, a digit run, or a known abbreviation does not end
// the sentence. Sentences shorter than minLen are discarded.
func SplitSentences(text string, minLen int) []string {
	var sentences []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if len(s) >= minLen {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	for i, r := range text {
		current.WriteRune(r)

		switch r {
		case '.', '!', '?':
			// Only a terminator followed by whitespace can close a sentence.
			if i+1 >= len(text) {
				continue
			}
			switch text[i+1] {
			case ' ', '\t', '\n':
			default:
				continue
			}
			if r == '.' && isAbbreviation(current.String()) {
				continue
			}
			flush()
		case '\n':
			// Paragraph boundaries always close a sentence.
			flush()
		}
	}
	flush()

	return sentences
}

// isAbbreviation reports whether the text accumulated so far ends with an
// abbreviation period rather than a sentence terminator.
func isAbbreviation(s string) bool {
	s = s[:len(s)-1] // Drop the period itself
	j := len(s)
	for j > 0 {
		c := s[j-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			j--
			continue
		}
		break
	}
	word := s[j:]
	if word == "" {
		return false
	}
	if len(word) == 1 {
		return true // "s.", "c.", initials
	}
	if allDigits(word) {
		return true // Numbered sub-clause lists: "2."
	}
	return abbreviations[strings.ToLower(word)]
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
