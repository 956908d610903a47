package sections

import (
	"strings"
	"unicode/utf8"

	"github.com/lawtools/actlens/internal/model"
)

// Extractor applies the per-category pattern tables to a document
type Extractor struct {
	rules map[model.Category][]PatternRule
	cfg   *model.Config
}

// NewExtractor creates an extractor with the default pattern tables.
func NewExtractor(cfg *model.Config) *Extractor {
	return &Extractor{rules: DefaultRules(), cfg: cfg}
}

// Extract produces one Section per category, exactly seven, in a single
// pass over the normalized text. A category with no match carries the
// sentinel snippet; that is output, not failure.
func (e *Extractor) Extract(text string) model.SectionSet {
	out := make(model.SectionSet, 7)
	for _, cat := range model.Categories() {
		out[cat] = e.extractCategory(cat, text)
	}
	return out
}

// extractCategory tries the category's rules in priority order and keeps up
// to the configured number of non-overlapping matches from the first rule
// that fires, each expanded per the rule's capture policy and joined by a
// blank-line delimiter.
func (e *Extractor) extractCategory(cat model.Category, text string) model.Section {
	for _, rule := range e.rules[cat] {
		locs := rule.Pattern.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}

		var parts []string
		prevEnd := 0
		for _, loc := range locs {
			if len(parts) >= e.cfg.Sections.MaxMatches {
				break
			}
			start, end := loc[0], loc[1]
			if rule.Sentence {
				start, end = expandToSentence(text, start, end, e.cfg.Sections.ContextChars)
			}
			if start < prevEnd {
				continue
			}
			snippet := strings.TrimSpace(clampLen(text, start, end, e.cfg.Sections.MaxSnippetLen))
			if snippet == "" {
				continue
			}
			parts = append(parts, snippet)
			prevEnd = end
		}
		if len(parts) == 0 {
			continue
		}

		return model.Section{
			Category: cat,
			Snippet:  strings.Join(parts, "\n\n"),
			Found:    true,
			Matches:  len(parts),
			Pattern:  rule.Name,
		}
	}

	return model.Section{Category: cat, Snippet: model.SectionSentinel}
}

// expandToSentence widens [start,end) to the enclosing sentence, searching
// at most window bytes in each direction. Paragraph boundaries always stop
// the expansion.
func expandToSentence(text string, start, end, window int) (int, int) {
	lo := start - window
	if lo < 0 {
		lo = 0
	}
	for start > lo {
		c := text[start-1]
		if c == '.' || c == '!' || c == '?' || c == '\n' {
			break
		}
		start--
	}

	hi := end + window
	if hi > len(text) {
		hi = len(text)
	}
	for end < hi {
		c := text[end]
		end++
		if c == '.' || c == '!' || c == '?' || c == '\n' {
			if c == '\n' {
				end--
			}
			break
		}
	}

	// Never leave a leading space from the boundary gap.
	for start < end && (text[start] == ' ' || text[start] == '\t') {
		start++
	}
	return start, end
}

// clampLen caps a span at max bytes without splitting a rune.
func clampLen(text string, start, end, max int) string {
	if end-start > max {
		end = start + max
		for end > start && !utf8.RuneStart(text[end]) {
			end--
		}
	}
	return text[start:end]
}
