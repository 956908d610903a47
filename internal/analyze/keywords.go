// Package analyze implements the keyword ranking and the extractive
// sentence-scoring summarizer.
package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lawtools/actlens/internal/model"
)

// tokenPattern matches candidate keyword tokens: alphabetic runs.
var tokenPattern = regexp.MustCompile(`[a-zA-Z]+`)

// ExtractKeywords ranks document tokens by frequency, descending, with an
// alphabetical tie-break. Stop words and tokens shorter than the configured
// minimum are discarded; only the configured top K are retained. An empty
// document yields an empty set.
func ExtractKeywords(text string, cfg *model.Config) []model.Keyword {
	stop := make(map[string]bool, len(cfg.Analyze.StopWords))
	for _, w := range cfg.Analyze.StopWords {
		stop[w] = true
	}

	counts := make(map[string]int)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(tok) < cfg.Analyze.MinTokenLen || stop[tok] {
			continue
		}
		counts[tok]++
	}

	keywords := make([]model.Keyword, 0, len(counts))
	for tok, n := range counts {
		keywords = append(keywords, model.Keyword{Token: tok, Count: n})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Token < keywords[j].Token
	})

	if len(keywords) > cfg.Analyze.TopKeywords {
		keywords = keywords[:cfg.Analyze.TopKeywords]
	}
	return keywords
}
