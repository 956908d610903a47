package analyze

import (
	"regexp"
	"sort"
	"strings"

	"github.com/lawtools/actlens/internal/model"
)

var (
	numeralPattern = regexp.MustCompile(`\d`)
	// A quoted or capitalized term followed by "means" (optionally with a
	// dash, as statute definition lists set them) marks a definition.
	definitionPattern = regexp.MustCompile(`(?:"[^"]+"|“[^”]+”|[A-Z][A-Za-z-]*(?:\s+[A-Za-z-]+){0,5})\s*(?:—|–|-)?\s*means\b`)
)

// ScoreSentence computes the weighted heuristic score for one sentence:
// +1 per keyword occurrence, +2 per legal-term occurrence, +1 if the
// sentence contains a numeral, +2 if it matches a definition pattern.
func ScoreSentence(text string, position int, keywords []model.Keyword, cfg *model.Config) model.Sentence {
	lower := strings.ToLower(text)

	s := model.Sentence{Text: text, Position: position}
	for _, kw := range keywords {
		s.KeywordHits += strings.Count(lower, kw.Token)
	}
	for _, term := range cfg.Analyze.LegalTerms {
		s.LegalHits += strings.Count(lower, strings.ToLower(term))
	}
	s.HasNumber = numeralPattern.MatchString(text)
	s.IsDefinition = definitionPattern.MatchString(text)

	s.Score = s.KeywordHits + 2*s.LegalHits
	if s.HasNumber {
		s.Score++
	}
	if s.IsDefinition {
		s.Score += 2
	}
	return s
}

// Summarize selects the top-scoring, non-redundant sentences and returns
// them in document order. Selection uses score order (position ascending on
// ties); if fewer than the configured minimum score above zero, the earliest
// unselected sentences pad the summary. A document with no sentences yields
// an empty summary.
func Summarize(text string, keywords []model.Keyword, cfg *model.Config) []string {
	split := SplitSentences(text, cfg.Analyze.MinSentenceLen)
	if len(split) == 0 {
		return nil
	}

	sentences := make([]model.Sentence, len(split))
	for i, s := range split {
		sentences[i] = ScoreSentence(s, i, keywords, cfg)
	}

	byScore := make([]model.Sentence, len(sentences))
	copy(byScore, sentences)
	sort.SliceStable(byScore, func(i, j int) bool {
		if byScore[i].Score != byScore[j].Score {
			return byScore[i].Score > byScore[j].Score
		}
		return byScore[i].Position < byScore[j].Position
	})

	var selected []model.Sentence
	for _, s := range byScore {
		if len(selected) >= cfg.Analyze.SummaryMax {
			break
		}
		if s.Score <= 0 {
			break
		}
		if isNearDuplicate(s.Text, selected, cfg.Analyze.DedupOverlap) {
			continue
		}
		selected = append(selected, s)
	}

	// Padding policy: top up with the earliest remaining sentences so the
	// lower bound is met whenever enough sentences exist.
	if len(selected) < cfg.Analyze.SummaryMin {
		chosen := make(map[int]bool, len(selected))
		for _, s := range selected {
			chosen[s.Position] = true
		}
		for _, s := range sentences {
			if len(selected) >= cfg.Analyze.SummaryMin {
				break
			}
			if chosen[s.Position] || isNearDuplicate(s.Text, selected, cfg.Analyze.DedupOverlap) {
				continue
			}
			selected = append(selected, s)
			chosen[s.Position] = true
		}
	}

	sort.Slice(selected, func(i, j int) bool {
		return selected[i].Position < selected[j].Position
	})

	bullets := make([]string, len(selected))
	for i, s := range selected {
		bullets[i] = s.Text
	}
	return bullets
}

// isNearDuplicate reports whether candidate overlaps any already-selected
// sentence beyond the configured Jaccard token threshold.
func isNearDuplicate(candidate string, selected []model.Sentence, threshold float64) bool {
	cand := tokenSet(candidate)
	for _, s := range selected {
		if strings.EqualFold(strings.TrimSpace(candidate), strings.TrimSpace(s.Text)) {
			return true
		}
		if jaccard(cand, tokenSet(s.Text)) >= threshold {
			return true
		}
	}
	return false
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range tokenPattern.FindAllString(strings.ToLower(s), -1) {
		set[tok] = true
	}
	return set
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for tok := range a {
		if b[tok] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
