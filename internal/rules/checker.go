package rules

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/lawtools/actlens/internal/model"
)

// Checker evaluates the static compliance rules. Indicator patterns are
// compiled once at construction.
type Checker struct {
	rules    []model.Rule
	patterns map[string]*regexp.Regexp // Indicator term -> word-bounded matcher
	cfg      *model.Config
}

// NewChecker creates a checker over the default rule set.
func NewChecker(cfg *model.Config) *Checker {
	rules := DefaultRules()
	patterns := make(map[string]*regexp.Regexp)
	for _, rule := range rules {
		for _, term := range rule.Indicators {
			if _, ok := patterns[term]; !ok {
				// Word-bounded, with a bare plural allowed ("record" counts
				// "records" but not "recording").
				patterns[term] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `s?\b`)
			}
		}
	}
	return &Checker{rules: rules, patterns: patterns, cfg: cfg}
}

// Check produces exactly one result per rule, in rule-definition order
// regardless of scan order. Absent indicators yield fail/0/sentinel, never
// an error.
func (c *Checker) Check(doc *model.Document, sections model.SectionSet) []model.RuleResult {
	results := make([]model.RuleResult, 0, len(c.rules))
	for _, rule := range c.rules {
		results = append(results, c.checkRule(rule, doc, sections))
	}
	return results
}

// checkRule counts indicator occurrences inside the rule's scope, derives a
// saturating confidence, and extracts the evidence window around the
// earliest match.
func (c *Checker) checkRule(rule model.Rule, doc *model.Document, sections model.SectionSet) model.RuleResult {
	scope := c.scopeFor(rule, doc, sections)

	matches := 0
	firstIdx := -1
	firstLen := 0
	for _, term := range rule.Indicators {
		locs := c.patterns[term].FindAllStringIndex(scope, -1)
		matches += len(locs)
		if len(locs) > 0 && (firstIdx < 0 || locs[0][0] < firstIdx) {
			firstIdx = locs[0][0]
			firstLen = locs[0][1] - locs[0][0]
		}
	}

	if matches == 0 {
		return model.RuleResult{
			Rule:       rule.Name,
			Status:     model.StatusFail,
			Evidence:   model.EvidenceSentinel,
			Confidence: 0,
		}
	}

	confidence := matches * 100 / c.cfg.Rules.Saturation
	if confidence > 100 {
		confidence = 100
	}
	status := model.StatusFail
	if confidence >= c.cfg.Rules.PassThreshold {
		status = model.StatusPass
	}

	return model.RuleResult{
		Rule:       rule.Name,
		Status:     status,
		Evidence:   evidenceWindow(scope, firstIdx, firstLen, c.cfg.Rules.EvidenceWindow),
		Confidence: confidence,
		Matches:    matches,
	}
}

// scopeFor resolves the text a rule is checked against: the target
// section's snippet when it was found, otherwise the head of the whole
// document.
func (c *Checker) scopeFor(rule model.Rule, doc *model.Document, sections model.SectionSet) string {
	if rule.Target != "" {
		if sec, ok := sections[rule.Target]; ok && sec.Found {
			return sec.Snippet
		}
	}
	return clampRunes(doc.Text, c.cfg.Rules.FallbackScopeChars)
}

// evidenceWindow extracts the bounded text window around a match. Section
// snippets join multiple document spans with a blank-line delimiter; the
// window never crosses one, so the evidence stays a verbatim substring of
// the normalized document.
func evidenceWindow(scope string, idx, matchLen, window int) string {
	segStart := 0
	if i := strings.LastIndex(scope[:idx], "\n\n"); i >= 0 {
		segStart = i + 2
	}
	segEnd := len(scope)
	if i := strings.Index(scope[idx:], "\n\n"); i >= 0 {
		segEnd = idx + i
	}

	start := idx - window
	if start < segStart {
		start = segStart
	}
	end := idx + matchLen + window
	if end > segEnd {
		end = segEnd
	}

	for start < end && !utf8.RuneStart(scope[start]) {
		start++
	}
	for end > start && end < len(scope) && !utf8.RuneStart(scope[end]) {
		end--
	}

	return strings.TrimSpace(scope[start:end])
}

// clampRunes caps text at n runes without splitting one.
func clampRunes(text string, n int) string {
	if n <= 0 || len(text) <= n {
		return text
	}
	count := 0
	for i := range text {
		if count == n {
			return text[:i]
		}
		count++
	}
	return text
}
