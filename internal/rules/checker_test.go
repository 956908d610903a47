package rules

import (
	"strings"
	"testing"

	"github.com/lawtools/actlens/internal/model"
)

func docOf(text string) *model.Document {
	return &model.Document{Text: text, CleanLength: len(text)}
}

func emptySections() model.SectionSet {
	set := make(model.SectionSet, 7)
	for _, cat := range model.Categories() {
		set[cat] = model.Section{Category: cat, Snippet: model.SectionSentinel}
	}
	return set
}

func TestCheck_SixResultsInFixedOrder(t *testing.T) {
	cfg := model.DefaultConfig()
	checker := NewChecker(cfg)

	results := checker.Check(docOf("Some text."), emptySections())

	if len(results) != 6 {
		t.Fatalf("Expected exactly 6 rule results, got %d", len(results))
	}
	for i, rule := range DefaultRules() {
		if results[i].Rule != rule.Name {
			t.Errorf("Result %d out of order: expected %q, got %q", i, rule.Name, results[i].Rule)
		}
	}
}

func TestCheck_AbsentIndicators(t *testing.T) {
	cfg := model.DefaultConfig()
	checker := NewChecker(cfg)
	// No penalty, offence, enforcement, fine or sanction anywhere.
	doc := docOf("The claimant receives a weekly sum from the administering body.")

	results := checker.Check(doc, emptySections())

	var penalties *model.RuleResult
	for i := range results {
		if results[i].Rule == "Act must include enforcement or penalties" {
			penalties = &results[i]
		}
	}
	if penalties == nil {
		t.Fatal("Missing penalties rule result")
	}
	if penalties.Status != model.StatusFail {
		t.Errorf("Expected fail, got %s", penalties.Status)
	}
	if penalties.Confidence != 0 {
		t.Errorf("Expected confidence 0, got %d", penalties.Confidence)
	}
	if penalties.Evidence != model.EvidenceSentinel {
		t.Errorf("Expected evidence sentinel, got %q", penalties.Evidence)
	}
}

func TestCheck_SectionScopePreferred(t *testing.T) {
	cfg := model.DefaultConfig()
	checker := NewChecker(cfg)

	doc := docOf("The whole document mentions records only once.")
	sections := emptySections()
	snippet := "The authority must keep records, maintain records, and report on records kept each year. Records, records, records."
	sections[model.CategoryRecordKeeping] = model.Section{
		Category: model.CategoryRecordKeeping,
		Snippet:  snippet,
		Found:    true,
		Matches:  1,
	}

	results := checker.Check(doc, sections)

	rec := results[5]
	if rec.Rule != "Act must include record-keeping or reporting requirements" {
		t.Fatalf("Unexpected rule at index 5: %q", rec.Rule)
	}
	// record x6, maintain x1, report x1, keep x1 saturate the confidence.
	if rec.Status != model.StatusPass {
		t.Errorf("Expected pass, got %s (confidence %d)", rec.Status, rec.Confidence)
	}
	if rec.Confidence != 100 {
		t.Errorf("Expected saturated confidence 100, got %d", rec.Confidence)
	}
	if !strings.Contains(snippet, rec.Evidence) {
		t.Errorf("Evidence not drawn from the section scope: %q", rec.Evidence)
	}
}

func TestCheck_ConfidenceBounds(t *testing.T) {
	cfg := model.DefaultConfig()
	checker := NewChecker(cfg)
	doc := docOf("A penalty applies. The offence carries a fine. Enforcement follows a sanction. " +
		"A further penalty and another offence and a second fine and more enforcement.")

	for _, r := range checker.Check(doc, emptySections()) {
		if r.Confidence < 0 || r.Confidence > 100 {
			t.Errorf("%s: confidence out of range: %d", r.Rule, r.Confidence)
		}
	}
}

func TestCheck_EvidenceIsVerbatim(t *testing.T) {
	cfg := model.DefaultConfig()
	checker := NewChecker(cfg)
	text := "The Secretary of State must pay the allowance. A penalty applies for late records."
	doc := docOf(text)

	for _, r := range checker.Check(doc, emptySections()) {
		if r.Evidence == model.EvidenceSentinel {
			continue
		}
		if !strings.Contains(text, r.Evidence) {
			t.Errorf("%s: evidence not a verbatim substring: %q", r.Rule, r.Evidence)
		}
	}
}

func TestCheck_EvidenceNeverCrossesSnippetDelimiter(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Rules.EvidenceWindow = 500
	checker := NewChecker(cfg)

	sections := emptySections()
	sections[model.CategoryPenalties] = model.Section{
		Category: model.CategoryPenalties,
		Snippet:  "A short penalty clause.\n\nA second span about enforcement of the duty.",
		Found:    true,
		Matches:  2,
	}

	results := checker.Check(docOf(""), sections)

	pen := results[3]
	if strings.Contains(pen.Evidence, "\n\n") {
		t.Errorf("Evidence crosses the snippet delimiter: %q", pen.Evidence)
	}
	if !strings.Contains("A short penalty clause.", pen.Evidence) {
		t.Errorf("Expected evidence from the first span, got %q", pen.Evidence)
	}
}

func TestCheck_WholeDocumentFallbackIsCapped(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Rules.FallbackScopeChars = 50
	checker := NewChecker(cfg)

	head := strings.Repeat("x", 50)
	doc := docOf(head + " penalty offence enforcement fine sanction")

	results := checker.Check(doc, emptySections())

	pen := results[3]
	if pen.Confidence != 0 {
		t.Errorf("Expected indicators beyond the scope cap to be ignored, got confidence %d", pen.Confidence)
	}
}
