package sections

import (
	"strings"
	"testing"

	"github.com/lawtools/actlens/internal/model"
)

func TestExtract_DefinitionsAndObligations(t *testing.T) {
	cfg := model.DefaultConfig()
	extractor := NewExtractor(cfg)
	text := "Universal Credit — means a payment under this Act.\nThe Secretary of State must pay the entitled person."

	sections := extractor.Extract(text)

	defs := sections[model.CategoryDefinitions]
	if !defs.Found {
		t.Fatal("Expected a definitions match")
	}
	if defs.Snippet != "Universal Credit — means a payment under this Act." {
		t.Errorf("Unexpected definitions snippet: %q", defs.Snippet)
	}

	obl := sections[model.CategoryObligations]
	if !obl.Found {
		t.Fatal("Expected an obligations match")
	}
	if obl.Snippet != "The Secretary of State must pay the entitled person." {
		t.Errorf("Unexpected obligations snippet: %q", obl.Snippet)
	}
}

func TestExtract_AlwaysSevenCategories(t *testing.T) {
	cfg := model.DefaultConfig()
	extractor := NewExtractor(cfg)

	for _, text := range []string{"", "Nothing of legal interest lives here.", "The claimant must keep records."} {
		sections := extractor.Extract(text)
		if len(sections) != 7 {
			t.Fatalf("Expected exactly 7 sections for %q, got %d", text, len(sections))
		}
		snippets := sections.Snippets()
		for _, cat := range model.Categories() {
			if _, ok := snippets[cat]; !ok {
				t.Errorf("Missing category %s", cat)
			}
		}
	}
}

func TestExtract_SentinelForMissingCategory(t *testing.T) {
	cfg := model.DefaultConfig()
	extractor := NewExtractor(cfg)

	sections := extractor.Extract("A plain paragraph about the weather over the hills.")

	pen := sections[model.CategoryPenalties]
	if pen.Found {
		t.Error("Did not expect a penalties match")
	}
	if pen.Snippet != model.SectionSentinel {
		t.Errorf("Expected sentinel snippet, got %q", pen.Snippet)
	}
}

func TestExtract_MultipleMatchesConcatenated(t *testing.T) {
	cfg := model.DefaultConfig()
	extractor := NewExtractor(cfg)
	text := "A person who obstructs an inspector is liable to a penalty not exceeding level three.\n" +
		"A further penalty accrues for each day the contravention continues after conviction."

	sec := extractor.Extract(text)[model.CategoryPenalties]

	if sec.Matches != 2 {
		t.Fatalf("Expected 2 retained matches, got %d (%q)", sec.Matches, sec.Snippet)
	}
	parts := strings.Split(sec.Snippet, "\n\n")
	if len(parts) != 2 {
		t.Fatalf("Expected 2 delimited parts, got %d", len(parts))
	}
	for _, part := range parts {
		if !strings.Contains(text, part) {
			t.Errorf("Part is not a verbatim substring of the document: %q", part)
		}
	}
}

func TestExtract_MaxMatchesCap(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.Sections.MaxMatches = 2
	extractor := NewExtractor(cfg)

	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString("A penalty applies where the claimant withholds information from the authority.\n")
	}

	sec := extractor.Extract(b.String())[model.CategoryPenalties]
	if sec.Matches > 2 {
		t.Errorf("Expected at most 2 matches retained, got %d", sec.Matches)
	}
}

func TestExtract_Extractiveness(t *testing.T) {
	cfg := model.DefaultConfig()
	extractor := NewExtractor(cfg)
	text := "\"assessment period\" means a period of one month.\n" +
		"The authority must keep records of every award made.\n" +
		"A claimant qualifies for the allowance where the conditions are met in full.\n" +
		"The weekly payment is £94.35 for the relevant tax year.\n" +
		"Failure to comply is an offence punishable by a fine at level two."

	sections := extractor.Extract(text)
	for _, cat := range model.Categories() {
		sec := sections[cat]
		if !sec.Found {
			continue
		}
		for _, part := range strings.Split(sec.Snippet, "\n\n") {
			if !strings.Contains(text, part) {
				t.Errorf("%s: snippet part not a verbatim substring: %q", cat, part)
			}
		}
	}
}

func TestDefaultRules_CoverAllCategories(t *testing.T) {
	rules := DefaultRules()
	for _, cat := range model.Categories() {
		if len(rules[cat]) == 0 {
			t.Errorf("No pattern rules for category %s", cat)
		}
	}
}
