package analyze

import (
	"strings"
	"testing"
)

func TestSplitSentences_Basic(t *testing.T) {
	text := "The Secretary of State must pay the entitled person. Regulations may prescribe the weekly rate."

	sentences := SplitSentences(text, 20)

	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
	if !strings.HasPrefix(sentences[1], "Regulations") {
		t.Errorf("Unexpected second sentence: %q", sentences[1])
	}
}

func TestSplitSentences_CitationAbbreviations(t *testing.T) {
	text := "The claimant must apply under s. 4 of the Act before the deadline. Payments follow within ten days of the award."

	sentences := SplitSentences(text, 20)

	if len(sentences) != 2 {
		t.Fatalf("Expected abbreviation-tolerant split into 2, got %d: %v", len(sentences), sentences)
	}
	if !strings.Contains(sentences[0], "s. 4 of the Act") {
		t.Errorf("Expected citation kept inside first sentence, got %q", sentences[0])
	}
}

func TestSplitSentences_NumberedSubClauses(t *testing.T) {
	text := "Entitlement arises under paragraph 2. 1 of the schedule where the conditions are met in full."

	sentences := SplitSentences(text, 20)

	if len(sentences) != 1 {
		t.Errorf("Expected digit-terminated period not to split, got %d: %v", len(sentences), sentences)
	}
}

func TestSplitSentences_ParagraphBoundary(t *testing.T) {
	text := "Universal Credit — a payment made under this Act\nThe Secretary of State administers the benefit system."

	sentences := SplitSentences(text, 20)

	if len(sentences) != 2 {
		t.Fatalf("Expected paragraph boundary to close the sentence, got %d: %v", len(sentences), sentences)
	}
}

func TestSplitSentences_DiscardsShortFragments(t *testing.T) {
	text := "Short one. The second sentence here is comfortably long enough to keep."

	sentences := SplitSentences(text, 20)

	if len(sentences) != 1 {
		t.Fatalf("Expected short fragment discarded, got %d: %v", len(sentences), sentences)
	}
}

func TestSplitSentences_Empty(t *testing.T) {
	if got := SplitSentences("", 20); len(got) != 0 {
		t.Errorf("Expected no sentences for empty text, got %v", got)
	}
}
