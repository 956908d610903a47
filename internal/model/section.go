package model

// Category labels one of the seven fixed extraction targets
type Category string

const (
	CategoryDefinitions      Category = "definitions"
	CategoryObligations      Category = "obligations"
	CategoryResponsibilities Category = "responsibilities"
	CategoryEligibility      Category = "eligibility"
	CategoryPayments         Category = "payments"
	CategoryPenalties        Category = "penalties"
	CategoryRecordKeeping    Category = "record_keeping"
)

// SectionSentinel is emitted for a category no pattern matched. It is
// meaningful output, not an error.
const SectionSentinel = "Not found in extracted text"

// Categories returns the seven categories in report order.
func Categories() []Category {
	return []Category{
		CategoryDefinitions,
		CategoryObligations,
		CategoryResponsibilities,
		CategoryEligibility,
		CategoryPayments,
		CategoryPenalties,
		CategoryRecordKeeping,
	}
}

// Section is the extraction result for one category
type Section struct {
	Category Category `json:"category"`
	Snippet  string   `json:"snippet"` // Verbatim spans joined by "\n\n", or the sentinel
	Found    bool     `json:"found"`
	Matches  int      `json:"matches"`           // Non-overlapping matches retained
	Pattern  string   `json:"pattern,omitempty"` // Name of the pattern rule that fired
}

// SectionSet holds the extraction result for every category. A complete set
// always has exactly the seven fixed keys.
type SectionSet map[Category]Section

// Snippets returns the seven-key section report object, one string per
// category (snippet or sentinel).
func (s SectionSet) Snippets() map[Category]string {
	out := make(map[Category]string, len(s))
	for _, cat := range Categories() {
		sec, ok := s[cat]
		if !ok {
			out[cat] = SectionSentinel
			continue
		}
		out[cat] = sec.Snippet
	}
	return out
}
