// Package sections locates the seven fixed legal categories in normalized
// act text using ordered pattern tables.
package sections

import (
	"regexp"

	"github.com/lawtools/actlens/internal/model"
)

// PatternRule pairs one compiled pattern with its capture policy. Rules for
// a category are tried in order; the first rule with at least one match
// supplies the category's snippet.
type PatternRule struct {
	Name     string
	Pattern  *regexp.Regexp
	Sentence bool // Expand each match to the enclosing sentence bounds
}

// DefaultRules returns the per-category pattern tables. The tables are
// data, not branching: adding a rule is an entry, not code.
func DefaultRules() map[model.Category][]PatternRule {
	return map[model.Category][]PatternRule{
		model.CategoryDefinitions: {
			{
				Name:     "quoted-term-definition",
				Pattern:  regexp.MustCompile(`(?:"[^"\n]{2,80}"|“[^”\n]{2,80}”)\s*(?:—|–|-)?\s*(?:means|refers to|is defined as)[^.\n]{3,300}`),
				Sentence: true,
			},
			{
				Name:     "capitalized-term-definition",
				Pattern:  regexp.MustCompile(`[A-Z][A-Za-z-]*(?:\s+[A-Za-z-]+){0,5}\s*(?:—|–|-)?\s*means\s+[^.\n]{3,300}`),
				Sentence: true,
			},
			{
				Name:    "numbered-definition",
				Pattern: regexp.MustCompile(`\(\d+\)\s+[^()\n]{0,120}(?:means|refers to)[^.\n]{3,300}`),
			},
		},
		model.CategoryObligations: {
			{
				Name:     "modal-obligation",
				Pattern:  regexp.MustCompile(`(?i)\b(?:must|shall|is required to|are required to|has a duty to)\s+[^.\n]{10,300}`),
				Sentence: true,
			},
			{
				Name:    "duty-clause",
				Pattern: regexp.MustCompile(`(?i)\b(?:it is the duty of|obliged to|obligation to|subject to the requirement)\s+[^.\n]{10,300}`),
			},
		},
		model.CategoryResponsibilities: {
			{
				Name:     "authority-action",
				Pattern:  regexp.MustCompile(`(?i)(?:Secretary of State|the authority|the Department|the Minister|the Commissioners)\s+(?:must|shall|will|may|is required to|has the power)[^.\n]{10,300}`),
				Sentence: true,
			},
			{
				Name:    "responsibility-of",
				Pattern: regexp.MustCompile(`(?i)\b(?:responsibility|duty|power|function)\s+(?:of|to|for)\s+[^.\n]{10,300}`),
			},
			{
				Name:    "secretary-of-state-mention",
				Pattern: regexp.MustCompile(`Secretary of State[^.\n]{20,200}`),
			},
		},
		model.CategoryEligibility: {
			{
				Name:     "entitlement-terms",
				Pattern:  regexp.MustCompile(`(?i)\b(?:eligible|entitled|entitlement|qualifies|qualify|qualification)\b[^.\n]{10,300}`),
				Sentence: true,
			},
			{
				Name:    "criteria-satisfaction",
				Pattern: regexp.MustCompile(`(?i)\b(?:meets|satisfies|fulfils|fulfills)\s+the\s+(?:criteria|conditions|requirements)[^.\n]{3,300}`),
			},
			{
				Name:    "conditional-clause",
				Pattern: regexp.MustCompile(`(?i)\b(?:if|where|when|provided that)\s+[^.\n]{30,200}`),
			},
		},
		model.CategoryPayments: {
			{
				Name:     "payment-amount",
				Pattern:  regexp.MustCompile(`(?i)\b(?:payment|allowance|amount|benefit|element)\s+(?:of|is|are|shall be|will be|must be)\s+[^.\n]{5,300}`),
				Sentence: true,
			},
			{
				Name:    "sterling-amount",
				Pattern: regexp.MustCompile(`£\s*[\d,]+(?:\.\d{2})?[^.\n]{0,150}`),
			},
			{
				Name:    "rate-reference",
				Pattern: regexp.MustCompile(`(?i)\b(?:standard allowance|rate of|per week|per month|tax year)[^.\n]{5,200}`),
			},
		},
		model.CategoryPenalties: {
			{
				Name:     "penalty-terms",
				Pattern:  regexp.MustCompile(`(?i)\b(?:penalty|penalties|fine|fines|sanction|sanctions)\b[^.\n]{5,300}`),
				Sentence: true,
			},
			{
				Name:    "offence-liability",
				Pattern: regexp.MustCompile(`(?i)\b(?:liable|guilty of|commits)\s+(?:to\s+)?(?:a\s+|an\s+)?(?:penalty|fine|offence)[^.\n]{0,300}`),
			},
			{
				Name:    "enforcement-mention",
				Pattern: regexp.MustCompile(`(?i)\b(?:offence|enforcement|contravention)\b[^.\n]{10,300}`),
			},
		},
		model.CategoryRecordKeeping: {
			{
				Name:     "record-duty",
				Pattern:  regexp.MustCompile(`(?i)\b(?:must|shall|required to)\s+(?:keep|maintain|retain|provide|submit)\s+(?:records?|documents?|information|data|accounts)[^.\n]{0,300}`),
				Sentence: true,
			},
			{
				Name:    "record-terms",
				Pattern: regexp.MustCompile(`(?i)\b(?:record-keeping|reporting requirements?|documentation)\b[^.\n]{10,300}`),
			},
		},
	}
}
