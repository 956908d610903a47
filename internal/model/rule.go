package model

// Rule is one static compliance check. Rules are configuration, never
// derived from the document.
type Rule struct {
	Name       string   `json:"name"`
	Target     Category `json:"target,omitempty"` // Empty means whole-document scope
	Indicators []string `json:"indicators"`
}

// RuleStatus is the outcome of a rule check
type RuleStatus string

const (
	StatusPass RuleStatus = "pass"
	StatusFail RuleStatus = "fail"
)

// EvidenceSentinel is emitted when no indicator matched anywhere in scope.
const EvidenceSentinel = "no evidence found"

// RuleResult is the outcome of one rule check. Produced once, never
// mutated. The JSON shape is the rule-check report schema.
type RuleResult struct {
	Rule       string     `json:"rule"`
	Status     RuleStatus `json:"status"`
	Evidence   string     `json:"evidence"`   // Verbatim window around a match, or the sentinel
	Confidence int        `json:"confidence"` // 0-100, saturating function of match count
	Matches    int        `json:"-"`          // Raw indicator hits, surfaced in the run report only
}
