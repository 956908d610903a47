// Package rules evaluates the six static compliance checks against the
// extracted sections and the normalized document.
package rules

import "github.com/lawtools/actlens/internal/model"

// DefaultRules returns the six compliance checks in fixed report order.
// They are configuration: nothing here derives from the document.
func DefaultRules() []model.Rule {
	return []model.Rule{
		{
			Name:       "Act must define key terms",
			Target:     model.CategoryDefinitions,
			Indicators: []string{"means", "defined", "refers to", "definition", "term"},
		},
		{
			Name:       "Act must specify eligibility criteria",
			Target:     model.CategoryEligibility,
			Indicators: []string{"eligible", "entitlement", "entitled", "qualify", "qualification", "criteria"},
		},
		{
			Name:       "Act must specify responsibilities of the administering authority",
			Target:     model.CategoryResponsibilities,
			Indicators: []string{"secretary of state", "authority", "responsibility", "duty", "must", "shall"},
		},
		{
			Name:       "Act must include enforcement or penalties",
			Target:     model.CategoryPenalties,
			Indicators: []string{"penalty", "enforcement", "fine", "sanction", "offence"},
		},
		{
			Name:       "Act must include payment or entitlement structure",
			Target:     model.CategoryPayments,
			Indicators: []string{"payment", "amount", "allowance", "entitlement", "benefit", "element"},
		},
		{
			Name:       "Act must include record-keeping or reporting requirements",
			Target:     model.CategoryRecordKeeping,
			Indicators: []string{"record", "documentation", "report", "maintain", "keep"},
		},
	}
}
