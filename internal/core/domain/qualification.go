package domain

import "strings"

// Lead qualification scoring. The score is recomputed on demand from
// the finalized attributes; identical inputs always yield the same
// score, and the result is clamped to [0,100].

// NotSpecified is the sentinel used for lead attributes the caller
// never volunteered.
const NotSpecified = "Not Specified"

// UseCaseCategory classifies the free-text use case of a lead.
type UseCaseCategory string

const (
	UseCaseProfessionalWholesale UseCaseCategory = "professional_wholesale"
	UseCaseBusinessReseller      UseCaseCategory = "business_reseller"
	UseCasePersonalShopping      UseCaseCategory = "personal_shopping"
	UseCaseOther                 UseCaseCategory = "other"
)

var timelineScores = map[string]int{
	"now":   10,
	"soon":  7,
	"later": 3,
}

const timelineDefaultScore = 5

var useCaseScores = map[UseCaseCategory]int{
	UseCaseProfessionalWholesale: 10,
	UseCaseBusinessReseller:      8,
	UseCasePersonalShopping:      5,
	UseCaseOther:                 3,
}

// useCaseRules are checked in priority order so more specific
// categories win over generic ones.
var useCaseRules = []struct {
	category UseCaseCategory
	keywords []string
}{
	{UseCaseProfessionalWholesale, []string{"salon", "beautician", "makeup artist", "professional", "wholesale"}},
	{UseCaseBusinessReseller, []string{"resell", "business", "store"}},
	{UseCasePersonalShopping, []string{"personal", "myself", "shopping", "own use"}},
}

// individualSentinels are company values that indicate an individual
// rather than an organization.
var individualSentinels = map[string]bool{
	"self-employed": true,
	"freelance":     true,
}

// CategorizeUseCase maps a free-text use case onto a fixed category by
// keyword containment. The first matching category wins.
func CategorizeUseCase(useCase string) UseCaseCategory {
	lower := strings.ToLower(useCase)
	for _, rule := range useCaseRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category
			}
		}
	}
	return UseCaseOther
}

// ScoreLead computes the qualification score for a finalized lead.
func ScoreLead(lead *LeadDraft) int {
	score := 0

	if s, ok := timelineScores[strings.ToLower(strings.TrimSpace(lead.Timeline))]; ok {
		score += s
	} else {
		score += timelineDefaultScore
	}

	score += useCaseScores[CategorizeUseCase(lead.UseCase)]

	if lead.TeamSize != "" && lead.TeamSize != NotSpecified && lead.TeamSize != "1" {
		score += 5
	}

	company := strings.ToLower(strings.TrimSpace(lead.Company))
	if lead.Company != "" && lead.Company != NotSpecified && !individualSentinels[company] {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
