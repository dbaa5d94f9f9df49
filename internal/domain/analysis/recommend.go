package analysis

import "sort"

// Priority ranks a recommendation's urgency.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// priorityRank orders priorities for sorting; lower rank sorts first.
var priorityRank = map[Priority]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

// Pillar is the capability area a recommendation is routed to.
type Pillar string

const (
	PillarCoach       Pillar = "coach"
	PillarLearn       Pillar = "learn"
	PillarExecute     Pillar = "execute"
	PillarCollaborate Pillar = "collaborate"
)

// Recommendation is one actionable suggestion in the report.
type Recommendation struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	Priority        Priority `json:"priority"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	EstimatedImpact string   `json:"estimated_impact"`
	Timeframe       string   `json:"timeframe"`
	Pillar          Pillar   `json:"pillar"`

	// impactValue is the numeric midpoint of EstimatedImpact, used only for
	// deterministic ordering.  It is not part of the report payload.
	impactValue float64
}

// lowDimensionThreshold marks a dimension score as weak enough to warrant a
// recommendation on its own.
const lowDimensionThreshold = 60

// ruleInput is everything a recommendation trigger may inspect.
type ruleInput struct {
	Profile  *BusinessProfile
	Features *NormalizedFeatures
	Scores   []DimensionScore
	Risks    RiskAssessment
}

// recommendationRule pairs a trigger condition with a recommendation
// template.  Rules are evaluated in declaration order; that order is the
// final tie-breaker after priority and impact, which keeps the output
// deterministic for identical inputs.
type recommendationRule struct {
	ID          string
	Category    string
	Priority    Priority
	Title       string
	Description string
	Impact      string
	ImpactValue float64
	Timeframe   string
	Pillar      Pillar
	Trigger     func(in ruleInput) bool
}

// recommendationRules is the fixed trigger table.  Hard gates (missing
// audited financials, unresolved compliance) are always high priority
// regardless of scores.
var recommendationRules = []recommendationRule{
	{
		ID:          "organize-financial-records",
		Category:    "financial",
		Priority:    PriorityHigh,
		Title:       "Organize audited financial records",
		Description: "Buyers will not proceed without clean, verifiable financials. Engage an accountant to produce at least three years of reviewed statements.",
		Impact:      "+15-25 readiness points",
		ImpactValue: 20,
		Timeframe:   "1-3 months",
		Pillar:      PillarExecute,
		Trigger: func(in ruleInput) bool {
			return !in.Profile.Checklist.FinancialRecords
		},
	},
	{
		ID:          "resolve-legal-compliance",
		Category:    "legal",
		Priority:    PriorityHigh,
		Title:       "Resolve outstanding legal and compliance issues",
		Description: "Unresolved compliance matters surface in due diligence and can kill a deal outright. Commission a legal audit and close every open item.",
		Impact:      "+20-30 readiness points",
		ImpactValue: 25,
		Timeframe:   "3-6 months",
		Pillar:      PillarExecute,
		Trigger: func(in ruleInput) bool {
			return !in.Profile.Checklist.LegalCompliance
		},
	},
	{
		ID:          "protect-intellectual-property",
		Category:    "legal",
		Priority:    PriorityHigh,
		Title:       "Protect intellectual property",
		Description: "In a technology business the IP is the asset being bought. File for the relevant patents and trademarks and paper every assignment.",
		Impact:      "+15-20 readiness points",
		ImpactValue: 18,
		Timeframe:   "3-6 months",
		Pillar:      PillarExecute,
		Trigger: func(in ruleInput) bool {
			tech := in.Features.Industry == "technology" || in.Features.Industry == "software"
			return tech && !in.Profile.Checklist.IntellectualProperty
		},
	},
	{
		ID:          "register-intellectual-property",
		Category:    "legal",
		Priority:    PriorityMedium,
		Title:       "Formalize intellectual property ownership",
		Description: "Register trademarks and document ownership of key business assets so they transfer cleanly at closing.",
		Impact:      "+8-15 readiness points",
		ImpactValue: 12,
		Timeframe:   "1-3 months",
		Pillar:      PillarExecute,
		Trigger: func(in ruleInput) bool {
			tech := in.Features.Industry == "technology" || in.Features.Industry == "software"
			return !tech && !in.Profile.Checklist.IntellectualProperty
		},
	},
	{
		ID:          "diversify-customer-base",
		Category:    "market",
		Priority:    PriorityMedium,
		Title:       "Diversify the customer base",
		Description: "Concentrated revenue is a valuation discount and a deal risk. Target new segments so no customer exceeds 20% of revenue.",
		Impact:      "+10-20 readiness points",
		ImpactValue: 15,
		Timeframe:   "6+ months",
		Pillar:      PillarCoach,
		Trigger: func(in ruleInput) bool {
			return in.Profile.CustomerConcentration == ConcentrationConcentrated
		},
	},
	{
		ID:          "document-core-processes",
		Category:    "operational",
		Priority:    PriorityMedium,
		Title:       "Document core operating processes",
		Description: "Written procedures let a buyer run the business without you. Capture every critical workflow in an operations manual.",
		Impact:      "+10-20 readiness points",
		ImpactValue: 15,
		Timeframe:   "1-3 months",
		Pillar:      PillarLearn,
		Trigger: func(in ruleInput) bool {
			return !in.Profile.Checklist.DocumentedProcesses
		},
	},
	{
		ID:          "reverse-revenue-decline",
		Category:    "financial",
		Priority:    PriorityMedium,
		Title:       "Stabilize and reverse revenue decline",
		Description: "A shrinking top line compounds every other discount a buyer applies. Prioritize retention and pricing before going to market.",
		Impact:      "+10-18 readiness points",
		ImpactValue: 14,
		Timeframe:   "6+ months",
		Pillar:      PillarCoach,
		Trigger: func(in ruleInput) bool {
			return in.Features.RevenueGrowthPct < 0
		},
	},
	{
		ID:          "reduce-key-person-dependency",
		Category:    "management",
		Priority:    PriorityMedium,
		Title:       "Reduce key-person dependency",
		Description: "Build a second management layer and delegate decision authority so the business does not hinge on the owner.",
		Impact:      "+10-15 readiness points",
		ImpactValue: 12,
		Timeframe:   "3-6 months",
		Pillar:      PillarCoach,
		Trigger: func(in ruleInput) bool {
			for _, r := range in.Risks.Factors {
				if r.Category == RiskKeyPersonDependency && r.Level != RiskLow {
					return true
				}
			}
			return false
		},
	},
	{
		ID:          "improve-profitability",
		Category:    "financial",
		Priority:    PriorityMedium,
		Title:       "Improve profit margins",
		Description: "Weak margins cap the earnings-based valuation. Review pricing and cost structure for a realistic path above 10% net margin.",
		Impact:      "+8-15 readiness points",
		ImpactValue: 11,
		Timeframe:   "3-6 months",
		Pillar:      PillarCoach,
		Trigger: func(in ruleInput) bool {
			return ScoreFor(in.Scores, DimensionFinancial) < lowDimensionThreshold
		},
	},
	{
		ID:          "strengthen-market-position",
		Category:    "strategic",
		Priority:    PriorityLow,
		Title:       "Strengthen competitive positioning",
		Description: "Articulate and defend what makes the business hard to replicate; a documented moat supports a premium multiple.",
		Impact:      "+5-12 readiness points",
		ImpactValue: 8,
		Timeframe:   "6+ months",
		Pillar:      PillarLearn,
		Trigger: func(in ruleInput) bool {
			return ScoreFor(in.Scores, DimensionStrategic) < lowDimensionThreshold
		},
	},
	{
		ID:          "streamline-operations",
		Category:    "operational",
		Priority:    PriorityLow,
		Title:       "Streamline operations for buyer handover",
		Description: "Tighten per-employee productivity and remove owner-only workflows ahead of diligence.",
		Impact:      "+5-10 readiness points",
		ImpactValue: 7,
		Timeframe:   "3-6 months",
		Pillar:      PillarExecute,
		Trigger: func(in ruleInput) bool {
			return ScoreFor(in.Scores, DimensionOperational) < lowDimensionThreshold
		},
	},
	{
		ID:          "engage-exit-advisor",
		Category:    "strategic",
		Priority:    PriorityLow,
		Title:       "Engage an exit advisor early",
		Description: "A rushed sale leaves value on the table. With a short desired timeframe, professional deal support pays for itself.",
		Impact:      "+3-8 readiness points",
		ImpactValue: 5,
		Timeframe:   "30 days",
		Pillar:      PillarCollaborate,
		Trigger: func(in ruleInput) bool {
			return in.Features.TimeframeYears < rushTimeframeYears
		},
	},
}

// GenerateRecommendations evaluates the rule table against the analysis
// inputs and returns the matched recommendations sorted by priority, then by
// numeric impact descending, then by rule declaration order.
func GenerateRecommendations(p *BusinessProfile, f *NormalizedFeatures, scores []DimensionScore, risks RiskAssessment) []Recommendation {
	in := ruleInput{Profile: p, Features: f, Scores: scores, Risks: risks}

	recs := make([]Recommendation, 0, len(recommendationRules))
	for _, rule := range recommendationRules {
		if !rule.Trigger(in) {
			continue
		}
		recs = append(recs, Recommendation{
			ID:              rule.ID,
			Category:        rule.Category,
			Priority:        rule.Priority,
			Title:           rule.Title,
			Description:     rule.Description,
			EstimatedImpact: rule.Impact,
			Timeframe:       rule.Timeframe,
			Pillar:          rule.Pillar,
			impactValue:     rule.ImpactValue,
		})
	}

	// Stable sort keeps declaration order as the final tie-breaker.
	sort.SliceStable(recs, func(i, j int) bool {
		if priorityRank[recs[i].Priority] != priorityRank[recs[j].Priority] {
			return priorityRank[recs[i].Priority] < priorityRank[recs[j].Priority]
		}
		return recs[i].impactValue > recs[j].impactValue
	})

	return recs
}
