package analysis

import "sort"

// ImprovementPhase is one roadmap step: raise a dimension from its current
// score to the target.
type ImprovementPhase struct {
	Dimension    Dimension `json:"dimension"`
	CurrentScore float64   `json:"current_score"`
	TargetScore  float64   `json:"target_score"`
	Actions      []string  `json:"actions"`
	Timeframe    string    `json:"timeframe"`
}

// DefaultTargetScore is the readiness threshold a dimension must reach to be
// excluded from the improvement plan.
const DefaultTargetScore = 90

// Score-gap boundaries for timeframe assignment.
const (
	gapLong   = 30
	gapMedium = 20
	gapShort  = 10
)

// improvementActions is the fixed per-dimension action catalog.
var improvementActions = map[Dimension][]string{
	DimensionFinancial: {
		"Produce three years of reviewed financial statements",
		"Normalize owner compensation and one-off expenses",
		"Build a 12-month rolling forecast with monthly variance review",
	},
	DimensionOperational: {
		"Document every critical process in an operations manual",
		"Cross-train staff so no workflow depends on a single person",
		"Track and improve revenue per employee quarter over quarter",
	},
	DimensionStrategic: {
		"Write down the competitive moat and the evidence behind it",
		"Secure defensible assets: patents, trademarks, exclusive contracts",
		"Publish a three-year growth plan a buyer can underwrite",
	},
	DimensionLegal: {
		"Complete a legal audit and close every open compliance item",
		"Register and assign all intellectual property to the company",
		"Standardize customer and supplier contracts with assignability clauses",
	},
	DimensionMarket: {
		"Reduce top-customer revenue share below 20%",
		"Document market size, share, and the pipeline behind growth claims",
		"Lock in multi-year agreements with strategic customers",
	},
	DimensionManagement: {
		"Build a management layer that runs day-to-day without the owner",
		"Put retention agreements in place for key staff",
		"Delegate and document decision authority",
	},
}

// timeframeForGap maps a score gap to a roadmap duration.  Larger gaps get
// longer timeframes.
func timeframeForGap(gap float64) string {
	switch {
	case gap > gapLong:
		return "6+ months"
	case gap > gapMedium:
		return "3-6 months"
	case gap > gapShort:
		return "1-3 months"
	default:
		return "30 days"
	}
}

// BuildImprovementPlan returns one phase per dimension scoring below target,
// sorted ascending by current score so the weakest dimension leads the
// roadmap.  Dimensions at or above target are excluded.  A non-positive
// target falls back to DefaultTargetScore.
func BuildImprovementPlan(scores []DimensionScore, target float64) []ImprovementPhase {
	if target <= 0 {
		target = DefaultTargetScore
	}

	phases := make([]ImprovementPhase, 0, len(scores))
	for _, s := range scores {
		if s.Score >= target {
			continue
		}
		phases = append(phases, ImprovementPhase{
			Dimension:    s.Dimension,
			CurrentScore: s.Score,
			TargetScore:  target,
			Actions:      improvementActions[s.Dimension],
			Timeframe:    timeframeForGap(target - s.Score),
		})
	}

	sort.SliceStable(phases, func(i, j int) bool {
		return phases[i].CurrentScore < phases[j].CurrentScore
	})

	return phases
}
