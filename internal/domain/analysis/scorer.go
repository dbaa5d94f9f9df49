package analysis

// Dimension is one readiness axis scored on a 0–100 scale.
type Dimension string

const (
	DimensionFinancial   Dimension = "financial"
	DimensionOperational Dimension = "operational"
	DimensionStrategic   Dimension = "strategic"
	DimensionLegal       Dimension = "legal"
	DimensionMarket      Dimension = "market"
	DimensionManagement  Dimension = "management"
)

// AllDimensions returns the canonical ordered list of readiness dimensions.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionFinancial,
		DimensionOperational,
		DimensionStrategic,
		DimensionLegal,
		DimensionMarket,
		DimensionManagement,
	}
}

// DimensionScore is one readiness axis score.
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"` // 0–100
}

// ─────────────────────────────────────────────────────────────────────────────
// Scoring constants
//
// Every weight and threshold is a named constant so that scoring behavior is
// auditable and reproducible; nothing is derived at runtime.
// ─────────────────────────────────────────────────────────────────────────────

// Checklist flag point values.
const (
	ptsFinancialRecords     = 25
	ptsDocumentedProcsOps   = 35
	ptsDocumentedProcsLegal = 15
	ptsDocumentedProcsMgmt  = 30
	ptsLegalCompliance      = 40
	ptsIntellectualProperty = 30
)

// Profit margin thresholds (percent) and their point awards.
const (
	marginHighPct = 20
	marginGoodPct = 10

	ptsMarginHigh     = 35
	ptsMarginGood     = 25
	ptsMarginPositive = 15
)

// Revenue growth thresholds (percent) and their point awards.
const (
	growthHighPct = 20
	growthGoodPct = 5

	ptsGrowthHigh     = 25
	ptsGrowthGood     = 15
	ptsGrowthPositive = 10
)

// Revenue-per-employee productivity thresholds (currency units).
const (
	revPerEmployeeHigh = 150_000
	revPerEmployeeGood = 75_000

	ptsProductivityHigh = 15
	ptsProductivityGood = 10
	ptsProductivityLow  = 5

	ptsProductivityOpsHigh = 25
	ptsProductivityOpsGood = 15
	ptsProductivityOpsLow  = 5
)

// Team size thresholds used for operational resilience and key-person
// independence.
const (
	teamSizeLarge  = 25
	teamSizeMedium = 10
	teamSizeSmall  = 5
)

// Strategic scoring scale factors.
const (
	advantageScaleStrategic = 5  // AdvantageScore [0,10] → up to 50 points
	positionScaleStrategic  = 10 // PositionCode [0,3] → up to 30 points
	ptsStrategicGrowth      = 20
	strategicGrowthPct      = 10
)

// Market scoring constants.
const (
	ptsMarketBase           = 10
	positionScaleMarket     = 40.0 / 3.0 // PositionCode [0,3] → up to 40 points
	ptsMarketDiversified    = 30
	ptsMarketModerate       = 18
	ptsMarketConcentrated   = 5
	ptsMarketGrowthMomentum = 20
	ptsMarketGrowthFlat     = 10
	marketMomentumPct       = 10
)

// Maturity point awards.
const (
	ptsMaturityOps   = 20
	ptsMaturityLegal = 15
	ptsMaturityMgmt  = 20
)

// Management scoring constants.
const (
	ptsTeamLargeMgmt  = 30
	ptsTeamMediumMgmt = 20
	ptsTeamSmallMgmt  = 10
	ptsTeamTinyMgmt   = 5

	ptsTeamMediumOps = 15
	ptsTeamSmallOps  = 8

	ptsMgmtDiversified = 20
	ptsMgmtModerate    = 10
)

// clampScore bounds a raw point sum to the valid [0,100] score range.
// Out-of-range intermediate sums are clamped, never wrapped.
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// ScoreDimensions computes all six readiness dimension scores from
// normalized features.  The result is ordered per AllDimensions and every
// score is guaranteed to be within [0,100].
func ScoreDimensions(f *NormalizedFeatures) []DimensionScore {
	return []DimensionScore{
		{DimensionFinancial, scoreFinancial(f)},
		{DimensionOperational, scoreOperational(f)},
		{DimensionStrategic, scoreStrategic(f)},
		{DimensionLegal, scoreLegal(f)},
		{DimensionMarket, scoreMarket(f)},
		{DimensionManagement, scoreManagement(f)},
	}
}

// scoreFinancial weighs record quality, profitability, growth, and
// productivity.
func scoreFinancial(f *NormalizedFeatures) float64 {
	var s float64
	if f.Checklist.FinancialRecords {
		s += ptsFinancialRecords
	}
	switch {
	case f.ProfitMarginPct >= marginHighPct:
		s += ptsMarginHigh
	case f.ProfitMarginPct >= marginGoodPct:
		s += ptsMarginGood
	case f.ProfitMarginPct >= 0:
		s += ptsMarginPositive
	}
	switch {
	case f.RevenueGrowthPct >= growthHighPct:
		s += ptsGrowthHigh
	case f.RevenueGrowthPct >= growthGoodPct:
		s += ptsGrowthGood
	case f.RevenueGrowthPct >= 0:
		s += ptsGrowthPositive
	}
	switch {
	case f.RevenuePerEmployee >= revPerEmployeeHigh:
		s += ptsProductivityHigh
	case f.RevenuePerEmployee >= revPerEmployeeGood:
		s += ptsProductivityGood
	default:
		s += ptsProductivityLow
	}
	return clampScore(s)
}

// scoreOperational weighs process documentation, productivity, maturity, and
// team depth.
func scoreOperational(f *NormalizedFeatures) float64 {
	var s float64
	if f.Checklist.DocumentedProcesses {
		s += ptsDocumentedProcsOps
	}
	switch {
	case f.RevenuePerEmployee >= revPerEmployeeHigh:
		s += ptsProductivityOpsHigh
	case f.RevenuePerEmployee >= revPerEmployeeGood:
		s += ptsProductivityOpsGood
	default:
		s += ptsProductivityOpsLow
	}
	if f.Mature {
		s += ptsMaturityOps
	}
	if f.EmployeeCount >= teamSizeMedium {
		s += ptsTeamMediumOps
	} else {
		s += ptsTeamSmallOps
	}
	return clampScore(s)
}

// scoreStrategic weighs the competitive-advantage heuristic, market
// position, and growth momentum.
func scoreStrategic(f *NormalizedFeatures) float64 {
	s := f.AdvantageScore * advantageScaleStrategic
	s += float64(f.PositionCode) * positionScaleStrategic
	if f.RevenueGrowthPct >= strategicGrowthPct {
		s += ptsStrategicGrowth
	}
	return clampScore(s)
}

// scoreLegal weighs compliance, IP protection, documentation, and maturity.
func scoreLegal(f *NormalizedFeatures) float64 {
	var s float64
	if f.Checklist.LegalCompliance {
		s += ptsLegalCompliance
	}
	if f.Checklist.IntellectualProperty {
		s += ptsIntellectualProperty
	}
	if f.Checklist.DocumentedProcesses {
		s += ptsDocumentedProcsLegal
	}
	if f.Mature {
		s += ptsMaturityLegal
	}
	return clampScore(s)
}

// scoreMarket weighs position, customer diversification, and momentum.
func scoreMarket(f *NormalizedFeatures) float64 {
	s := float64(ptsMarketBase)
	s += float64(f.PositionCode) * positionScaleMarket
	switch f.ConcentrationCode {
	case concentrationCodes[ConcentrationDiversified]:
		s += ptsMarketDiversified
	case concentrationCodes[ConcentrationModerate]:
		s += ptsMarketModerate
	default:
		s += ptsMarketConcentrated
	}
	if f.RevenueGrowthPct >= marketMomentumPct {
		s += ptsMarketGrowthMomentum
	} else {
		s += ptsMarketGrowthFlat
	}
	return clampScore(s)
}

// scoreManagement weighs key-person independence: documented processes, team
// depth, maturity, and customer diversification.
func scoreManagement(f *NormalizedFeatures) float64 {
	var s float64
	if f.Checklist.DocumentedProcesses {
		s += ptsDocumentedProcsMgmt
	}
	switch {
	case f.EmployeeCount >= teamSizeLarge:
		s += ptsTeamLargeMgmt
	case f.EmployeeCount >= teamSizeMedium:
		s += ptsTeamMediumMgmt
	case f.EmployeeCount >= teamSizeSmall:
		s += ptsTeamSmallMgmt
	default:
		s += ptsTeamTinyMgmt
	}
	if f.Mature {
		s += ptsMaturityMgmt
	}
	switch f.ConcentrationCode {
	case concentrationCodes[ConcentrationDiversified]:
		s += ptsMgmtDiversified
	case concentrationCodes[ConcentrationModerate]:
		s += ptsMgmtModerate
	}
	return clampScore(s)
}

// ScoreFor returns the score for one dimension from a computed score slice,
// or 0 when the dimension is absent.
func ScoreFor(scores []DimensionScore, d Dimension) float64 {
	for _, s := range scores {
		if s.Dimension == d {
			return s.Score
		}
	}
	return 0
}
