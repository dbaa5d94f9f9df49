package analysis

import (
	"strings"

	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Categorical lookup tables
//
// Every categorical value maps through a fixed table to an ordinal code.
// Unmapped values fail validation upstream; Normalize double-checks and
// returns ErrCodeCategoryUnmapped rather than defaulting silently.
// ─────────────────────────────────────────────────────────────────────────────

// concentrationCodes orders customer concentration from safest to riskiest.
var concentrationCodes = map[CustomerConcentration]int{
	ConcentrationDiversified:  0,
	ConcentrationModerate:     1,
	ConcentrationConcentrated: 2,
}

// marketPositionCodes orders market position from weakest to strongest.
var marketPositionCodes = map[MarketPosition]int{
	PositionWeak:    0,
	PositionAverage: 1,
	PositionStrong:  2,
	PositionLeader:  3,
}

// businessModelCodes scores revenue durability: recurring models score
// highest, transactional models lowest.
var businessModelCodes = map[string]int{
	"saas":          3,
	"subscription":  3,
	"marketplace":   2,
	"manufacturing": 2,
	"services":      1,
	"retail":        1,
	"other":         0,
}

// timeframeYears maps the desired exit timeframe to a numeric year
// equivalent.  "flexible" deliberately maps to 3 — the midpoint of the range
// the other values span — so an undecided seller is treated as neither
// rushed nor indefinitely patient.
var timeframeYears = map[string]float64{
	"under_1_year": 0.5,
	"1_2_years":    1.5,
	"3_5_years":    4,
	"5_plus_years": 6,
	"flexible":     3,
}

// industryRevenueMultiples holds the market-multiple methodology's revenue
// multiples by industry.  Industries absent from the table use
// defaultRevenueMultiple.
var industryRevenueMultiples = map[string]float64{
	"technology":    3.0,
	"software":      3.2,
	"healthcare":    2.5,
	"finance":       2.2,
	"manufacturing": 1.6,
	"services":      1.4,
	"retail":        1.1,
	"hospitality":   1.0,
}

const defaultRevenueMultiple = 1.8

// advantageKeywords is the fixed keyword set the competitive-advantage
// heuristic matches against.
var advantageKeywords = []string{
	"unique", "patent", "proprietary", "brand",
	"exclusive", "trademark", "moat", "network effect",
}

// maturityAgeYears is the company age above which the business counts as
// mature for scoring and valuation purposes.
const maturityAgeYears = 5

// ─────────────────────────────────────────────────────────────────────────────
// NormalizedFeatures
// ─────────────────────────────────────────────────────────────────────────────

// NormalizedFeatures is the canonical, bounded view of a BusinessProfile
// used by the scorer, valuation estimator, and risk assessor.  It is
// immutable after Normalize returns; downstream stages only read it.
type NormalizedFeatures struct {
	Industry          string
	IndustryMultiple  float64
	ConcentrationCode int
	PositionCode      int
	BusinessModelCode int
	TimeframeYears    float64

	Revenue            float64
	ProfitMarginPct    float64
	RevenueGrowthPct   float64
	EmployeeCount      int
	RevenuePerEmployee float64
	ProfitAbsolute     float64
	Mature             bool

	// AdvantageScore is the bounded heuristic score [0,10] of the free-text
	// competitive-advantage description.  See AdvantageStrength.
	AdvantageScore float64

	Checklist Checklist
}

// Normalize converts a validated BusinessProfile into NormalizedFeatures.
// Every categorical is mapped through its fixed table; an unmapped value
// returns ErrCodeCategoryUnmapped and never a silent default.
func Normalize(p *BusinessProfile) (*NormalizedFeatures, error) {
	concentration, ok := concentrationCodes[p.CustomerConcentration]
	if !ok {
		return nil, errors.New(errors.ErrCodeCategoryUnmapped,
			"customer_concentration has no mapping").WithDetail(string(p.CustomerConcentration))
	}
	position, ok := marketPositionCodes[p.MarketPosition]
	if !ok {
		return nil, errors.New(errors.ErrCodeCategoryUnmapped,
			"market_position has no mapping").WithDetail(string(p.MarketPosition))
	}
	model, ok := businessModelCodes[normalizeKey(p.BusinessModel)]
	if !ok {
		return nil, errors.New(errors.ErrCodeCategoryUnmapped,
			"business_model has no mapping").WithDetail(p.BusinessModel)
	}
	years, ok := timeframeYears[normalizeKey(p.DesiredTimeframe)]
	if !ok {
		return nil, errors.New(errors.ErrCodeCategoryUnmapped,
			"desired_timeframe has no mapping").WithDetail(p.DesiredTimeframe)
	}

	industry := normalizeKey(p.Industry)
	multiple, ok := industryRevenueMultiples[industry]
	if !ok {
		multiple = defaultRevenueMultiple
	}

	f := &NormalizedFeatures{
		Industry:          industry,
		IndustryMultiple:  multiple,
		ConcentrationCode: concentration,
		PositionCode:      position,
		BusinessModelCode: model,
		TimeframeYears:    years,

		Revenue:          p.AnnualRevenue,
		ProfitMarginPct:  p.ProfitMarginPct,
		RevenueGrowthPct: p.RevenueGrowthPct,
		EmployeeCount:    p.EmployeeCount,
		Mature:           p.CompanyAgeYears > maturityAgeYears,

		AdvantageScore: AdvantageStrength(p.CompetitiveAdvantage),

		Checklist: p.Checklist,
	}

	// EmployeeCount >= 1 is enforced by profile validation.
	f.RevenuePerEmployee = f.Revenue / float64(f.EmployeeCount)
	f.ProfitAbsolute = f.Revenue * f.ProfitMarginPct / 100

	return f, nil
}

// AdvantageStrength scores a free-text competitive-advantage description on
// a [0,10] scale.  This is an explicitly approximate heuristic, not a precise
// measurement: a length component (one point per 50 characters, capped at 4)
// rewards substance, and each match from a fixed keyword set adds two points.
// The sum is capped at 10.
func AdvantageStrength(text string) float64 {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0
	}

	lengthComponent := float64(len(trimmed)) / 50
	if lengthComponent > 4 {
		lengthComponent = 4
	}

	lower := strings.ToLower(trimmed)
	matches := 0
	for _, kw := range advantageKeywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}

	score := lengthComponent + float64(matches)*2
	if score > 10 {
		score = 10
	}
	return score
}
