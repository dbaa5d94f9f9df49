package analysis

import "testing"

func mustNormalize(t *testing.T, p *BusinessProfile) *NormalizedFeatures {
	t.Helper()
	f, err := Normalize(p)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	return f
}

// A strong, fully-documented diversified technology business scores at least
// 70 on every dimension.
func TestScoreDimensionsStrongProfile(t *testing.T) {
	scores := ScoreDimensions(mustNormalize(t, baselineProfile()))

	if len(scores) != len(AllDimensions()) {
		t.Fatalf("got %d scores, want %d", len(scores), len(AllDimensions()))
	}
	for _, s := range scores {
		if s.Score < 70 {
			t.Errorf("%s = %.1f, want >= 70", s.Dimension, s.Score)
		}
	}
}

// Dropping the financial-records flag strictly lowers the financial score.
func TestScoreFinancialDropsWithoutRecords(t *testing.T) {
	withRecords := ScoreDimensions(mustNormalize(t, baselineProfile()))

	p := baselineProfile()
	p.Checklist.FinancialRecords = false
	withoutRecords := ScoreDimensions(mustNormalize(t, p))

	before := ScoreFor(withRecords, DimensionFinancial)
	after := ScoreFor(withoutRecords, DimensionFinancial)
	if after >= before {
		t.Errorf("financial score = %.1f without records, want < %.1f", after, before)
	}
}

func TestScoreDimensionsOrdering(t *testing.T) {
	scores := ScoreDimensions(mustNormalize(t, baselineProfile()))
	for i, d := range AllDimensions() {
		if scores[i].Dimension != d {
			t.Errorf("scores[%d] = %s, want %s", i, scores[i].Dimension, d)
		}
	}
}

// Every score stays within [0,100] across a spread of profiles, including
// degenerate ones.
func TestScoreBounds(t *testing.T) {
	profiles := []*BusinessProfile{
		baselineProfile(),
		{
			CompanyName: "Corner Shop", Industry: "retail",
			CompanyAgeYears: 1, EmployeeCount: 1, AnnualRevenue: 0,
			ProfitMarginPct: -100, RevenueGrowthPct: -100,
			BusinessModel: "retail", CustomerConcentration: ConcentrationConcentrated,
			MarketPosition: PositionWeak, DesiredTimeframe: "under_1_year",
		},
		{
			CompanyName: "MegaCorp", Industry: "software",
			CompanyAgeYears: 30, EmployeeCount: 500, AnnualRevenue: 900_000_000,
			ProfitMarginPct: 40, RevenueGrowthPct: 1000,
			BusinessModel: "subscription", CustomerConcentration: ConcentrationDiversified,
			MarketPosition: PositionLeader, DesiredTimeframe: "5_plus_years",
			CompetitiveAdvantage: "unique patent proprietary brand exclusive trademark moat network effect",
			Checklist: Checklist{
				DocumentedProcesses: true, FinancialRecords: true,
				LegalCompliance: true, IntellectualProperty: true,
			},
		},
	}

	for _, p := range profiles {
		for _, s := range ScoreDimensions(mustNormalize(t, p)) {
			if s.Score < 0 || s.Score > 100 {
				t.Errorf("%s: %s = %.1f, out of [0,100]", p.CompanyName, s.Dimension, s.Score)
			}
		}
	}
}

func TestScoreFor(t *testing.T) {
	scores := []DimensionScore{{DimensionLegal, 42}}
	if got := ScoreFor(scores, DimensionLegal); got != 42 {
		t.Errorf("ScoreFor(legal) = %.1f", got)
	}
	if got := ScoreFor(scores, DimensionMarket); got != 0 {
		t.Errorf("ScoreFor(absent) = %.1f, want 0", got)
	}
}
