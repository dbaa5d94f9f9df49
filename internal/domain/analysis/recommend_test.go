package analysis

import "testing"

func generateFor(t *testing.T, p *BusinessProfile) []Recommendation {
	t.Helper()
	f := mustNormalize(t, p)
	scores := ScoreDimensions(f)
	risks := AssessRisks(f)
	return GenerateRecommendations(p, f, scores, risks)
}

func hasRecommendation(recs []Recommendation, id string) bool {
	for _, r := range recs {
		if r.ID == id {
			return true
		}
	}
	return false
}

func findRecommendation(t *testing.T, recs []Recommendation, id string) Recommendation {
	t.Helper()
	for _, r := range recs {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("recommendation %q not generated", id)
	return Recommendation{}
}

// A strong profile with protected IP gets no IP recommendation.
func TestGenerateRecommendationsStrongProfile(t *testing.T) {
	recs := generateFor(t, baselineProfile())
	if hasRecommendation(recs, "protect-intellectual-property") {
		t.Error("protect-intellectual-property generated despite IP being protected")
	}
	if hasRecommendation(recs, "register-intellectual-property") {
		t.Error("register-intellectual-property generated despite IP being protected")
	}
}

// Missing financial records always triggers a high-priority recommendation.
func TestGenerateRecommendationsMissingFinancials(t *testing.T) {
	p := baselineProfile()
	p.Checklist.FinancialRecords = false

	recs := generateFor(t, p)
	r := findRecommendation(t, recs, "organize-financial-records")
	if r.Priority != PriorityHigh {
		t.Errorf("priority = %s, want high", r.Priority)
	}
	if r.Category != "financial" {
		t.Errorf("category = %q, want financial", r.Category)
	}
}

// Concentrated customers trigger a medium-priority diversification
// recommendation.
func TestGenerateRecommendationsConcentration(t *testing.T) {
	p := baselineProfile()
	p.CustomerConcentration = ConcentrationConcentrated

	recs := generateFor(t, p)
	r := findRecommendation(t, recs, "diversify-customer-base")
	if r.Priority != PriorityMedium {
		t.Errorf("priority = %s, want medium", r.Priority)
	}
}

// Unprotected IP in a technology business is a high-priority gate; in other
// industries it is medium.
func TestGenerateRecommendationsIPByIndustry(t *testing.T) {
	tech := baselineProfile()
	tech.Checklist.IntellectualProperty = false
	r := findRecommendation(t, generateFor(t, tech), "protect-intellectual-property")
	if r.Priority != PriorityHigh {
		t.Errorf("tech IP priority = %s, want high", r.Priority)
	}

	retail := baselineProfile()
	retail.Industry = "retail"
	retail.Checklist.IntellectualProperty = false
	r = findRecommendation(t, generateFor(t, retail), "register-intellectual-property")
	if r.Priority != PriorityMedium {
		t.Errorf("non-tech IP priority = %s, want medium", r.Priority)
	}
}

// Ordering is non-increasing in priority, then non-increasing in numeric
// impact within equal priority.
func TestGenerateRecommendationsOrdering(t *testing.T) {
	p := &BusinessProfile{
		CompanyName: "Struggling Widgets", Industry: "technology",
		CompanyAgeYears: 2, EmployeeCount: 3, AnnualRevenue: 400_000,
		ProfitMarginPct: -5, RevenueGrowthPct: -10,
		BusinessModel: "services", CustomerConcentration: ConcentrationConcentrated,
		MarketPosition: PositionWeak, DesiredTimeframe: "under_1_year",
	}

	recs := generateFor(t, p)
	if len(recs) < 5 {
		t.Fatalf("expected a rich recommendation set, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		prev, cur := recs[i-1], recs[i]
		if priorityRank[cur.Priority] < priorityRank[prev.Priority] {
			t.Errorf("recs[%d] %s outranks recs[%d] %s", i, cur.Priority, i-1, prev.Priority)
		}
		if cur.Priority == prev.Priority && cur.impactValue > prev.impactValue {
			t.Errorf("recs[%d] impact %.1f exceeds recs[%d] impact %.1f within %s",
				i, cur.impactValue, i-1, prev.impactValue, cur.Priority)
		}
	}
}

// Identical inputs produce identical recommendation lists.
func TestGenerateRecommendationsDeterministic(t *testing.T) {
	p := baselineProfile()
	p.Checklist.DocumentedProcesses = false
	p.CustomerConcentration = ConcentrationConcentrated

	first := generateFor(t, p)
	second := generateFor(t, p)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("position %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}
