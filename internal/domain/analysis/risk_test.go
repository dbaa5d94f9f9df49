package analysis

import "testing"

func riskFor(t *testing.T, a RiskAssessment, cat RiskCategory) RiskFactor {
	t.Helper()
	for _, f := range a.Factors {
		if f.Category == cat {
			return f
		}
	}
	t.Fatalf("no %s factor in assessment", cat)
	return RiskFactor{}
}

// A diversified, documented, compliant business assesses as overall low risk.
func TestAssessRisksStrongProfile(t *testing.T) {
	a := AssessRisks(mustNormalize(t, baselineProfile()))

	if a.Overall != RiskLow {
		t.Errorf("Overall = %s, want low", a.Overall)
	}
	if len(a.Factors) != 5 {
		t.Fatalf("got %d factors, want 5", len(a.Factors))
	}
	for _, f := range a.Factors {
		if f.Score < 0 || f.Score > 100 {
			t.Errorf("%s score %.1f out of [0,100]", f.Category, f.Score)
		}
	}
}

// Concentrated customers produce a concentration risk level of at least 60
// and lift the overall bucket.
func TestAssessRisksConcentratedCustomers(t *testing.T) {
	p := baselineProfile()
	p.CustomerConcentration = ConcentrationConcentrated

	a := AssessRisks(mustNormalize(t, p))
	f := riskFor(t, a, RiskCustomerConcentration)
	if f.Score < 60 {
		t.Errorf("concentration score = %.1f, want >= 60", f.Score)
	}
	if f.Level != RiskHigh {
		t.Errorf("concentration level = %s, want high", f.Level)
	}
	if a.Overall != RiskHigh {
		t.Errorf("Overall = %s, want high", a.Overall)
	}
}

func TestAssessRisksOverallBuckets(t *testing.T) {
	// Partial documentation lands a single medium factor: overall medium.
	p := baselineProfile()
	p.Checklist.DocumentedProcesses = false

	a := AssessRisks(mustNormalize(t, p))
	if f := riskFor(t, a, RiskDocumentationGap); f.Level != RiskMedium {
		t.Errorf("documentation level = %s, want medium", f.Level)
	}
	if a.Overall != RiskMedium {
		t.Errorf("Overall = %s, want medium", a.Overall)
	}
}

func TestAssessRisksLegalExposure(t *testing.T) {
	tech := baselineProfile()
	tech.Checklist.IntellectualProperty = false
	a := AssessRisks(mustNormalize(t, tech))
	if f := riskFor(t, a, RiskLegalIP); f.Score != riskTechNoIP {
		t.Errorf("tech-no-IP score = %.1f, want %d", f.Score, riskTechNoIP)
	}

	retail := baselineProfile()
	retail.Industry = "retail"
	retail.Checklist.IntellectualProperty = false
	a = AssessRisks(mustNormalize(t, retail))
	if f := riskFor(t, a, RiskLegalIP); f.Score != riskNoIP {
		t.Errorf("non-tech-no-IP score = %.1f, want %d", f.Score, riskNoIP)
	}

	noncompliant := baselineProfile()
	noncompliant.Checklist.LegalCompliance = false
	a = AssessRisks(mustNormalize(t, noncompliant))
	if f := riskFor(t, a, RiskLegalIP); f.Level != RiskHigh {
		t.Errorf("noncompliant level = %s, want high", f.Level)
	}
}

func TestAssessRisksMarketTimingRush(t *testing.T) {
	slow := baselineProfile()
	slow.RevenueGrowthPct = 2
	base := riskFor(t, AssessRisks(mustNormalize(t, slow)), RiskMarketTiming)

	rushed := baselineProfile()
	rushed.RevenueGrowthPct = 2
	rushed.DesiredTimeframe = "under_1_year"
	hurried := riskFor(t, AssessRisks(mustNormalize(t, rushed)), RiskMarketTiming)

	if hurried.Score <= base.Score {
		t.Errorf("rushed timing score %.1f not above unhurried %.1f", hurried.Score, base.Score)
	}
}
