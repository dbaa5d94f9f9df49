package analysis

import (
	"strings"
	"testing"

	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// baselineProfile is a strong, fully-documented technology business used as
// the starting point for most scenario tests.
func baselineProfile() *BusinessProfile {
	return &BusinessProfile{
		CompanyName:           "Acme Cloudworks",
		Industry:              "technology",
		CompanyAgeYears:       8,
		EmployeeCount:         25,
		AnnualRevenue:         5_000_000,
		ProfitMarginPct:       15,
		RevenueGrowthPct:      15,
		BusinessModel:         "saas",
		CustomerConcentration: ConcentrationDiversified,
		MarketPosition:        PositionStrong,
		CompetitiveAdvantage:  "Proprietary patented platform with a unique brand and network effect moat",
		ExitReason:            "retirement",
		DesiredTimeframe:      "3_5_years",
		Checklist: Checklist{
			DocumentedProcesses:  true,
			FinancialRecords:     true,
			LegalCompliance:      true,
			IntellectualProperty: true,
		},
	}
}

func TestValidateAcceptsBaseline(t *testing.T) {
	if err := baselineProfile().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidateCollectsAllViolations(t *testing.T) {
	p := &BusinessProfile{
		CompanyName:           "",
		Industry:              "",
		CompanyAgeYears:       -1,
		EmployeeCount:         0,
		AnnualRevenue:         -5,
		ProfitMarginPct:       150,
		RevenueGrowthPct:      2000,
		BusinessModel:         "crypto",
		CustomerConcentration: "tight",
		MarketPosition:        "dominant",
		DesiredTimeframe:      "someday",
	}

	err := p.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	var ve *errors.ValidationError
	if !errors.AsValidationError(err, &ve) {
		t.Fatalf("Validate() returned %T, want *ValidationError", err)
	}
	if got := len(ve.Violations); got != 11 {
		t.Fatalf("violations = %d, want 11: %v", got, ve.Violations)
	}

	for _, field := range []string{
		"company_name", "industry", "company_age_years", "employee_count",
		"annual_revenue", "profit_margin_pct", "revenue_growth_pct",
		"business_model", "customer_concentration", "market_position",
		"desired_timeframe",
	} {
		found := false
		for _, v := range ve.Violations {
			if v.Field == field {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing violation for %q", field)
		}
	}
}

func TestValidateSingleViolation(t *testing.T) {
	p := baselineProfile()
	p.EmployeeCount = 0

	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "employee_count") {
		t.Fatalf("Validate() = %v, want employee_count violation", err)
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := []struct{ in, want string }{
		{"SaaS", "saas"},
		{"  3-5 Years ", "3_5_years"},
		{"under 1 year", "under_1_year"},
	}
	for _, tt := range tests {
		if got := normalizeKey(tt.in); got != tt.want {
			t.Errorf("normalizeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
