// Package analysis implements the exit-readiness and valuation decision
// engine: feature normalization, dimension scoring, blended valuation, risk
// assessment, recommendation generation, and improvement planning.  All
// computation in this package is pure and deterministic; the only shared
// state in the engine lives outside it (the rate limiter's counter store).
package analysis

import (
	"strings"

	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// CustomerConcentration describes how dependent revenue is on few customers.
type CustomerConcentration string

const (
	ConcentrationDiversified  CustomerConcentration = "diversified"
	ConcentrationModerate     CustomerConcentration = "moderate"
	ConcentrationConcentrated CustomerConcentration = "concentrated"
)

// MarketPosition describes the company's standing in its market.
type MarketPosition string

const (
	PositionLeader  MarketPosition = "leader"
	PositionStrong  MarketPosition = "strong"
	PositionAverage MarketPosition = "average"
	PositionWeak    MarketPosition = "weak"
)

// Checklist carries the boolean readiness assessment flags submitted with a
// profile.  Every flag contributes fixed points to dimension scores and
// drives recommendation triggers.
type Checklist struct {
	DocumentedProcesses  bool `json:"documented_processes"`
	FinancialRecords     bool `json:"financial_records"`
	LegalCompliance      bool `json:"legal_compliance"`
	IntellectualProperty bool `json:"intellectual_property"`
}

// BusinessProfile is the engine's input: a structured description of a
// business seeking an exit-readiness analysis.  The profile is validated
// exhaustively before any computation; unknown categorical values are
// validation errors, never silently-defaulted.
type BusinessProfile struct {
	CompanyName           string                `json:"company_name"`
	Industry              string                `json:"industry"`
	CompanyAgeYears       float64               `json:"company_age_years"`
	EmployeeCount         int                   `json:"employee_count"`
	AnnualRevenue         float64               `json:"annual_revenue"`
	ProfitMarginPct       float64               `json:"profit_margin_pct"`
	RevenueGrowthPct      float64               `json:"revenue_growth_pct"`
	BusinessModel         string                `json:"business_model"`
	CustomerConcentration CustomerConcentration `json:"customer_concentration"`
	MarketPosition        MarketPosition        `json:"market_position"`
	CompetitiveAdvantage  string                `json:"competitive_advantage"`
	ExitReason            string                `json:"exit_reason"`
	DesiredTimeframe      string                `json:"desired_timeframe"`
	Checklist             Checklist             `json:"checklist"`
}

// Validate checks every field of the profile and returns a ValidationError
// carrying the complete set of violations, or nil when the profile is valid.
// All violations are collected in one pass so a caller never has to fix
// fields one round trip at a time.
func (p *BusinessProfile) Validate() error {
	ve := errors.NewValidationError()

	if strings.TrimSpace(p.CompanyName) == "" {
		ve.Add("company_name", "is required")
	}
	if strings.TrimSpace(p.Industry) == "" {
		ve.Add("industry", "is required")
	}
	if p.CompanyAgeYears < 0 {
		ve.Addf("company_age_years", "must be >= 0, got %.1f", p.CompanyAgeYears)
	}
	if p.EmployeeCount < 1 {
		ve.Addf("employee_count", "must be >= 1, got %d", p.EmployeeCount)
	}
	if p.AnnualRevenue < 0 {
		ve.Addf("annual_revenue", "must be >= 0, got %.2f", p.AnnualRevenue)
	}
	if p.ProfitMarginPct < -100 || p.ProfitMarginPct > 100 {
		ve.Addf("profit_margin_pct", "must be in [-100,100], got %.1f", p.ProfitMarginPct)
	}
	if p.RevenueGrowthPct < -100 || p.RevenueGrowthPct > 1000 {
		ve.Addf("revenue_growth_pct", "must be in [-100,1000], got %.1f", p.RevenueGrowthPct)
	}
	if _, ok := businessModelCodes[normalizeKey(p.BusinessModel)]; !ok {
		ve.Addf("business_model", "unknown value %q", p.BusinessModel)
	}
	if _, ok := concentrationCodes[p.CustomerConcentration]; !ok {
		ve.Addf("customer_concentration", "unknown value %q", p.CustomerConcentration)
	}
	if _, ok := marketPositionCodes[p.MarketPosition]; !ok {
		ve.Addf("market_position", "unknown value %q", p.MarketPosition)
	}
	if _, ok := timeframeYears[normalizeKey(p.DesiredTimeframe)]; !ok {
		ve.Addf("desired_timeframe", "unknown value %q", p.DesiredTimeframe)
	}

	return ve.ErrOrNil()
}

// normalizeKey canonicalizes free-form categorical input: lower-case,
// trimmed, spaces collapsed to underscores.
func normalizeKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}
