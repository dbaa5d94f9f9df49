package analysis

// ValueEnhancement projects the valuation uplift from executing the
// improvement plan.
type ValueEnhancement struct {
	CurrentValue       float64 `json:"current_value"`
	PotentialValue     float64 `json:"potential_value"`
	ValueIncrease      float64 `json:"value_increase"`
	PercentageIncrease float64 `json:"percentage_increase"`
}

// Per-dimension proxy adjustments: how many input units one point of score
// improvement is worth.  Raising a dimension's score adjusts the numeric
// valuation input it most directly drives, then the standard blended
// valuation is re-run.  Valuation logic is never duplicated here.
const (
	marginPerFinancialPoint   = 0.10
	marginPerOperationalPoint = 0.05
	marginPerLegalPoint       = 0.03
	marginPerManagementPoint  = 0.03
	growthPerStrategicPoint   = 0.10
	growthPerMarketPoint      = 0.05

	// A market-dimension gap above this improves customer concentration by
	// one step in the projected scenario.
	concentrationStepGap = 10
)

// ProjectEnhancement computes the potential valuation after the improvement
// plan is executed.  It builds an adjusted copy of the normalized features,
// re-runs the blended valuation, and reports the delta against the current
// estimate.  An empty plan projects zero uplift.
func ProjectEnhancement(f *NormalizedFeatures, current ValuationRange, plan []ImprovementPhase) ValueEnhancement {
	if len(plan) == 0 {
		return ValueEnhancement{
			CurrentValue:   current.Point,
			PotentialValue: current.Point,
		}
	}

	adjusted := *f
	for _, phase := range plan {
		gap := phase.TargetScore - phase.CurrentScore
		if gap <= 0 {
			continue
		}
		switch phase.Dimension {
		case DimensionFinancial:
			adjusted.ProfitMarginPct += gap * marginPerFinancialPoint
		case DimensionOperational:
			adjusted.ProfitMarginPct += gap * marginPerOperationalPoint
		case DimensionStrategic:
			adjusted.RevenueGrowthPct += gap * growthPerStrategicPoint
		case DimensionLegal:
			adjusted.ProfitMarginPct += gap * marginPerLegalPoint
		case DimensionMarket:
			adjusted.RevenueGrowthPct += gap * growthPerMarketPoint
			if gap > concentrationStepGap && adjusted.ConcentrationCode > 0 {
				adjusted.ConcentrationCode--
			}
		case DimensionManagement:
			adjusted.ProfitMarginPct += gap * marginPerManagementPoint
		}
	}

	// Keep adjusted inputs inside profile bounds.
	if adjusted.ProfitMarginPct > 100 {
		adjusted.ProfitMarginPct = 100
	}
	if adjusted.RevenueGrowthPct > 1000 {
		adjusted.RevenueGrowthPct = 1000
	}
	adjusted.ProfitAbsolute = adjusted.Revenue * adjusted.ProfitMarginPct / 100

	potential := EstimateValue(&adjusted)

	// Executing the plan never projects a value below the current estimate.
	if potential.Point < current.Point {
		potential.Point = current.Point
	}

	enh := ValueEnhancement{
		CurrentValue:   current.Point,
		PotentialValue: potential.Point,
		ValueIncrease:  potential.Point - current.Point,
	}
	if current.Point > 0 {
		enh.PercentageIncrease = enh.ValueIncrease / current.Point * 100
	}
	return enh
}
