package analysis

// ValuationMethod identifies one estimation methodology.
type ValuationMethod string

const (
	MethodEarningsMultiple ValuationMethod = "earnings_multiple"
	MethodMarketMultiple   ValuationMethod = "market_multiple"
	MethodAssetFloor       ValuationMethod = "asset_floor"
	MethodRevenueGrowth    ValuationMethod = "revenue_growth"
)

// MethodEstimate is a single methodology's value estimate with its
// confidence weight on a 0–100 scale.
type MethodEstimate struct {
	Method     ValuationMethod `json:"method"`
	Value      float64         `json:"value"`
	Confidence float64         `json:"confidence"`
}

// ValuationRange is the blended valuation output.  Low <= Point <= High
// always holds, and Confidence reflects both the per-method confidences and
// the dispersion between estimates.
type ValuationRange struct {
	Low        float64          `json:"low"`
	Point      float64          `json:"point"`
	High       float64          `json:"high"`
	Confidence float64          `json:"confidence"`
	Methods    []MethodEstimate `json:"methods"`
}

// Earnings-multiple methodology constants.
const (
	earningsBaseMultiple       = 4.0
	earningsGrowthBonus        = 1.0
	earningsMaturityBonus      = 0.5
	earningsConcentrationDebit = 1.0
	earningsGrowthBonusPct     = 10

	confEarnings = 85
)

// Asset-floor methodology constants.  A mature business carries more
// residual asset and goodwill value relative to revenue than a young one.
const (
	assetFloorMatureFactor = 0.8
	assetFloorYoungFactor  = 0.5

	confMarket     = 75
	confAssetFloor = 60
)

// Revenue-growth methodology constants.
const (
	growthMultipleFloor   = 0.8
	growthMultipleDivisor = 50.0

	confRevenueGrowth = 70
)

// Blending constants.  When the widest and narrowest estimates diverge by
// more than dispersionThreshold relative to the blended point, the blended
// confidence is reduced by dispersionPenalty.
const (
	lowBandFactor       = 0.9
	highBandFactor      = 1.1
	dispersionThreshold = 0.4
	dispersionPenalty   = 15
)

// EstimateValue runs all four valuation methodologies against normalized
// features and blends them into a single range.
func EstimateValue(f *NormalizedFeatures) ValuationRange {
	estimates := []MethodEstimate{
		estimateEarnings(f),
		estimateMarket(f),
		estimateAssetFloor(f),
		estimateRevenueGrowth(f),
	}
	return BlendEstimates(estimates)
}

// estimateEarnings values the business as a multiple of absolute profit.
// Unprofitable businesses contribute a zero estimate rather than a negative
// one; the other methodologies carry the valuation in that case.
func estimateEarnings(f *NormalizedFeatures) MethodEstimate {
	multiple := earningsBaseMultiple
	if f.RevenueGrowthPct >= earningsGrowthBonusPct {
		multiple += earningsGrowthBonus
	}
	if f.Mature {
		multiple += earningsMaturityBonus
	}
	if f.ConcentrationCode == concentrationCodes[ConcentrationConcentrated] {
		multiple -= earningsConcentrationDebit
	}

	value := f.ProfitAbsolute * multiple
	if value < 0 {
		value = 0
	}
	return MethodEstimate{Method: MethodEarningsMultiple, Value: value, Confidence: confEarnings}
}

// estimateMarket values the business as revenue times the industry multiple.
func estimateMarket(f *NormalizedFeatures) MethodEstimate {
	return MethodEstimate{
		Method:     MethodMarketMultiple,
		Value:      f.Revenue * f.IndustryMultiple,
		Confidence: confMarket,
	}
}

// estimateAssetFloor approximates a liquidation floor from revenue scale.
func estimateAssetFloor(f *NormalizedFeatures) MethodEstimate {
	factor := assetFloorYoungFactor
	if f.Mature {
		factor = assetFloorMatureFactor
	}
	return MethodEstimate{
		Method:     MethodAssetFloor,
		Value:      f.Revenue * factor,
		Confidence: confAssetFloor,
	}
}

// estimateRevenueGrowth scales revenue by a growth-adjusted multiple with a
// floor, so shrinking businesses still receive a positive estimate.
func estimateRevenueGrowth(f *NormalizedFeatures) MethodEstimate {
	multiple := 1 + f.RevenueGrowthPct/growthMultipleDivisor
	if multiple < growthMultipleFloor {
		multiple = growthMultipleFloor
	}
	return MethodEstimate{
		Method:     MethodRevenueGrowth,
		Value:      f.Revenue * multiple,
		Confidence: confRevenueGrowth,
	}
}

// BlendEstimates combines method estimates into one range using
// confidence-weighted averaging.  The point value is the weighted mean, the
// band is the min and max estimates widened by fixed factors, and the
// blended confidence is the confidence-weighted mean of the confidences,
// penalised when the estimates disperse widely.
func BlendEstimates(estimates []MethodEstimate) ValuationRange {
	if len(estimates) == 0 {
		return ValuationRange{Methods: []MethodEstimate{}}
	}

	var weightedSum, confSum, confSqSum float64
	minVal, maxVal := estimates[0].Value, estimates[0].Value
	for _, e := range estimates {
		weightedSum += e.Value * e.Confidence
		confSum += e.Confidence
		confSqSum += e.Confidence * e.Confidence
		if e.Value < minVal {
			minVal = e.Value
		}
		if e.Value > maxVal {
			maxVal = e.Value
		}
	}

	var point, confidence float64
	if confSum > 0 {
		point = weightedSum / confSum
		confidence = confSqSum / confSum
	}

	if point > 0 && (maxVal-minVal)/point > dispersionThreshold {
		confidence -= dispersionPenalty
	}
	confidence = clampScore(confidence)

	low := minVal * lowBandFactor
	high := maxVal * highBandFactor

	// Guard the range invariant even for degenerate inputs.
	if low > point {
		low = point
	}
	if high < point {
		high = point
	}

	return ValuationRange{
		Low:        low,
		Point:      point,
		High:       high,
		Confidence: confidence,
		Methods:    estimates,
	}
}
