package analysis

import "testing"

// Blending four estimates produces the confidence-weighted average and the
// widened min/max band.
func TestBlendEstimates(t *testing.T) {
	estimates := []MethodEstimate{
		{MethodEarningsMultiple, 8_500_000, 85},
		{MethodMarketMultiple, 9_000_000, 75},
		{MethodAssetFloor, 9_200_000, 90},
		{MethodRevenueGrowth, 9_600_000, 70},
	}

	v := BlendEstimates(estimates)

	wantPoint := (8_500_000*85 + 9_000_000*75 + 9_200_000*90 + 9_600_000*70) / 320.0
	if !approxEq(v.Point, wantPoint, 1) {
		t.Errorf("Point = %.0f, want %.0f", v.Point, wantPoint)
	}
	if !approxEq(v.Low, 8_500_000*0.9, 1) {
		t.Errorf("Low = %.0f, want %.0f", v.Low, 8_500_000*0.9)
	}
	if !approxEq(v.High, 9_600_000*1.1, 1) {
		t.Errorf("High = %.0f, want %.0f", v.High, 9_600_000*1.1)
	}

	// Estimates agree within 40%, so no dispersion penalty applies.
	wantConf := (85.0*85 + 75*75 + 90*90 + 70*70) / 320
	if !approxEq(v.Confidence, wantConf, 0.01) {
		t.Errorf("Confidence = %.2f, want %.2f", v.Confidence, wantConf)
	}
}

func TestBlendEstimatesDispersionPenalty(t *testing.T) {
	agree := BlendEstimates([]MethodEstimate{
		{MethodEarningsMultiple, 1_000_000, 80},
		{MethodMarketMultiple, 1_100_000, 80},
	})
	diverge := BlendEstimates([]MethodEstimate{
		{MethodEarningsMultiple, 1_000_000, 80},
		{MethodMarketMultiple, 2_000_000, 80},
	})

	if diverge.Confidence >= agree.Confidence {
		t.Errorf("diverging confidence %.1f not below agreeing %.1f",
			diverge.Confidence, agree.Confidence)
	}
	if !approxEq(agree.Confidence-diverge.Confidence, dispersionPenalty, 0.01) {
		t.Errorf("penalty = %.1f, want %d", agree.Confidence-diverge.Confidence, dispersionPenalty)
	}
}

func TestBlendEstimatesEmpty(t *testing.T) {
	v := BlendEstimates(nil)
	if v.Low != 0 || v.Point != 0 || v.High != 0 || v.Confidence != 0 {
		t.Errorf("empty blend = %+v, want zeros", v)
	}
}

// The range invariant low <= point <= high holds across representative
// profiles, including unprofitable and shrinking ones.
func TestEstimateValueRangeInvariant(t *testing.T) {
	profiles := []*BusinessProfile{baselineProfile()}

	shrinking := baselineProfile()
	shrinking.ProfitMarginPct = -20
	shrinking.RevenueGrowthPct = -50
	profiles = append(profiles, shrinking)

	young := baselineProfile()
	young.CompanyAgeYears = 2
	young.CustomerConcentration = ConcentrationConcentrated
	profiles = append(profiles, young)

	for _, p := range profiles {
		v := EstimateValue(mustNormalize(t, p))
		if !(v.Low <= v.Point && v.Point <= v.High) {
			t.Errorf("%s: range %.0f/%.0f/%.0f violates low <= point <= high",
				p.CompanyName, v.Low, v.Point, v.High)
		}
		if v.Confidence < 0 || v.Confidence > 100 {
			t.Errorf("%s: confidence %.1f out of [0,100]", p.CompanyName, v.Confidence)
		}
		if len(v.Methods) != 4 {
			t.Errorf("%s: %d methods, want 4", p.CompanyName, len(v.Methods))
		}
	}
}

// An unprofitable business never receives a negative earnings estimate.
func TestEarningsEstimateFloorsAtZero(t *testing.T) {
	p := baselineProfile()
	p.ProfitMarginPct = -30

	v := EstimateValue(mustNormalize(t, p))
	for _, m := range v.Methods {
		if m.Method == MethodEarningsMultiple && m.Value < 0 {
			t.Errorf("earnings estimate = %.0f, want >= 0", m.Value)
		}
	}
}
