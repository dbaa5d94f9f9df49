package analysis

// RiskLevel buckets a numeric risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// RiskCategory identifies one assessed risk factor.
type RiskCategory string

const (
	RiskCustomerConcentration RiskCategory = "customer_concentration"
	RiskKeyPersonDependency   RiskCategory = "key_person_dependency"
	RiskDocumentationGap      RiskCategory = "documentation_gap"
	RiskLegalIP               RiskCategory = "legal_ip"
	RiskMarketTiming          RiskCategory = "market_timing"
)

// RiskFactor is one scored risk with its severity bucket.
type RiskFactor struct {
	Category RiskCategory `json:"category"`
	Score    float64      `json:"score"` // 0–100, higher is riskier
	Level    RiskLevel    `json:"level"`
	Note     string       `json:"note"`
}

// RiskAssessment is the full risk picture: individual factors in a fixed
// order plus the overall level derived from the worst factor.
type RiskAssessment struct {
	Factors []RiskFactor `json:"factors"`
	Overall RiskLevel    `json:"overall"`
}

// Risk severity bucket boundaries.
const (
	riskHighThreshold   = 70
	riskMediumThreshold = 40
)

// Concentration risk scores by category.
const (
	riskConcentrated = 75
	riskModerate     = 45
	riskDiversified  = 15
)

// Key-person dependency scores by team size, with a reduction when processes
// are documented.
const (
	riskKeyPersonTiny    = 70
	riskKeyPersonSmall   = 55
	riskKeyPersonMedium  = 40
	riskKeyPersonLarge   = 20
	riskKeyPersonDocsCut = 10
)

// Documentation gap scores.
const (
	riskDocsComplete = 10
	riskDocsPartial  = 45
	riskDocsNone     = 75
)

// Legal and IP exposure scores.
const (
	riskNoCompliance = 80
	riskTechNoIP     = 65
	riskNoIP         = 45
	riskLegalClean   = 15
)

// Market timing scores and the short-timeframe surcharge.
const (
	riskShrinking      = 65
	riskSlowGrowth     = 45
	riskHealthyGrowth  = 25
	riskRushSurcharge  = 10
	slowGrowthPct      = 5
	rushTimeframeYears = 1
)

// AssessRisks evaluates the five risk factors in a fixed order and derives
// the overall level from the single worst factor.
func AssessRisks(f *NormalizedFeatures) RiskAssessment {
	factors := []RiskFactor{
		assessConcentration(f),
		assessKeyPerson(f),
		assessDocumentation(f),
		assessLegalIP(f),
		assessMarketTiming(f),
	}

	overall := RiskLow
	for _, fc := range factors {
		if fc.Level == RiskHigh {
			overall = RiskHigh
			break
		}
		if fc.Level == RiskMedium {
			overall = RiskMedium
		}
	}

	return RiskAssessment{Factors: factors, Overall: overall}
}

// levelForScore buckets a risk score into low/medium/high.
func levelForScore(score float64) RiskLevel {
	switch {
	case score >= riskHighThreshold:
		return RiskHigh
	case score >= riskMediumThreshold:
		return RiskMedium
	default:
		return RiskLow
	}
}

func newFactor(cat RiskCategory, score float64, note string) RiskFactor {
	score = clampScore(score)
	return RiskFactor{Category: cat, Score: score, Level: levelForScore(score), Note: note}
}

func assessConcentration(f *NormalizedFeatures) RiskFactor {
	switch f.ConcentrationCode {
	case concentrationCodes[ConcentrationConcentrated]:
		return newFactor(RiskCustomerConcentration, riskConcentrated,
			"revenue depends heavily on a small number of customers")
	case concentrationCodes[ConcentrationModerate]:
		return newFactor(RiskCustomerConcentration, riskModerate,
			"customer base is only partially diversified")
	default:
		return newFactor(RiskCustomerConcentration, riskDiversified,
			"customer base is well diversified")
	}
}

func assessKeyPerson(f *NormalizedFeatures) RiskFactor {
	var score float64
	switch {
	case f.EmployeeCount < teamSizeSmall:
		score = riskKeyPersonTiny
	case f.EmployeeCount < teamSizeMedium:
		score = riskKeyPersonSmall
	case f.EmployeeCount < teamSizeLarge:
		score = riskKeyPersonMedium
	default:
		score = riskKeyPersonLarge
	}
	if f.Checklist.DocumentedProcesses {
		score -= riskKeyPersonDocsCut
	}
	return newFactor(RiskKeyPersonDependency, score,
		"operational knowledge concentrated in few people raises transfer risk")
}

func assessDocumentation(f *NormalizedFeatures) RiskFactor {
	switch {
	case f.Checklist.FinancialRecords && f.Checklist.DocumentedProcesses:
		return newFactor(RiskDocumentationGap, riskDocsComplete,
			"financial records and process documentation are in place")
	case f.Checklist.FinancialRecords || f.Checklist.DocumentedProcesses:
		return newFactor(RiskDocumentationGap, riskDocsPartial,
			"documentation is incomplete; buyers will discount for it")
	default:
		return newFactor(RiskDocumentationGap, riskDocsNone,
			"neither financial records nor processes are documented")
	}
}

func assessLegalIP(f *NormalizedFeatures) RiskFactor {
	techIndustry := f.Industry == "technology" || f.Industry == "software"
	switch {
	case !f.Checklist.LegalCompliance:
		return newFactor(RiskLegalIP, riskNoCompliance,
			"legal compliance is unresolved; this blocks most transactions")
	case techIndustry && !f.Checklist.IntellectualProperty:
		return newFactor(RiskLegalIP, riskTechNoIP,
			"unprotected IP in a technology business erodes the core asset")
	case !f.Checklist.IntellectualProperty:
		return newFactor(RiskLegalIP, riskNoIP,
			"intellectual property is not formally protected")
	default:
		return newFactor(RiskLegalIP, riskLegalClean,
			"legal and IP posture is clean")
	}
}

func assessMarketTiming(f *NormalizedFeatures) RiskFactor {
	var score float64
	switch {
	case f.RevenueGrowthPct < 0:
		score = riskShrinking
	case f.RevenueGrowthPct < slowGrowthPct:
		score = riskSlowGrowth
	default:
		score = riskHealthyGrowth
	}
	if f.TimeframeYears < rushTimeframeYears {
		score += riskRushSurcharge
	}
	return newFactor(RiskMarketTiming, score,
		"growth trajectory and exit timeframe shape buyer appetite")
}
