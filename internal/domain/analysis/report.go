package analysis

// SourcePath records which scoring path produced a report.
type SourcePath string

const (
	SourceLocal  SourcePath = "local"
	SourceRemote SourcePath = "remote"
)

// ReportMetadata carries request-scoped facts about how a report was
// produced.  It is the only part of a report that varies between identical
// inputs.
type ReportMetadata struct {
	CorrelationID string     `json:"correlation_id"`
	SourcePath    SourcePath `json:"source_path"`
	LatencyMs     int64      `json:"latency_ms"`
}

// AnalysisReport is the engine's final aggregate output.  It is created in
// one piece by the orchestrator and never mutated afterwards; callers either
// receive a complete report or a typed failure, never a partial one.
type AnalysisReport struct {
	CompanyName      string             `json:"company_name"`
	Scores           []DimensionScore   `json:"scores"`
	Valuation        ValuationRange     `json:"valuation"`
	Risk             RiskAssessment     `json:"risk"`
	Recommendations  []Recommendation   `json:"recommendations"`
	ImprovementPlan  []ImprovementPhase `json:"improvement_plan"`
	ValueEnhancement ValueEnhancement   `json:"value_enhancement"`
	Metadata         ReportMetadata     `json:"metadata"`
}

// OverallScore returns the unweighted mean of the dimension scores, the
// single headline number shown alongside the full breakdown.
func (r *AnalysisReport) OverallScore() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range r.Scores {
		sum += s.Score
	}
	return sum / float64(len(r.Scores))
}
