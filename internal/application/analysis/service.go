// Package analysis orchestrates the exit-readiness engine: validation, rate
// limiting, normalization, scoring strategy selection, and report assembly.
// It is the engine's only public entry point.
package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"
	prom "github.com/prometheus/client_golang/prometheus"

	domain "github.com/turtacn/ExitReady-Intelligence/internal/domain/analysis"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/ExitReady-Intelligence/internal/ratelimit"
)

// Options selects the scoring path and identifies the caller for rate
// limiting.
type Options struct {
	// UseRemote requests delegation to the external scoring service.  The
	// engine silently falls back to the local path when the service is
	// unavailable.
	UseRemote bool
	// CallerKey identifies the caller for quota accounting.
	CallerKey string
}

// Service is the engine's public operation.
type Service interface {
	// Analyze turns a business profile into a complete analysis report, or a
	// typed failure.  A returned report is always fully populated.
	Analyze(ctx context.Context, profile *domain.BusinessProfile, opts Options) (*domain.AnalysisReport, error)
}

// eventPublisher is the slice of the Kafka producer the service needs;
// narrowed for testing.
type eventPublisher interface {
	PublishAnalysisCompleted(ctx context.Context, ev kafka.AnalysisCompletedEvent) error
}

// publishTimeout bounds the fire-and-forget event publication so a stuck
// broker cannot pile up goroutines.
const publishTimeout = 5 * time.Second

type service struct {
	local       Scorer
	remote      Scorer
	limiter     ratelimit.Limiter
	publisher   eventPublisher
	metrics     *prometheus.AppMetrics
	logger      logging.Logger
	targetScore float64
	now         func() time.Time
}

// Config wires the service's collaborators.  Remote and Publisher are
// optional; Metrics, Limiter, and Logger are required.
type Config struct {
	Local       Scorer
	Remote      Scorer
	Limiter     ratelimit.Limiter
	Publisher   eventPublisher
	Metrics     *prometheus.AppMetrics
	Logger      logging.Logger
	TargetScore float64
}

// NewService builds the orchestrator.
func NewService(cfg Config) Service {
	local := cfg.Local
	if local == nil {
		local = NewLocalScorer()
	}
	target := cfg.TargetScore
	if target <= 0 {
		target = domain.DefaultTargetScore
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = prometheus.NewAppMetrics(prom.NewRegistry())
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &service{
		local:       local,
		remote:      cfg.Remote,
		limiter:     cfg.Limiter,
		publisher:   cfg.Publisher,
		metrics:     metrics,
		logger:      log,
		targetScore: target,
		now:         time.Now,
	}
}

func (s *service) Analyze(ctx context.Context, profile *domain.BusinessProfile, opts Options) (*domain.AnalysisReport, error) {
	start := s.now()

	if err := profile.Validate(); err != nil {
		s.metrics.ValidationFailures.Inc()
		return nil, err
	}

	if err := s.checkLimit(ctx, opts.CallerKey); err != nil {
		return nil, err
	}

	correlationID := uuid.NewString()
	log := s.logger.With(logging.String("correlation_id", correlationID))

	features, err := domain.Normalize(profile)
	if err != nil {
		// Validation passed, so an unmapped category here is a programming
		// error, not caller input.
		log.Error("normalization failed after validation", logging.Err(err))
		return nil, err
	}

	scorer := s.local
	if opts.UseRemote && s.remote != nil {
		scorer = s.remote
	}

	// Scoring and risk assessment share no state beyond the immutable
	// features, so they run concurrently.
	var (
		scoring    ScoringResult
		scoringErr error
		risks      domain.RiskAssessment
	)
	done := make(chan struct{})
	go func() {
		defer close(done)
		risks = domain.AssessRisks(features)
	}()
	scoring, scoringErr = scorer.Score(ctx, correlationID, profile, features)
	<-done
	if scoringErr != nil {
		return nil, scoringErr
	}

	recommendations := domain.GenerateRecommendations(profile, features, scoring.Scores, risks)
	plan := domain.BuildImprovementPlan(scoring.Scores, s.targetScore)
	enhancement := domain.ProjectEnhancement(features, scoring.Valuation, plan)

	report := &domain.AnalysisReport{
		CompanyName:      profile.CompanyName,
		Scores:           scoring.Scores,
		Valuation:        scoring.Valuation,
		Risk:             risks,
		Recommendations:  recommendations,
		ImprovementPlan:  plan,
		ValueEnhancement: enhancement,
		Metadata: domain.ReportMetadata{
			CorrelationID: correlationID,
			SourcePath:    scoring.Source,
			LatencyMs:     s.now().Sub(start).Milliseconds(),
		},
	}

	s.metrics.AnalysesTotal.WithLabelValues(string(scoring.Source), "success").Inc()
	s.metrics.AnalysisDuration.WithLabelValues(string(scoring.Source)).
		Observe(s.now().Sub(start).Seconds())

	log.Info("analysis completed",
		logging.String("company", profile.CompanyName),
		logging.String("source_path", string(scoring.Source)),
		logging.Float64("overall_score", report.OverallScore()),
		logging.String("risk", string(risks.Overall)))

	// Advisory eventing happens after the report is final and off the
	// critical path; a broker failure cannot affect the returned report.
	s.publishCompleted(report)

	return report, nil
}

// checkLimit enforces the caller quota.  A limiter backend failure fails
// open: the engine's output is advisory, so availability wins over strict
// quota enforcement.
func (s *service) checkLimit(ctx context.Context, callerKey string) error {
	if s.limiter == nil || callerKey == "" {
		return nil
	}
	decision, err := s.limiter.Allow(ctx, callerKey)
	if err != nil {
		s.logger.Warn("rate limiter unavailable, allowing request", logging.Err(err))
		return nil
	}
	if !decision.Allowed {
		s.metrics.RateLimitRejections.WithLabelValues("engine").Inc()
		return &ratelimit.LimitError{RetryAfter: decision.RetryAfter}
	}
	return nil
}

func (s *service) publishCompleted(report *domain.AnalysisReport) {
	if s.publisher == nil {
		return
	}
	ev := kafka.AnalysisCompletedEvent{
		CorrelationID: report.Metadata.CorrelationID,
		CompanyName:   report.CompanyName,
		OverallScore:  report.OverallScore(),
		RiskLevel:     string(report.Risk.Overall),
		SourcePath:    string(report.Metadata.SourcePath),
		CompletedAt:   s.now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := s.publisher.PublishAnalysisCompleted(ctx, ev); err != nil {
			s.metrics.EventsPublished.WithLabelValues("error").Inc()
			s.logger.Warn("failed to publish analysis event",
				logging.String("correlation_id", ev.CorrelationID), logging.Err(err))
			return
		}
		s.metrics.EventsPublished.WithLabelValues("success").Inc()
	}()
}
