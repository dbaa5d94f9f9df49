package analysis

import (
	"context"
	"time"

	domain "github.com/turtacn/ExitReady-Intelligence/internal/domain/analysis"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/internal/intelligence/predictor"
)

// ScoringResult is what a scoring strategy produces: dimension scores, a
// blended valuation, and the path that computed them.
type ScoringResult struct {
	Scores    []domain.DimensionScore
	Valuation domain.ValuationRange
	Source    domain.SourcePath
}

// Scorer is the strategy for computing scores and valuation.  The local
// implementation is pure; the remote one delegates over the network and
// falls back to local on any failure.
type Scorer interface {
	Score(ctx context.Context, correlationID string, profile *domain.BusinessProfile, features *domain.NormalizedFeatures) (ScoringResult, error)
}

// LocalScorer runs the rule-based scorer and valuation estimator in-process.
type LocalScorer struct{}

// NewLocalScorer returns the pure in-process scoring strategy.
func NewLocalScorer() *LocalScorer {
	return &LocalScorer{}
}

// Score implements Scorer.  It never fails: the local path is pure
// computation over validated features.
func (s *LocalScorer) Score(_ context.Context, _ string, _ *domain.BusinessProfile, features *domain.NormalizedFeatures) (ScoringResult, error) {
	return ScoringResult{
		Scores:    domain.ScoreDimensions(features),
		Valuation: domain.EstimateValue(features),
		Source:    domain.SourceLocal,
	}, nil
}

// remoteGateway is the slice of the predictor gateway the scorer needs;
// narrowed for testing.
type remoteGateway interface {
	Score(ctx context.Context, correlationID string, profile *domain.BusinessProfile) (*predictor.Result, predictor.State, error)
}

// RemoteScorer delegates to the external scoring service and falls back to
// the local strategy when the gateway fails or times out.  Gateway failures
// are never surfaced to the caller; the report's source path records the
// degradation instead.
type RemoteScorer struct {
	gateway  remoteGateway
	fallback Scorer
	logger   logging.Logger
	observe  func(state predictor.State, elapsed time.Duration)
}

// NewRemoteScorer builds the remote strategy.  observe is invoked after
// every gateway call with its terminal state and round-trip time; pass nil
// when no observer is needed.
func NewRemoteScorer(gateway remoteGateway, fallback Scorer, log logging.Logger, observe func(predictor.State, time.Duration)) *RemoteScorer {
	return &RemoteScorer{gateway: gateway, fallback: fallback, logger: log, observe: observe}
}

// Score implements Scorer.
func (s *RemoteScorer) Score(ctx context.Context, correlationID string, profile *domain.BusinessProfile, features *domain.NormalizedFeatures) (ScoringResult, error) {
	start := time.Now()
	result, state, err := s.gateway.Score(ctx, correlationID, profile)
	if s.observe != nil {
		s.observe(state, time.Since(start))
	}
	if state == predictor.StateSucceeded {
		return ScoringResult{
			Scores:    result.Scores,
			Valuation: result.Valuation,
			Source:    domain.SourceRemote,
		}, nil
	}

	s.logger.Warn("remote scoring unavailable, falling back to local path",
		logging.String("correlation_id", correlationID),
		logging.String("gateway_state", string(state)),
		logging.Err(err))
	return s.fallback.Score(ctx, correlationID, profile, features)
}
