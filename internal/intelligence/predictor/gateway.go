// Package predictor integrates the optional remote scoring service.  The
// gateway issues one bounded, correlated HTTP call per analysis and reports
// a terminal state the orchestrator uses to decide between remote results
// and local fallback.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/turtacn/ExitReady-Intelligence/internal/config"
	"github.com/turtacn/ExitReady-Intelligence/internal/domain/analysis"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// State is the gateway request lifecycle:
//
//	Idle → Requesting → {Succeeded, Failed, TimedOut}
//
// Every Score call traverses it once; the terminal state is returned
// alongside the result so fallback decisions are explicit and testable.
type State string

const (
	StateIdle       State = "idle"
	StateRequesting State = "requesting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
	StateTimedOut   State = "timed_out"
)

// DefaultTimeout bounds one remote scoring call.
const DefaultTimeout = 30 * time.Second

// scorePath is the remote service's scoring endpoint, relative to the
// configured base URL.
const scorePath = "/v1/score"

// scoreRequest is the outbound wire payload.
type scoreRequest struct {
	CorrelationID string                    `json:"correlation_id"`
	Profile       *analysis.BusinessProfile `json:"profile"`
}

// scoreResponse is the remote service's reply.
type scoreResponse struct {
	Scores    map[string]float64 `json:"scores"`
	Valuation struct {
		Low           float64 `json:"low"`
		Point         float64 `json:"point"`
		High          float64 `json:"high"`
		ConfidencePct float64 `json:"confidence_pct"`
	} `json:"valuation"`
}

// Result carries remotely computed scores and valuation in the engine's
// domain types.
type Result struct {
	Scores    []analysis.DimensionScore
	Valuation analysis.ValuationRange
}

// Gateway is the HTTP client for the remote scoring service.
type Gateway struct {
	endpoint string
	apiKey   string
	timeout  time.Duration
	client   *http.Client
	logger   logging.Logger
}

// NewGateway builds a gateway from configuration.  A non-positive timeout
// falls back to DefaultTimeout.
func NewGateway(cfg *config.GatewayConfig, log logging.Logger) *Gateway {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Gateway{
		endpoint: cfg.Endpoint,
		apiKey:   cfg.APIKey,
		timeout:  timeout,
		client:   &http.Client{},
		logger:   log,
	}
}

// Score delegates scoring and valuation for one profile to the remote
// service.  It returns the terminal state of the request; on anything but
// StateSucceeded the result is nil and the caller falls back to the local
// path.  The outbound call is cancelled when the timeout elapses and never
// leaks past it.
func (g *Gateway) Score(ctx context.Context, correlationID string, profile *analysis.BusinessProfile) (*Result, State, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	g.logger.Debug("gateway request starting",
		logging.String("correlation_id", correlationID),
		logging.String("state", string(StateRequesting)))

	body, err := json.Marshal(scoreRequest{CorrelationID: correlationID, Profile: profile})
	if err != nil {
		return nil, StateFailed, errors.Wrap(err, errors.ErrCodeSerialization,
			"failed to encode scoring request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint+scorePath, bytes.NewReader(body))
	if err != nil {
		return nil, StateFailed, errors.Wrap(err, errors.ErrCodeGatewayUnavailable,
			"failed to build scoring request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Correlation-ID", correlationID)
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			g.logger.Warn("gateway request timed out",
				logging.String("correlation_id", correlationID),
				logging.Duration("timeout", g.timeout))
			return nil, StateTimedOut, errors.New(errors.ErrCodeGatewayTimeout,
				"remote scoring timed out").WithCause(err)
		}
		return nil, StateFailed, errors.Wrap(err, errors.ErrCodeGatewayUnavailable,
			"remote scoring request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return nil, StateFailed, errors.New(errors.ErrCodeGatewayUnavailable,
			fmt.Sprintf("remote scoring returned status %d", resp.StatusCode))
	}

	var payload scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, StateFailed, errors.Wrap(err, errors.ErrCodeGatewayBadPayload,
			"failed to decode scoring response")
	}

	result, err := payload.toResult()
	if err != nil {
		return nil, StateFailed, err
	}

	g.logger.Debug("gateway request succeeded",
		logging.String("correlation_id", correlationID))
	return result, StateSucceeded, nil
}

// toResult converts the wire payload into domain types, enforcing the same
// invariants the local path guarantees: one score per dimension clamped to
// [0,100], and low <= point <= high on the valuation.
func (r *scoreResponse) toResult() (*Result, error) {
	scores := make([]analysis.DimensionScore, 0, len(analysis.AllDimensions()))
	for _, d := range analysis.AllDimensions() {
		v, ok := r.Scores[string(d)]
		if !ok {
			return nil, errors.New(errors.ErrCodeGatewayBadPayload,
				"scoring response is missing a dimension").WithDetail(string(d))
		}
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		scores = append(scores, analysis.DimensionScore{Dimension: d, Score: v})
	}

	val := r.Valuation
	if val.Low > val.Point || val.Point > val.High {
		return nil, errors.New(errors.ErrCodeGatewayBadPayload,
			"scoring response valuation violates low <= point <= high")
	}
	conf := val.ConfidencePct
	if conf < 0 {
		conf = 0
	}
	if conf > 100 {
		conf = 100
	}

	return &Result{
		Scores: scores,
		Valuation: analysis.ValuationRange{
			Low:        val.Low,
			Point:      val.Point,
			High:       val.High,
			Confidence: conf,
			Methods: []analysis.MethodEstimate{
				{Method: "remote", Value: val.Point, Confidence: conf},
			},
		},
	}, nil
}
