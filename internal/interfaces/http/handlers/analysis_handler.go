package handlers

import (
	stderrors "errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	appanalysis "github.com/turtacn/ExitReady-Intelligence/internal/application/analysis"
	domain "github.com/turtacn/ExitReady-Intelligence/internal/domain/analysis"
	"github.com/turtacn/ExitReady-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// CallerIDHeader lets API gateways pass through a stable caller identity
// for quota accounting.  Requests without it are keyed by client IP.
const CallerIDHeader = "X-Caller-ID"

// AnalysisHandler serves the analysis endpoint.
type AnalysisHandler struct {
	service appanalysis.Service
	logger  logging.Logger
}

// NewAnalysisHandler builds the handler.
func NewAnalysisHandler(svc appanalysis.Service, log logging.Logger) *AnalysisHandler {
	return &AnalysisHandler{service: svc, logger: log}
}

// analyzeRequest is the request body: a business profile plus options.
type analyzeRequest struct {
	Profile   domain.BusinessProfile `json:"profile"`
	UseRemote bool                   `json:"use_remote"`
}

// Analyze handles POST /api/v1/analyses.  The body is decoded strictly: a
// misspelled profile field is a validation error, never a zero value fed
// into the analysis.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if stderrors.As(err, &mbe) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": errorBody{
				Code:    string(errors.ErrCodeBadRequest),
				Message: "request body exceeds the size limit",
			}})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{
			Code:    string(errors.ErrCodeBadRequest),
			Message: "failed to read request body",
		}})
		return
	}

	var req analyzeRequest
	if err := domain.UnmarshalStrict(raw, &req); err != nil {
		var ve *errors.ValidationError
		if errors.AsValidationError(err, &ve) {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errorBody{
			Code:    string(errors.ErrCodeBadRequest),
			Message: "request body is not valid JSON",
		}})
		return
	}

	report, err := h.service.Analyze(c.Request.Context(), &req.Profile, appanalysis.Options{
		UseRemote: req.UseRemote,
		CallerKey: callerKey(c),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// callerKey resolves the identity used for rate limiting.
func callerKey(c *gin.Context) string {
	if id := c.GetHeader(CallerIDHeader); id != "" {
		return id
	}
	return c.ClientIP()
}
