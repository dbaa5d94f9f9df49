// Package handlers implements the HTTP request handlers for the analysis
// engine's API.
package handlers

import (
	stderrors "errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/turtacn/ExitReady-Intelligence/internal/ratelimit"
	"github.com/turtacn/ExitReady-Intelligence/pkg/errors"
)

// errorBody is the JSON error envelope shared by every endpoint.
type errorBody struct {
	Code       string                  `json:"code"`
	Message    string                  `json:"message"`
	Violations []errors.FieldViolation `json:"violations,omitempty"`
}

// writeError maps engine errors onto HTTP responses:
//
//	validation   → 422 with the full violation list
//	rate limit   → 429 with a Retry-After header
//	typed errors → their mapped status code
//	anything else → 500
func writeError(c *gin.Context, err error) {
	var ve *errors.ValidationError
	if errors.AsValidationError(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": errorBody{
			Code:       string(errors.ErrCodeValidation),
			Message:    "profile validation failed",
			Violations: ve.Violations,
		}})
		return
	}

	var le *ratelimit.LimitError
	if stderrors.As(err, &le) {
		c.Header("Retry-After", strconv.Itoa(retryAfterSeconds(le.RetryAfter)))
		c.JSON(http.StatusTooManyRequests, gin.H{"error": errorBody{
			Code:    string(errors.ErrCodeTooManyRequests),
			Message: le.Error(),
		}})
		return
	}

	code := errors.GetCode(err)
	c.JSON(errors.HTTPStatusForCode(code), gin.H{"error": errorBody{
		Code:    string(code),
		Message: errors.DefaultMessageForCode(code),
	}})
}

// retryAfterSeconds rounds the wait up to whole seconds.  A near-reset
// window still tells the caller to wait at least one second, never zero.
func retryAfterSeconds(d time.Duration) int {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
