package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/adanyl0v/go-task-manager/internal/services"
)

const internalServerErrorMessage = "Internal server error"

type errorResponse struct {
	StatusCode    int                 `json:"statusCode"`
	Message       string              `json:"message"`
	CorrelationID string              `json:"correlationId"`
	Details       string              `json:"details,omitempty"`
	Errors        map[string][]string `json:"errors,omitempty"`
	Timestamp     time.Time           `json:"timestamp"`
}

func statusForKind(kind services.Kind) int {
	switch kind {
	case services.KindBusiness, services.KindValidation:
		return http.StatusBadRequest
	case services.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// classifiedError is what the boundary needs to log and answer a failed
// request.
type classifiedError struct {
	status    int
	errorType string
	message   string
	fields    map[string][]string
}

func classify(err error) classifiedError {
	if e, ok := services.AsError(err); ok {
		status := statusForKind(e.Kind)
		return classifiedError{
			status:    status,
			errorType: e.Kind.String(),
			message:   e.Message,
			fields:    e.Fields,
		}
	}

	return classifiedError{
		status:    http.StatusInternalServerError,
		errorType: fmt.Sprintf("%T", err),
		message:   internalServerErrorMessage,
	}
}

func newErrorResponse(err error, ce classifiedError, correlationID string, now time.Time) errorResponse {
	resp := errorResponse{
		StatusCode:    ce.status,
		Message:       ce.message,
		CorrelationID: correlationID,
		Timestamp:     now.UTC(),
	}
	if len(ce.fields) > 0 {
		resp.Errors = ce.fields
	}
	if ce.status >= http.StatusInternalServerError {
		resp.Details = err.Error()
	}
	return resp
}
