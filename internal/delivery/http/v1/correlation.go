package v1

import (
	"context"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/jaevor/go-nanoid"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"

	correlationIDLength   = 8
	correlationIDAlphabet = "0123456789abcdef"

	correlationIDKey = "correlation_id"
)

type correlationIDCtxKey struct{}

func newCorrelationIDGenerator() (func() string, error) {
	return gonanoid.CustomASCII(correlationIDAlphabet, correlationIDLength)
}

// resolveCorrelationID returns the client supplied id, or a fresh one.
func (h *handlerImpl) resolveCorrelationID(c *gin.Context) string {
	if id := c.GetHeader(CorrelationIDHeader); id != "" {
		return id
	}
	return h.newCorrelationID()
}

func withCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDCtxKey{}, id)
}

// CorrelationIDFromContext returns the correlation id of the request that
// ctx belongs to.
func CorrelationIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationIDCtxKey{}).(string)
	return id, ok
}
