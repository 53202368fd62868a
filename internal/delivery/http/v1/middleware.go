package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleRequestBoundary(c *gin.Context) {
	correlationID := h.resolveCorrelationID(c)
	c.Header(CorrelationIDHeader, correlationID)
	c.Set(correlationIDKey, correlationID)

	logger := h.logger.With().
		Str(correlationIDKey, correlationID).
		Logger()
	ctx := withCorrelationID(c.Request.Context(), correlationID)
	c.Request = c.Request.WithContext(logger.WithContext(ctx))

	start := time.Now()
	err := h.next(c)
	if err == nil && len(c.Errors) > 0 {
		err = c.Errors.Last().Err
	}
	elapsed := time.Since(start).Milliseconds()

	path := c.Request.URL.Path
	if err == nil {
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("duration_ms", elapsed).
			Msg("request completed")
		return
	}

	ce := classify(err)
	logger.Error().
		Err(err).
		Str("error_type", ce.errorType).
		Int("status", ce.status).
		Str("path", path).
		Int64("duration_ms", elapsed).
		Msg("request failed")

	c.AbortWithStatusJSON(ce.status, newErrorResponse(err, ce, correlationID, h.now()))
}

// next runs the rest of the chain and turns a panic into an error.
func (h *handlerImpl) next(c *gin.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("panic: %w", e)
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	c.Next()
	return nil
}
