package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	err := h.storage.Ping(c.Request.Context())
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Warn().
			Err(err).
			Msg("storage is unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
