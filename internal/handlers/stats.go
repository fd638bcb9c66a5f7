package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.ledger.Stats(c.Request.Context())})
}

// Health reports which storage backend is serving and how often it has degraded.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": h.ledger.Diagnostics(c.Request.Context()),
	})
}
