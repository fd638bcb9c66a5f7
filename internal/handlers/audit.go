package handlers

import (
	"net/http"

	"haccp-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

// ListAuditLogs returns entries newest first.
func (h *Handler) ListAuditLogs(c *gin.Context) {
	var f models.AuditFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	list(c, h.ledger.AuditLog(c.Request.Context(), f))
}

func (h *Handler) AppendAuditLog(c *gin.Context) {
	var in models.AuditInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	// the session operator is always the author
	in.User = ""
	entry, out := h.ledger.AppendAudit(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, entry, out)
}
