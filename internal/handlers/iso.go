package handlers

import (
	"net/http"

	"haccp-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListISOStandards(c *gin.Context) {
	list(c, h.ledger.ListISOStandards(c.Request.Context()))
}

func (h *Handler) CreateISOStandard(c *gin.Context) {
	var in models.ISOStandardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	s, out := h.ledger.CreateISOStandard(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, s, out)
}

func (h *Handler) UpdateISOStandard(c *gin.Context) {
	var p models.ISOStandardPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	s, out := h.ledger.UpdateISOStandard(c.Request.Context(), c.Param("id"), p)
	h.respond(c, http.StatusOK, s, out)
}
