package handlers

import (
	"net/http"

	"haccp-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListHazards(c *gin.Context) {
	var f models.HazardFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	list(c, h.ledger.ListHazards(c.Request.Context(), f))
}

func (h *Handler) CreateHazard(c *gin.Context) {
	var in models.HazardInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	hz, out := h.ledger.CreateHazard(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, hz, out)
}

func (h *Handler) UpdateHazard(c *gin.Context) {
	var p models.HazardPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	hz, out := h.ledger.UpdateHazard(c.Request.Context(), c.Param("id"), p)
	h.respond(c, http.StatusOK, hz, out)
}

func (h *Handler) DeleteHazard(c *gin.Context) {
	removed, out := h.ledger.DeleteHazard(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, gin.H{"removed": removed}, out)
}
