package handlers

import (
	"net/http"

	"haccp-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListCCPs(c *gin.Context) {
	var f models.CCPFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	list(c, h.ledger.ListCCPs(c.Request.Context(), f))
}

func (h *Handler) CreateCCP(c *gin.Context) {
	var in models.CCPInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	ccp, out := h.ledger.CreateCCP(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, ccp, out)
}

func (h *Handler) UpdateCCP(c *gin.Context) {
	var p models.CCPPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, err)
		return
	}
	ccp, out := h.ledger.UpdateCCP(c.Request.Context(), c.Param("id"), p)
	h.respond(c, http.StatusOK, ccp, out)
}

func (h *Handler) DeleteCCP(c *gin.Context) {
	removed, out := h.ledger.DeleteCCP(c.Request.Context(), c.Param("id"))
	h.respond(c, http.StatusOK, gin.H{"removed": removed}, out)
}
