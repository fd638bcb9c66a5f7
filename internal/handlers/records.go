package handlers

import (
	"net/http"

	"haccp-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListQualityChecks(c *gin.Context) {
	list(c, h.ledger.ListQualityChecks(c.Request.Context()))
}

func (h *Handler) CreateQualityCheck(c *gin.Context) {
	var in models.QualityCheckInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	q, out := h.ledger.CreateQualityCheck(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, q, out)
}

func (h *Handler) ListTrainingRecords(c *gin.Context) {
	list(c, h.ledger.ListTrainingRecords(c.Request.Context()))
}

func (h *Handler) CreateTrainingRecord(c *gin.Context) {
	var in models.TrainingRecordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	r, out := h.ledger.CreateTrainingRecord(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, r, out)
}

func (h *Handler) ListDocuments(c *gin.Context) {
	list(c, h.ledger.ListDocuments(c.Request.Context()))
}

func (h *Handler) CreateDocument(c *gin.Context) {
	var in models.DocumentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	d, out := h.ledger.CreateDocument(c.Request.Context(), in)
	h.respond(c, http.StatusCreated, d, out)
}
