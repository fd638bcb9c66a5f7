package handlers

import (
	"net/http"

	"haccp-ledger/internal/ledger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the ledger over JSON.
type Handler struct {
	ledger *ledger.Ledger
	creds  Credentials
	log    *zap.Logger
}

func New(l *ledger.Ledger, creds Credentials, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{ledger: l, creds: creds, log: log}
}

func list[T any](c *gin.Context, items []T) {
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// respond maps a ledger outcome to a status code.
func (h *Handler) respond(c *gin.Context, ok int, body any, out ledger.Outcome) {
	switch out.Status {
	case ledger.StatusNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case ledger.StatusInvalid:
		badRequest(c, out.Err)
	case ledger.StatusConflict:
		c.JSON(http.StatusConflict, gin.H{"error": out.Err.Error()})
	default:
		if out.Err != nil {
			h.log.Warn("mutation completed with storage degradation",
				zap.String("status", string(out.Status)),
				zap.Bool("audited", out.Audited),
				zap.Error(out.Err))
		}
		c.JSON(ok, gin.H{
			"data":     body,
			"degraded": out.Status == ledger.StatusDegraded,
			"audited":  out.Audited,
		})
	}
}
