package server

import (
	"haccp-ledger/internal/config"
	"haccp-ledger/internal/handlers"
	"haccp-ledger/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(cfg *config.Config, h *handlers.Handler, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(log))

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("haccp_session", store))
	r.Use(middleware.InjectUser())

	r.GET("/health", h.Health)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth())

	// HACCP
	api.GET("/hazards", h.ListHazards)
	api.POST("/hazards", h.CreateHazard)
	api.PATCH("/hazards/:id", h.UpdateHazard)
	api.DELETE("/hazards/:id", h.DeleteHazard)

	api.GET("/ccps", h.ListCCPs)
	api.POST("/ccps", h.CreateCCP)
	api.PATCH("/ccps/:id", h.UpdateCCP)
	api.DELETE("/ccps/:id", h.DeleteCCP)

	// audit trail
	api.GET("/audit", h.ListAuditLogs)
	api.POST("/audit", h.AppendAuditLog)

	// ISO
	api.GET("/iso-standards", h.ListISOStandards)
	api.POST("/iso-standards", h.CreateISOStandard)
	api.PATCH("/iso-standards/:id", h.UpdateISOStandard)

	api.GET("/quality-checks", h.ListQualityChecks)
	api.POST("/quality-checks", h.CreateQualityCheck)
	api.GET("/training", h.ListTrainingRecords)
	api.POST("/training", h.CreateTrainingRecord)
	api.GET("/documents", h.ListDocuments)
	api.POST("/documents", h.CreateDocument)

	api.GET("/stats", h.Stats)

	return r
}
