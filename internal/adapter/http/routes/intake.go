package routes

import (
	"salamatlab/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathIntakeSessions = "/intake/sessions"
)

func addIntakeRoutes(rg *gin.RouterGroup, h *handlers.IntakeHandler) {
	sessions := rg.Group(PathIntakeSessions)
	{
		sessions.POST("", h.StartSession)
		sessions.GET("/:session_id", h.GetSession)
		sessions.PUT("/:session_id/flow", h.SelectFlow)
		sessions.POST("/:session_id/request", h.RequestService)
	}

	flows := sessions.Group("/:session_id/flows/:flow")
	{
		flows.POST("/category", h.SelectCategory)
		flows.POST("/package", h.SelectPackage)
		flows.PATCH("/fields", h.UpdateFields)
		flows.POST("/next", h.Next)
		flows.POST("/back", h.Back)
		flows.POST("/submit", h.Submit)
		flows.POST("/reset", h.Reset)
	}
}
