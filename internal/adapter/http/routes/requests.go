package routes

import (
	"salamatlab/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathRequests = "/requests"
)

func addRequestsRoutes(rg *gin.RouterGroup, h *handlers.RequestsHandler) {
	rg.GET(PathRequests, h.ListRequests)
}
