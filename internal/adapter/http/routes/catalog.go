package routes

import (
	"salamatlab/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCatalog = "/catalog"
)

func addCatalogRoutes(rg *gin.RouterGroup, h *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/categories", h.ListCategories)
		catalog.GET("/categories/:category/packages", h.ListPackages)
		catalog.GET("/sampling-packages", h.ListSamplingPackages)
		catalog.GET("/time-slots", h.ListTimeSlots)
	}
}
