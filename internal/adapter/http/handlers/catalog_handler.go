package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "salamatlab/internal/adapter/http/dto/response"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase"
	"salamatlab/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only package catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCategories(h.usecase.Categories()))
}

func (h *CatalogHandler) ListPackages(c *gin.Context) {
	key := entities.PackageCategoryKey(strings.ToLower(strings.TrimSpace(c.Param("category"))))

	pkgs, err := h.usecase.Packages(key)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackages(pkgs))
}

func (h *CatalogHandler) ListSamplingPackages(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPackages(h.usecase.SamplingPackages()))
}

func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, response.TimeSlotsResponse{Slots: h.usecase.TimeSlots()})
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownCategoryKey):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Package category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
