package handlers

import (
	"errors"
	"log"
	"net/http"

	response "salamatlab/internal/adapter/http/dto/response"
	"salamatlab/internal/adapter/http/middleware"
	"salamatlab/internal/usecase"
	"salamatlab/pkg"

	"github.com/gin-gonic/gin"
)

// RequestsHandler lists the caller's submitted requests.
type RequestsHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewRequestsHandler(uc usecase.IDashboardUseCase) *RequestsHandler {
	return &RequestsHandler{usecase: uc}
}

// ListRequests supports ?type=all|checkup|sampling, ?status= and ?q=.
func (h *RequestsHandler) ListRequests(c *gin.Context) {
	userID := middleware.UserID(c)
	filter := usecase.DashboardFilter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
		Query:  c.Query("q"),
	}

	entries, err := h.usecase.List(c.Request.Context(), userID, filter)
	if err != nil {
		log.Printf("[requests][handler] list failed user_id=%s err=%v", userID, err)
		appErr := mapRequestsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(entries))
}

func mapRequestsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestTypeFilter), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
