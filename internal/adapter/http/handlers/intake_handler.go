package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "salamatlab/internal/adapter/http/dto/request"
	response "salamatlab/internal/adapter/http/dto/response"
	"salamatlab/internal/adapter/http/middleware"
	"salamatlab/internal/domain/entities"
	"salamatlab/internal/usecase"
	"salamatlab/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidIntakePayload = pkg.NewDomainErrorSimple("INVALID_INTAKE_INPUT", "Invalid intake payload", http.StatusBadRequest)
)

// IntakeHandler exposes intake sessions: one checkup and one sampling wizard
// per session, driven step by step.
type IntakeHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewIntakeHandler(uc usecase.IIntakeUseCase) *IntakeHandler {
	return &IntakeHandler{usecase: uc}
}

func (h *IntakeHandler) StartSession(c *gin.Context) {
	var payload request.StartSessionRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	userID := middleware.UserID(c)
	view, err := h.usecase.StartSession(c.Request.Context(), userID, payload.ResolveProfile())
	if err != nil {
		log.Printf("[intake][handler] start failed user_id=%s err=%v", userID, err)
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(view))
}

func (h *IntakeHandler) GetSession(c *gin.Context) {
	view, err := h.usecase.GetSession(c.Request.Context(), middleware.UserID(c), c.Param("session_id"))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(view))
}

func (h *IntakeHandler) SelectFlow(c *gin.Context) {
	var payload request.SelectFlowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	view, err := h.usecase.SelectFlow(c.Request.Context(), middleware.UserID(c), c.Param("session_id"), entities.RequestType(payload.Flow))
	if err != nil {
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(view))
}

func (h *IntakeHandler) SelectCategory(c *gin.Context) {
	var payload request.SelectCategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	st, err := h.usecase.SelectCategory(c.Request.Context(), middleware.UserID(c), c.Param("session_id"), flowParam(c), entities.PackageCategoryKey(payload.Category))
	h.respondState(c, st, err)
}

func (h *IntakeHandler) SelectPackage(c *gin.Context) {
	var payload request.SelectPackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	st, err := h.usecase.SelectPackage(c.Request.Context(), middleware.UserID(c), c.Param("session_id"), flowParam(c), payload.ResolvePackageID())
	h.respondState(c, st, err)
}

func (h *IntakeHandler) UpdateFields(c *gin.Context) {
	var payload request.UpdateFieldsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidIntakePayload.HTTPStatus, errInvalidIntakePayload.ToHTTPError())
		return
	}

	st, err := h.usecase.UpdateFields(c.Request.Context(), middleware.UserID(c), c.Param("session_id"), flowParam(c), payload.Fields)
	h.respondState(c, st, err)
}

func (h *IntakeHandler) Next(c *gin.Context) {
	st, err := h.usecase.Next(c.Request.Context(), middleware.UserID(c), c.Param("session_id"), flowParam(c))
	h.respondState(c, st, err)
}

func (h *IntakeHandler) Back(c *gin.Context) {
	st, err := h.usecase.Back(c.Request.Context(), middleware.UserID(c), c.Param("session_id"), flowParam(c))
	h.respondState(c, st, err)
}

func (h *IntakeHandler) Reset(c *gin.Context) {
	st, err := h.usecase.Reset(c.Request.Context(), middleware.UserID(c), c.Param("session_id"), flowParam(c))
	h.respondState(c, st, err)
}

func (h *IntakeHandler) Submit(c *gin.Context) {
	userID := middleware.UserID(c)
	sessionID := c.Param("session_id")
	log.Printf("[intake][handler] submit start session_id=%s user_id=%s flow=%s", sessionID, userID, c.Param("flow"))

	rec, st, err := h.usecase.Submit(c.Request.Context(), userID, sessionID, flowParam(c))
	h.respondSubmission(c, rec, st, err)
}

// RequestService submits whichever flow is currently selected in the session.
func (h *IntakeHandler) RequestService(c *gin.Context) {
	rec, st, err := h.usecase.RequestService(c.Request.Context(), middleware.UserID(c), c.Param("session_id"))
	h.respondSubmission(c, rec, st, err)
}

func (h *IntakeHandler) respondState(c *gin.Context, st entities.WizardState, err error) {
	if err != nil {
		appErr := mapIntakeError(err)
		if st.Flow != "" {
			appErr = appErr.WithDetails("state", response.FromWizardState(st))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWizardState(st))
}

func (h *IntakeHandler) respondSubmission(c *gin.Context, rec entities.RequestRecord, st entities.WizardState, err error) {
	if err != nil {
		log.Printf("[intake][handler] submit failed session_id=%s err=%v", c.Param("session_id"), err)
		appErr := mapIntakeError(err)
		if st.Flow != "" {
			appErr = appErr.WithDetails("state", response.FromWizardState(st))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[intake][handler] submit success session_id=%s request_id=%s", c.Param("session_id"), rec.ID)
	c.JSON(http.StatusCreated, response.FromSubmission(rec, st))
}

func flowParam(c *gin.Context) entities.RequestType {
	return entities.RequestType(strings.ToLower(strings.TrimSpace(c.Param("flow"))))
}

// bindOptionalJSON accepts an empty body as the zero payload.
func bindOptionalJSON(c *gin.Context, out any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(out)
}

func mapIntakeError(err error) *pkg.AppError {
	var verrs usecase.ValidationErrors
	var subErr *usecase.SubmissionError

	switch {
	case errors.As(err, &verrs):
		return pkg.NewDomainErrorSimple("VALIDATION_FAILED", "Some fields are missing or invalid", http.StatusUnprocessableEntity).
			WithDetails("fields", []usecase.ValidationError(verrs))
	case errors.As(err, &subErr):
		return pkg.NewDomainError("SUBMISSION_FAILED", "The request could not be submitted, please try again", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Intake session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownFlow):
		return pkg.NewDomainErrorSimple("FLOW_NOT_FOUND", "Unknown request flow", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownCategory), errors.Is(err, usecase.ErrCategoryNotSupported):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Category not available for this flow", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPackage):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSubmissionInFlight):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "A submission is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrFieldsLocked):
		return pkg.NewDomainErrorSimple("FIELDS_LOCKED", "Fields can only be edited on the detail step", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Action not allowed on the current step", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
