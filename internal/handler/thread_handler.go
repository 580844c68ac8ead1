package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "finreview/internal/errors"
	"finreview/internal/middleware"
	"finreview/internal/service"
)

// ThreadHandler handles forum category and thread endpoints.
type ThreadHandler struct {
	threadService service.ThreadService
}

// NewThreadHandler creates a new thread handler.
func NewThreadHandler(threadService service.ThreadService) *ThreadHandler {
	return &ThreadHandler{threadService: threadService}
}

// ThreadRequest represents a thread creation payload.
type ThreadRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Title      string `json:"title" validate:"required,max=200"`
}

// ListCategories godoc
// @Summary List forum categories
// @Tags forum
// @Produce json
// @Success 200 {array} model.Category
// @Router /categories [get]
func (h *ThreadHandler) ListCategories(c echo.Context) error {
	categories, err := h.threadService.ListCategories(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, categories)
}

// ListByCategory godoc
// @Summary List threads in a category
// @Tags forum
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {array} model.Thread
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id}/threads [get]
func (h *ThreadHandler) ListByCategory(c echo.Context) error {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid category ID",
			Code:  "INVALID_UUID",
		})
	}

	threads, err := h.threadService.ListByCategory(c.Request().Context(), categoryID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, threads)
}

// Get godoc
// @Summary Get a thread
// @Tags forum
// @Produce json
// @Param id path string true "Thread ID"
// @Success 200 {object} model.Thread
// @Failure 404 {object} errors.ErrorResponse
// @Router /threads/{id} [get]
func (h *ThreadHandler) Get(c echo.Context) error {
	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid thread ID",
			Code:  "INVALID_UUID",
		})
	}

	thread, err := h.threadService.Get(c.Request().Context(), threadID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, thread)
}

// Create godoc
// @Summary Start a thread
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ThreadRequest true "Thread data"
// @Success 201 {object} model.Thread
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /threads [post]
func (h *ThreadHandler) Create(c echo.Context) error {
	var req ThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid category ID",
			Code:  "INVALID_UUID",
		})
	}

	account := middleware.CurrentAccount(c)
	thread, err := h.threadService.Create(c.Request().Context(), categoryID, account.ID, req.Title)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, thread)
}
