package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "finreview/internal/errors"
	"finreview/internal/middleware"
	"finreview/internal/service"
)

// staleCountersWarning is attached to otherwise-successful responses when the
// triggering mutation committed but the counter recompute failed.
const staleCountersWarning = "content saved, but counter refresh failed; displayed counts may be stale"

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ReviewRequest represents a review creation payload.
type ReviewRequest struct {
	Title  string `json:"title" validate:"required,max=100"`
	Text   string `json:"text" validate:"required,max=1000"`
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
}

// ListByInstitution godoc
// @Summary List reviews of an institution
// @Tags reviews
// @Produce json
// @Param id path string true "Institution ID"
// @Success 200 {array} model.Review
// @Router /institutions/{id}/reviews [get]
func (h *ReviewHandler) ListByInstitution(c echo.Context) error {
	institutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid institution ID",
			Code:  "INVALID_UUID",
		})
	}

	reviews, err := h.reviewService.ListByInstitution(c.Request().Context(), institutionID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reviews)
}

// Create godoc
// @Summary Review an institution
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Institution ID"
// @Param request body ReviewRequest true "Review data"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /institutions/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	institutionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid institution ID",
			Code:  "INVALID_UUID",
		})
	}

	var req ReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account := middleware.CurrentAccount(c)
	review, summary, err := h.reviewService.Create(c.Request().Context(), institutionID, account.ID, req.Title, req.Text, req.Rating)
	if err != nil && !errors.Is(err, service.ErrAggregateStale) {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := echo.Map{"review": review}
	if summary != nil {
		resp["institution"] = summary
	}
	if err != nil {
		resp["warning"] = staleCountersWarning
	}
	return c.JSON(http.StatusCreated, resp)
}

// Delete godoc
// @Summary Delete a review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	reviewID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid review ID",
			Code:  "INVALID_UUID",
		})
	}

	account := middleware.CurrentAccount(c)
	summary, err := h.reviewService.Delete(c.Request().Context(), reviewID, account)
	if err != nil && !errors.Is(err, service.ErrAggregateStale) {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := echo.Map{"message": "review deleted"}
	if summary != nil {
		resp["institution"] = summary
	}
	if err != nil {
		resp["warning"] = staleCountersWarning
	}
	return c.JSON(http.StatusOK, resp)
}
