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

// CommentHandler handles comment and helpful-vote endpoints.
type CommentHandler struct {
	commentService service.CommentService
	helpfulService service.HelpfulService
}

// NewCommentHandler creates a new comment handler.
func NewCommentHandler(commentService service.CommentService, helpfulService service.HelpfulService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		helpfulService: helpfulService,
	}
}

// CommentRequest represents a comment creation payload.
type CommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// ListByThread godoc
// @Summary List comments in a thread
// @Tags forum
// @Produce json
// @Param id path string true "Thread ID"
// @Success 200 {array} model.Comment
// @Router /threads/{id}/comments [get]
func (h *CommentHandler) ListByThread(c echo.Context) error {
	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid thread ID",
			Code:  "INVALID_UUID",
		})
	}

	comments, err := h.commentService.ListByThread(c.Request().Context(), threadID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, comments)
}

// Create godoc
// @Summary Comment on a thread
// @Tags forum
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Thread ID"
// @Param request body CommentRequest true "Comment data"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /threads/{id}/comments [post]
func (h *CommentHandler) Create(c echo.Context) error {
	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid thread ID",
			Code:  "INVALID_UUID",
		})
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account := middleware.CurrentAccount(c)
	comment, count, err := h.commentService.Create(c.Request().Context(), threadID, account.ID, req.Content)
	if err != nil && !errors.Is(err, service.ErrAggregateStale) {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := echo.Map{"comment": comment}
	if err != nil {
		resp["warning"] = staleCountersWarning
	} else {
		resp["comment_count"] = count
	}
	return c.JSON(http.StatusCreated, resp)
}

// Delete godoc
// @Summary Delete a comment
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id} [delete]
func (h *CommentHandler) Delete(c echo.Context) error {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid comment ID",
			Code:  "INVALID_UUID",
		})
	}

	account := middleware.CurrentAccount(c)
	count, err := h.commentService.Delete(c.Request().Context(), commentID, account)
	if err != nil && !errors.Is(err, service.ErrAggregateStale) {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := echo.Map{"message": "comment deleted"}
	if err != nil {
		resp["warning"] = staleCountersWarning
	} else {
		resp["comment_count"] = count
	}
	return c.JSON(http.StatusOK, resp)
}

// MarkHelpful godoc
// @Summary Mark a comment as helpful
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 201 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /comments/{id}/helpful [post]
func (h *CommentHandler) MarkHelpful(c echo.Context) error {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid comment ID",
			Code:  "INVALID_UUID",
		})
	}

	account := middleware.CurrentAccount(c)
	count, err := h.helpfulService.Mark(c.Request().Context(), commentID, account.ID)
	if err != nil && !errors.Is(err, service.ErrAggregateStale) {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := echo.Map{"message": "marked helpful"}
	if err != nil {
		resp["warning"] = staleCountersWarning
	} else {
		resp["helpful_count"] = count
	}
	return c.JSON(http.StatusCreated, resp)
}

// UnmarkHelpful godoc
// @Summary Remove a helpful mark
// @Tags forum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /comments/{id}/helpful [delete]
func (h *CommentHandler) UnmarkHelpful(c echo.Context) error {
	commentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid comment ID",
			Code:  "INVALID_UUID",
		})
	}

	account := middleware.CurrentAccount(c)
	count, err := h.helpfulService.Unmark(c.Request().Context(), commentID, account.ID)
	if err != nil && !errors.Is(err, service.ErrAggregateStale) {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	resp := echo.Map{"message": "helpful mark removed"}
	if err != nil {
		resp["warning"] = staleCountersWarning
	} else {
		resp["helpful_count"] = count
	}
	return c.JSON(http.StatusOK, resp)
}
