package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "finreview/internal/errors"
	"finreview/internal/middleware"
	"finreview/internal/service"
)

const maxScreenshotBytes = 2 * 1024 * 1024

var allowedScreenshotTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// ApprovalHandler handles the account approval workflow.
type ApprovalHandler struct {
	approvalService service.ApprovalService
}

// NewApprovalHandler creates a new approval handler.
func NewApprovalHandler(approvalService service.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{approvalService: approvalService}
}

// UploadScreenshot godoc
// @Summary Submit an approval screenshot
// @Tags approval
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param screenshot formData file true "Screenshot (jpeg/png/gif, max 2MB)"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/approval-screenshot [post]
func (h *ApprovalHandler) UploadScreenshot(c echo.Context) error {
	account := middleware.CurrentAccount(c)

	fileHeader, err := c.FormFile("screenshot")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "no file uploaded",
			Code:  "BAD_FILE",
		})
	}
	if fileHeader.Size > maxScreenshotBytes {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "file exceeds the 2MB limit",
			Code:  "BAD_FILE",
		})
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedScreenshotTypes[contentType] {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "only jpeg, png and gif files are accepted",
			Code:  "BAD_FILE",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "could not read uploaded file",
			Code:  "BAD_FILE",
		})
	}
	defer file.Close()

	user, err := h.approvalService.SubmitEvidence(c.Request().Context(), account.ID, file, fileHeader.Size, contentType)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, user)
}

// PendingUsers godoc
// @Summary List accounts awaiting approval
// @Tags approval
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /auth/pending-users [get]
func (h *ApprovalHandler) PendingUsers(c echo.Context) error {
	users, err := h.approvalService.ListPending(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}

// ApproveUser godoc
// @Summary Approve an account
// @Tags approval
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /auth/approve-user/{userId} [put]
func (h *ApprovalHandler) ApproveUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid user ID",
			Code:  "INVALID_UUID",
		})
	}

	user, err := h.approvalService.Approve(c.Request().Context(), userID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}
