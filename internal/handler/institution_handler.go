package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "finreview/internal/errors"
	"finreview/internal/model"
	"finreview/internal/service"
)

// InstitutionHandler handles financial institution endpoints.
type InstitutionHandler struct {
	institutionService service.InstitutionService
}

// NewInstitutionHandler creates a new institution handler.
func NewInstitutionHandler(institutionService service.InstitutionService) *InstitutionHandler {
	return &InstitutionHandler{institutionService: institutionService}
}

// InstitutionRequest represents an institution create/update payload.
// Rating fields are derived and cannot be supplied here.
type InstitutionRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,oneof=bank securities insurance credit_union other"`
	Description string `json:"description" validate:"required,max=1000"`
	Location    string `json:"location" validate:"required"`
	Website     string `json:"website" validate:"omitempty,url"`
	Logo        string `json:"logo"`
}

// List godoc
// @Summary List institutions
// @Tags institutions
// @Produce json
// @Success 200 {array} model.FinancialInstitution
// @Router /institutions [get]
func (h *InstitutionHandler) List(c echo.Context) error {
	institutions, err := h.institutionService.List(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, institutions)
}

// Get godoc
// @Summary Get an institution
// @Tags institutions
// @Produce json
// @Param id path string true "Institution ID"
// @Success 200 {object} model.FinancialInstitution
// @Failure 404 {object} errors.ErrorResponse
// @Router /institutions/{id} [get]
func (h *InstitutionHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid institution ID",
			Code:  "INVALID_UUID",
		})
	}

	institution, err := h.institutionService.Get(c.Request().Context(), id)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, institution)
}

// Create godoc
// @Summary Create an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body InstitutionRequest true "Institution data"
// @Success 201 {object} model.FinancialInstitution
// @Failure 403 {object} errors.ErrorResponse
// @Router /institutions [post]
func (h *InstitutionHandler) Create(c echo.Context) error {
	var req InstitutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	institution := &model.FinancialInstitution{
		Name:        req.Name,
		Type:        model.InstitutionType(req.Type),
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
	}
	if req.Logo != "" {
		institution.Logo = req.Logo
	}

	created, err := h.institutionService.Create(c.Request().Context(), institution)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update an institution
// @Tags institutions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Institution ID"
// @Param request body InstitutionRequest true "Institution data"
// @Success 200 {object} model.FinancialInstitution
// @Failure 404 {object} errors.ErrorResponse
// @Router /institutions/{id} [put]
func (h *InstitutionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid institution ID",
			Code:  "INVALID_UUID",
		})
	}

	var req InstitutionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	institution, err := h.institutionService.Update(c.Request().Context(), id, service.InstitutionFields{
		Name:        req.Name,
		Type:        model.InstitutionType(req.Type),
		Description: req.Description,
		Location:    req.Location,
		Website:     req.Website,
		Logo:        req.Logo,
	})
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, institution)
}

// Delete godoc
// @Summary Delete an institution
// @Tags institutions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Institution ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /institutions/{id} [delete]
func (h *InstitutionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ErrorResponse{
			Error: "invalid institution ID",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.institutionService.Delete(c.Request().Context(), id); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "institution deleted"})
}
