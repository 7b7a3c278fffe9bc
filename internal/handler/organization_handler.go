package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hopedeeds/internal/service"
)

// OrganizationHandler handles organization endpoints.
type OrganizationHandler struct {
	orgService service.OrganizationService
}

// NewOrganizationHandler creates a new organization handler.
func NewOrganizationHandler(orgService service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService}
}

// CreateOrganizationRequest represents an organization creation request.
type CreateOrganizationRequest struct {
	Name         string `json:"name" validate:"required"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone string `json:"contactPhone"`
}

// Create godoc
// @Summary Create an organization without an admin account
// @Tags organizations
// @Accept json
// @Produce json
// @Param request body CreateOrganizationRequest true "Organization data"
// @Success 201 {object} model.Organization
// @Failure 400 {object} errors.ErrorResponse
// @Router /organizations [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	var req CreateOrganizationRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	org, err := h.orgService.Create(c.Request().Context(), req.Name, req.ContactEmail, req.ContactPhone)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, org)
}

// Get godoc
// @Summary Get an organization with its member roster
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID"
// @Success 200 {object} model.Organization
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) Get(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	org, err := h.orgService.Get(c.Request().Context(), id, cl.OrganizationID, cl.Role)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, org)
}
