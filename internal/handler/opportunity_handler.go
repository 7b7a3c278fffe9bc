package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"hopedeeds/internal/service"
)

// OpportunityHandler handles opportunity CRUD endpoints.
type OpportunityHandler struct {
	oppService service.OpportunityService
}

// NewOpportunityHandler creates a new opportunity handler.
func NewOpportunityHandler(oppService service.OpportunityService) *OpportunityHandler {
	return &OpportunityHandler{oppService: oppService}
}

// CreateOpportunityRequest represents an opportunity creation request.
type CreateOpportunityRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// UpdateOpportunityRequest carries partial opportunity updates. Absent fields
// are left untouched.
type UpdateOpportunityRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

// Create godoc
// @Summary Create an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Param request body CreateOpportunityRequest true "Opportunity data"
// @Success 201 {object} model.Opportunity
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /opportunities [post]
func (h *OpportunityHandler) Create(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	var req CreateOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	opp, err := h.oppService.Create(c.Request().Context(), cl.OrganizationID, req.Title, req.Description, req.Location)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, opp)
}

// List godoc
// @Summary List the organization's opportunities with shift counts
// @Tags opportunities
// @Produce json
// @Success 200 {array} model.Opportunity
// @Security BearerAuth
// @Router /opportunities [get]
func (h *OpportunityHandler) List(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	opps, err := h.oppService.List(c.Request().Context(), cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, opps)
}

// Get godoc
// @Summary Get an opportunity with its shifts and signup counts
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} model.Opportunity
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /opportunities/{id} [get]
func (h *OpportunityHandler) Get(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	opp, err := h.oppService.Get(c.Request().Context(), id, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, opp)
}

// Update godoc
// @Summary Update an opportunity
// @Tags opportunities
// @Accept json
// @Produce json
// @Param id path string true "Opportunity ID"
// @Param request body UpdateOpportunityRequest true "Fields to update"
// @Success 200 {object} model.Opportunity
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /opportunities/{id} [put]
func (h *OpportunityHandler) Update(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req UpdateOpportunityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	opp, err := h.oppService.Update(c.Request().Context(), id, cl.OrganizationID, service.OpportunityUpdate{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, opp)
}

// Delete godoc
// @Summary Delete an opportunity with its shifts and signups
// @Tags opportunities
// @Produce json
// @Param id path string true "Opportunity ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /opportunities/{id} [delete]
func (h *OpportunityHandler) Delete(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	if err := h.oppService.Delete(c.Request().Context(), id, cl.OrganizationID); err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
