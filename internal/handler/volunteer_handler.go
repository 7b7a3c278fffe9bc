package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"hopedeeds/internal/model"
	"hopedeeds/internal/service"
)

// VolunteerHandler handles roster administration endpoints.
type VolunteerHandler struct {
	volunteerService service.VolunteerService
}

// NewVolunteerHandler creates a new volunteer handler.
func NewVolunteerHandler(volunteerService service.VolunteerService) *VolunteerHandler {
	return &VolunteerHandler{volunteerService: volunteerService}
}

// UpdateVolunteerRequest carries partial volunteer profile updates.
type UpdateVolunteerRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email" validate:"omitempty,email"`
	Phone *string `json:"phone"`
	Role  *string `json:"role"`
}

// AddHoursRequest logs volunteer hours manually.
type AddHoursRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// List godoc
// @Summary List the organization's volunteers by name
// @Tags volunteers
// @Produce json
// @Success 200 {array} model.User
// @Security BearerAuth
// @Router /volunteers [get]
func (h *VolunteerHandler) List(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	volunteers, err := h.volunteerService.List(c.Request().Context(), cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, volunteers)
}

// Get godoc
// @Summary Get a volunteer with their shift signups
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} model.User
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id} [get]
func (h *VolunteerHandler) Get(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	volunteer, err := h.volunteerService.Get(c.Request().Context(), id, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, volunteer)
}

// Update godoc
// @Summary Update a volunteer's profile, and role if the caller is an admin
// @Tags volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param request body UpdateVolunteerRequest true "Fields to update"
// @Success 200 {object} model.User
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id} [put]
func (h *VolunteerHandler) Update(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req UpdateVolunteerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}

	upd := service.VolunteerUpdate{Name: req.Name, Email: req.Email, Phone: req.Phone}
	if req.Role != nil {
		role := model.Role(*req.Role)
		upd.Role = &role
	}

	volunteer, err := h.volunteerService.Update(c.Request().Context(), id, cl.OrganizationID, cl.Role, upd)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, volunteer)
}

// ApproveBackgroundCheck godoc
// @Summary Mark a volunteer's background check as complete
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id}/background-check [patch]
func (h *VolunteerHandler) ApproveBackgroundCheck(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	volunteer, err := h.volunteerService.ApproveBackgroundCheck(c.Request().Context(), id, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"updated": volunteer,
	})
}

// ApproveOrientation godoc
// @Summary Mark a volunteer's orientation as attended
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id}/orientation [patch]
func (h *VolunteerHandler) ApproveOrientation(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	volunteer, err := h.volunteerService.ApproveOrientation(c.Request().Context(), id, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"updated": volunteer,
	})
}

// Deactivate godoc
// @Summary Deactivate a volunteer account
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id}/deactivate [patch]
func (h *VolunteerHandler) Deactivate(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	if err := h.volunteerService.Deactivate(c.Request().Context(), id, cl.OrganizationID); err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListHours godoc
// @Summary List a volunteer's hour log, newest first
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Success 200 {array} model.VolunteerHour
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id}/hours [get]
func (h *VolunteerHandler) ListHours(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	hours, err := h.volunteerService.ListHours(c.Request().Context(), id, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, hours)
}

// AddHours godoc
// @Summary Log hours for a volunteer manually
// @Tags volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param request body AddHoursRequest true "Hours to log"
// @Success 201 {object} model.VolunteerHour
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id}/hours/add [post]
func (h *VolunteerHandler) AddHours(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req AddHoursRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	hour, err := h.volunteerService.AddHours(c.Request().Context(), id, cl.OrganizationID, req.Amount, req.Description)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, hour)
}

// DeleteHour godoc
// @Summary Delete one of a volunteer's hour log entries
// @Tags volunteers
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param hourId path string true "Hour entry ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /volunteers/{id}/hours/{hourId} [delete]
func (h *VolunteerHandler) DeleteHour(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}
	hourID, httpErr := pathID(c, "hourId")
	if httpErr != nil {
		return httpErr
	}

	if err := h.volunteerService.DeleteHour(c.Request().Context(), id, hourID, cl.OrganizationID); err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}
