package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hopedeeds/internal/service"
)

// ShiftHandler handles shift CRUD and signup endpoints.
type ShiftHandler struct {
	shiftService service.ShiftService
}

// NewShiftHandler creates a new shift handler.
func NewShiftHandler(shiftService service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftService: shiftService}
}

// CreateShiftRequest represents a shift creation request.
type CreateShiftRequest struct {
	OpportunityID string `json:"opportunityId" validate:"required,uuid"`
	StartTime     string `json:"startTime" validate:"required"`
	EndTime       string `json:"endTime" validate:"required"`
	Capacity      *int   `json:"capacity"`
}

// UpdateShiftRequest carries partial shift updates.
type UpdateShiftRequest struct {
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Capacity  *int    `json:"capacity"`
}

// Create godoc
// @Summary Create a shift under an opportunity
// @Tags shifts
// @Accept json
// @Produce json
// @Param request body CreateShiftRequest true "Shift data"
// @Success 201 {object} model.Shift
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /shifts [post]
func (h *ShiftHandler) Create(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	var req CreateShiftRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}
	oppID, err := uuid.Parse(req.OpportunityID)
	if err != nil {
		return badRequest("invalid opportunityId")
	}
	start, httpErr := parseTime(req.StartTime, "startTime")
	if httpErr != nil {
		return httpErr
	}
	end, httpErr := parseTime(req.EndTime, "endTime")
	if httpErr != nil {
		return httpErr
	}

	shift, err := h.shiftService.Create(c.Request().Context(), cl.OrganizationID, oppID, start, end, req.Capacity)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, shift)
}

// Get godoc
// @Summary Get a shift with its opportunity and signup count
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} model.Shift
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /shifts/{id} [get]
func (h *ShiftHandler) Get(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	shift, err := h.shiftService.Get(c.Request().Context(), id, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, shift)
}

// Update godoc
// @Summary Update a shift's times or capacity
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID"
// @Param request body UpdateShiftRequest true "Fields to update"
// @Success 200 {object} model.Shift
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /shifts/{id} [put]
func (h *ShiftHandler) Update(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req UpdateShiftRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	upd := service.ShiftUpdate{Capacity: req.Capacity}
	if req.StartTime != nil {
		start, httpErr := parseTime(*req.StartTime, "startTime")
		if httpErr != nil {
			return httpErr
		}
		upd.StartTime = &start
	}
	if req.EndTime != nil {
		end, httpErr := parseTime(*req.EndTime, "endTime")
		if httpErr != nil {
			return httpErr
		}
		upd.EndTime = &end
	}

	shift, err := h.shiftService.Update(c.Request().Context(), id, cl.OrganizationID, upd)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, shift)
}

// Delete godoc
// @Summary Delete a shift and its signups
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /shifts/{id} [delete]
func (h *ShiftHandler) Delete(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	if err := h.shiftService.Delete(c.Request().Context(), id, cl.OrganizationID); err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Signup godoc
// @Summary Sign the authenticated volunteer up for a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 201 {object} model.ShiftSignup
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /shifts/{id}/signup [post]
func (h *ShiftHandler) Signup(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	signup, err := h.shiftService.Signup(c.Request().Context(), id, cl.UserID, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, signup)
}

// CancelSignup godoc
// @Summary Cancel the authenticated volunteer's signup for a shift
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {object} successResponse
// @Security BearerAuth
// @Router /shifts/{id}/signup [delete]
func (h *ShiftHandler) CancelSignup(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	if err := h.shiftService.CancelSignup(c.Request().Context(), id, cl.UserID); err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListSignups godoc
// @Summary List a shift's signups with volunteer readiness flags
// @Tags shifts
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {array} model.ShiftSignup
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /shifts/{id}/signups [get]
func (h *ShiftHandler) ListSignups(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	signups, err := h.shiftService.ListSignups(c.Request().Context(), id, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, signups)
}
