package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hopedeeds/internal/service"
)

// AttendanceHandler handles authenticated check-in/out and attendance lists.
type AttendanceHandler struct {
	attendanceService service.AttendanceService
}

// NewAttendanceHandler creates a new attendance handler.
func NewAttendanceHandler(attendanceService service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceService: attendanceService}
}

// CheckInRequest names the shift being checked in to.
type CheckInRequest struct {
	ShiftID string `json:"shiftId" validate:"required,uuid"`
}

// EditAttendanceRequest carries admin corrections to an attendance record.
type EditAttendanceRequest struct {
	CheckIn  *string `json:"checkIn"`
	CheckOut *string `json:"checkOut"`
}

// CheckIn godoc
// @Summary Check the authenticated volunteer in to a shift
// @Tags attendance
// @Accept json
// @Produce json
// @Param request body CheckInRequest true "Shift to check in to"
// @Success 201 {object} model.Attendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance/checkin [post]
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error())
	}
	shiftID, err := uuid.Parse(req.ShiftID)
	if err != nil {
		return badRequest("invalid shiftId")
	}

	attendance, err := h.attendanceService.CheckIn(c.Request().Context(), cl.UserID, cl.OrganizationID, shiftID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusCreated, attendance)
}

// CheckOut godoc
// @Summary Check the authenticated volunteer out of their open session
// @Tags attendance
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance/checkout [post]
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}

	hours, err := h.attendanceService.CheckOut(c.Request().Context(), cl.UserID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"hours":   hours,
	})
}

// ListForUser godoc
// @Summary List a volunteer's attendance history
// @Tags attendance
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} model.Attendance
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance/user/{id} [get]
func (h *AttendanceHandler) ListForUser(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	userID, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	records, err := h.attendanceService.ListForUser(c.Request().Context(), userID, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, records)
}

// ListForShift godoc
// @Summary List all attendance records for a shift
// @Tags attendance
// @Produce json
// @Param id path string true "Shift ID"
// @Success 200 {array} model.Attendance
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance/shift/{id} [get]
func (h *AttendanceHandler) ListForShift(c echo.Context) error {
	cl, httpErr := claims(c)
	if httpErr != nil {
		return httpErr
	}
	shiftID, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	records, err := h.attendanceService.ListForShift(c.Request().Context(), shiftID, cl.OrganizationID)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, records)
}

// Edit godoc
// @Summary Correct an attendance record's check-in or check-out time
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Attendance ID"
// @Param request body EditAttendanceRequest true "Fields to correct"
// @Success 200 {object} model.Attendance
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [put]
func (h *AttendanceHandler) Edit(c echo.Context) error {
	id, httpErr := pathID(c, "id")
	if httpErr != nil {
		return httpErr
	}

	var req EditAttendanceRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}

	var edit service.AttendanceEdit
	if req.CheckIn != nil {
		t, httpErr := parseTime(*req.CheckIn, "checkIn")
		if httpErr != nil {
			return httpErr
		}
		edit.CheckIn = &t
	}
	if req.CheckOut != nil {
		t, httpErr := parseTime(*req.CheckOut, "checkOut")
		if httpErr != nil {
			return httpErr
		}
		edit.CheckOut = &t
	}

	attendance, err := h.attendanceService.AdminEdit(c.Request().Context(), id, edit)
	if err != nil {
		return fail(err)
	}

	return c.JSON(http.StatusOK, attendance)
}
