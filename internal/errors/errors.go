package errors

import (
	"errors"
	"net/http"
)

// Not-found errors. Scope failures (entity exists but belongs to another
// organization) return the same error as true absence so that existence
// never leaks across tenants.
var (
	// ErrOrganizationNotFound is returned when an organization is not found.
	ErrOrganizationNotFound = errors.New("Organization not found")
	// ErrOpportunityNotFound is returned when an opportunity is absent or outside the caller's organization.
	ErrOpportunityNotFound = errors.New("Opportunity not found in your organization")
	// ErrShiftNotFound is returned when a shift is absent or outside the caller's organization.
	ErrShiftNotFound = errors.New("Shift not found")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("User not found")
	// ErrVolunteerNotFound is returned when a volunteer is absent or outside the caller's organization.
	ErrVolunteerNotFound = errors.New("Volunteer not found")
	// ErrVolunteerNotInOrg is returned by the kiosk contact lookup.
	ErrVolunteerNotInOrg = errors.New("Volunteer not found in your organization")
	// ErrAttendanceNotFound is returned when an attendance record is not found.
	ErrAttendanceNotFound = errors.New("Attendance record not found")
)

// Validation errors surfaced by the signup and attendance engines.
var (
	// ErrGatingIncomplete is returned when a volunteer lacks a background check or orientation.
	ErrGatingIncomplete = errors.New("You must complete background check and orientation before signing up for shifts")
	// ErrShiftFull is returned when signups have reached capacity.
	ErrShiftFull = errors.New("Shift is full")
	// ErrOverlappingShift is returned when a signup would overlap an existing one.
	ErrOverlappingShift = errors.New("You are already signed up for another shift that overlaps this time")
	// ErrAlreadySignedUp is returned on a duplicate (shift, user) signup.
	ErrAlreadySignedUp = errors.New("You are already signed up for this shift")
	// ErrNotSignedUp is returned when checking in without a prior signup.
	ErrNotSignedUp = errors.New("You are not signed up for this shift")
	// ErrNotCheckedIn is returned when checking out with no open session.
	ErrNotCheckedIn = errors.New("You are not currently checked in")
	// ErrKioskNotCheckedIn is returned by kiosk checkout with no open session.
	ErrKioskNotCheckedIn = errors.New("Volunteer is not currently checked in to any shift")
	// ErrAlreadyCheckedIn is returned by kiosk check-in for the same shift.
	ErrAlreadyCheckedIn = errors.New("Volunteer is already checked in to this shift")
	// ErrNoActiveShift is returned by kiosk check-in when no signed-up shift is in progress.
	ErrNoActiveShift = errors.New("No active shift found for this volunteer at this time")
	// ErrShiftTimesInverted is returned when startTime is not before endTime.
	ErrShiftTimesInverted = errors.New("startTime must be before endTime")
	// ErrInvalidCapacity is returned when capacity is not a positive number.
	ErrInvalidCapacity = errors.New("capacity must be a positive number")
)

// Auth errors.
var (
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("Invalid email or password")
	// ErrEmailInUse is returned when registering an already-registered email.
	ErrEmailInUse = errors.New("Email already in use")
	// ErrForbidden is returned on role or cross-organization access.
	ErrForbidden = errors.New("Forbidden: insufficient permissions")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// Validation builds a 400 HTTPError with a one-off message.
func Validation(message string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, message, "VALIDATION_ERROR")
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch err {
	case ErrOrganizationNotFound, ErrOpportunityNotFound, ErrShiftNotFound,
		ErrUserNotFound, ErrVolunteerNotFound, ErrVolunteerNotInOrg, ErrAttendanceNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_FOUND")
	case ErrGatingIncomplete, ErrShiftFull, ErrOverlappingShift, ErrAlreadySignedUp,
		ErrNotSignedUp, ErrNotCheckedIn, ErrKioskNotCheckedIn, ErrAlreadyCheckedIn,
		ErrNoActiveShift, ErrShiftTimesInverted, ErrInvalidCapacity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "VALIDATION_ERROR")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrEmailInUse:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_IN_USE")
	case ErrForbidden:
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
