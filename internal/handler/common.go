package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"hopedeeds/internal/auth"
	"hopedeeds/internal/errors"
)

// fail converts a service error into the JSON error envelope.
func fail(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// badRequest wraps a one-off validation message in the error envelope.
func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "VALIDATION_ERROR",
	})
}

// claims returns the caller's verified token claims. The JWT middleware runs
// on every protected group, so a miss here means a wiring bug, not a client
// error, but it is still reported as 401.
func claims(c echo.Context) (*auth.Claims, *echo.HTTPError) {
	cl, ok := auth.ClaimsFrom(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: "Not authenticated",
			Code:  "UNAUTHORIZED",
		})
	}
	return cl, nil
}

// pathID parses a :param path segment as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, *echo.HTTPError) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, badRequest("invalid " + name)
	}
	return id, nil
}

// parseTime parses an RFC 3339 timestamp from a request field.
func parseTime(value, field string) (time.Time, *echo.HTTPError) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, badRequest("invalid " + field + ": expected RFC 3339 timestamp")
	}
	return t, nil
}

// successResponse is the envelope for mutations that return no entity.
type successResponse struct {
	Success bool `json:"success"`
}
