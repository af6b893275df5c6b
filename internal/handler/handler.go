package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	apperrors "adboard/internal/errors"
	"adboard/internal/model"
)

// IdentityKey is the echo context key under which the token middleware
// stores the authenticated user.
const IdentityKey = "identity"

// Identity returns the authenticated user stored by the token middleware,
// or nil on unauthenticated routes.
func Identity(c echo.Context) *model.User {
	user, _ := c.Get(IdentityKey).(*model.User)
	return user
}

// IDResponse carries a bare record id.
type IDResponse struct {
	ID uint `json:"id"`
}

// httpError translates a domain error into an echo error with the standard
// envelope.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// timestampLayouts are the accepted ISO-8601 shapes for search range
// parameters, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseTimestamp parses an ISO-8601 timestamp, with or without a zone
// offset or time-of-day part.
func parseTimestamp(s string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
