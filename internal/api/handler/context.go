package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicvote/voting-system/internal/api/middleware"
	"github.com/civicvote/voting-system/internal/core/domain"
)

// ctxUserID extracts the user id injected by the Auth middleware. An empty
// value means the route was wired without Auth, which is reported as 401.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextKeyUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}

// bindStrict decodes a JSON body into dst and rejects unknown fields, so a
// payload can never smuggle in fields such as vote_count.
func bindStrict(c echo.Context, dst any) error {
	dec := json.NewDecoder(c.Request().Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return domain.NewValidationError("invalid payload: " + err.Error())
	}
	if dec.More() {
		return domain.NewValidationError("invalid payload: unexpected data after JSON object")
	}
	return nil
}
