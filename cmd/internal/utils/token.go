package utils

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerToken extracts the session token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.New("missing Authorization header")
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", errors.New("malformed Authorization header")
	}
	return strings.TrimSpace(token), nil
}
