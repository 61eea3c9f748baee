package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ConfigResponse carries the cosmetic constants the UI shell needs before
// login. Nothing sensitive belongs here.
type ConfigResponse struct {
	BusinessName string `json:"business_name"`
	AccentColor  string `json:"accent_color"`
}

type DefaultConfigRoute struct {
	Response ConfigResponse
}

func NewConfigDefault(businessName, accentColor string) *DefaultConfigRoute {
	return &DefaultConfigRoute{
		Response: ConfigResponse{BusinessName: businessName, AccentColor: accentColor},
	}
}

func (r *DefaultConfigRoute) GetConfig(c echo.Context) error {
	return c.JSON(http.StatusOK, &r.Response)
}
