package routes

import (
	"net/http"

	"lodelfer/cmd/internal/service"
	"lodelfer/cmd/internal/utils"
	"lodelfer/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type SessionService interface {
	Login(req *service.LoginRequest) (*service.LoginResponse, apierror.ErrorResponse)
	Logout(token string) apierror.ErrorResponse
}

type DefaultSessionRoute struct {
	SessionService SessionService
}

func NewSessionDefault(sessionService SessionService) *DefaultSessionRoute {
	return &DefaultSessionRoute{SessionService: sessionService}
}

func (s *DefaultSessionRoute) Login(c echo.Context) error {
	var req service.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := s.SessionService.Login(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *DefaultSessionRoute) Logout(c echo.Context) error {
	token, err := utils.BearerToken(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, apierror.InvalidAuthTokenError)
	}

	if apierr := s.SessionService.Logout(token); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.NoContent(http.StatusNoContent)
}
