package routes

import (
	"context"
	"net/http"

	"lodelfer/cmd/internal/service"
	"lodelfer/cmd/internal/utils"
	"lodelfer/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type AppointmentService interface {
	GetAgenda(ctx context.Context) ([]*service.AgendaEntry, apierror.ErrorResponse)
	CreateAppointment(ctx context.Context, req *service.BookingRequest) (*service.BookingResponse, apierror.ErrorResponse)
	PurgePast(ctx context.Context) (*service.PurgeResponse, apierror.ErrorResponse)
	GetServices() []string
}

// SessionVerifier is the slice of the session service the protected routes
// need.
type SessionVerifier interface {
	Verify(token string) apierror.ErrorResponse
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
	Sessions           SessionVerifier
}

func NewAppointmentDefault(apptService AppointmentService, sessions SessionVerifier) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService, Sessions: sessions}
}

func (a *DefaultAppointmentRoute) GetAgenda(c echo.Context) error {
	if apierr := a.authenticate(c); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	entries, apierr := a.AppointmentService.GetAgenda(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": entries}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) CreateAppointment(c echo.Context) error {
	if apierr := a.authenticate(c); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	var req service.BookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apierror.MalformedBodyError)
	}

	resp, apierr := a.AppointmentService.CreateAppointment(c.Request().Context(), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}

func (a *DefaultAppointmentRoute) PurgePast(c echo.Context) error {
	if apierr := a.authenticate(c); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp, apierr := a.AppointmentService.PurgePast(c.Request().Context())
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, resp)
}

func (a *DefaultAppointmentRoute) GetServices(c echo.Context) error {
	if apierr := a.authenticate(c); apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"services": a.AppointmentService.GetServices()}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) authenticate(c echo.Context) apierror.ErrorResponse {
	token, err := utils.BearerToken(c)
	if err != nil {
		return apierror.InvalidAuthTokenError
	}
	return a.Sessions.Verify(token)
}
