package service

import (
	"context"
	"errors"
	"sort"

	"lodelfer/cmd/internal/domain/entity"
	"lodelfer/cmd/internal/metrics"
	"lodelfer/cmd/internal/store"
	"lodelfer/cmd/internal/utils"
	"lodelfer/cmd/internal/utils/apierror"
	"lodelfer/cmd/internal/whatsapp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// AppointmentStore is the full capability set every backend must provide.
type AppointmentStore interface {
	List(ctx context.Context) ([]*entity.Appointment, error)
	Add(ctx context.Context, appt *entity.Appointment) error
}

// PastPurger is an optional backend capability; only the relational store
// implements it.
type PastPurger interface {
	PurgePast(ctx context.Context, before string) (int64, error)
}

type BookingRequest struct {
	ClientName string `json:"client_name" validate:"required,max=120"`
	Phone      string `json:"phone" validate:"required,max=40"`
	Date       string `json:"date" validate:"required,isodate"`
	Time       string `json:"time" validate:"required,clocktime"`
	Service    string `json:"service" validate:"required"`
}

type BookingResponse struct {
	Appointment *entity.Appointment `json:"appointment"`
	Message     string              `json:"message"`
}

// AgendaEntry is one agenda row decorated with its reminder link.
type AgendaEntry struct {
	ID           int    `json:"id,omitempty"`
	ClientName   string `json:"client_name"`
	Phone        string `json:"phone"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Service      string `json:"service"`
	WhatsAppLink string `json:"whatsapp_link"`
}

type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

type DefaultAppointmentService struct {
	Store        AppointmentStore
	Validate     *validator.Validate
	BusinessName string
	Services     []string
}

func NewAppointmentService(st AppointmentStore, validate *validator.Validate, businessName string, services []string) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		Store:        st,
		Validate:     validate,
		BusinessName: businessName,
		Services:     services,
	}
}

// CreateAppointment validates and persists one booking. Date and time are
// forced into their zero-padded normal forms before validation so that
// nothing outside the (fecha, hora) sort contract ever reaches a store.
func (a *DefaultAppointmentService) CreateAppointment(ctx context.Context, req *BookingRequest) (*BookingResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)

	if normalized, err := utils.NormalizeDate(req.Date); err == nil {
		req.Date = normalized
	}
	if normalized, err := utils.NormalizeClock(req.Time); err == nil {
		req.Time = normalized
	}

	if err := a.Validate.Struct(req); err != nil {
		return nil, apierror.FromValidationError(err)
	}

	if req.Date < utils.Today() {
		return nil, apierror.AppointmentInPastError
	}

	if !a.knownService(req.Service) {
		return nil, apierror.NewUnknownServiceError(a.Services)
	}

	// Phone is persisted as entered; digits-only normalization applies
	// only when the reminder link is built.
	appt := &entity.Appointment{
		ClientName: req.ClientName,
		Phone:      req.Phone,
		Date:       req.Date,
		Time:       req.Time,
		Service:    req.Service,
	}

	if err := a.Store.Add(ctx, appt); err != nil {
		return nil, a.mapStoreError("save appointment", err)
	}

	metrics.BookingsCreated.Inc()
	return &BookingResponse{
		Appointment: appt,
		Message:     "¡Cita de " + appt.ClientName + " guardada!",
	}, nil
}

// GetAgenda lists every stored appointment sorted by (date, time), drops
// the blank rows sheet padding produces, and decorates each row with its
// WhatsApp reminder link. Store unavailability surfaces as a distinct
// error, never as an empty agenda.
func (a *DefaultAppointmentService) GetAgenda(ctx context.Context) ([]*AgendaEntry, apierror.ErrorResponse) {
	appts, err := a.Store.List(ctx)
	if err != nil {
		return nil, a.mapStoreError("list appointments", err)
	}

	entries := make([]*AgendaEntry, 0, len(appts))
	for _, appt := range appts {
		if appt.ClientName == "" {
			continue
		}
		entries = append(entries, a.toAgendaEntry(appt))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].Time < entries[j].Time
	})

	metrics.AgendaRenders.Inc()
	return entries, nil
}

// PurgePast removes appointments dated before today, when the configured
// backend supports deletion at all.
func (a *DefaultAppointmentService) PurgePast(ctx context.Context) (*PurgeResponse, apierror.ErrorResponse) {
	purger, ok := a.Store.(PastPurger)
	if !ok {
		return nil, apierror.PurgeUnsupportedError
	}

	deleted, err := purger.PurgePast(ctx, utils.Today())
	if err != nil {
		return nil, a.mapStoreError("purge past appointments", err)
	}
	return &PurgeResponse{Deleted: deleted}, nil
}

// GetServices returns the configured service menu.
func (a *DefaultAppointmentService) GetServices() []string {
	return a.Services
}

func (a *DefaultAppointmentService) knownService(name string) bool {
	for _, s := range a.Services {
		if s == name {
			return true
		}
	}
	return false
}

func (a *DefaultAppointmentService) mapStoreError(op string, err error) apierror.ErrorResponse {
	switch {
	case errors.Is(err, store.ErrUnavailable):
		metrics.StoreUnavailable.Inc()
		log.Errorf("store unavailable, failed to %s: %v", op, err)
		return apierror.StoreUnavailableError
	case errors.Is(err, store.ErrConflict):
		metrics.WriteConflicts.Inc()
		log.Warnf("write conflict, failed to %s: %v", op, err)
		return apierror.StoreConflictError
	default:
		log.Errorf("failed to %s: %v", op, err)
		return apierror.InternalServerError
	}
}

func (a *DefaultAppointmentService) toAgendaEntry(appt *entity.Appointment) *AgendaEntry {
	return &AgendaEntry{
		ID:           appt.ID,
		ClientName:   appt.ClientName,
		Phone:        appt.Phone,
		Date:         appt.Date,
		Time:         appt.Time,
		Service:      appt.Service,
		WhatsAppLink: whatsapp.ReminderLink(a.BusinessName, appt),
	}
}
