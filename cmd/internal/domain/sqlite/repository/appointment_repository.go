package repository

import (
	"context"

	"lodelfer/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

// DefaultAppointmentRepository is the relational appointment store. Inserts
// are single-row and atomic under SQLite's own transaction guarantees, so
// it has none of the lost-update hazard of the sheet backend.
type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

// List returns all appointments ordered by (fecha, hora). Both columns hold
// zero-padded forms (YYYY-MM-DD, HH:MM), so lexicographic order is
// chronological order.
func (a *DefaultAppointmentRepository) List(ctx context.Context) ([]*entity.Appointment, error) {
	var appts []*entity.Appointment
	err := a.db.WithContext(ctx).
		Order("fecha asc, hora asc").
		Find(&appts).Error
	return appts, err
}

func (a *DefaultAppointmentRepository) Add(ctx context.Context, appt *entity.Appointment) error {
	return a.db.WithContext(ctx).Create(appt).Error
}

// PurgePast deletes every appointment dated strictly before the given day.
// Only the relational backend supports this; the agenda service discovers
// it through a capability check.
func (a *DefaultAppointmentRepository) PurgePast(ctx context.Context, before string) (int64, error) {
	res := a.db.WithContext(ctx).
		Where("fecha < ?", before).
		Delete(&entity.Appointment{})
	return res.RowsAffected, res.Error
}
