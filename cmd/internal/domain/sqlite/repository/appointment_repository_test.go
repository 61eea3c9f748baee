package repository

import (
	"context"
	"testing"

	"lodelfer/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestRepository(t *testing.T) *DefaultAppointmentRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Appointment{}))

	return NewAppointmentRepository(db)
}

func TestAddListRoundTrip(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	appt := &entity.Appointment{
		ClientName: "Ana",
		Phone:      "+54 911-222-3333",
		Date:       "2024-05-01",
		Time:       "14:30",
		Service:    "Corte",
	}
	require.NoError(t, repo.Add(ctx, appt))
	assert.NotZero(t, appt.ID, "insert must assign an identity key")

	appts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 1)

	got := appts[0]
	assert.Equal(t, "Ana", got.ClientName)
	assert.Equal(t, "+54 911-222-3333", got.Phone, "phone is persisted as entered")
	assert.Equal(t, "2024-05-01", got.Date)
	assert.Equal(t, "14:30", got.Time)
	assert.Equal(t, "Corte", got.Service)
}

func TestListOrdersByDateThenTime(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, a := range []*entity.Appointment{
		{ClientName: "C", Phone: "3", Date: "2024-06-01", Time: "09:00", Service: "Corte"},
		{ClientName: "A", Phone: "1", Date: "2024-05-01", Time: "14:30", Service: "Corte"},
		{ClientName: "B", Phone: "2", Date: "2024-05-01", Time: "09:00", Service: "Barba"},
	} {
		require.NoError(t, repo.Add(ctx, a))
	}

	appts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 3)

	assert.Equal(t, "B", appts[0].ClientName)
	assert.Equal(t, "A", appts[1].ClientName)
	assert.Equal(t, "C", appts[2].ClientName)
}

func TestDuplicateSlotsAccepted(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	appt := entity.Appointment{ClientName: "Ana", Phone: "1", Date: "2024-05-01", Time: "14:30", Service: "Corte"}
	a, b := appt, appt

	// No uniqueness constraint on any field combination.
	require.NoError(t, repo.Add(ctx, &a))
	require.NoError(t, repo.Add(ctx, &b))

	appts, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, appts, 2)
}

func TestPurgePast(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, a := range []*entity.Appointment{
		{ClientName: "Old", Phone: "1", Date: "2020-01-01", Time: "10:00", Service: "Corte"},
		{ClientName: "Older", Phone: "2", Date: "2019-12-31", Time: "10:00", Service: "Corte"},
		{ClientName: "Today", Phone: "3", Date: "2024-05-01", Time: "10:00", Service: "Corte"},
		{ClientName: "Future", Phone: "4", Date: "2024-06-01", Time: "10:00", Service: "Corte"},
	} {
		require.NoError(t, repo.Add(ctx, a))
	}

	deleted, err := repo.PurgePast(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	appts, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "2024-05-01", appts[0].Date, "same-day appointments survive a purge")
}
