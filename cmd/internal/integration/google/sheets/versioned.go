package sheets

import (
	"context"

	"lodelfer/cmd/internal/domain/entity"
	"lodelfer/cmd/internal/store"
)

const defaultAddAttempts = 3

// VersionedStore layers an optimistic-concurrency check over the
// whole-table write protocol. After every overwrite it re-reads the table
// and verifies its own row survived; if a concurrent writer clobbered it,
// the add restarts from the fresh snapshot, which now contains the other
// writer's row, so neither update is silently lost. The values API has no
// compare-and-swap, so a conflict window remains between verify and the
// next overwrite; the retry loop narrows it, store.ErrConflict reports it.
type VersionedStore struct {
	rows     rowsAPI
	attempts int
}

func NewVersionedStore(rows rowsAPI) *VersionedStore {
	return &VersionedStore{rows: rows, attempts: defaultAddAttempts}
}

func (s *VersionedStore) List(ctx context.Context) ([]*entity.Appointment, error) {
	raw, err := s.rows.GetRows(ctx)
	if err != nil {
		return nil, store.Unavailable(err)
	}
	return decodeRows(raw), nil
}

func (s *VersionedStore) Add(ctx context.Context, appt *entity.Appointment) error {
	for attempt := 0; attempt < s.attempts; attempt++ {
		raw, err := s.rows.GetRows(ctx)
		if err != nil {
			return store.Unavailable(err)
		}

		appts := append(decodeRows(raw), appt)
		if err := s.rows.OverwriteRows(ctx, encodeRows(appts)); err != nil {
			return store.Unavailable(err)
		}

		persisted, err := s.rows.GetRows(ctx)
		if err != nil {
			return store.Unavailable(err)
		}
		if containsAppointment(decodeRows(persisted), appt) {
			return nil
		}
	}
	return store.ErrConflict
}

func containsAppointment(appts []*entity.Appointment, want *entity.Appointment) bool {
	for _, a := range appts {
		if a.ClientName == want.ClientName &&
			a.Phone == want.Phone &&
			a.Date == want.Date &&
			a.Time == want.Time &&
			a.Service == want.Service {
			return true
		}
	}
	return false
}
