package sheets

import (
	"context"

	"lodelfer/cmd/internal/domain/entity"
	"lodelfer/cmd/internal/store"
)

// rowsAPI is what the stores need from the spreadsheet: a fresh full read
// and a whole-table overwrite. Client implements it; tests substitute a
// fake to script interleavings.
type rowsAPI interface {
	GetRows(ctx context.Context) ([][]interface{}, error)
	OverwriteRows(ctx context.Context, rows [][]interface{}) error
}

// Store is the plain sheet-backed appointment store. It preserves the
// historical write protocol: Add reads the entire table, appends the new
// row and overwrites the whole table. Two concurrent Adds starting from
// the same snapshot therefore race, and the later overwrite silently
// discards the earlier row (last-writer-wins). Deployments with more than
// one operator should use VersionedStore instead.
type Store struct {
	rows rowsAPI
}

func NewStore(rows rowsAPI) *Store {
	return &Store{rows: rows}
}

// List fetches the whole table fresh. A fetch failure is reported as
// store.ErrUnavailable rather than an empty agenda, so callers can render
// "service down" instead of "no appointments".
func (s *Store) List(ctx context.Context) ([]*entity.Appointment, error) {
	raw, err := s.rows.GetRows(ctx)
	if err != nil {
		return nil, store.Unavailable(err)
	}
	return decodeRows(raw), nil
}

func (s *Store) Add(ctx context.Context, appt *entity.Appointment) error {
	raw, err := s.rows.GetRows(ctx)
	if err != nil {
		return store.Unavailable(err)
	}

	appts := append(decodeRows(raw), appt)
	if err := s.rows.OverwriteRows(ctx, encodeRows(appts)); err != nil {
		return store.Unavailable(err)
	}
	return nil
}
