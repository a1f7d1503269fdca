package record

import (
	"context"
)

// Repository is the record store. Adapters must return ErrNotFound from
// GetByID when no row matches; UpdateByID and DeleteByID are not required
// to report missing rows, callers check ExistsByID first.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Record, error)
	// Insert сохраняет запись и возвращает выданный хранилищем id
	Insert(ctx context.Context, rec *Record) (int, error)
	UpdateByID(ctx context.Context, id int, fields Fields) error
	DeleteByID(ctx context.Context, id int) error
	ExistsByID(ctx context.Context, id int) (bool, error)
}
