package storage

import (
	"context"
	"fmt"

	"recordkeeper/internal/app/server/config"
	"recordkeeper/internal/domain/record"
	"recordkeeper/internal/infrastructure/storage/mysql"
	"recordkeeper/internal/infrastructure/storage/postgres"
	"recordkeeper/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Store is a record repository bound to an open connection.
type Store struct {
	record.Repository
	close func() error
}

func (s *Store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open connects to the configured database and returns its record store.
// The schema must already exist, see the migration package.
func Open(ctx context.Context, cfg config.DB, log *slog.Logger) (*Store, error) {
	var store *Store

	switch cfg.Driver {
	case config.DriverPostgres:
		pg, err := postgres.New(ctx, cfg.DatabaseURI)
		if err != nil {
			return nil, err
		}
		store = &Store{
			Repository: postgres.NewRecordRepository(pg.Pool()),
			close:      pg.Close,
		}

	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.DatabaseURI)
		if err != nil {
			return nil, err
		}
		store = &Store{
			Repository: sqlite.NewRecordRepository(db),
			close:      db.Close,
		}

	case config.DriverMySQL:
		db, err := mysql.Open(cfg.DatabaseURI)
		if err != nil {
			return nil, err
		}
		store = &Store{
			Repository: mysql.NewRecordRepository(db),
			close:      func() error { return mysql.Close(db) },
		}

	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	log.Info("storage opened", "driver", cfg.Driver)
	return store, nil
}
