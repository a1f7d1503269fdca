package storage

import (
	"context"
	"path/filepath"
	"testing"

	"recordkeeper/internal/app/server/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestOpen_SQLite(t *testing.T) {
	cfg := config.DB{
		Driver:      config.DriverSQLite,
		DatabaseURI: filepath.Join(t.TempDir(), "records.db"),
	}

	store, err := Open(context.Background(), cfg, slog.Default())
	require.NoError(t, err)
	assert.NotNil(t, store.Repository)
	assert.NoError(t, store.Close())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), config.DB{Driver: "oracle"}, slog.Default())

	assert.ErrorContains(t, err, "unsupported db driver")
}
