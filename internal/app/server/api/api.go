// GET    /api/health       # Проверка состояния
// GET    /api/records/{id} # Получить запись
// POST   /api/records      # Создать запись
// PUT    /api/records/{id} # Обновить запись
// DELETE /api/records/{id} # Удалить запись

package api

import (
	"recordkeeper/internal/app/server/api/http/apierror"
	healthAPI "recordkeeper/internal/app/server/api/http/health"
	"recordkeeper/internal/app/server/api/http/middleware"
	"recordkeeper/internal/app/server/api/http/middleware/cors"
	"recordkeeper/internal/app/server/api/http/middleware/logger"
	metricsMW "recordkeeper/internal/app/server/api/http/middleware/metrics"
	recordAPI "recordkeeper/internal/app/server/api/http/record"
	"recordkeeper/internal/app/server/config"
	"recordkeeper/internal/domain/record"
	"recordkeeper/internal/infrastructure/metrics"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Record *recordAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register.
// mm may be nil, then no metrics are collected or served.
func New(repo record.Repository, log *slog.Logger, cfg *config.Config, mm *metrics.Manager) *chi.Mux {
	apierror.Install()

	mux := chi.NewMux()
	mux.Use(cors.Middleware(cfg.Server.APIPrefix))

	if mm != nil && cfg.Metrics.Enabled {
		mux.Handle(cfg.Metrics.Path, mm.Handler())
	}

	humaConfig := huma.DefaultConfig("Records API", "1.0.0")
	// без $schema в теле ответа
	humaConfig.CreateHooks = nil

	API := humachi.New(mux, humaConfig)

	h := handlers(repo, log, cfg, mm)
	h.Health.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	return mux
}

func handlers(repo record.Repository, log *slog.Logger, cfg *config.Config, mm *metrics.Manager) *Handlers {
	prefix := cfg.Server.APIPrefix

	middlewares := middleware.NewContainer(logger.New(log).Middleware())
	var opts []recordAPI.Option
	if mm != nil {
		middlewares.Add(metricsMW.New(mm).Middleware())
		opts = append(opts, recordAPI.WithObserver(mm))
	}

	healthHandler := healthAPI.NewHandler(log, prefix, middlewares.Snapshot())

	recordService := record.NewService(repo, log)
	recordHandler := recordAPI.NewHandler(recordService, log, prefix, middlewares.GetAllAndClear(), opts...)

	return &Handlers{
		Health: healthHandler,
		Record: recordHandler,
	}
}
