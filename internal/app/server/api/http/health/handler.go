package health

import (
	"context"
	"path"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	log        *slog.Logger
	middleware huma.Middlewares
	path       string
}

func NewHandler(log *slog.Logger, prefix string, middleware huma.Middlewares) *Handler {
	return &Handler{
		log:        log,
		middleware: middleware,
		path:       path.Join("/", prefix, "health"),
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(_ context.Context, _ *struct{}) (*healthOutput, error) {
	h.log.Debug("health check request received")

	return &healthOutput{
		Body: healthResponse{
			Status: "OK",
		},
	}, nil
}
