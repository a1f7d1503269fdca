package record

import (
	"context"
	"net/http"
	"path"

	"recordkeeper/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Observer receives one call per handled request.
type Observer interface {
	ObserveRecord(action, kind string)
}

type Handler struct {
	service        record.Servicer
	log            *slog.Logger
	middleware     huma.Middlewares
	observer       Observer
	collectionPath string
	itemPath       string
}

type Option func(*Handler)

func WithObserver(o Observer) Option {
	return func(h *Handler) {
		h.observer = o
	}
}

// NewHandler mounts the record routes under prefix, e.g. "/api/".
func NewHandler(service record.Servicer, log *slog.Logger, prefix string, mws huma.Middlewares, opts ...Option) *Handler {
	h := &Handler{
		service:        service,
		log:            log.With("component", "record_handler"),
		middleware:     mws,
		collectionPath: path.Join("/", prefix, "records"),
		itemPath:       path.Join("/", prefix, "records", "{id}"),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.readOp(), h.read)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) read(ctx context.Context, input *idInput) (*recordOutput, error) {
	return h.respond("read", h.service.Read(ctx, input.ID), http.StatusOK)
}

func (h *Handler) create(ctx context.Context, input *createInput) (*recordOutput, error) {
	return h.respond("create", h.service.Create(ctx, input.Body.data()), http.StatusCreated)
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*recordOutput, error) {
	return h.respond("update", h.service.Update(ctx, input.ID, input.Body.data()), http.StatusOK)
}

func (h *Handler) delete(ctx context.Context, input *idInput) (*recordOutput, error) {
	return h.respond("delete", h.service.Delete(ctx, input.ID), http.StatusOK)
}

// respond maps a service Result to the wire. Failures go through huma's
// error constructor so they share one body shape.
func (h *Handler) respond(action string, res record.Result, okStatus int) (*recordOutput, error) {
	if h.observer != nil {
		h.observer.ObserveRecord(action, res.Kind.String())
	}

	switch res.Kind {
	case record.KindSuccess:
		return &recordOutput{
			Status: okStatus,
			Body: recordResponse{
				Status:  statusSuccess,
				Data:    res.Record,
				Message: res.Message,
			},
		}, nil
	case record.KindNotFound:
		return nil, huma.Error404NotFound(res.Message)
	case record.KindBadRequest:
		return nil, huma.Error400BadRequest(res.Message)
	}

	return nil, huma.Error500InternalServerError(res.Message)
}
