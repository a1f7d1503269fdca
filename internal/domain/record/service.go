package record

import (
	"context"
	"errors"
	"time"

	"golang.org/x/exp/slog"
)

// Messages returned to API clients. They never carry error details.
const (
	MsgRetrieved     = "Data retrieved successfully"
	MsgCreated       = "Data created successfully"
	MsgUpdated       = "Data updated successfully"
	MsgDeleted       = "Data deleted successfully"
	MsgNotFound      = "Data not found"
	MsgMissingFields = "Missing required fields: name and description"
	MsgReadFailed    = "Internal server error"
	MsgCreateFailed  = "Failed to create data"
	MsgUpdateFailed  = "Failed to update data"
	MsgDeleteFailed  = "Failed to delete data"
)

var createRequired = []string{FieldName, FieldDescription}

// Servicer is the record request lifecycle: validate, sanitize, hit the
// store, map the outcome to a Result.
type Servicer interface {
	Read(ctx context.Context, id int) Result
	Create(ctx context.Context, body Data) Result
	Update(ctx context.Context, id int, body Data) Result
	Delete(ctx context.Context, id int) Result
}

// Service implements Servicer on top of a Repository.
type Service struct {
	repo Repository
	log  *slog.Logger
	now  func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used for created/updated stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a new record service
func NewService(repo Repository, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		repo: repo,
		log:  log.With("component", "record_service"),
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read returns the record with the given id
func (s *Service) Read(ctx context.Context, id int) Result {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return NotFound(MsgNotFound)
		}
		s.log.Error("GET request failed", "record_id", id, "error", err)
		return InternalError(MsgReadFailed)
	}

	return Success(rec, MsgRetrieved)
}

// Create validates body, stores a new record and returns it with its id
func (s *Service) Create(ctx context.Context, body Data) Result {
	if violations := Validate(body, createRequired); len(violations) > 0 {
		s.log.Debug("create rejected", "violations", violations)
		if IsMissingField(violations[0]) {
			return BadRequest(MsgMissingFields)
		}
		return BadRequest(violations[0])
	}

	clean := Sanitize(body)
	now := s.now().Unix()
	rec := &Record{
		Name:        clean[FieldName],
		Description: clean[FieldDescription],
		Created:     now,
		Updated:     now,
	}

	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		s.log.Error("POST request failed", "error", err)
		return InternalError(MsgCreateFailed)
	}
	rec.ID = id

	s.log.Info("record created successfully", "record_id", id)
	return Success(rec, MsgCreated)
}

// Update applies the non-empty fields of body to an existing record.
// The success result has no payload.
func (s *Service) Update(ctx context.Context, id int, body Data) Result {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.log.Error("PUT request failed", "record_id", id, "error", err)
		return InternalError(MsgUpdateFailed)
	}
	if !exists {
		return NotFound(MsgNotFound)
	}

	if violations := Validate(body, nil); len(violations) > 0 {
		s.log.Debug("update rejected", "record_id", id, "violations", violations)
		return BadRequest(violations[0])
	}

	clean := Sanitize(body)
	fields := Fields{Updated: s.now().Unix()}
	if clean.Has(FieldName) {
		name := clean[FieldName]
		fields.Name = &name
	}
	if clean.Has(FieldDescription) {
		description := clean[FieldDescription]
		fields.Description = &description
	}

	if err := s.repo.UpdateByID(ctx, id, fields); err != nil {
		s.log.Error("PUT request failed", "record_id", id, "error", err)
		return InternalError(MsgUpdateFailed)
	}

	s.log.Info("record updated successfully", "record_id", id)
	return Success(nil, MsgUpdated)
}

// Delete permanently removes a record
func (s *Service) Delete(ctx context.Context, id int) Result {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.log.Error("DELETE request failed", "record_id", id, "error", err)
		return InternalError(MsgDeleteFailed)
	}
	if !exists {
		return NotFound(MsgNotFound)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.log.Error("DELETE request failed", "record_id", id, "error", err)
		return InternalError(MsgDeleteFailed)
	}

	s.log.Info("record deleted successfully", "record_id", id)
	return Success(nil, MsgDeleted)
}
