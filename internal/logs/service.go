package logs

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dhima/looking-glass/internal/logging"
	"github.com/dhima/looking-glass/internal/models"
	"github.com/dhima/looking-glass/internal/storage"
	platformEvents "github.com/dhima/looking-glass/platform/events"
	"github.com/dhima/looking-glass/pkg/clock"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Change event types emitted after a successful write.
const (
	EventLogCreated = "log.created"
	EventLogUpdated = "log.updated"
	EventLogDeleted = "log.deleted"
)

// Service encapsulates daily log business logic.
type Service struct {
	store     LogStore
	publisher EventPublisher
	logger    logging.Logger
	clock     clock.Clock
}

// NewService creates a log service. publisher may be nil when change events are disabled.
func NewService(store LogStore, publisher EventPublisher, logger logging.Logger) *Service {
	return NewServiceWithClock(store, publisher, logger, clock.RealClock{})
}

// NewServiceWithClock creates a log service that takes "today" from c.
func NewServiceWithClock(store LogStore, publisher EventPublisher, logger logging.Logger, c clock.Clock) *Service {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}
	return &Service{
		store:     store,
		publisher: publisher,
		logger:    logger.With(zap.String("component", "log_service")),
		clock:     c,
	}
}

// Create validates payload, persists it and returns the new id.
func (s *Service) Create(ctx context.Context, payload map[string]any) (string, error) {
	rec, err := s.recordFromPayload(payload)
	if err != nil {
		return "", err
	}

	id, err := s.store.CreateLog(ctx, rec)
	if err != nil {
		return "", err
	}
	rec.ID = id

	s.logger.Info("log created", zap.String("log_id", id), zap.String("log_date", rec.LogDate.String()))
	s.publish(ctx, EventLogCreated, rec)
	return id, nil
}

// List returns every log ordered by log_date.
func (s *Service) List(ctx context.Context, order models.SortOrder) ([]models.LogRecord, error) {
	return s.store.ListLogs(ctx, order)
}

// Get fetches a log by id.
func (s *Service) Get(ctx context.Context, id string) (*models.LogRecord, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	return s.store.GetLog(ctx, id)
}

// GetByDate fetches the log recorded for a YYYY-MM-DD day.
func (s *Service) GetByDate(ctx context.Context, date string) (*models.LogRecord, error) {
	d, err := models.ParseDate(date)
	if err != nil {
		return nil, NewValidationError("Invalid date format, expected YYYY-MM-DD")
	}
	return s.store.GetLogByDate(ctx, d)
}

// Update replaces every mutable field of the log. Omitted fields reset to
// their defaults.
func (s *Service) Update(ctx context.Context, id string, payload map[string]any) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	rec, err := s.recordFromPayload(payload)
	if err != nil {
		return err
	}

	if err := s.store.UpdateLog(ctx, id, rec); err != nil {
		return err
	}
	rec.ID = id

	s.logger.Info("log updated", zap.String("log_id", id))
	s.publish(ctx, EventLogUpdated, rec)
	return nil
}

// Delete removes the log.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	if err := s.store.DeleteLog(ctx, id); err != nil {
		return err
	}

	s.logger.Info("log deleted", zap.String("log_id", id))
	s.publish(ctx, EventLogDeleted, models.LogRecord{ID: id})
	return nil
}

// recordFromPayload validates a decoded body and applies defaults. The
// payload's id and timestamps are ignored; the store owns them.
func (s *Service) recordFromPayload(payload map[string]any) (models.LogRecord, error) {
	if payload == nil {
		return models.LogRecord{}, NewValidationError("Request body must be JSON")
	}
	if err := validatePayload(payload); err != nil {
		return models.LogRecord{}, err
	}

	raw := payload["log_date"]
	if raw == nil {
		raw = payload["date"]
	}
	if str, ok := raw.(string); ok {
		if _, err := models.ParseDate(str); err != nil {
			return models.LogRecord{}, newValidationErrorWithDetails("Invalid request body",
				[]string{fmt.Sprintf("log_date: %q is not a calendar date", str)})
		}
	}

	rec := models.LogRecordFromMap(payload)
	rec.ID = ""
	rec.CreatedAt = time.Time{}
	rec.UpdatedAt = time.Time{}
	if rec.LogDate.IsZero() {
		rec.LogDate = models.DateOf(clock.TodayUTC(s.clock))
	}
	if rec.Tags == nil {
		rec.Tags = []string{}
	}
	return rec, nil
}

// publish emits a change event. Failures are logged and never surface to
// the caller.
func (s *Service) publish(ctx context.Context, eventType string, rec models.LogRecord) {
	if s.publisher == nil {
		return
	}

	event := platformEvents.LogEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		LogID:      rec.ID,
		OccurredAt: s.clock.Now().UTC(),
	}
	if eventType != EventLogDeleted {
		event.Record = rec.ToMap()
		delete(event.Record, "created_at")
		delete(event.Record, "updated_at")
	}

	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("failed to publish log event",
			zap.String("event_type", eventType),
			zap.String("log_id", rec.ID),
			zap.Error(err))
	}
}

// ValidateID accepts only canonical UUID v4 strings.
func ValidateID(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil || len(id) != 36 || parsed.Version() != 4 || parsed.Variant() != uuid.RFC4122 {
		return NewValidationError("Invalid UUID format for ID")
	}
	return nil
}

// IsNotFound reports whether err means the requested log does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrLogNotFound)
}
