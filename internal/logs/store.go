package logs

import (
	"context"

	"github.com/dhima/looking-glass/internal/models"
	platformEvents "github.com/dhima/looking-glass/platform/events"
)

// LogStore defines the storage methods required by the log service.
type LogStore interface {
	CreateLog(ctx context.Context, rec models.LogRecord) (string, error)
	ListLogs(ctx context.Context, order models.SortOrder) ([]models.LogRecord, error)
	GetLog(ctx context.Context, id string) (*models.LogRecord, error)
	GetLogByDate(ctx context.Context, date models.Date) (*models.LogRecord, error)
	UpdateLog(ctx context.Context, id string, rec models.LogRecord) error
	DeleteLog(ctx context.Context, id string) error
}

// EventPublisher abstracts the Kafka publisher for testability.
type EventPublisher interface {
	Publish(ctx context.Context, event platformEvents.LogEvent) error
}
