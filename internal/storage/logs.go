package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dhima/looking-glass/internal/logging"
	"github.com/dhima/looking-glass/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const logColumns = `id, title, entries, log_date, tags, mood, created_at, updated_at`

// LogRepository owns every statement issued against the daily_log table.
type LogRepository struct {
	db      *sql.DB
	dialect Dialect
	logger  logging.Logger
}

// NewLogRepository wires a configured pool; pass the *sql.DB returned by Open.
func NewLogRepository(db *sql.DB, dialect Dialect, logger logging.Logger) *LogRepository {
	return &LogRepository{
		db:      db,
		dialect: dialect,
		logger:  logger.With(zap.String("component", "log_repository"), zap.String("dialect", dialect.Name)),
	}
}

// Ping reports whether the datastore is reachable.
func (r *LogRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// CreateLog inserts rec under a freshly minted UUID v4 and returns that id.
// created_at and updated_at come from the same datastore clock reading.
func (r *LogRepository) CreateLog(ctx context.Context, rec models.LogRecord) (string, error) {
	id := uuid.NewString()
	tags, err := EncodeTags(rec.Tags)
	if err != nil {
		return "", r.fail("create log", err)
	}

	err = r.withConn(ctx, "create log", func(conn *sql.Conn) error {
		_, err := conn.ExecContext(ctx, r.query(
			`INSERT INTO daily_log (`+logColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, :now, :now)`),
			id,
			nullString(rec.Title),
			nullString(rec.Entries),
			rec.LogDate.String(),
			tags,
			nullString(rec.Mood),
		)
		return err
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListLogs returns every row ordered by log_date, newest first unless order is ascending.
func (r *LogRepository) ListLogs(ctx context.Context, order models.SortOrder) ([]models.LogRecord, error) {
	direction := "DESC"
	if order == models.SortAscending {
		direction = "ASC"
	}

	records := make([]models.LogRecord, 0)
	err := r.withConn(ctx, "list logs", func(conn *sql.Conn) error {
		rows, err := conn.QueryContext(ctx, r.query(fmt.Sprintf(
			`SELECT `+logColumns+` FROM daily_log ORDER BY log_date %s, created_at %s`, direction, direction)))
		if err != nil {
			return fmt.Errorf("query logs: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			rec, err := scanLog(rows)
			if err != nil {
				return err
			}
			records = append(records, *rec)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// GetLog fetches a single row by id.
func (r *LogRepository) GetLog(ctx context.Context, id string) (*models.LogRecord, error) {
	if !isUUID(id) {
		return nil, ErrLogNotFound
	}

	var rec *models.LogRecord
	err := r.withConn(ctx, "get log", func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, r.query(
			`SELECT `+logColumns+` FROM daily_log WHERE id = ?`), id)
		var err error
		rec, err = scanLog(row)
		return err
	})
	return rec, err
}

// GetLogByDate fetches the row for a calendar day. When several rows share the
// day the earliest created one is returned.
func (r *LogRepository) GetLogByDate(ctx context.Context, date models.Date) (*models.LogRecord, error) {
	var rec *models.LogRecord
	err := r.withConn(ctx, "get log by date", func(conn *sql.Conn) error {
		row := conn.QueryRowContext(ctx, r.query(
			`SELECT `+logColumns+` FROM daily_log
			 WHERE log_date = ?
			 ORDER BY created_at ASC
			 LIMIT 1`), date.String())
		var err error
		rec, err = scanLog(row)
		return err
	})
	return rec, err
}

// UpdateLog replaces every mutable column of the row in one conditional
// statement. updated_at always moves past its previous value, even when two
// updates land within the datastore clock's resolution.
func (r *LogRepository) UpdateLog(ctx context.Context, id string, rec models.LogRecord) error {
	if !isUUID(id) {
		return ErrLogNotFound
	}
	tags, err := EncodeTags(rec.Tags)
	if err != nil {
		return r.fail("update log", err)
	}

	return r.withConn(ctx, "update log", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, r.query(
			`UPDATE daily_log
			 SET title = ?, entries = ?, log_date = ?, tags = ?, mood = ?, updated_at = :touch
			 WHERE id = ?`),
			nullString(rec.Title),
			nullString(rec.Entries),
			rec.LogDate.String(),
			tags,
			nullString(rec.Mood),
			id,
		)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
}

// DeleteLog physically removes the row.
func (r *LogRepository) DeleteLog(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrLogNotFound
	}

	return r.withConn(ctx, "delete log", func(conn *sql.Conn) error {
		res, err := conn.ExecContext(ctx, r.query(`DELETE FROM daily_log WHERE id = ?`), id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
}

// withConn runs fn on a connection checked out for this operation only. The
// connection goes back to the pool on every path, and any failure other than
// ErrLogNotFound is logged and returned as *Error.
func (r *LogRepository) withConn(ctx context.Context, op string, fn func(conn *sql.Conn) error) error {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return r.fail(op, fmt.Errorf("acquire connection: %w", err))
	}
	defer conn.Close()

	if err := fn(conn); err != nil {
		if errors.Is(err, ErrLogNotFound) {
			return err
		}
		return r.fail(op, err)
	}
	return nil
}

func (r *LogRepository) fail(op string, err error) error {
	r.logger.Error("datastore operation failed", zap.String("operation", op), zap.Error(err))
	return &Error{Op: op, Err: err}
}

func (r *LogRepository) query(q string) string {
	q = strings.ReplaceAll(q, ":touch", r.dialect.touch)
	return r.dialect.rebind(strings.ReplaceAll(q, ":now", r.dialect.now))
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*models.LogRecord, error) {
	var (
		rec                           models.LogRecord
		title, entries, mood, tags    sql.NullString
		logDate, createdAt, updatedAt dbTime
	)
	if err := row.Scan(&rec.ID, &title, &entries, &logDate, &tags, &mood, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLogNotFound
		}
		return nil, fmt.Errorf("scan log: %w", err)
	}

	rec.Title = stringPtr(title)
	rec.Entries = stringPtr(entries)
	rec.Mood = stringPtr(mood)
	rec.Tags = DecodeTags(tags.String)
	if logDate.Valid {
		rec.LogDate = models.DateOf(logDate.Time)
	}
	rec.CreatedAt = createdAt.Time.UTC()
	rec.UpdatedAt = updatedAt.Time.UTC()
	return &rec, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrLogNotFound
	}
	return nil
}

func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
