package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dhima/looking-glass/internal/api/response"
	"github.com/dhima/looking-glass/internal/logging"
	"github.com/dhima/looking-glass/internal/logs"
	"github.com/dhima/looking-glass/internal/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const errBodyNotJSON = "Request body must be JSON"

// LogHandler serves the daily log resource.
type LogHandler struct {
	logger  logging.Logger
	service *logs.Service
}

// NewLogHandler creates a new log handler.
func NewLogHandler(logger logging.Logger, service *logs.Service) *LogHandler {
	return &LogHandler{
		logger:  logger.With(zap.String("handler", "log")),
		service: service,
	}
}

// CreateLog godoc
// @Summary Create a daily log
// @Description Creates a log. Omitted fields take defaults: log_date is today (UTC) and tags is empty.
// @Tags Logs
// @Accept json
// @Produce json
// @Param log body models.LogPayload true "Log fields"
// @Success 201 {object} response.MessageResponse
// @Header 201 {string} Message "Confirmation message"
// @Failure 400 {object} response.ErrorResponse "Invalid request body"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/logs [post]
func (h *LogHandler) CreateLog(c *gin.Context) {
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	id, err := h.service.Create(c.Request.Context(), payload)
	if h.handleServiceError(c, err, "create log", "") {
		return
	}

	response.Created(c, id, fmt.Sprintf("Log %s created successfully", id))
}

// ListLogs godoc
// @Summary List daily logs
// @Description Returns every log ordered by log_date, newest first by default.
// @Tags Logs
// @Produce json
// @Param order query string false "Sort direction" Enums(desc, asc) default(desc)
// @Success 200 {array} models.LogRecord
// @Failure 400 {object} response.ErrorResponse "Invalid order"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/logs [get]
func (h *LogHandler) ListLogs(c *gin.Context) {
	order, ok := models.ParseSortOrder(c.Query("order"))
	if !ok {
		response.BadRequest(c, "Invalid order, expected asc or desc", nil)
		return
	}

	records, err := h.service.List(c.Request.Context(), order)
	if h.handleServiceError(c, err, "list logs", "") {
		return
	}

	response.OK(c, records)
}

// GetLog godoc
// @Summary Get a daily log by id
// @Tags Logs
// @Produce json
// @Param id path string true "Log ID (UUID v4)"
// @Success 200 {object} models.LogRecord
// @Failure 400 {object} response.ErrorResponse "Invalid UUID format for ID"
// @Failure 404 {object} response.ErrorResponse "Log not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/logs/{id} [get]
func (h *LogHandler) GetLog(c *gin.Context) {
	id := c.Param("id")

	record, err := h.service.Get(c.Request.Context(), id)
	if h.handleServiceError(c, err, "get log", notFoundByID(id)) {
		return
	}

	response.OK(c, record)
}

// GetLogByDate godoc
// @Summary Get the daily log for a date
// @Description Returns the earliest created log recorded for the day.
// @Tags Logs
// @Produce json
// @Param date path string true "Day in YYYY-MM-DD form"
// @Success 200 {object} models.LogRecord
// @Failure 400 {object} response.ErrorResponse "Invalid date format"
// @Failure 404 {object} response.ErrorResponse "Log not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/logs/date/{date} [get]
func (h *LogHandler) GetLogByDate(c *gin.Context) {
	date := c.Param("date")

	record, err := h.service.GetByDate(c.Request.Context(), date)
	if h.handleServiceError(c, err, "get log by date", "No log found for date "+date) {
		return
	}

	response.OK(c, record)
}

// UpdateLog godoc
// @Summary Replace a daily log
// @Description Replaces every mutable field; omitted fields reset to their defaults.
// @Tags Logs
// @Accept json
// @Param id path string true "Log ID (UUID v4)"
// @Param log body models.LogPayload true "Log fields"
// @Success 204 "Log updated"
// @Header 204 {string} Message "Confirmation message"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 {object} response.ErrorResponse "Log not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/logs/{id} [put]
func (h *LogHandler) UpdateLog(c *gin.Context) {
	id := c.Param("id")
	if h.handleServiceError(c, logs.ValidateID(id), "update log", "") {
		return
	}
	payload, ok := h.bindPayload(c)
	if !ok {
		return
	}

	err := h.service.Update(c.Request.Context(), id, payload)
	if h.handleServiceError(c, err, "update log", notFoundByID(id)) {
		return
	}

	response.NoContent(c, fmt.Sprintf("Log %s updated successfully", id))
}

// DeleteLog godoc
// @Summary Delete a daily log
// @Tags Logs
// @Param id path string true "Log ID (UUID v4)"
// @Success 204 "Log deleted"
// @Header 204 {string} Message "Confirmation message"
// @Failure 400 {object} response.ErrorResponse "Invalid UUID format for ID"
// @Failure 404 {object} response.ErrorResponse "Log not found"
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/logs/{id} [delete]
func (h *LogHandler) DeleteLog(c *gin.Context) {
	id := c.Param("id")

	err := h.service.Delete(c.Request.Context(), id)
	if h.handleServiceError(c, err, "delete log", notFoundByID(id)) {
		return
	}

	response.NoContent(c, fmt.Sprintf("Log %s deleted successfully", id))
}

// bindPayload decodes the request body as a JSON object.
func (h *LogHandler) bindPayload(c *gin.Context) (map[string]any, bool) {
	raw, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, errBodyNotJSON, nil)
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil || payload == nil {
		h.logger.Warn("request body is not a JSON object",
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.BadRequest(c, errBodyNotJSON, nil)
		return nil, false
	}
	return payload, true
}

func (h *LogHandler) handleServiceError(c *gin.Context, err error, operation, notFoundMsg string) bool {
	if err == nil {
		return false
	}

	var validationErr logs.ValidationError
	switch {
	case errors.As(err, &validationErr):
		var details interface{}
		if d := validationErr.Details(); len(d) > 0 {
			details = d
		}
		response.BadRequest(c, validationErr.Error(), details)
	case logs.IsNotFound(err) && notFoundMsg != "":
		response.NotFound(c, notFoundMsg)
	default:
		h.logger.Error(operation+" failed",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, err.Error())
	}
	return true
}

func notFoundByID(id string) string {
	return "No log found for ID " + id
}
