package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MessageHeader carries confirmation messages, including on 204 responses
// that have no body.
const MessageHeader = "Message"

// MessageResponse is the body of confirmation responses.
type MessageResponse struct {
	Message string `json:"message" example:"Log 550e8400-e29b-41d4-a716-446655440000 created successfully"`
	ID      string `json:"id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
} // @name MessageResponse

// ErrorResponse represents an error API response.
type ErrorResponse struct {
	Error   string      `json:"error" example:"No log found for ID 550e8400-e29b-41d4-a716-446655440000"`
	Details interface{} `json:"details,omitempty" swaggertype:"array,string"`
	TraceID string      `json:"trace_id,omitempty" example:"3f0c1a6e-8a8f-4b51-9a43-6f2f3c1d7b11"`
} // @name ErrorResponse

// Error sends an error response with details.
func Error(c *gin.Context, statusCode int, err string, details interface{}) {
	c.JSON(statusCode, ErrorResponse{
		Error:   err,
		Details: details,
		TraceID: GetRequestID(c),
	})
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, err string, details interface{}) {
	Error(c, http.StatusBadRequest, err, details)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, err string) {
	Error(c, http.StatusNotFound, err, nil)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, err string) {
	Error(c, http.StatusInternalServerError, err, nil)
}

// ServiceUnavailable sends a 503 Service Unavailable response.
func ServiceUnavailable(c *gin.Context, err string) {
	Error(c, http.StatusServiceUnavailable, err, nil)
}

// Created sends a 201 Created response naming the new resource.
func Created(c *gin.Context, id, message string) {
	c.Header(MessageHeader, message)
	c.JSON(http.StatusCreated, MessageResponse{Message: message, ID: id})
}

// OK sends a 200 OK response with data as the whole body.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends a 204 No Content response. A non-empty message is exposed
// through MessageHeader.
func NoContent(c *gin.Context, message string) {
	if message != "" {
		c.Header(MessageHeader, message)
	}
	c.Status(http.StatusNoContent)
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return uuid.New().String()
}
