package handlers

import (
	"time"

	"github.com/dhima/looking-glass/internal/api/response"
	"github.com/dhima/looking-glass/pkg/clock"
	"github.com/gin-gonic/gin"
)

// APIVersion is reported by the info and health endpoints.
const APIVersion = "1.0.2"

// InfoHandler serves the root and API description endpoints.
type InfoHandler struct {
	clock clock.Clock
}

// NewInfoHandler creates a new info handler.
func NewInfoHandler(c clock.Clock) *InfoHandler {
	if c == nil {
		c = clock.RealClock{}
	}
	return &InfoHandler{clock: c}
}

// RootResponse is returned by GET /.
type RootResponse struct {
	Message string    `json:"message" example:"Looking Glass API is running."`
	Status  int       `json:"status" example:"200"`
	Date    time.Time `json:"date"`
	Type    string    `json:"type" example:"about:blank"`
} // @name RootResponse

// APIInfoResponse is returned by GET /api/.
type APIInfoResponse struct {
	Name        string    `json:"name" example:"LookingGlassAPI"`
	Version     string    `json:"version" example:"1.0.2"`
	Description string    `json:"description"`
	Status      string    `json:"status" example:"OK"`
	Date        time.Time `json:"date"`
} // @name APIInfoResponse

// Root godoc
// @Summary Liveness banner
// @Tags System
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func (h *InfoHandler) Root(c *gin.Context) {
	response.OK(c, RootResponse{
		Message: "Looking Glass API is running.",
		Status:  200,
		Date:    h.clock.Now().UTC(),
		Type:    "about:blank",
	})
}

// APIInfo godoc
// @Summary API description
// @Tags System
// @Produce json
// @Success 200 {object} APIInfoResponse
// @Router /api/ [get]
func (h *InfoHandler) APIInfo(c *gin.Context) {
	response.OK(c, APIInfoResponse{
		Name:        "LookingGlassAPI",
		Version:     APIVersion,
		Description: "A minimalist daily log tracker. Create, read, update, and delete what you did each day.",
		Status:      "OK",
		Date:        h.clock.Now().UTC(),
	})
}
