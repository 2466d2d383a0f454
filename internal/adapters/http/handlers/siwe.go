package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
)

// SIWEHandler handles the Sign-In-With-Ethereum compatibility endpoint.
// The frontend's wallet widget expects its message echoed back; no wallet
// verification happens server-side.
type SIWEHandler struct{}

// NewSIWEHandler creates a new SIWE handler.
func NewSIWEHandler() *SIWEHandler {
	return &SIWEHandler{}
}

// Echo handles POST /api/siwe
// Echoes the JSON request body back inside a success envelope.
func (h *SIWEHandler) Echo(c *gin.Context) {
	var body json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid JSON body")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": body,
	})
}

// RegisterSIWERoutes registers the SIWE route on the given router group.
func (h *SIWEHandler) RegisterSIWERoutes(rg *gin.RouterGroup) {
	rg.POST("/siwe", h.Echo)
}
