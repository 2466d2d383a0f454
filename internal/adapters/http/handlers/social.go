package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/middleware"
	"github.com/fiveminutevibe/vibe-service/internal/app"
	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// SocialHandler handles cast publishing endpoints.
type SocialHandler struct {
	service *app.SocialService
}

// NewSocialHandler creates a new social handler.
func NewSocialHandler(service *app.SocialService) *SocialHandler {
	return &SocialHandler{
		service: service,
	}
}

// PostCastRequest is the request body for publishing a cast.
type PostCastRequest struct {
	Text string `json:"text" validate:"required"`
}

// CastPayload is the published cast inside the response.
type CastPayload struct {
	Hash        string `json:"hash"`
	ThreadHash  string `json:"threadHash,omitempty"`
	Text        string `json:"text"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// PostCastResponse is the response for a successful publish.
type PostCastResponse struct {
	Success bool        `json:"success"`
	Cast    CastPayload `json:"cast"`
}

func toCastPayload(cast *domain.Cast) CastPayload {
	payload := CastPayload{
		Hash:       cast.Hash,
		ThreadHash: cast.ThreadHash,
		Text:       cast.Text,
	}
	if !cast.PublishedAt.IsZero() {
		payload.PublishedAt = cast.PublishedAt.UTC().Format(domain.TimestampLayout)
	}

	return payload
}

// PostCast handles POST /api/farcaster/post
// Publishes the text as a cast using the caller's access token cookie.
//
// @Summary Publish a cast
// @Tags social
// @Accept json
// @Produce json
// @Param cast body PostCastRequest true "Cast text"
// @Success 200 {object} PostCastResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /api/farcaster/post [post]
func (h *SocialHandler) PostCast(c *gin.Context) {
	var req PostCastRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if dto.IsValidationError(err) {
			dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		} else {
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid request body")
		}

		return
	}

	cast, err := h.service.Post(c.Request.Context(), middleware.AccessToken(c), req.Text)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PostCastResponse{
		Success: true,
		Cast:    toCastPayload(cast),
	})
}

// RegisterSocialRoutes registers social routes on the given router group.
func (h *SocialHandler) RegisterSocialRoutes(rg *gin.RouterGroup) {
	rg.POST("/farcaster/post", middleware.RequireAuth(), h.PostCast)
}
