package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
	"github.com/fiveminutevibe/vibe-service/internal/app"
)

// DailyHandler handles the combined daily digest endpoint.
type DailyHandler struct {
	service *app.DailyService
}

// NewDailyHandler creates a new daily handler.
func NewDailyHandler(service *app.DailyService) *DailyHandler {
	return &DailyHandler{
		service: service,
	}
}

// DailyDigestResponse bundles the day's quote with its journal entry.
type DailyDigestResponse struct {
	Quote   QuoteResponse         `json:"quote"`
	Journal *JournalEntryResponse `json:"journal"`
}

// GetDigest handles GET /api/daily
// Fetches the day's quote and journal entry concurrently.
//
// @Summary Get the daily digest
// @Tags daily
// @Produce json
// @Param date query string true "Date seed (YYYY-MM-DD)"
// @Success 200 {object} DailyDigestResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/daily [get]
func (h *DailyHandler) GetDigest(c *gin.Context) {
	date := c.Query("date")

	digest, err := h.service.Digest(c.Request.Context(), date)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	resp := DailyDigestResponse{
		Quote: toQuoteResponse(digest.Quote),
	}
	if digest.Journal != nil {
		entry := toJournalEntryResponse(date, digest.Journal)
		resp.Journal = &entry
	}

	c.JSON(http.StatusOK, resp)
}

// RegisterDailyRoutes registers the daily digest route on the given group.
func (h *DailyHandler) RegisterDailyRoutes(rg *gin.RouterGroup) {
	rg.GET("/daily", h.GetDigest)
}
