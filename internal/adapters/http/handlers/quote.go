package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
	"github.com/fiveminutevibe/vibe-service/internal/app"
	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// QuoteHandler handles quote-related HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// QuotePayload is the quote object inside quote responses.
type QuotePayload struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// QuoteResponse is the HTTP response structure for a quote. Timestamp is
// ISO-8601 with millisecond precision, which the frontend parses directly.
type QuoteResponse struct {
	Quote     QuotePayload `json:"quote"`
	Timestamp string       `json:"timestamp"`
}

// toQuoteResponse converts a cached quote to its wire form.
func toQuoteResponse(cq domain.CachedQuote) QuoteResponse {
	return QuoteResponse{
		Quote: QuotePayload{
			Text:   cq.Quote.Text,
			Author: cq.Quote.Author,
		},
		Timestamp: cq.Timestamp.UTC().Format(domain.TimestampLayout),
	}
}

// GetClassicQuote handles GET /api/quote
// Returns a random quote from the static classic table.
//
// @Summary Get a random classic quote
// @Description Returns a random quote from the built-in quote table
// @Tags quotes
// @Produce json
// @Success 200 {object} QuoteResponse
// @Router /api/quote [get]
func (h *QuoteHandler) GetClassicQuote(c *gin.Context) {
	c.JSON(http.StatusOK, toQuoteResponse(h.service.RandomQuote()))
}

// GetDailyQuote handles GET /api/ai-quote
// Returns the generated daily quote, optionally pinned to a date seed.
// The endpoint never fails: generation errors fall back to the static tier.
//
// @Summary Get the AI-generated daily quote
// @Description Serves a cached, freshly generated, or fallback quote
// @Tags quotes
// @Produce json
// @Param date query string false "Date seed (YYYY-MM-DD)"
// @Success 200 {object} QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/ai-quote [get]
func (h *QuoteHandler) GetDailyQuote(c *gin.Context) {
	dateSeed := c.Query("date")

	if dateSeed != "" {
		if _, err := time.Parse(domain.DateSeedLayout, dateSeed); err != nil {
			dto.HandleError(c, domain.NewValidationError("date", "must be a YYYY-MM-DD date"))
			return
		}
	}

	quote := h.service.DailyQuote(c.Request.Context(), dateSeed)

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// RegisterQuoteRoutes registers quote routes on the given router group.
func (h *QuoteHandler) RegisterQuoteRoutes(rg *gin.RouterGroup) {
	rg.GET("/quote", h.GetClassicQuote)
	rg.GET("/ai-quote", h.GetDailyQuote)
}
