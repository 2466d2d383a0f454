package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiveminutevibe/vibe-service/internal/adapters/http/dto"
	"github.com/fiveminutevibe/vibe-service/internal/app"
	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// JournalHandler handles journal persistence endpoints.
type JournalHandler struct {
	service *app.JournalService
}

// NewJournalHandler creates a new journal handler.
func NewJournalHandler(service *app.JournalService) *JournalHandler {
	return &JournalHandler{
		service: service,
	}
}

// JournalEntryRequest is the request body for saving a day's entry.
// Each section carries exactly three answers; blanks are legal.
type JournalEntryRequest struct {
	Gratitude    []string `json:"gratitude"    validate:"required,len=3"`
	Goals        []string `json:"goals"        validate:"required,len=3"`
	Affirmations []string `json:"affirmations" validate:"required,len=3"`
}

// JournalEntryResponse is the wire form of a day's entry.
type JournalEntryResponse struct {
	Date         string   `json:"date,omitempty"`
	Gratitude    []string `json:"gratitude"`
	Goals        []string `json:"goals"`
	Affirmations []string `json:"affirmations"`
}

func toJournalEntryResponse(date string, entry *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		Date:         date,
		Gratitude:    entry.Gratitude,
		Goals:        entry.Goals,
		Affirmations: entry.Affirmations,
	}
}

// GetEntry handles GET /api/journal/:date
// Returns the stored entry for the day. A day with no entry yields an
// empty entry rather than 404, mirroring the client's local storage.
//
// @Summary Get a day's journal entry
// @Tags journal
// @Produce json
// @Param date path string true "Date seed (YYYY-MM-DD)"
// @Success 200 {object} JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/journal/{date} [get]
func (h *JournalHandler) GetEntry(c *gin.Context) {
	date := c.Param("date")

	entry, err := h.service.Entry(c.Request.Context(), date)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJournalEntryResponse(date, entry))
}

// SaveEntry handles PUT /api/journal/:date
// Stores the day's entry, replacing any existing one.
//
// @Summary Save a day's journal entry
// @Tags journal
// @Accept json
// @Produce json
// @Param date path string true "Date seed (YYYY-MM-DD)"
// @Param entry body JournalEntryRequest true "Journal entry"
// @Success 200 {object} JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/journal/{date} [put]
func (h *JournalHandler) SaveEntry(c *gin.Context) {
	date := c.Param("date")

	var req JournalEntryRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		if dto.IsValidationError(err) {
			dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		} else {
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid request body")
		}

		return
	}

	entry := &domain.JournalEntry{
		Gratitude:    req.Gratitude,
		Goals:        req.Goals,
		Affirmations: req.Affirmations,
	}

	if err := h.service.Save(c.Request.Context(), date, entry); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJournalEntryResponse(date, entry))
}

// ListEntries handles GET /api/journal
// Returns stored entry dates newest first, paginated by offset and limit.
//
// @Summary List journal entry dates
// @Tags journal
// @Produce json
// @Param offset query int false "Items to skip"
// @Param limit query int false "Page size (1-100, default 20)"
// @Success 200 {object} dto.PaginatedResponse[string]
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/journal [get]
func (h *JournalHandler) ListEntries(c *gin.Context) {
	var page dto.PaginationRequest
	if err := dto.BindQueryAndValidate(c, &page); err != nil {
		if dto.IsValidationError(err) {
			dto.RespondWithValidationErrors(c, dto.ValidationErrors(err))
		} else {
			dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid pagination parameters")
		}

		return
	}

	offset := page.GetOffset()

	dates, total, err := h.service.List(c.Request.Context(), offset, page.GetLimit())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaginatedResponse(dates, offset, total))
}

// GetShared handles GET /api/share
// Decodes a share-link payload back into a journal entry without
// touching storage. The payload is URL-encoded JSON in the data param.
//
// @Summary Decode a shared journal entry
// @Tags journal
// @Produce json
// @Param data query string true "URL-encoded JSON entry"
// @Success 200 {object} JournalEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /api/share [get]
func (h *JournalHandler) GetShared(c *gin.Context) {
	entry, err := h.service.DecodeShared(c.Query("data"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJournalEntryResponse("", entry))
}

// RegisterJournalRoutes registers journal routes on the given router group.
func (h *JournalHandler) RegisterJournalRoutes(rg *gin.RouterGroup) {
	rg.GET("/journal", h.ListEntries)
	rg.GET("/journal/:date", h.GetEntry)
	rg.PUT("/journal/:date", h.SaveEntry)
	rg.GET("/share", h.GetShared)
}
