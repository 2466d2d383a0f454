package dto

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "not found",
			err:        domain.NewNotFoundError("journal entry", "2024-06-01"),
			wantStatus: http.StatusNotFound,
			wantCode:   ErrorCodeNotFound,
		},
		{
			name:       "validation",
			err:        domain.NewValidationError("date", "must be YYYY-MM-DD"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeValidation,
		},
		{
			name:       "unauthorized",
			err:        domain.NewUnauthorizedError("missing access token"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   ErrorCodeUnauthorized,
		},
		{
			name:       "unavailable",
			err:        domain.NewUnavailableError("openai", "timeout"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   ErrorCodeUnavailable,
		},
		{
			name:       "unknown",
			err:        errors.New("something broke"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, resp := MapDomainError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, resp)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestMapDomainErrorNil(t *testing.T) {
	status, resp := MapDomainError(nil)

	assert.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp)
}

func TestMapDomainErrorValidationDetails(t *testing.T) {
	_, resp := MapDomainError(domain.NewValidationError("gratitude", "must have exactly 3 items"))

	require.NotNil(t, resp)
	assert.Equal(t, "must have exactly 3 items", resp.Error.Details["gratitude"])
}

func TestMapDomainErrorHidesInternals(t *testing.T) {
	_, resp := MapDomainError(errors.New("pq: connection refused at 10.0.0.3"))

	require.NotNil(t, resp)
	assert.Equal(t, "an internal error occurred", resp.Error.Message)
	assert.NotContains(t, resp.Error.Message, "10.0.0.3")
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	return c, rec
}

func TestHandleError(t *testing.T) {
	c, rec := newTestContext()

	HandleError(c, domain.NewNotFoundError("journal entry", "2024-06-01"))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeNotFound, resp.Error.Code)
}

func TestRespondWithErrorCode(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		wantStatus int
	}{
		{"bad request", ErrorCodeBadRequest, http.StatusBadRequest},
		{"unavailable", ErrorCodeUnavailable, http.StatusServiceUnavailable},
		{"timeout", ErrorCodeTimeout, http.StatusGatewayTimeout},
		{"unknown code falls through to 500", "SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			RespondWithErrorCode(c, tt.code, "message")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRespondWithValidationErrors(t *testing.T) {
	c, rec := newTestContext()

	RespondWithValidationErrors(c, map[string]string{
		"goals": "this field is required",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ErrorCodeValidation, resp.Error.Code)
	assert.Equal(t, "this field is required", resp.Error.Details["goals"])
}

func TestAbortWithError(t *testing.T) {
	c, rec := newTestContext()

	AbortWithError(c, domain.NewUnauthorizedError("authentication required"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.True(t, c.IsAborted())
}

func TestPaginationRequestDefaults(t *testing.T) {
	tests := []struct {
		name       string
		req        PaginationRequest
		wantOffset int
		wantLimit  int
	}{
		{"zero values", PaginationRequest{}, 0, DefaultLimit},
		{"explicit", PaginationRequest{Offset: 10, Limit: 5}, 10, 5},
		{"limit capped", PaginationRequest{Limit: 500}, 0, MaxLimit},
		{"negative offset clamped", PaginationRequest{Offset: -3}, 0, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantOffset, tt.req.GetOffset())
			assert.Equal(t, tt.wantLimit, tt.req.GetLimit())
		})
	}
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]string{"2024-06-03", "2024-06-02"}, 0, 5)

	assert.Equal(t, 5, resp.Total)
	assert.True(t, resp.HasMore)

	last := NewPaginatedResponse([]string{"2024-06-01"}, 4, 5)
	assert.False(t, last.HasMore)

	empty := NewPaginatedResponse[string](nil, 0, 0)
	assert.NotNil(t, empty.Items)
	assert.False(t, empty.HasMore)
}

func TestBindAndValidate(t *testing.T) {
	type body struct {
		Text string `json:"text" validate:"required"`
	}

	t.Run("valid", func(t *testing.T) {
		c, _ := newTestContext()
		c.Request = httptest.NewRequest(http.MethodPost, "/test", jsonBody(`{"text":"gm"}`))

		var b body
		assert.NoError(t, BindAndValidate(c, &b))
		assert.Equal(t, "gm", b.Text)
	})

	t.Run("binding failure", func(t *testing.T) {
		c, _ := newTestContext()
		c.Request = httptest.NewRequest(http.MethodPost, "/test", jsonBody(`not-json`))

		var b body
		err := BindAndValidate(c, &b)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrBinding)
	})

	t.Run("validation failure uses json field names", func(t *testing.T) {
		c, _ := newTestContext()
		c.Request = httptest.NewRequest(http.MethodPost, "/test", jsonBody(`{}`))

		var b body
		err := BindAndValidate(c, &b)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, ValidationErrors(err), "text")
	})
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
