package acl

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
)

// stubCompletionClient returns a canned completion or error.
type stubCompletionClient struct {
	resp openai.ChatCompletionResponse
	err  error

	gotRequest openai.ChatCompletionRequest
}

func (s *stubCompletionClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.gotRequest = req
	return s.resp, s.err
}

func completionWith(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func newStubbedGenerator(stub *stubCompletionClient) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: stub,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewOpenAIGenerator_PanicsWithoutAPIKey(t *testing.T) {
	assert.Panics(t, func() {
		NewOpenAIGenerator(OpenAIGeneratorConfig{})
	})
}

func TestOpenAIGenerator_Generate(t *testing.T) {
	stub := &stubCompletionClient{
		resp: completionWith(`{"text": "Breathe in the morning, let go of yesterday.", "author": "AI Wisdom"}`),
	}
	generator := newStubbedGenerator(stub)

	quote, err := generator.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Breathe in the morning, let go of yesterday.", quote.Text)
	assert.Equal(t, "AI Wisdom", quote.Author)
}

func TestOpenAIGenerator_Generate_RequestShape(t *testing.T) {
	stub := &stubCompletionClient{
		resp: completionWith(`{"text": "x", "author": "AI Wisdom"}`),
	}
	generator := newStubbedGenerator(stub)

	_, err := generator.Generate(context.Background())
	require.NoError(t, err)

	req := stub.gotRequest
	assert.Equal(t, openai.GPT3Dot5Turbo, req.Model)
	assert.InDelta(t, generationTemperature, req.Temperature, 0.001)
	assert.Equal(t, generationMaxTokens, req.MaxTokens)
	require.NotNil(t, req.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, req.ResponseFormat.Type)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, generationPrompt, req.Messages[0].Content)
}

func TestOpenAIGenerator_Generate_DefaultsMissingAuthor(t *testing.T) {
	stub := &stubCompletionClient{
		resp: completionWith(`{"text": "Small steps still move you forward."}`),
	}
	generator := newStubbedGenerator(stub)

	quote, err := generator.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "AI Wisdom", quote.Author)
}

func TestOpenAIGenerator_Generate_Failures(t *testing.T) {
	tests := []struct {
		name string
		stub *stubCompletionClient
	}{
		{
			name: "transport error",
			stub: &stubCompletionClient{err: errors.New("connection refused")},
		},
		{
			name: "no choices",
			stub: &stubCompletionClient{resp: openai.ChatCompletionResponse{}},
		},
		{
			name: "empty content",
			stub: &stubCompletionClient{resp: completionWith("")},
		},
		{
			name: "not json",
			stub: &stubCompletionClient{resp: completionWith("here is your quote!")},
		},
		{
			name: "json without text",
			stub: &stubCompletionClient{resp: completionWith(`{"author": "AI Wisdom"}`)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			generator := newStubbedGenerator(tt.stub)

			_, err := generator.Generate(context.Background())

			assert.True(t, domain.IsUnavailable(err))
		})
	}
}

func TestOpenAIGenerator_Generate_OverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completionWith(`{"text": "Gratitude grows where attention goes.", "author": "AI Wisdom"}`))
	}))
	t.Cleanup(server.Close)

	generator := NewOpenAIGenerator(OpenAIGeneratorConfig{
		APIKey:  "test-key",
		BaseURL: server.URL,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	quote, err := generator.Generate(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Gratitude grows where attention goes.", quote.Text)
}
