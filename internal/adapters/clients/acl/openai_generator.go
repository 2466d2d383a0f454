package acl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fiveminutevibe/vibe-service/internal/domain"
	"github.com/fiveminutevibe/vibe-service/internal/platform/logging"
)

const (
	// openAIServiceName identifies the downstream service in errors and logs.
	openAIServiceName = "openai"

	// generationTimeout caps one completion call. The quote path degrades
	// to the fallback tier on expiry, so the ceiling stays well under any
	// edge timeout while leaving the model room to answer.
	generationTimeout = 8 * time.Second

	// generationTemperature trades determinism for variety between days.
	generationTemperature = 0.8

	// generationMaxTokens bounds the completion; quotes are 120 chars max.
	generationMaxTokens = 150

	// defaultQuoteAuthor signs generated quotes when the model omits one.
	defaultQuoteAuthor = "AI Wisdom"
)

// generationPrompt instructs the model to answer with a JSON quote object.
const generationPrompt = `You are a mindfulness and wellness expert. Create a short, inspiring quote (maximum 120 characters) about gratitude, mindfulness, self-improvement, or positive thinking. The quote should be uplifting and motivational. Don't use quotes from famous people. Create an original quote and sign it as 'AI Wisdom'. Format your response as JSON: {"text": "your quote here", "author": "AI Wisdom"}`

// completionClient is the slice of the OpenAI SDK the generator uses,
// kept narrow so tests can stub it.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIGeneratorConfig contains configuration for the quote generator.
type OpenAIGeneratorConfig struct {
	// APIKey authenticates against the OpenAI API.
	APIKey string

	// BaseURL optionally overrides the API endpoint, for tests and proxies.
	BaseURL string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// OpenAIGenerator implements ports.QuoteGenerator against the OpenAI
// chat completion API. It is an ACL adapter: the SDK response shape and
// the model's JSON contract stay inside this file, callers only ever see
// domain.Quote or domain.ErrUnavailable.
type OpenAIGenerator struct {
	client completionClient
	logger *slog.Logger
}

// NewOpenAIGenerator creates a new generator adapter.
// Panics if APIKey is empty. Defaults logger to slog.Default() if nil.
func NewOpenAIGenerator(cfg OpenAIGeneratorConfig) *OpenAIGenerator {
	if cfg.APIKey == "" {
		panic("OpenAIGenerator: APIKey is required")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &OpenAIGenerator{
		client: openai.NewClientWithConfig(clientCfg),
		logger: logger,
	}
}

// generatedQuote is the model's JSON answer. Internal to the ACL.
type generatedQuote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Generate asks the model for one fresh quote.
// Implements ports.QuoteGenerator.
func (g *OpenAIGenerator) Generate(ctx context.Context) (*domain.Quote, error) {
	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	g.logger.Log(ctx, logging.LevelTrace, "starting completion request")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: generationPrompt,
			},
		},
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, domain.NewUnavailableError(openAIServiceName, err.Error())
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, domain.NewUnavailableError(openAIServiceName, "no content returned")
	}

	content := resp.Choices[0].Message.Content

	g.logger.Log(ctx, logging.LevelTrace, "completion received",
		slog.Int("content_length", len(content)))

	return g.translate(content)
}

// translate parses the model's JSON answer into a domain Quote.
func (g *OpenAIGenerator) translate(content string) (*domain.Quote, error) {
	var ext generatedQuote
	if err := json.Unmarshal([]byte(content), &ext); err != nil {
		return nil, domain.NewUnavailableError(openAIServiceName, "malformed completion payload")
	}

	if ext.Text == "" {
		return nil, domain.NewUnavailableError(openAIServiceName, "completion payload has no text")
	}

	author := ext.Author
	if author == "" {
		author = defaultQuoteAuthor
	}

	return &domain.Quote{Text: ext.Text, Author: author}, nil
}
