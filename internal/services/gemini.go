package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"slices"
	"strings"

	"google.golang.org/genai"

	"alfredoptarigan/resume-vibes/internal/config"
)

type GeminiService interface {
	Analyze(ctx context.Context, prompt string, cfg config.GeminiConfig) (string, error)
	ListModels(ctx context.Context, cfg config.GeminiConfig) ([]string, error)
}

type geminiService struct {
	httpClient *http.Client
}

// NewGeminiService returns a client that builds a genai client per call from the
// configuration it is handed. httpClient may be nil.
func NewGeminiService(httpClient *http.Client) GeminiService {
	return &geminiService{httpClient: httpClient}
}

func (g *geminiService) newClient(ctx context.Context, cfg config.GeminiConfig) (*genai.Client, error) {
	if !cfg.HasAPIKey() {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY is not set", ErrConfiguration)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     strings.TrimSpace(cfg.APIKey),
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: g.httpClient,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create gemini client: %v", ErrConfiguration, err)
	}
	return client, nil
}

// Analyze implements GeminiService. It makes exactly one GenerateContent call and
// never retries.
func (g *geminiService) Analyze(ctx context.Context, prompt string, cfg config.GeminiConfig) (string, error) {
	client, err := g.newClient(ctx, cfg)
	if err != nil {
		return "", err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	generateConfig := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0.2),
		ResponseMIMEType: "application/json",
	}

	resp, err := client.Models.GenerateContent(ctx, cfg.Model, genai.Text(prompt), generateConfig)
	if err != nil {
		log.Printf("❌ Gemini API error: %v", err)
		return "", classifyGeminiError(err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: no response generated", ErrAnalysisFailed)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: content blocked by safety filters (%s)", ErrAnalysisFailed, resp.PromptFeedback.BlockReason)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text content in response", ErrAnalysisFailed)
	}

	log.Printf("📊 Gemini response received: %d characters", len(text))
	return text, nil
}

// ListModels implements GeminiService.
func (g *geminiService) ListModels(ctx context.Context, cfg config.GeminiConfig) ([]string, error) {
	client, err := g.newClient(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	var names []string
	for model, err := range client.Models.All(ctx) {
		if err != nil {
			return nil, classifyGeminiError(err)
		}
		if slices.Contains(model.SupportedActions, "generateContent") {
			names = append(names, model.Name)
		}
	}
	return names, nil
}

func classifyGeminiError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: gemini request timed out: %v", ErrAnalysisFailed, err)
	}

	if apiErr, ok := asAPIError(err); ok {
		switch {
		case apiErr.Code == http.StatusUnauthorized, apiErr.Code == http.StatusForbidden:
			return fmt.Errorf("%w: gemini rejected the API key: %v", ErrConfiguration, err)
		case apiErr.Code == http.StatusBadRequest && isInvalidKeyMessage(apiErr.Message):
			return fmt.Errorf("%w: gemini rejected the API key: %v", ErrConfiguration, err)
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: gemini rate limit reached: %v", ErrAnalysisFailed, err)
		}
	}

	if isInvalidKeyMessage(err.Error()) {
		return fmt.Errorf("%w: gemini rejected the API key: %v", ErrConfiguration, err)
	}

	return fmt.Errorf("%w: gemini request failed: %v", ErrAnalysisFailed, err)
}

func asAPIError(err error) (genai.APIError, bool) {
	var ptr *genai.APIError
	if errors.As(err, &ptr) && ptr != nil {
		return *ptr, true
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return genai.APIError{}, false
}

func isInvalidKeyMessage(msg string) bool {
	return strings.Contains(msg, "API key not valid") || strings.Contains(msg, "API_KEY_INVALID")
}
