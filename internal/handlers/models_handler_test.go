package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-vibes/internal/config"
	"alfredoptarigan/resume-vibes/internal/handlers"
	"alfredoptarigan/resume-vibes/internal/models"
	"alfredoptarigan/resume-vibes/internal/services"
	"alfredoptarigan/resume-vibes/mocks"
)

func TestHandleListModels(t *testing.T) {
	cfg := config.GeminiConfig{APIKey: "key", Model: "gemini-2.0-flash"}

	tests := []struct {
		name       string
		models     []string
		err        error
		wantStatus int
		wantModels []string
	}{
		{
			name:       "success",
			models:     []string{"models/gemini-2.0-flash", "models/gemini-1.5-pro"},
			wantStatus: fiber.StatusOK,
			wantModels: []string{"models/gemini-2.0-flash", "models/gemini-1.5-pro"},
		},
		{
			name:       "no models",
			models:     nil,
			wantStatus: fiber.StatusOK,
			wantModels: []string{},
		},
		{
			name:       "missing key",
			err:        fmt.Errorf("%w: GEMINI_API_KEY is not set", services.ErrConfiguration),
			wantStatus: fiber.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gemini := new(mocks.MockGeminiService)
			if tt.err != nil {
				gemini.On("ListModels", mock.Anything, cfg).Return(nil, tt.err)
			} else {
				gemini.On("ListModels", mock.Anything, cfg).Return(tt.models, nil)
			}

			app := fiber.New()
			app.Get("/api/v1/models", handlers.NewModelsHandler(gemini, cfg).HandleListModels)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/models", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			if tt.err != nil {
				var got models.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
				assert.Equal(t, services.KindConfiguration, got.Kind)
				return
			}

			var got models.ModelsResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
			assert.Equal(t, tt.wantModels, got.Models)
		})
	}
}
