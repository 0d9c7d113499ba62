package quizgen

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wikiquiz/internal/config"
	"wikiquiz/internal/domain"

	"github.com/stretchr/testify/assert"
)

func newTestGenerator(t *testing.T, handler http.HandlerFunc) (*OpenAIQuizGenerator, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	g, err := NewOpenAIQuizGenerator(config.AIConfig{
		BaseURL: server.URL + "/v1",
		APIKey:  "test-key",
		Model:   "google/gemini-2.5-flash",
	})
	assert.NoError(t, err)
	return g, server
}

func writeCompletion(w http.ResponseWriter, content string) {
	resp := map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  "google/gemini-2.5-flash",
		"choices": []map[string]any{
			{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			},
		},
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func writeGatewayError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]any{"message": message, "type": "gateway_error"},
	})
}

func TestNewOpenAIQuizGenerator(t *testing.T) {
	t.Run("MissingAPIKey", func(t *testing.T) {
		_, err := NewOpenAIQuizGenerator(config.AIConfig{Model: "m"})
		assert.Error(t, err)
	})

	t.Run("MissingModel", func(t *testing.T) {
		_, err := NewOpenAIQuizGenerator(config.AIConfig{APIKey: "k"})
		assert.Error(t, err)
	})
}

func TestOpenAIQuizGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		var gotAuth string
		var gotReq map[string]any
		g, server := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewDecoder(r.Body).Decode(&gotReq)
			writeCompletion(w, `{"summary":"s"}`)
		})
		defer server.Close()

		out, err := g.Generate(ctx, "Title", "article body")

		assert.NoError(t, err)
		assert.Equal(t, `{"summary":"s"}`, out)
		assert.Equal(t, "Bearer test-key", gotAuth)
		assert.Equal(t, "google/gemini-2.5-flash", gotReq["model"])

		messages, ok := gotReq["messages"].([]any)
		assert.True(t, ok)
		assert.Len(t, messages, 2)
		system := messages[0].(map[string]any)
		assert.Equal(t, "system", system["role"])
		assert.Equal(t, SystemPrompt, system["content"])
		user := messages[1].(map[string]any)
		assert.Equal(t, "user", user["role"])
		assert.Contains(t, user["content"], "article body")
	})

	t.Run("RateLimited", func(t *testing.T) {
		g, server := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			writeGatewayError(w, http.StatusTooManyRequests, "slow down")
		})
		defer server.Close()

		_, err := g.Generate(ctx, "Title", "body")

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrRateLimited, domainErr.Code)
		assert.Equal(t, "Rate limit exceeded. Please try again later.", domainErr.Message)
	})

	t.Run("QuotaExhausted", func(t *testing.T) {
		g, server := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			writeGatewayError(w, http.StatusPaymentRequired, "no credits")
		})
		defer server.Close()

		_, err := g.Generate(ctx, "Title", "body")

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrQuotaExhausted, domainErr.Code)
		assert.Equal(t, "AI credits exhausted. Please add credits to continue.", domainErr.Message)
	})

	t.Run("ServerError", func(t *testing.T) {
		g, server := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			writeGatewayError(w, http.StatusInternalServerError, "boom")
		})
		defer server.Close()

		_, err := g.Generate(ctx, "Title", "body")

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrGenerationUnavailable, domainErr.Code)
		assert.Contains(t, domainErr.Message, "500")
	})

	t.Run("NonJSONErrorBody", func(t *testing.T) {
		g, server := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("upstream says no"))
		})
		defer server.Close()

		_, err := g.Generate(ctx, "Title", "body")

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrRateLimited, domainErr.Code)
	})

	t.Run("NoChoices", func(t *testing.T) {
		g, server := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"chatcmpl-1","object":"chat.completion","choices":[]}`))
		})
		defer server.Close()

		_, err := g.Generate(ctx, "Title", "body")

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrGenerationUnavailable, domainErr.Code)
	})

	t.Run("GatewayUnreachable", func(t *testing.T) {
		g, server := newTestGenerator(t, func(w http.ResponseWriter, r *http.Request) {})
		server.Close()

		_, err := g.Generate(ctx, "Title", "body")

		var domainErr *domain.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.ErrGenerationUnavailable, domainErr.Code)
	})
}
