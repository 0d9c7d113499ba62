package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wikiquiz/internal/domain"
	"wikiquiz/internal/dto"
	"wikiquiz/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubQuizService struct {
	generateFunc func(ctx context.Context, rawURL string) (*dto.QuizResponse, error)
	historyFunc  func(ctx context.Context) (*dto.QuizListResponse, error)
}

func (s *stubQuizService) GenerateQuiz(ctx context.Context, rawURL string) (*dto.QuizResponse, error) {
	return s.generateFunc(ctx, rawURL)
}

func (s *stubQuizService) GetQuizHistory(ctx context.Context) (*dto.QuizListResponse, error) {
	return s.historyFunc(ctx)
}

func newTestApp(svc *stubQuizService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := NewQuizHandler(svc)
	app.Post("/api/quizzes", h.GenerateQuiz)
	app.Get("/api/quizzes", h.ListQuizzes)
	return app
}

func TestQuizHandler_GenerateQuiz(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		var gotURL string
		svc := &stubQuizService{
			generateFunc: func(ctx context.Context, rawURL string) (*dto.QuizResponse, error) {
				gotURL = rawURL
				return &dto.QuizResponse{
					ID:            "01HZX0000000000000000000A1",
					URL:           rawURL,
					Title:         "Ada Lovelace",
					Sections:      []string{},
					Questions:     []dto.QuizQuestionResponse{},
					RelatedTopics: []string{},
					CreatedAt:     time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC),
				}, nil
			},
		}
		app := newTestApp(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/quizzes",
			strings.NewReader(`{"url":"https://en.wikipedia.org/wiki/Ada_Lovelace"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Ada_Lovelace", gotURL)

		body, _ := io.ReadAll(resp.Body)
		var got dto.QuizResponse
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, "01HZX0000000000000000000A1", got.ID)
		assert.Equal(t, "Ada Lovelace", got.Title)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		svc := &stubQuizService{
			generateFunc: func(ctx context.Context, rawURL string) (*dto.QuizResponse, error) {
				t.Error("service should not be called for an unparseable body")
				return nil, domain.NewInternalError("unexpected call", nil)
			},
		}
		app := newTestApp(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/quizzes", strings.NewReader("not json"))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("MissingURLDelegatesToService", func(t *testing.T) {
		// An empty url field is valid JSON; the service owns URL validation.
		svc := &stubQuizService{
			generateFunc: func(ctx context.Context, rawURL string) (*dto.QuizResponse, error) {
				assert.Equal(t, "", rawURL)
				return nil, domain.NewInvalidInputError("Please provide a valid Wikipedia URL")
			},
		}
		app := newTestApp(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/quizzes", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Please provide a valid Wikipedia URL"}`, string(body))
	})

	t.Run("RateLimitedMapsTo429", func(t *testing.T) {
		svc := &stubQuizService{
			generateFunc: func(ctx context.Context, rawURL string) (*dto.QuizResponse, error) {
				return nil, domain.NewRateLimitedError()
			},
		}
		app := newTestApp(svc)

		req := httptest.NewRequest(http.MethodPost, "/api/quizzes",
			strings.NewReader(`{"url":"https://en.wikipedia.org/wiki/Go"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	})
}

func TestQuizHandler_ListQuizzes(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := &stubQuizService{
			historyFunc: func(ctx context.Context) (*dto.QuizListResponse, error) {
				return &dto.QuizListResponse{Quizzes: []dto.QuizResponse{
					{ID: "02", Title: "Newer"},
					{ID: "01", Title: "Older"},
				}}, nil
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		body, _ := io.ReadAll(resp.Body)
		var got dto.QuizListResponse
		assert.NoError(t, json.Unmarshal(body, &got))
		assert.Len(t, got.Quizzes, 2)
		assert.Equal(t, "02", got.Quizzes[0].ID)
	})

	t.Run("EmptyHistorySerializesAsArray", func(t *testing.T) {
		svc := &stubQuizService{
			historyFunc: func(ctx context.Context) (*dto.QuizListResponse, error) {
				return &dto.QuizListResponse{Quizzes: []dto.QuizResponse{}}, nil
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))
		assert.NoError(t, err)
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"quizzes":[]}`, string(body))
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		svc := &stubQuizService{
			historyFunc: func(ctx context.Context) (*dto.QuizListResponse, error) {
				return nil, domain.NewPersistenceFailedError(nil)
			},
		}
		app := newTestApp(svc)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/quizzes", nil))
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}
